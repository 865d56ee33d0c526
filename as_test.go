package valex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/valex-go/valex/ir"
)

func TestAsStrings(t *testing.T) {
	y := mustParse(t, `["hello", "world"]`)
	got, err := AsStrings(y)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"hello", "world"}, got); d != "" {
		t.Errorf("unexpected strings (-want +got):\n%s", d)
	}

	// a single non-string element fails the whole conversion
	y = mustParse(t, `["hello", 3]`)
	if _, err := AsStrings(y); !errors.Is(err, ErrWrongType) {
		t.Errorf("mixed array: got %v, want wrong-type", err)
	}
	if _, ok := StringsOk(y); ok {
		t.Errorf("StringsOk on mixed array reported ok")
	}
}

func TestAsArray(t *testing.T) {
	y := mustParse(t, `[{"a": 1}, {"b": 2}]`)
	vs, err := AsArray(y)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d elements", len(vs))
	}
	if v, err := GetI64(vs[0], "a"); err != nil || v != 1 {
		t.Errorf("element 0 field a: %v, %v", v, err)
	}
	if _, err := AsArray(ir.FromString("x")); !errors.Is(err, ErrWrongType) {
		t.Errorf("AsArray on string: %v", err)
	}
}

func TestAsNumbers(t *testing.T) {
	if v, err := AsF64(ir.FromFloat(1.25)); err != nil || v != 1.25 {
		t.Errorf("AsF64: %v %v", v, err)
	}
	if v, err := AsF64(ir.FromInt(4)); err != nil || v != 4 {
		t.Errorf("AsF64 on int: %v %v", v, err)
	}
	if _, err := AsI64(ir.FromFloat(1.25)); !errors.Is(err, ErrWrongType) {
		t.Errorf("AsI64 on float: %v", err)
	}
	if v, err := AsI32(ir.FromInt(-40)); err != nil || v != -40 {
		t.Errorf("AsI32: %v %v", v, err)
	}
	if _, err := AsI32(ir.FromInt(1 << 40)); !errors.Is(err, ErrWrongType) {
		t.Errorf("AsI32 out of range: %v", err)
	}
	if v, err := AsU32(ir.FromInt(7)); err != nil || v != 7 {
		t.Errorf("AsU32: %v %v", v, err)
	}
	if _, err := AsU32(ir.FromInt(-1)); !errors.Is(err, ErrWrongType) {
		t.Errorf("AsU32 on negative: %v", err)
	}
}

// 2^32 must fail the u32 range check, not wrap to 0.
func TestU32RangeCheck(t *testing.T) {
	y := mustParse(t, `{"n": 4294967296}`)
	_, err := GetU32(y, "n")
	if !errors.Is(err, ErrWrongType) {
		t.Fatalf("got %v, want wrong-type", err)
	}
	if v, ok := U32Ok(ir.Get(y, "n")); ok || v != 0 {
		t.Errorf("U32Ok: %v %v", v, ok)
	}
	if v, err := GetU32(mustParse(t, `{"n": 4294967295}`), "n"); err != nil || v != 4294967295 {
		t.Errorf("max u32: %v %v", v, err)
	}
}

// The Ok variants absorb type mismatches: a wrong-typed node is
// indistinguishable from an absent value through this form.
func TestOkVariantsAbsorbMismatch(t *testing.T) {
	str := ir.FromString("x")
	num := ir.FromInt(3)

	if v, ok := StringOk(str); !ok || v != "x" {
		t.Errorf("StringOk: %v %v", v, ok)
	}
	if _, ok := StringOk(num); ok {
		t.Errorf("StringOk on number reported ok")
	}
	if _, ok := F64Ok(str); ok {
		t.Errorf("F64Ok on string reported ok")
	}
	if _, ok := I64Ok(str); ok {
		t.Errorf("I64Ok on string reported ok")
	}
	if _, ok := BoolOk(num); ok {
		t.Errorf("BoolOk on number reported ok")
	}
	if _, ok := ArrayOk(num); ok {
		t.Errorf("ArrayOk on number reported ok")
	}
	if v, ok := BoolOk(ir.FromBool(true)); !ok || !v {
		t.Errorf("BoolOk: %v %v", v, ok)
	}
}

func TestAsString(t *testing.T) {
	y := mustParse(t, `{"s": "value"}`)
	v, err := AsString(ir.Get(y, "s"))
	if err != nil || v != "value" {
		t.Fatalf("AsString: %v %v", v, err)
	}
	var te *TypeError
	_, err = AsString(ir.FromInt(1))
	if !errors.As(err, &te) || te.Path != "" || te.Want != "string" {
		t.Errorf("bare coercion error should have no path: %v", err)
	}
}
