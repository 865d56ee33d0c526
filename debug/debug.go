// Package debug provides env-var gated debug logging.
package debug

import (
	"encoding/json/v2"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Path  bool
	Walk  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("VALEX_DEBUG_PATH")
	d.Walk = boolEnv("VALEX_DEBUG_WALK")
	d.Merge = boolEnv("VALEX_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Walk() bool {
	return d.Walk
}
func Merge() bool {
	return d.Merge
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
