package encode

import (
	"github.com/fatih/color"

	"github.com/valex-go/valex/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: FieldColor,
		}
		colors.Map[able] = color.CyanString
		able.Attr = SepColor
		colors.Map[able] = color.HiBlackString
	}
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.GreenString
	colors.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.YellowString
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.MagentaString
	colors.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.HiBlackString
	return colors
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, s string) string {
	f := c.Map[Colorable{Type: t, Attr: attr}]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}
