package encode

import (
	"strings"

	"github.com/modric/modric/ir"

	"github.com/fatih/color"
)

// Colorable selects a color by the type of the node being written and the
// role of the text within it.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	KeywordColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

type rgb [3]int

var palette = map[Colorable]rgb{
	{ir.NullType, ValueColor}:     {168, 0, 196},
	{ir.NumberType, ValueColor}:   {128, 216, 236},
	{ir.StringType, ValueColor}:   {8, 196, 16},
	{ir.StringType, KeywordColor}: {198, 198, 46},
	{ir.ObjectType, FieldColor}:   {128, 168, 196},
	{ir.ObjectType, SepColor}:     {196, 128, 128},
	{ir.ArrayType, SepColor}:      {255, 0, 196},
}

// NewColors gives the terminal palette used when output is a tty.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(palette)+1),
	}
	for able, c := range palette {
		colors.Map[able] = escaped(color.RGB(c[0], c[1], c[2]).SprintfFunc())
	}
	colors.Map[Colorable{ir.BoolType, ValueColor}] = escaped(color.CyanString)
	return colors
}

// escaped protects text from being read as a format by the color funcs.
func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
