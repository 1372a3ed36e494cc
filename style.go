// Package enquire is a terminal question-and-answer runtime. It prompts a
// user through a sequence of typed questions and collects a strongly-typed,
// named answer map.
package enquire

// Attribute represents text styling attributes that can be combined.
type Attribute uint16

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderlined
	AttrReversed
	AttrCrossedOut
	AttrSlowBlink
	AttrRapidBlink
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // Terminal default
	Color16                       // Basic 16 colors (0-15)
	Color256                      // 256 color palette (0-255)
	ColorRGB                      // 24-bit true color
)

// Color represents a terminal color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns a color from the 256 color palette.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// The basic palette. The bright variants map to indices 8-15.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	DarkGrey     = BasicColor(8)
	LightRed     = BasicColor(9)
	LightGreen   = BasicColor(10)
	LightYellow  = BasicColor(11)
	LightBlue    = BasicColor(12)
	LightMagenta = BasicColor(13)
	LightCyan    = BasicColor(14)
	Grey         = BasicColor(15)
)

// Style combines foreground and background colors with text attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Equal reports whether two styles are identical.
func (s Style) Equal(o Style) bool {
	return s == o
}

// Bold returns a copy of the style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a copy of the style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// WithFG returns a copy of the style with the given foreground color.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns a copy of the style with the given background color.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}
