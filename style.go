package lineui

// Style is a set of text attributes: foreground and background colors plus
// six boolean flags. Every attribute is tri-state: unspecified until set.
// The zero value specifies nothing.
//
// Styles are merged with With and Or. An unspecified attribute falls
// through to the other operand, so an outer ambient style can fill in
// whatever inner styling left open:
//
//	label := FG(Red)
//	base := BG(Black).Bold()
//	label.Or(base) // red on black, bold: FG kept, the rest filled in
//
// Style is a comparable value type; == is structural equality.
type Style struct {
	fg, bg Color
	set    attrBits // which attributes are specified
	on     attrBits // values of the specified boolean attributes
}

type attrBits uint16

const (
	attrFG attrBits = 1 << iota
	attrBG
	attrBold
	attrItalic
	attrUnderline
	attrBlink
	attrInvert
	attrStrikethrough

	attrColors = attrFG | attrBG
)

// FG returns a style specifying only the foreground color.
func FG(c Color) Style {
	return Style{fg: c, set: attrFG}
}

// BG returns a style specifying only the background color.
func BG(c Color) Style {
	return Style{bg: c, set: attrBG}
}

func (s Style) flag(bit attrBits) Style {
	s.set |= bit
	s.on |= bit
	return s
}

// Bold returns s with bold set.
func (s Style) Bold() Style { return s.flag(attrBold) }

// Italic returns s with italic set.
func (s Style) Italic() Style { return s.flag(attrItalic) }

// Underline returns s with underline set.
func (s Style) Underline() Style { return s.flag(attrUnderline) }

// Blink returns s with blink set (not widely supported).
func (s Style) Blink() Style { return s.flag(attrBlink) }

// Invert returns s with the colors swapped.
func (s Style) Invert() Style { return s.flag(attrInvert) }

// Strikethrough returns s with strikethrough set (not widely supported).
func (s Style) Strikethrough() Style { return s.flag(attrStrikethrough) }

// Foreground returns s with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	s.set |= attrFG
	return s
}

// Background returns s with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	s.set |= attrBG
	return s
}

// Or merges two styles attribute by attribute, with s taking precedence:
// an attribute comes from other only where s leaves it unspecified.
func (s Style) Or(other Style) Style {
	if s.set&attrFG == 0 && other.set&attrFG != 0 {
		s.fg = other.fg
	}
	if s.set&attrBG == 0 && other.set&attrBG != 0 {
		s.bg = other.bg
	}
	s.on |= other.on &^ s.set &^ attrColors
	s.set |= other.set
	return s
}

// With merges two styles attribute by attribute, with other taking
// precedence. s.With(other) is other.Or(s).
func (s Style) With(other Style) Style {
	return other.Or(s)
}

// IsZero returns true if no attribute is specified.
func (s Style) IsZero() bool {
	return s.set == 0
}

// String returns the SGR escape sequences that activate the style.
// The empty style yields an empty string.
func (s Style) String() string {
	return string(s.appendSGR(nil))
}

// appendSGR appends the style's escape sequences to b, in a fixed order:
// foreground, background, then the boolean attributes. Attributes set to
// false emit nothing; disabling is done by the renderer's trailing reset.
func (s Style) appendSGR(b []byte) []byte {
	if s.set&attrFG != 0 {
		b = s.fg.appendFG(b)
	}
	if s.set&attrBG != 0 {
		b = s.bg.appendBG(b)
	}
	has := func(bit attrBits) bool { return s.set&s.on&bit != 0 }
	if has(attrBold) {
		b = append(b, "\x1b[1m"...)
	}
	if has(attrItalic) {
		b = append(b, "\x1b[3m"...)
	}
	if has(attrUnderline) {
		b = append(b, "\x1b[4m"...)
	}
	if has(attrBlink) {
		b = append(b, "\x1b[5m"...)
	}
	if has(attrInvert) {
		b = append(b, "\x1b[7m"...)
	}
	if has(attrStrikethrough) {
		b = append(b, "\x1b[9m"...)
	}
	return b
}
