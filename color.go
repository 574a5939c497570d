package lineui

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color for the foreground or background of a Style.
// The zero value is the terminal's default color.
type Color struct {
	mode    colorMode
	r, g, b uint8 // palette index lives in r for color256
}

type colorMode uint8

const (
	colorModeDefault colorMode = iota
	colorMode256
	colorModeRGB
)

// Default is the terminal's own default color.
var Default = Color{}

// ANSI returns a color from the 256-entry terminal palette.
func ANSI(n uint8) Color {
	return Color{mode: colorMode256, r: n}
}

// RGB returns a 24-bit color. Terminals without truecolor support may
// render it approximately; see Quant256.
func RGB(r, g, b uint8) Color {
	return Color{mode: colorModeRGB, r: r, g: g, b: b}
}

// The 16 basic palette entries. Their exact appearance depends on the
// terminal's color scheme.
var (
	Black         = ANSI(0)
	Red           = ANSI(1)
	Green         = ANSI(2)
	Yellow        = ANSI(3)
	Blue          = ANSI(4)
	Magenta       = ANSI(5)
	Cyan          = ANSI(6)
	White         = ANSI(7)
	BrightBlack   = ANSI(8)
	BrightRed     = ANSI(9)
	BrightGreen   = ANSI(10)
	BrightYellow  = ANSI(11)
	BrightBlue    = ANSI(12)
	BrightMagenta = ANSI(13)
	BrightCyan    = ANSI(14)
	BrightWhite   = ANSI(15)
)

// Quant256 maps an RGB color to the nearest entry of the 256-color palette,
// for terminals without truecolor support. Only the cube and grayscale
// entries (16-255) are candidates; the first 16 vary between terminal
// schemes and cannot be matched reliably. Non-RGB colors pass through
// unchanged.
func (c Color) Quant256() Color {
	if c.mode != colorModeRGB {
		return c
	}
	target := colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
	best, bestDist := 16, -1.0
	for i := 16; i < 256; i++ {
		d := target.DistanceLuv(palette256(i))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return ANSI(uint8(best))
}

// palette256 returns the reference sRGB value of palette entry i (16-255):
// a 6x6x6 color cube followed by a 24-step gray ramp.
func palette256(i int) colorful.Color {
	if i >= 232 {
		v := float64(8+10*(i-232)) / 255
		return colorful.Color{R: v, G: v, B: v}
	}
	n := i - 16
	level := func(v int) float64 {
		if v == 0 {
			return 0
		}
		return float64(55+40*v) / 255
	}
	return colorful.Color{
		R: level(n / 36),
		G: level(n / 6 % 6),
		B: level(n % 6),
	}
}

// appendFG appends the SGR sequence selecting c as the foreground color.
func (c Color) appendFG(b []byte) []byte {
	switch c.mode {
	case colorMode256:
		b = append(b, "\x1b[38;5;"...)
		b = strconv.AppendUint(b, uint64(c.r), 10)
		return append(b, 'm')
	case colorModeRGB:
		b = append(b, "\x1b[38;2;"...)
		b = appendRGBArgs(b, c.r, c.g, c.b)
		return append(b, 'm')
	default:
		return append(b, "\x1b[39m"...)
	}
}

// appendBG appends the SGR sequence selecting c as the background color.
func (c Color) appendBG(b []byte) []byte {
	switch c.mode {
	case colorMode256:
		b = append(b, "\x1b[48;5;"...)
		b = strconv.AppendUint(b, uint64(c.r), 10)
		return append(b, 'm')
	case colorModeRGB:
		b = append(b, "\x1b[48;2;"...)
		b = appendRGBArgs(b, c.r, c.g, c.b)
		return append(b, 'm')
	default:
		return append(b, "\x1b[49m"...)
	}
}

func appendRGBArgs(b []byte, r, g, bl uint8) []byte {
	b = strconv.AppendUint(b, uint64(r), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(g), 10)
	b = append(b, ';')
	return strconv.AppendUint(b, uint64(bl), 10)
}
