package lineui

import "testing"

func TestColorSGR(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		wantFG string
		wantBG string
	}{
		{"default", Default, "\x1b[39m", "\x1b[49m"},
		{"palette", ANSI(42), "\x1b[38;5;42m", "\x1b[48;5;42m"},
		{"rgb", RGB(1, 2, 3), "\x1b[38;2;1;2;3m", "\x1b[48;2;1;2;3m"},
		{"palette high", ANSI(255), "\x1b[38;5;255m", "\x1b[48;5;255m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.color.appendFG(nil)); got != tt.wantFG {
				t.Errorf("fg = %q, want %q", got, tt.wantFG)
			}
			if got := string(tt.color.appendBG(nil)); got != tt.wantBG {
				t.Errorf("bg = %q, want %q", got, tt.wantBG)
			}
		})
	}
}

func TestQuant256(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"black hits cube origin", RGB(0, 0, 0), ANSI(16)},
		{"white hits cube corner", RGB(255, 255, 255), ANSI(231)},
		{"mid gray hits ramp", RGB(128, 128, 128), ANSI(244)},
		{"pure red hits cube", RGB(255, 0, 0), ANSI(196)},
		{"palette passes through", ANSI(3), ANSI(3)},
		{"default passes through", Default, Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Quant256(); got != tt.want {
				t.Errorf("Quant256(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
