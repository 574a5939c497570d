package lineui

import "testing"

func TestStyleMerge(t *testing.T) {
	style1 := FG(ANSI(1)).Bold()
	style2 := FG(ANSI(2)).Italic()

	t.Run("With", func(t *testing.T) {
		got := style1.With(style2)
		want := FG(ANSI(2)).Bold().Italic()
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Or", func(t *testing.T) {
		got := style1.Or(style2)
		want := FG(ANSI(1)).Bold().Italic()
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("WithIsFlippedOr", func(t *testing.T) {
		styles := []Style{
			{},
			style1,
			style2,
			BG(RGB(9, 9, 9)).Underline(),
			FG(Default).Strikethrough().Blink(),
		}
		for _, a := range styles {
			for _, b := range styles {
				if a.With(b) != b.Or(a) {
					t.Errorf("a.With(b) != b.Or(a) for a=%+v b=%+v", a, b)
				}
			}
		}
	})

	t.Run("EmptyIsIdentity", func(t *testing.T) {
		for _, s := range []Style{style1, style2, {}} {
			if s.With(Style{}) != s {
				t.Errorf("s.With(empty) != s for %+v", s)
			}
			if s.Or(Style{}) != s {
				t.Errorf("s.Or(empty) != s for %+v", s)
			}
			if (Style{}).With(s) != s {
				t.Errorf("empty.With(s) != s for %+v", s)
			}
			if (Style{}).Or(s) != s {
				t.Errorf("empty.Or(s) != s for %+v", s)
			}
		}
	})
}

func TestStyleZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Error("zero Style should report IsZero")
	}
	if FG(Default).IsZero() {
		t.Error("specifying the default foreground is not the zero style")
	}
	if (Style{}).String() != "" {
		t.Errorf("zero style emits %q, want empty", (Style{}).String())
	}
}

func TestStyleSGR(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		s := FG(ANSI(1)).Background(ANSI(2)).
			Bold().Italic().Underline().Blink().Invert().Strikethrough()
		want := "\x1b[38;5;1m\x1b[48;5;2m\x1b[1m\x1b[3m\x1b[4m\x1b[5m\x1b[7m\x1b[9m"
		if got := s.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("RGBAndDefault", func(t *testing.T) {
		s := FG(RGB(1, 2, 3)).With(BG(Default))
		want := "\x1b[38;2;1;2;3m\x1b[49m"
		if got := s.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
