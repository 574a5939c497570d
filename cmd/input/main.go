// input renders a fixed-width, left-truncated text field with a live cursor.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"lineui"
)

func main() {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer term.Restore(fd, old)

	r := lineui.NewRenderer(os.Stdout)

	in := bufio.NewReader(os.Stdin)
	name := ""
loop:
	for {
		field := lineui.NewFixedWidth(20,
			lineui.Line(lineui.NewText(name), lineui.Cursor{}, lineui.Gap(1)),
		).Truncate(lineui.Left)

		frame, err := r.Begin()
		if err != nil {
			log.Fatal(err)
		}
		err = frame.Render(lineui.Line(
			lineui.NewText("Enter your name: "),
			lineui.NewStyled(lineui.BG(lineui.ANSI(240)), field),
		))
		if err != nil {
			log.Fatal(err)
		}
		if err := frame.Finish(); err != nil {
			log.Fatal(err)
		}

		b, err := in.ReadByte()
		if err != nil {
			break
		}
		switch {
		case b == '\r' || b == '\n':
			break loop
		case b == 3 || b == 27: // ctrl-c, escape
			break loop
		case b == 0x7f || b == 8: // backspace
			_, size := utf8.DecodeLastRuneInString(name)
			name = name[:len(name)-size]
		case b >= 0x20 && b < 0x7f:
			name += string(rune(b))
		}
	}

	if err := r.Close(); err != nil {
		log.Fatal(err)
	}
	term.Restore(fd, old)
	fmt.Printf("Your name is %q\n", name)
}
