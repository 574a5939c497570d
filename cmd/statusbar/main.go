// statusbar renders a full-width progress line sized to the terminal,
// then leaves it on screen when done.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"lineui"
)

func main() {
	cols, _, err := lineui.TerminalSize(int(os.Stdout.Fd()))
	if err != nil {
		cols = 80
	}

	accent := lineui.FG(lineui.RGB(95, 175, 255).Quant256())
	r := lineui.NewRenderer(os.Stdout)

	const steps = 40
	for i := 0; i <= steps; i++ {
		label := lineui.NewStyled(accent.Bold(), lineui.NewText(" deploy "))
		pct := lineui.NewText(fmt.Sprintf(" %3d%% ", i*100/steps))

		barWidth := cols - label.Width() - pct.Width()
		filled := barWidth * i / steps
		bar := lineui.NewFixedWidth(barWidth,
			lineui.NewStyled(lineui.BG(lineui.ANSI(28)), lineui.Gap(filled)),
		)

		frame, err := r.Begin()
		if err != nil {
			log.Fatal(err)
		}
		if err := frame.Render(lineui.Line(label, bar, pct)); err != nil {
			log.Fatal(err)
		}
		if err := frame.Finish(); err != nil {
			log.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	if err := r.Leave(); err != nil {
		log.Fatal(err)
	}
}
