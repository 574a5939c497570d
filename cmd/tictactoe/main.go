// tictactoe is an interactive board driven by the arrow keys, showing
// cursor placement across a multi-line frame.
package main

import (
	"bufio"
	"log"
	"os"

	"golang.org/x/term"

	"lineui"
)

type player int

const (
	empty player = iota
	playerX
	playerO
)

type game struct {
	grid    [3][3]player
	current player
}

func (g *game) place(row, col int) {
	if g.grid[row][col] != empty {
		return
	}
	g.grid[row][col] = g.current
	if g.current == playerX {
		g.current = playerO
	} else {
		g.current = playerX
	}
}

// result returns the winner, or empty with done=true for a draw.
func (g *game) result() (winner player, done bool) {
	lines := [][3][2]int{}
	for i := 0; i < 3; i++ {
		lines = append(lines,
			[3][2]int{{i, 0}, {i, 1}, {i, 2}},
			[3][2]int{{0, i}, {1, i}, {2, i}},
		)
	}
	lines = append(lines,
		[3][2]int{{0, 0}, {1, 1}, {2, 2}},
		[3][2]int{{2, 0}, {1, 1}, {0, 2}},
	)
	for _, line := range lines {
		a := g.grid[line[0][0]][line[0][1]]
		if a != empty &&
			a == g.grid[line[1][0]][line[1][1]] &&
			a == g.grid[line[2][0]][line[2][1]] {
			return a, true
		}
	}
	for _, row := range g.grid {
		for _, cell := range row {
			if cell == empty {
				return empty, false
			}
		}
	}
	return empty, true // draw
}

func cell(p player) lineui.Element {
	switch p {
	case playerX:
		return lineui.NewStyled(lineui.FG(lineui.ANSI(33)).Bold(), lineui.NewText("X"))
	case playerO:
		return lineui.NewStyled(lineui.FG(lineui.ANSI(203)).Bold(), lineui.NewText("O"))
	default:
		return lineui.NewStyled(lineui.FG(lineui.ANSI(245)), lineui.NewText("-"))
	}
}

type key int

const (
	keyNone key = iota
	keyUp
	keyDown
	keyLeft
	keyRight
	keyPlace
	keyQuit
)

// readKey decodes one key, following CSI sequences for the arrows.
func readKey(in *bufio.Reader) key {
	b, err := in.ReadByte()
	if err != nil {
		return keyQuit
	}
	switch b {
	case 3, 'q':
		return keyQuit
	case ' ', '\r', '\n':
		return keyPlace
	case 0x1b:
		next, err := in.ReadByte()
		if err != nil || next != '[' {
			return keyQuit
		}
		final, err := in.ReadByte()
		if err != nil {
			return keyQuit
		}
		switch final {
		case 'A':
			return keyUp
		case 'B':
			return keyDown
		case 'C':
			return keyRight
		case 'D':
			return keyLeft
		}
	}
	return keyNone
}

func main() {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer term.Restore(fd, old)

	r := lineui.NewRenderer(os.Stdout)
	defer r.Close()

	in := bufio.NewReader(os.Stdin)
	g := &game{current: playerX}
	row, col := 1, 1

	for {
		frame, err := r.Begin()
		if err != nil {
			log.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			if i != 0 {
				if err := frame.Render(lineui.NewText("--+---+--")); err != nil {
					log.Fatal(err)
				}
			}
			line := lineui.Line(
				lineui.If(row == i && col == 0, lineui.Cursor{}),
				cell(g.grid[i][0]),
				lineui.NewText(" | "),
				lineui.If(row == i && col == 1, lineui.Cursor{}),
				cell(g.grid[i][1]),
				lineui.NewText(" | "),
				lineui.If(row == i && col == 2, lineui.Cursor{}),
				cell(g.grid[i][2]),
			)
			if err := frame.Render(line); err != nil {
				log.Fatal(err)
			}
		}

		winner, done := g.result()
		if done {
			var msg lineui.Element
			if winner == empty {
				msg = lineui.NewText("The game is a draw.")
			} else {
				msg = lineui.Line(
					lineui.NewText("The winner is "), cell(winner), lineui.NewText("!"),
				)
			}
			if err := frame.Render(msg); err != nil {
				log.Fatal(err)
			}
		}
		if err := frame.Finish(); err != nil {
			log.Fatal(err)
		}
		if done {
			if err := r.Leave(); err != nil {
				log.Fatal(err)
			}
			return
		}

		switch readKey(in) {
		case keyUp:
			row = (row + 2) % 3
		case keyDown:
			row = (row + 1) % 3
		case keyLeft:
			col = (col + 2) % 3
		case keyRight:
			col = (col + 1) % 3
		case keyPlace:
			g.place(row, col)
		case keyQuit:
			return
		}
	}
}
