//go:build unix

package lineui

import "golang.org/x/sys/unix"

// TerminalSize returns the terminal's dimensions in columns and rows.
// fd should be the descriptor of the controlling terminal, typically
// os.Stdout's.
func TerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
