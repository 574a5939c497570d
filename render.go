package lineui

import (
	"io"
	"strconv"
)

const (
	sgrReset   = "\x1b[m"
	eraseLine  = "\x1b[K"
	eraseBelow = "\x1b[J"
	showCursor = "\x1b[?25h"
	hideCursor = "\x1b[?25l"
)

// Renderer writes frames of styled lines to a terminal, redrawing in place.
//
// Each frame starts with Begin, which moves back to the top of the previous
// frame's footprint and returns a Frame for the new one. The renderer is the
// only holder of cross-frame state: how many lines the last frame wrote and
// where it asked the cursor to sit. It must be the sole writer to its sink
// for its whole lifetime.
//
// The renderer is fail-fast: the first sink error leaves the on-screen state
// unknown, and the renderer must be discarded, not driven further.
type Renderer struct {
	out io.Writer

	linesRendered int
	cursorLine    int
	cursorCol     int
	hasCursor     bool

	frameOpen bool
	left      bool

	scratch []byte
	chunks  []Chunk
}

// Frame is an in-progress frame. It is only obtainable from Begin, so
// rendering out of order cannot be expressed.
type Frame struct {
	r *Renderer
}

// NewRenderer returns a renderer writing to w. If w implements
// Flush() error, Finish flushes it after each frame.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: w}
}

// Begin starts a new frame, moving the cursor back to the top-left of the
// previous frame's footprint. Panics if the previous frame was never
// finished; that is a bug in the caller, not a runtime condition.
func (r *Renderer) Begin() (*Frame, error) {
	if r.frameOpen {
		panic("lineui: Begin called with a frame still open")
	}
	if err := r.rewind(); err != nil {
		return nil, err
	}
	r.frameOpen = true
	return &Frame{r: r}, nil
}

// rewind moves the physical cursor to the top-left of the rendered block
// and clears the per-frame state.
func (r *Renderer) rewind() error {
	b := r.scratch[:0]
	// The cursor sits where the last Finish put it: the desired cursor row
	// if one was set, otherwise the last line written.
	up := r.linesRendered - 1
	if r.hasCursor {
		up = r.cursorLine
	}
	if up > 0 {
		b = appendCSI(b, up, 'A')
	}
	b = append(b, '\r')

	r.linesRendered = 0
	r.hasCursor = false
	r.left = false
	return r.write(b)
}

// Render writes one line of the frame.
func (f *Frame) Render(el Element) error {
	r := f.r
	r.chunks = el.AppendChunks(r.chunks[:0])

	b := r.scratch[:0]
	if r.linesRendered != 0 {
		b = append(b, '\n', '\r')
	}
	col := 0
	for _, c := range r.chunks {
		if c.Cursor {
			r.hasCursor = true
			r.cursorLine = r.linesRendered
			r.cursorCol = col
			continue
		}
		b = c.Style.appendSGR(b)
		b = append(b, c.Text...)
		b = append(b, sgrReset...)
		col += c.Width
	}
	// Erase whatever a previous, wider frame left on this line.
	b = append(b, eraseLine...)
	r.linesRendered++
	return r.write(b)
}

// Finish closes the frame: the physical cursor moves to the position
// requested by a Cursor element and is shown, or is hidden if no line
// contained one. The sink is flushed if it supports flushing.
func (f *Frame) Finish() error {
	r := f.r
	r.frameOpen = false

	b := r.scratch[:0]
	if r.hasCursor {
		up := r.linesRendered - r.cursorLine - 1
		if up > 0 {
			b = appendCSI(b, up, 'A')
		}
		b = append(b, '\r')
		if r.cursorCol > 0 {
			b = appendCSI(b, r.cursorCol, 'C')
		}
		b = append(b, showCursor...)
	} else {
		b = append(b, hideCursor...)
	}
	if err := r.write(b); err != nil {
		return err
	}
	return r.flush()
}

// Clear erases the rendered block and restores a plain terminal: cursor at
// the start of an empty line, visible.
func (r *Renderer) Clear() error {
	if r.frameOpen {
		panic("lineui: Clear called with a frame still open")
	}
	if err := r.rewind(); err != nil {
		return err
	}
	return r.write(append(r.scratch[:0], eraseBelow+showCursor...))
}

// Leave moves past the rendered block without erasing it, so the content
// stays on screen after the renderer is discarded. Close becomes a no-op
// until the next Begin.
func (r *Renderer) Leave() error {
	if r.frameOpen {
		panic("lineui: Leave called with a frame still open")
	}
	b := r.scratch[:0]
	if r.linesRendered > 0 {
		down := 0
		if r.hasCursor {
			down = r.linesRendered - r.cursorLine - 1
		}
		if down > 0 {
			b = appendCSI(b, down, 'B')
		}
		b = append(b, '\n', '\r')
	}
	r.linesRendered = 0
	r.hasCursor = false
	r.left = true
	return r.write(b)
}

// Close clears the rendered block, unless Leave ran first. It satisfies
// io.Closer so the renderer can guard the terminal with a defer.
func (r *Renderer) Close() error {
	if r.left {
		return nil
	}
	if err := r.Clear(); err != nil {
		return err
	}
	return r.flush()
}

func (r *Renderer) write(b []byte) error {
	r.scratch = b[:0]
	_, err := r.out.Write(b)
	return err
}

func (r *Renderer) flush() error {
	if f, ok := r.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// appendCSI appends ESC [ <n> <final>.
func appendCSI(b []byte, n int, final byte) []byte {
	b = append(b, 0x1b, '[')
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, final)
}
