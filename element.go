package lineui

// Chunk is one styled, contiguous span of output text, or a zero-width
// cursor marker. It is the atomic unit the renderer writes.
//
// Invariants: Width always equals Width(Text), precomputed at construction.
// If Cursor is true then Text is empty, Width is 0 and Style is the zero
// style; the marker carries cursor placement, not content.
type Chunk struct {
	Text   string
	Width  int
	Style  Style
	Cursor bool
}

// NewChunk returns a text chunk with its width measured.
func NewChunk(text string, style Style) Chunk {
	return Chunk{Text: text, Width: Width(text), Style: style}
}

// Element is a renderable value: it reserves a number of columns and
// produces the chunks that fill them. The widths of the appended chunks
// (cursor markers aside) always sum to Width.
//
// AppendChunks appends to dst and returns the extended slice, so callers
// can reuse one backing array across frames. Pass nil for a fresh slice.
type Element interface {
	Width() int
	AppendChunks(dst []Chunk) []Chunk
}

// Text is an element rendering a plain string. The display width is
// measured once, at construction.
type Text struct {
	value string
	width int
}

// NewText returns a Text for the given string.
func NewText(s string) Text {
	return Text{value: s, width: Width(s)}
}

func (t Text) Width() int {
	return t.width
}

func (t Text) AppendChunks(dst []Chunk) []Chunk {
	return append(dst, Chunk{Text: t.value, Width: t.width})
}

// Gap is an element of n blank columns.
type Gap int

// gapRun backs every Gap chunk; gaps wider than it render as several chunks.
const gapRun = "                " // 16 spaces

func (g Gap) Width() int {
	return int(g)
}

func (g Gap) AppendChunks(dst []Chunk) []Chunk {
	for n := int(g); n > 0; {
		take := min(n, len(gapRun))
		dst = append(dst, Chunk{Text: gapRun[:take], Width: take})
		n -= take
	}
	return dst
}

// Cursor is a zero-width element marking where the terminal cursor should
// be placed once the frame is finished.
type Cursor struct{}

func (Cursor) Width() int {
	return 0
}

func (Cursor) AppendChunks(dst []Chunk) []Chunk {
	return append(dst, Chunk{Cursor: true})
}

// Styled is an element that overlays a style on its content. Attributes
// already specified by inner chunks win; the overlay fills the rest.
type Styled struct {
	style Style
	inner Element
}

// NewStyled wraps inner with an ambient style.
func NewStyled(style Style, inner Element) Styled {
	return Styled{style: style, inner: inner}
}

func (s Styled) Width() int {
	return s.inner.Width()
}

func (s Styled) AppendChunks(dst []Chunk) []Chunk {
	start := len(dst)
	dst = s.inner.AppendChunks(dst)
	for i := start; i < len(dst); i++ {
		if dst[i].Cursor {
			continue // cursor markers stay styleless
		}
		dst[i].Style = dst[i].Style.Or(s.style)
	}
	return dst
}

// Group is an ordered sequence of elements rendering as their
// concatenation. A nil member contributes nothing, which is how optional
// parts of a line are expressed; see If.
type Group []Element

// Line builds a Group from its arguments.
func Line(els ...Element) Group {
	return Group(els)
}

// If returns el when cond is true and nil otherwise, for optional members
// of a Group.
func If(cond bool, el Element) Element {
	if cond {
		return el
	}
	return nil
}

func (g Group) Width() int {
	w := 0
	for _, el := range g {
		if el != nil {
			w += el.Width()
		}
	}
	return w
}

func (g Group) AppendChunks(dst []Chunk) []Chunk {
	for _, el := range g {
		if el != nil {
			dst = el.AppendChunks(dst)
		}
	}
	return dst
}

// Boxed is an element rendered eagerly once, with the result cached.
// Boxing lets one function return structurally different elements behind a
// single concrete type, and makes repeated renders of an expensive tree
// O(1) retrieval.
type Boxed struct {
	width  int
	chunks []Chunk
}

// Box renders el once and returns the cached result as an element.
func Box(el Element) *Boxed {
	return &Boxed{width: el.Width(), chunks: el.AppendChunks(nil)}
}

func (b *Boxed) Width() int {
	return b.width
}

func (b *Boxed) AppendChunks(dst []Chunk) []Chunk {
	return append(dst, b.chunks...)
}
