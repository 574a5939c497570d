package lineui

// Side selects an end of a line, for truncation and padding.
type Side int

const (
	Left Side = iota
	Right
)

// FixedWidth forces its content to occupy an exact number of columns:
// wider content is truncated, narrower content is padded with blanks.
// Truncation cuts only at grapheme cluster boundaries.
type FixedWidth struct {
	width    int
	truncate Side
	pad      Side
	content  Element
	marker   Element // shown in full when truncation occurs; nil for none
}

// NewFixedWidth returns a FixedWidth of the given width, truncating and
// padding on the right.
func NewFixedWidth(width int, content Element) *FixedWidth {
	return &FixedWidth{width: width, truncate: Right, pad: Right, content: content}
}

// Truncate sets which end is cut when the content is too wide.
func (f *FixedWidth) Truncate(side Side) *FixedWidth {
	f.truncate = side
	return f
}

// Pad sets which end receives blank filler when the content is too narrow.
func (f *FixedWidth) Pad(side Side) *FixedWidth {
	f.pad = side
	return f
}

// Marker sets an element displayed in full on the cut end when truncation
// occurs, an ellipsis for example. Its width is reserved before content is
// measured and must not exceed the FixedWidth's own width.
func (f *FixedWidth) Marker(el Element) *FixedWidth {
	f.marker = el
	return f
}

func (f *FixedWidth) Width() int {
	return f.width
}

// AppendChunks renders the content clipped or padded to the target width.
//
// A cursor marker that falls in the truncated-away region is dropped: its
// position no longer corresponds to anything visible. Zero-width chunks
// within the surviving region are kept.
func (f *FixedWidth) AppendChunks(dst []Chunk) []Chunk {
	contentWidth := f.content.Width()
	if contentWidth <= f.width {
		// Entire content fits; only padding applies.
		return f.padChunks(dst, Gap(f.width-contentWidth), func(dst []Chunk) []Chunk {
			return f.content.AppendChunks(dst)
		})
	}

	markerWidth := 0
	if f.marker != nil {
		markerWidth = f.marker.Width()
	}
	kept, used := clipChunks(f.content.AppendChunks(nil), f.width-markerWidth, f.truncate)
	used += markerWidth

	return f.padChunks(dst, Gap(f.width-used), func(dst []Chunk) []Chunk {
		if f.truncate == Left && f.marker != nil {
			dst = f.marker.AppendChunks(dst)
		}
		dst = append(dst, kept...)
		if f.truncate == Right && f.marker != nil {
			dst = f.marker.AppendChunks(dst)
		}
		return dst
	})
}

// padChunks appends the body with the gap on the configured side.
func (f *FixedWidth) padChunks(dst []Chunk, gap Gap, body func([]Chunk) []Chunk) []Chunk {
	if f.pad == Left {
		return body(gap.AppendChunks(dst))
	}
	return gap.AppendChunks(body(dst))
}

// clipChunks keeps the longest run of chunks from the given side whose
// widths fit within budget. The chunk straddling the boundary is cut at a
// cluster boundary; everything beyond it is dropped. Returns the surviving
// chunks in content order and their total width.
func clipChunks(content []Chunk, budget int, side Side) ([]Chunk, int) {
	var kept []Chunk
	used := 0
	for i := range content {
		c := content[i]
		if side == Left {
			c = content[len(content)-1-i]
		}
		avail := budget - used
		if c.Width > avail {
			if avail > 0 {
				c = cutChunk(c, avail, side)
				kept = append(kept, c)
				used += c.Width
			}
			break
		}
		kept = append(kept, c)
		used += c.Width
	}
	if side == Left {
		reverseChunks(kept)
	}
	return kept, used
}

// cutChunk returns the widest piece of c, taken from the kept side, that
// fits within budget columns.
func cutChunk(c Chunk, budget int, side Side) Chunk {
	if side == Right {
		n, w := fitPrefix(c.Text, budget)
		return Chunk{Text: c.Text[:n], Width: w, Style: c.Style}
	}
	start, w := fitSuffix(c.Text, budget)
	return Chunk{Text: c.Text[start:], Width: w, Style: c.Style}
}

func reverseChunks(chunks []Chunk) {
	for i, j := 0, len(chunks)-1; i < j; i, j = i+1, j-1 {
		chunks[i], chunks[j] = chunks[j], chunks[i]
	}
}
