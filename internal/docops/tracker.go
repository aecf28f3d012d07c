// ABOUTME: Offset tracker, the single source of truth for buffer length.
// ABOUTME: Advances by UTF-16 length after every text-producing step.

package docops

// DocumentStart is the first writable offset; position 0 is reserved by the
// backend's document start marker.
const DocumentStart = 1

// OffsetTracker accumulates the current end of the emitted text buffer. One
// tracker is created per document build, threaded through every step, and
// never recomputed from scratch. It never shrinks.
type OffsetTracker struct {
	offset int
}

func NewOffsetTracker() *OffsetTracker {
	return &OffsetTracker{offset: DocumentStart}
}

// Current returns the offset at which the next insert lands.
func (t *OffsetTracker) Current() int {
	return t.offset
}

// Advance consumes the text just inserted and returns the new offset.
func (t *OffsetTracker) Advance(text string) int {
	t.offset += TextLength(text)
	return t.offset
}

// TextLength measures s in UTF-16 code units, the unit the backend uses for
// positions. Counting bytes or runes here would drift every offset after the
// first non-BMP character in the document.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
