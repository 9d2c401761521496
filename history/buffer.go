package history

import "strings"

// Separator joins the labels of one entry.
const Separator = "+"

// Buffer holds history entries, oldest first.
//
// Its entry bound is length/2 + 1, where length is the character budget of
// the rendered line. The bound only approximates the budget; Render does the
// exact cut.
type Buffer struct {
	length  int
	entries []string
}

// NewBuffer returns an empty buffer for a character budget of length.
func NewBuffer(length int) *Buffer {
	return &Buffer{length: length}
}

// Max returns the entry bound.
func (b *Buffer) Max() int {
	return b.length/2 + 1
}

// Append joins labels into one entry and pushes it, then trims. An empty
// labels slice only trims.
func (b *Buffer) Append(labels []string) {
	if len(labels) > 0 {
		b.entries = append(b.entries, strings.Join(labels, Separator))
	}
	b.Trim()
}

// Trim drops the oldest entries until the bound holds.
func (b *Buffer) Trim() {
	n := len(b.entries) - b.Max()
	if n <= 0 {
		return
	}
	if n >= len(b.entries) {
		b.entries = b.entries[:0]
		return
	}
	copy(b.entries, b.entries[n:])
	clear(b.entries[len(b.entries)-n:])
	b.entries = b.entries[:len(b.entries)-n]
}

func (b *Buffer) Len() int          { return len(b.entries) }
func (b *Buffer) At(i int) string   { return b.entries[i] }
func (b *Buffer) Length() int       { return b.length }
func (b *Buffer) Entries() []string { return b.entries }

// Newest returns the most recent entry, or "" when empty.
func (b *Buffer) Newest() string {
	if len(b.entries) == 0 {
		return ""
	}
	return b.entries[len(b.entries)-1]
}

// Reset drops every entry.
func (b *Buffer) Reset() {
	clear(b.entries)
	b.entries = b.entries[:0]
}
