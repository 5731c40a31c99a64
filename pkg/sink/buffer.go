package sink

import "strings"

// Buffer accumulates fragments in memory.
//
// It never fails a write. It backs tests and the interactive preview, where
// the rendered output is inspected rather than persisted.
type Buffer struct {
	b strings.Builder
}

// NewBuffer creates an empty in-memory sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends the fragment to the buffer.
func (s *Buffer) Write(fragment string) error {
	s.b.WriteString(fragment)
	return nil
}

// String returns everything written so far.
func (s *Buffer) String() string {
	return s.b.String()
}

// Reset discards all accumulated fragments.
func (s *Buffer) Reset() {
	s.b.Reset()
}
