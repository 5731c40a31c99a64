package align

// line accumulates words up to a maximum width.
//
// contentLen counts word bytes plus one separating space per word after the
// first, so contentLen <= maxWidth holds at all times. A line is cleared
// immediately after being rendered.
type line struct {
	maxWidth   int
	words      []string
	contentLen int
}

func newLine(maxWidth int) *line {
	return &line{maxWidth: maxWidth}
}

// push attempts to append word to the line.
//
// The width the word would add is its own length, plus one for the
// separating space when the line is already non-empty. push reports false
// when the word does not fit, leaving the line unmodified; the caller must
// render the line, clear it, and retry the word on the fresh line.
func (l *line) push(word string) bool {
	added := len(word)
	if len(l.words) > 0 {
		added++
	}
	if l.contentLen+added > l.maxWidth {
		return false
	}
	l.words = append(l.words, word)
	l.contentLen += added
	return true
}

// clear resets the line to empty, keeping the allocated word slice.
func (l *line) clear() {
	l.words = l.words[:0]
	l.contentLen = 0
}

func (l *line) empty() bool {
	return len(l.words) == 0
}
