package align

import (
	"strings"

	"github.com/robenli/textalign/pkg/errors"
	"github.com/robenli/textalign/pkg/sink"
)

// lineTerminator separates rendered output lines and acts as a hard break
// in the input.
const lineTerminator = "\n"

// Run wraps content into lines at most width units wide and writes the
// rendered result through s, one fragment at a time.
//
// The whole input is tokenized up front: line terminators split the content
// into independently wrapped input lines, and words within a line are split
// on literal space characters. Every word is validated against width before
// anything is written, so a word that can never fit aborts the run with a
// WORD_TOO_LONG error and no output. Sink failures are propagated verbatim.
//
// Empty input produces no output. Each rendered line, including the last,
// is followed by a terminator.
func Run(content string, s sink.Sink, width int, mode Mode) error {
	if width <= 0 {
		return errors.New(errors.ErrCodeInvalidWidth, "width must be positive, got %d", width)
	}

	paragraphs := tokenize(content)

	for _, words := range paragraphs {
		for _, w := range words {
			if len(w) > width {
				return errors.New(errors.ErrCodeWordTooLong,
					"word %q is %d units long, exceeding the line width %d", w, len(w), width)
			}
		}
	}

	for _, words := range paragraphs {
		if err := wrapWords(words, s, width, mode); err != nil {
			return err
		}
	}
	return nil
}

// tokenize splits content into input lines on terminators, and each input
// line into words on literal space characters, skipping empty tokens.
//
// A single trailing terminator does not introduce an empty input line;
// interior terminators do, and those are preserved as blank output lines by
// the driver.
func tokenize(content string) [][]string {
	if content == "" {
		return nil
	}

	segments := strings.Split(content, lineTerminator)
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	paragraphs := make([][]string, len(segments))
	for i, seg := range segments {
		var words []string
		for _, w := range strings.Split(seg, " ") {
			if w != "" {
				words = append(words, w)
			}
		}
		paragraphs[i] = words
	}
	return paragraphs
}

// wrapWords greedily packs words into lines and renders each completed line.
//
// When a word is rejected, the current line is rendered and cleared, a
// terminator is emitted, and the word is retried on the fresh line. The
// retry cannot fail: every word passed the width check at entry. Whatever
// remains after the last word is rendered as the final line through the
// same renderer.
func wrapWords(words []string, s sink.Sink, width int, mode Mode) error {
	if len(words) == 0 {
		// A blank input line stays blank in the output.
		return s.Write(lineTerminator)
	}

	l := newLine(width)
	for _, w := range words {
		if l.push(w) {
			continue
		}
		if err := renderLine(l, s, width, mode); err != nil {
			return err
		}
		if err := s.Write(lineTerminator); err != nil {
			return err
		}
		l.clear()
		l.push(w)
	}

	if !l.empty() {
		if err := renderLine(l, s, width, mode); err != nil {
			return err
		}
		if err := s.Write(lineTerminator); err != nil {
			return err
		}
	}
	return nil
}
