package align

import (
	"strings"

	"github.com/robenli/textalign/pkg/sink"
)

// renderLine writes one completed line through s, formatted per mode.
//
// Rendering never mutates the line; it only reads the word sequence and the
// accumulated content length. Output is emitted fragment by fragment (word,
// then separator run), never as a single pre-assembled string. width is the
// configured maximum line width the renderer pads toward.
func renderLine(l *line, s sink.Sink, width int, mode Mode) error {
	switch mode {
	case Right:
		return renderRight(l, s, width)
	case Justify:
		return renderJustify(l, s, width)
	default:
		return renderLeft(l, s)
	}
}

// renderLeft writes the words joined by single spaces with no padding.
func renderLeft(l *line, s sink.Sink) error {
	for i, w := range l.words {
		if i > 0 {
			if err := s.Write(" "); err != nil {
				return err
			}
		}
		if err := s.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// renderRight pads the line with leading spaces out to width, then writes
// the words joined by single spaces.
func renderRight(l *line, s sink.Sink, width int) error {
	if err := writeSpaces(s, width-l.contentLen); err != nil {
		return err
	}
	return renderLeft(l, s)
}

// renderJustify distributes the free space across the inter-word gaps so the
// emitted line spans exactly width units.
//
// Each gap receives one mandatory space plus free/gaps extra spaces; the
// remainder goes to the leftmost gaps, one extra space each. A one-word line
// is treated as having one gap, so it degenerates to left alignment with no
// padding.
func renderJustify(l *line, s sink.Sink, width int) error {
	free := width - l.contentLen
	gaps := len(l.words) - 1
	if gaps < 1 {
		gaps = 1
	}
	big := free / gaps
	rem := free % gaps

	for i, w := range l.words {
		if i > 0 {
			extra := big
			if i <= rem {
				extra++
			}
			if err := writeSpaces(s, 1+extra); err != nil {
				return err
			}
		}
		if err := s.Write(w); err != nil {
			return err
		}
	}
	return nil
}

func writeSpaces(s sink.Sink, n int) error {
	if n <= 0 {
		return nil
	}
	return s.Write(strings.Repeat(" ", n))
}
