package align

import (
	"strings"

	"github.com/robenli/textalign/pkg/errors"
)

// Mode selects the rendering algorithm applied to each completed line.
// It is fixed for the duration of a run.
type Mode int

// The closed set of alignment modes.
const (
	Left Mode = iota
	Right
	Justify
)

// Alignment tokens accepted by ParseMode.
const (
	tokenLeft    = "left"
	tokenRight   = "right"
	tokenJustify = "justify"
)

// String returns the lowercase token for the mode.
func (m Mode) String() string {
	switch m {
	case Right:
		return tokenRight
	case Justify:
		return tokenJustify
	default:
		return tokenLeft
	}
}

// ParseMode parses a case-insensitive alignment token into a Mode.
// It returns an INVALID_ALIGN error for unrecognized tokens.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case tokenLeft:
		return Left, nil
	case tokenRight:
		return Right, nil
	case tokenJustify:
		return Justify, nil
	default:
		return Left, errors.New(errors.ErrCodeInvalidAlign,
			"invalid alignment: %s (must be 'left', 'right', or 'justify')", s)
	}
}

// Modes returns all alignment modes in display order.
// The preview UI cycles through this slice.
func Modes() []Mode {
	return []Mode{Left, Right, Justify}
}
