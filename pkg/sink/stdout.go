package sink

import (
	"io"
	"os"

	"github.com/robenli/textalign/pkg/errors"
)

// Stdout writes fragments to standard output.
type Stdout struct{}

// NewStdout creates a standard-output sink.
func NewStdout() *Stdout {
	return &Stdout{}
}

// Write writes the fragment to os.Stdout.
func (s *Stdout) Write(fragment string) error {
	if _, err := io.WriteString(os.Stdout, fragment); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write to stdout")
	}
	return nil
}
