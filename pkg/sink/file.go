package sink

import (
	"os"

	"github.com/robenli/textalign/pkg/errors"
)

// File writes fragments to a file it owns.
//
// The file is created (truncated if it exists) by [NewFile] and must be
// released with Close once the run that borrowed the sink completes.
type File struct {
	f *os.File
}

// NewFile creates a file sink writing to path.
// The file is created with the default permissions, replacing any
// existing content.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return &File{f: f}, nil
}

// Write appends the fragment to the underlying file.
func (s *File) Write(fragment string) error {
	if _, err := s.f.WriteString(fragment); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write to %s", s.f.Name())
	}
	return nil
}

// Name returns the path of the underlying file.
func (s *File) Name() string {
	return s.f.Name()
}

// Close releases the underlying file.
func (s *File) Close() error {
	return s.f.Close()
}
