package optfile

import (
	"errors"
	"fmt"
)

// ErrFinished is returned when input is fed to a Parser after Finish.
var ErrFinished = errors.New("optfile: parser already finished")

// LineError attaches the source position and text of a rejected line to the
// underlying error.
type LineError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.File, e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
