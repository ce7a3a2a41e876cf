package doi

import "errors"

// ErrInvalid is the sentinel wrapped by every InvalidError, for errors.Is checks.
var ErrInvalid = errors.New("invalid DOI")

// InvalidError reports text in which no DOI could be found.
// Use errors.As(err, &ierr) to recover the offending input.
type InvalidError struct {
	Text string
}

func (e *InvalidError) Error() string {
	return e.Text + " is not a valid DOI"
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalid
}
