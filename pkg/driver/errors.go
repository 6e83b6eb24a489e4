package driver

import (
	"errors"
	"fmt"
)

var ErrInvalidOutput = errors.New("algorithm returned an invalid sequence")

// TrialError identifies the trial that aborted a benchmark run.
type TrialError struct {
	Algorithm string
	Size      int
	Trial     int
	Err       error
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("%s failed on input size %d (trial %d): %v", e.Algorithm, e.Size, e.Trial, e.Err)
}

func (e *TrialError) Unwrap() error {
	return e.Err
}
