package machine

import (
	"github.com/ezrec/turing/translate"
)

var f = translate.From

// ErrRuntime indicates the step at which a run was aborted.
type ErrRuntime struct {
	Step  int   // Zero-based index of the failing step.
	State State // State the failing transition moved to.
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("step %d state %v: %v", err.Step, string(err.State), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrTransition indicates a malformed transition table entry.
type ErrTransition struct {
	Key string // Rendered lookup key of the entry.
	Err error
}

func (err *ErrTransition) Error() string {
	return f("transition %v: %v", err.Key, err.Err)
}

func (err *ErrTransition) Unwrap() error {
	return err.Err
}
