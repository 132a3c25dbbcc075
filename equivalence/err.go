package equivalence

import (
	"errors"

	"github.com/ezrec/turing/tape"
	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrAlphabetEmpty = errors.New(f("input alphabet empty"))
)

// ErrMismatch reports an input on which two acceptors disagree.
type ErrMismatch struct {
	Trial int
	Input []tape.Symbol
	A     bool
	B     bool
}

func (err *ErrMismatch) Error() string {
	return f("trial %d: results differ (%v != %v) on %d symbol input", err.Trial, err.A, err.B, len(err.Input))
}

// ErrTrial wraps an acceptor failure with its trial number.
type ErrTrial struct {
	Trial int
	Err   error
}

func (err *ErrTrial) Error() string {
	return f("trial %d: %v", err.Trial, err.Err)
}

func (err *ErrTrial) Unwrap() error {
	return err.Err
}
