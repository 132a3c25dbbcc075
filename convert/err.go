package convert

import (
	"errors"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrReservedName = errors.New(f("name is reserved by the converter"))
	ErrBlankName    = errors.New(f("name is the blank symbol"))
)

// ErrStateCollision indicates a source state that cannot be encoded on
// tape 2.
type ErrStateCollision struct {
	State  machine.State
	Reason error
}

func (err ErrStateCollision) Error() string {
	return f("state '%v' collides: %v", string(err.State), err.Reason)
}

func (err ErrStateCollision) Unwrap() error {
	return err.Reason
}
