package tape

import (
	"github.com/ezrec/turing/translate"
)

var f = translate.From

// ErrUndefinedSymbol is returned when writing a symbol outside the tape
// alphabet.
type ErrUndefinedSymbol Symbol

func (err ErrUndefinedSymbol) Error() string {
	return f("undefined symbol '%v'", string(err))
}

func (err ErrUndefinedSymbol) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedSymbol)
	return
}

// ErrInvalidMotion is returned when a head movement is not Left, Stay or
// Right.
type ErrInvalidMotion Motion

func (err ErrInvalidMotion) Error() string {
	return f("invalid motion %d", int(err))
}

func (err ErrInvalidMotion) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidMotion)
	return
}

// ErrMotionName is returned when a motion name cannot be parsed.
type ErrMotionName string

func (err ErrMotionName) Error() string {
	return f("'%v' is not a motion", string(err))
}
