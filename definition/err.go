package definition

import (
	"errors"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrFieldMissing        = errors.New(f("missing"))
	ErrFieldType           = errors.New(f("wrong type"))
	ErrTransitionArity     = errors.New(f("transition arity"))
	ErrTransitionDuplicate = errors.New(f("transition duplicated"))
	ErrDefinitionMixed     = errors.New(f("single and dual tape transitions mixed"))
)

// ErrFormatUnknown is returned for a definition file of unknown type.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("%v: unknown definition format", string(err))
}

// ErrField locates an error within a definition.
type ErrField struct {
	Field string
	Err   error
}

func (err *ErrField) Error() string {
	return f("%v: %v", err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}
