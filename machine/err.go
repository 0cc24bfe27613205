package machine

import (
	"errors"

	"github.com/ezrec/lingo/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrCommandUnknown = errors.New(f("unknown command"))
	ErrJumpInvalid    = errors.New(f("invalid jump command"))
	ErrJumpTarget     = errors.New(f("jump target before first line"))

	// Input errors
	ErrInputPending     = errors.New(f("input pending"))
	ErrInputNotPending  = errors.New(f("input not requested"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrRegisterMismatch = errors.New(f("register does not match request"))
)

// ErrDecode is a decode failure of a single instruction token.
type ErrDecode struct {
	Token string
	Err   error
}

func (err *ErrDecode) Error() string {
	return f("%v: %v", err.Err, err.Token)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
