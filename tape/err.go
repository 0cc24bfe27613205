package tape

import (
	"errors"

	"github.com/ezrec/lingo/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrTapeEmpty  = errors.New(f("tape empty"))
	ErrTapeOutput = errors.New(f("tape has no output"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
