package challenge

import (
	"errors"

	"github.com/ezrec/lingo/translate"
)

var f = translate.From

var (
	// Catalog errors
	ErrDuplicate   = errors.New(f("challenge duplicated"))
	ErrUnknown     = errors.New(f("challenge unknown"))
	ErrGoalMissing = errors.New(f("goal missing"))

	// Program errors
	ErrProgramEmpty = errors.New(f("please enter at least one command"))
	ErrTooManyLines = errors.New(f("too many lines"))
)

// ErrChallenge indicates which challenge an error belongs to.
type ErrChallenge struct {
	Id  int
	Err error
}

func (err *ErrChallenge) Error() string {
	return f("challenge %d %v", err.Id, err.Err)
}

func (err *ErrChallenge) Unwrap() error {
	return err.Err
}

// ErrExpression is a goal or message expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("'%v' %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
