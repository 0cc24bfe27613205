// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package challenge provides the puzzle catalog for the Lingo machine.
//
// Each challenge fixes the initial register values and a line limit, and
// judges a finished run with a Starlark goal expression. Goal, pass and fail
// expressions are evaluated with these names predeclared:
//
//	A, B     final register values
//	output   list of printed values
//	inputs   list of values consumed by reads
package challenge

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lingo/machine"
)

// Challenge is a single puzzle.
type Challenge struct {
	Id          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Explanation string   `yaml:"explanation,omitempty"`
	InitialA    int      `yaml:"initial_a"`
	InitialB    int      `yaml:"initial_b"`
	MaxLines    int      `yaml:"max_lines,omitempty"` // Zero for no limit.
	Solution    []string `yaml:"solution,omitempty"`  // Reference solution.
	Inputs      []int    `yaml:"inputs,omitempty"`    // Sample inputs for the solution.
	Goal        string   `yaml:"goal"`                // Boolean expression.
	Pass        string   `yaml:"pass,omitempty"`      // String expression on success.
	Fail        string   `yaml:"fail,omitempty"`      // String expression on failure.
}

// Verdict is the judgement of a finished run.
type Verdict struct {
	Passed  bool
	Message string
}

// Validate checks a program against the challenge line limit.
func (ch *Challenge) Validate(lines []string) (err error) {
	program := machine.Normalize(lines)

	switch {
	case len(program) == 0:
		err = ErrProgramEmpty
	case ch.MaxLines > 0 && len(program) > ch.MaxLines:
		err = &ErrChallenge{Id: ch.Id, Err: ErrTooManyLines}
	}

	return
}

// compile checks the syntax of all expressions.
func (ch *Challenge) compile() (err error) {
	if len(ch.Goal) == 0 {
		err = ErrGoalMissing
		return
	}

	opts := syntax.FileOptions{}
	for _, expr := range []string{ch.Goal, ch.Pass, ch.Fail} {
		if len(expr) == 0 {
			continue
		}
		_, err = opts.ParseExpr(ch.Title, expr, 0)
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
			return
		}
	}

	return
}

// Check judges the final machine state of a run.
func (ch *Challenge) Check(snap machine.Snapshot, inputs []int) (verdict Verdict, err error) {
	pred := starlark.StringDict{
		"A":      starlark.MakeInt(snap.A),
		"B":      starlark.MakeInt(snap.B),
		"output": intList(snap.Output),
		"inputs": intList(inputs),
	}

	goal, err := eval(ch.Goal, pred)
	if err != nil {
		return
	}

	passed, ok := goal.(starlark.Bool)
	if !ok {
		err = &ErrExpression{Expr: ch.Goal, Err: ErrGoalMissing}
		return
	}

	verdict.Passed = bool(passed)

	expr := ch.Fail
	verdict.Message = f("Not quite.")
	if verdict.Passed {
		expr = ch.Pass
		verdict.Message = f("Correct!")
	}

	if len(expr) == 0 {
		return
	}

	message, err := eval(expr, pred)
	if err != nil {
		return
	}

	text, ok := starlark.AsString(message)
	if !ok {
		text = message.String()
	}
	verdict.Message = text

	return
}

// intList converts values to a Starlark list.
func intList(values []int) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt(value)
	}

	return starlark.NewList(elems)
}

// eval evaluates an expression against the predeclared names.
func eval(expr string, pred starlark.StringDict) (value starlark.Value, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "challenge"}
	opts := syntax.FileOptions{}
	prog := "rc=(" + expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrGoalMissing
		return
	}

	return
}
