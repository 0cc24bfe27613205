// Package machine implements the two register Lingo interpreter.
//
// The machine holds two signed integer registers (A and B), an output list,
// and a program of normalized instruction tokens. It is driven one Step at a
// time. Read instructions suspend the machine until ProvideInput supplies a
// value; all pacing, prompting and halting policy belongs to the caller.
package machine
