// Package tape provides the integer input and output channel for the Lingo
// emulator.
package tape

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Tape provides sequential I/O of integers.
// Input is a stream of whitespace separated decimal integers, and each
// value sent is written to Output on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt io.Writer // If set, prompt before each read and retry bad numbers.

	scanner  *bufio.Scanner
	consumed []int
	sent     []int
}

// Rewind forgets all consumed and sent values.
// The input stream itself is not rewound.
func (tc *Tape) Rewind() {
	tc.scanner = nil
	tc.consumed = nil
	tc.sent = nil
}

// Consumed returns the values received since the last rewind.
func (tc *Tape) Consumed() []int {
	return slices.Clone(tc.consumed)
}

// Sent returns the values sent since the last rewind.
func (tc *Tape) Sent() []int {
	return slices.Clone(tc.sent)
}

// Receive reads the next integer from the input stream.
func (tc *Tape) Receive(name string) (value int, err error) {
	if tc.Input == nil {
		err = ErrTapeEmpty
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	for {
		if tc.Prompt != nil {
			fmt.Fprint(tc.Prompt, f("%v? ", name))
		}

		if !tc.scanner.Scan() {
			err = tc.scanner.Err()
			if err == nil {
				err = ErrTapeEmpty
			}
			return
		}

		word := tc.scanner.Text()
		value, err = strconv.Atoi(word)
		if err == nil {
			break
		}

		err = ErrParseNumber(word)
		if tc.Prompt == nil {
			return
		}
		fmt.Fprintln(tc.Prompt, f("Please enter a valid number"))
	}

	tc.consumed = append(tc.consumed, value)

	return
}

// Send writes a value to the output stream.
// Only values successfully written are recorded as sent.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)
	if err != nil {
		return
	}

	tc.sent = append(tc.sent, value)

	return
}
