// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/ezrec/lingo/machine"
	"github.com/ezrec/lingo/tape"
)

const (
	DEFAULT_MAX_TICKS = 10000 // Steps allowed before a run is abandoned.
)

// Emulator state. Machine + program + tape.
type Emulator struct {
	Verbose          bool     // If set, enables verbose logging.
	*machine.Machine          // Reference to the machine simulation.
	Program          []string // Program source lines.
	InitialA         int      // Register A after reset.
	InitialB         int      // Register B after reset.

	Tape tape.Tape // Input and output channel.

	Delay    time.Duration // Pacing interval between steps in Run.
	MaxTicks int           // Step limit, or 0 for no limit.
	Ticks    int           // Steps since reset.

	Trace func(res machine.Result) // If set, called after every step.

	source    []int // Source line of each program line.
	flushed   int   // Output values sent to the tape.
	flushLine int   // Program line of the last output flush.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine:  machine.NewMachine(),
		MaxTicks: DEFAULT_MAX_TICKS,
		Tape:     tape.Tape{Output: io.Discard},
	}

	return
}

// Reset the emulator, and load the program.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose

	emu.Tape.Rewind()
	emu.Ticks = 0
	emu.flushed = 0
	emu.flushLine = 0
	emu.source = machine.SourceLines(emu.Program)

	emu.Machine.Reset(emu.InitialA, emu.InitialB)
	emu.Machine.Load(emu.Program)
}

// flush sends newly printed values to the tape.
func (emu *Emulator) flush() (err error) {
	output := emu.Machine.Output()
	for _, value := range output[emu.flushed:] {
		err = emu.Tape.Send(value)
		if err != nil {
			return
		}
		emu.flushed++
	}

	return
}

// receive services the pending read from the tape.
func (emu *Emulator) receive(reg machine.Register, line int) (err error) {
	value, err := emu.Tape.Receive(reg.String())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("%03d: %v <- %d", emu.SourceLine(line), reg, value)
	}

	err = emu.Machine.ProvideInput(value, reg)

	return
}

// Tick performs a single step of the emulator, servicing any input request.
// A tick after a failed output or input retries that transfer instead
// of stepping the machine.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	line := emu.Machine.PC() + 1
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: emu.SourceLine(line), Err: err}
		}
	}()

	if emu.flushed < len(emu.Machine.Output()) {
		line = emu.flushLine
		err = emu.flush()
		return
	}

	if emu.Machine.State() == machine.STATE_AWAITING_INPUT {
		err = emu.receive(emu.Machine.Pending(), line)
		return
	}

	if emu.MaxTicks > 0 && emu.Ticks >= emu.MaxTicks && line <= len(emu.source) {
		err = ErrTickLimit
		return
	}

	res := emu.Machine.Step()
	line = res.Line

	if emu.Trace != nil {
		emu.Trace(res)
	}

	if !res.Success {
		err = res.Err
		return
	}

	if res.Done {
		done = true
		return
	}

	emu.Ticks++

	emu.flushLine = res.Line
	err = emu.flush()
	if err != nil {
		return
	}

	if res.NeedsInput != machine.REG_NONE {
		err = emu.receive(res.NeedsInput, res.Line)
	}

	return
}

// Run ticks the emulator until the program finishes, fails, or the
// context is cancelled. Delay is waited between steps.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	var pace <-chan time.Time
	if emu.Delay > 0 {
		ticker := time.NewTicker(emu.Delay)
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}

		if pace == nil {
			err = ctx.Err()
			if err != nil {
				return
			}
			continue
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-pace:
		}
	}
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.SourceLine(emu.Machine.PC() + 1)
}

// SourceLine maps a 1-indexed program line to its line in Program, which
// may hold blank and comment-only lines. Lines past the end of the program
// map past the end of Program.
func (emu *Emulator) SourceLine(line int) int {
	switch {
	case line <= 0:
		return 0
	case line <= len(emu.source):
		return emu.source[line-1]
	default:
		return len(emu.Program) + line - len(emu.source)
	}
}

// Code returns the next instruction to execute, if it decodes.
func (emu *Emulator) Code() (code machine.Code, ok bool) {
	program := emu.Machine.Program()
	pc := emu.Machine.PC()
	if pc >= len(program) {
		return
	}

	code, err := machine.Decode(program[pc])
	ok = err == nil

	return
}
