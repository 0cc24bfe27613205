// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// State is the execution state of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE           = State(0) // idle
	STATE_RUNNING        = State(1) // running
	STATE_AWAITING_INPUT = State(2) // awaiting input
	STATE_HALTED         = State(3) // halted
)

// Result describes the outcome of a single Step.
type Result struct {
	Done       bool     // Program has finished; nothing was executed.
	Success    bool     // Instruction decoded and executed.
	Message    string   // Human readable description of the effect.
	Line       int      // 1-indexed line of the decoded instruction, 0 when done.
	NeedsInput Register // Register awaiting input, or REG_NONE.
	Code       Code     // Decoded instruction, valid when Success.
	Err        error    // Reason for failure, nil when Success.
}

// Snapshot is a copy of the observable machine state.
type Snapshot struct {
	A      int
	B      int
	Output []int
	PC     int
	State  State
}

// Machine is the simulation context for the interpreter.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	a       int
	b       int
	output  []int
	program []string
	pc      int
	state   State
	pending Register
	fault   error
}

// NewMachine creates a new, idle machine.
func NewMachine() (m *Machine) {
	m = &Machine{}
	return
}

// Normalize trims and uppercases each line, discarding empty results.
func Normalize(lines []string) (program []string) {
	program = make([]string, 0, len(lines))
	for _, line := range lines {
		token := strings.ToUpper(strings.TrimSpace(line))
		if len(token) == 0 {
			continue
		}
		program = append(program, token)
	}

	return
}

// SourceLines returns, for each instruction Normalize keeps, its 1-indexed
// line in lines.
func SourceLines(lines []string) (source []int) {
	source = make([]int, 0, len(lines))
	for n, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		source = append(source, n+1)
	}

	return
}

// Reset the machine state.
// - Sets the registers to their initial values.
// - Clears output, program counter, and any pending input or fault.
// - Leaves the loaded program in place.
func (m *Machine) Reset(a, b int) {
	if m.Verbose {
		log.Printf("machine: reset A=%d B=%d", a, b)
	}

	m.a = a
	m.b = b
	m.output = nil
	m.pc = 0
	m.state = STATE_IDLE
	m.pending = REG_NONE
	m.fault = nil
}

// Load a program. Instructions are not validated until they are stepped.
func (m *Machine) Load(lines []string) {
	m.program = Normalize(lines)
	m.pc = 0
	m.state = STATE_RUNNING
	m.pending = REG_NONE
	m.fault = nil

	if m.Verbose {
		log.Printf("machine: loaded %d instructions", len(m.program))
	}
}

// Step decodes and executes the instruction at the program counter.
func (m *Machine) Step() (res Result) {
	switch m.state {
	case STATE_AWAITING_INPUT:
		res = Result{
			Message:    f("Waiting for input to %v", m.pending),
			Line:       m.pc + 1,
			NeedsInput: m.pending,
			Err:        ErrInputPending,
		}
		return
	case STATE_IDLE:
		m.state = STATE_RUNNING
	}

	if m.pc >= len(m.program) {
		m.state = STATE_HALTED
		res = Result{Done: true, Success: true, Message: f("Program finished")}
		return
	}

	line := m.pc + 1

	code, err := Decode(m.program[m.pc])
	if err != nil {
		if m.Verbose {
			log.Printf("%03d: %v", line, err)
		}
		m.fault = err
		m.state = STATE_HALTED
		res = Result{Message: err.Error(), Line: line, Err: err}
		return
	}

	if m.Verbose {
		log.Printf("%03d: %v", line, code)
	}

	eff := opExec[code.Op](m, code)

	res = Result{
		Success:    true,
		Message:    eff.message,
		Line:       line,
		NeedsInput: eff.need,
		Code:       code,
	}

	switch {
	case eff.need != REG_NONE:
		// Don't advance until the input arrives.
		m.pending = eff.need
		m.state = STATE_AWAITING_INPUT
	case eff.jump > 0:
		m.pc = min(eff.jump-1, len(m.program))
	default:
		m.pc++
	}

	return
}

// ProvideInput completes a pending read, storing value into reg.
func (m *Machine) ProvideInput(value int, reg Register) (err error) {
	if m.state != STATE_AWAITING_INPUT {
		err = ErrInputNotPending
		return
	}

	r := m.reg(reg)
	if r == nil {
		err = ErrRegisterInvalid
		return
	}

	if reg != m.pending {
		err = ErrRegisterMismatch
		return
	}

	if m.Verbose {
		log.Printf("machine: input %v=%d", reg, value)
	}

	*r = value
	m.pending = REG_NONE
	m.state = STATE_RUNNING
	m.pc++

	return
}

// reg returns the storage of a register, or nil if invalid.
func (m *Machine) reg(reg Register) *int {
	switch reg {
	case REG_A:
		return &m.a
	case REG_B:
		return &m.b
	}

	return nil
}

// A returns the value of register A.
func (m *Machine) A() int {
	return m.a
}

// B returns the value of register B.
func (m *Machine) B() int {
	return m.b
}

// PC returns the 0-indexed program counter.
func (m *Machine) PC() int {
	return m.pc
}

// State returns the execution state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns the register awaiting input, or REG_NONE.
func (m *Machine) Pending() Register {
	return m.pending
}

// Err returns the decode failure that halted the machine, if any.
func (m *Machine) Err() error {
	return m.fault
}

// Output returns a copy of the printed values.
func (m *Machine) Output() []int {
	return slices.Clone(m.output)
}

// Program returns a copy of the normalized program.
func (m *Machine) Program() []string {
	return slices.Clone(m.program)
}

// Snapshot returns a copy of the observable state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		A:      m.a,
		B:      m.b,
		Output: m.Output(),
		PC:     m.pc,
		State:  m.state,
	}
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 6s: %v\n", "state", m.state)
	text += fmt.Sprintf("% 6s: %d/%d\n", "pc", m.pc, len(m.program))
	text += fmt.Sprintf("% 6s: %d\n", "A", m.a)
	text += fmt.Sprintf("% 6s: %d\n", "B", m.b)
	text += fmt.Sprintf("% 6s: %v\n", "output", m.output)

	return
}
