package emulator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lingo/machine"
	"github.com/ezrec/lingo/tape"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(DEFAULT_MAX_TICKS, emu.MaxTicks)
	assert.Equal(machine.STATE_IDLE, emu.State())
}

func doRun(emu *Emulator, program []string, input string, t *testing.T) (output string) {
	assert := assert.New(t)

	emu.Program = program
	emu.Reset()

	emu.Tape.Input = strings.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	var done bool
	var err error
	for !done {
		line := emu.LineNo()
		done, err = emu.Tick()
		assert.NoError(err, "line %d", line)
		if err != nil {
			t.Log(emu.Machine.String())
			t.Fatal(err)
		}
	}

	assert.Equal(machine.STATE_HALTED, emu.State())

	output = tape_output.String()
	return
}

func TestEmulatorTutorial(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.InitialB = 5

	output := doRun(emu, []string{"ba", "ma", "ab"}, "", t)

	assert.Equal("", output)
	assert.Equal(15, emu.A())
	assert.Equal(15, emu.B())
	assert.Equal(3, emu.Ticks)
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	output := doRun(emu, []string{"RB", "PB", "DB", "FBJ2"}, "3\n", t)

	assert.Equal("3\n2\n1\n", output)
	assert.Equal(0, emu.B())
	assert.Equal([]int{3}, emu.Tape.Consumed())
	assert.Equal([]int{3, 2, 1}, emu.Tape.Sent())
}

func TestEmulatorSumToZero(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doRun(emu, []string{"RB", "SAB", "FAJ1"}, "1 3 -2 -2 99", t)

	assert.Equal(0, emu.A())
	assert.Equal([]int{1, 3, -2, -2}, emu.Tape.Consumed())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.InitialA = 2

	doRun(emu, []string{"IA", "PA"}, "", t)
	assert.Equal(3, emu.A())

	emu.Reset()
	assert.Equal(2, emu.A())
	assert.Equal(0, emu.Ticks)
	assert.Empty(emu.Output())
	assert.Empty(emu.Tape.Sent())
	assert.Equal(1, emu.LineNo())

	code, ok := emu.Code()
	assert.True(ok)
	assert.Equal(machine.Code{Op: machine.OP_IA}, code)
}

func TestEmulatorDecodeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"IA", "ZZ", "IA"}
	emu.Reset()

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	_, ok := emu.Code()
	assert.False(ok)

	done, err = emu.Tick()
	assert.False(done)
	assert.ErrorIs(err, machine.ErrCommandUnknown)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(2, runtime.LineNo)
	assert.Equal(1, emu.A())
}

func TestEmulatorTapeEmpty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"RA"}
	emu.Reset()
	emu.Tape.Input = strings.NewReader("")

	_, err := emu.Tick()
	assert.ErrorIs(err, tape.ErrTapeEmpty)
	assert.Equal(machine.STATE_AWAITING_INPUT, emu.State())
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.MaxTicks = 10
	emu.Program = []string{"IA", "FAJ1"}
	emu.Reset()

	err := emu.Run(context.Background())
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(10, emu.Ticks)
	assert.Equal(5, emu.A())

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.LineNo)
}

func TestEmulatorTickLimitExact(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.MaxTicks = 3
	emu.InitialB = 5
	emu.Program = []string{"BA", "MA", "AB"}
	emu.Reset()

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(3, emu.Ticks)
	assert.Equal(15, emu.B())
}

func TestEmulatorInputRetry(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"RA", "PA"}
	emu.Reset()
	emu.Tape.Input = strings.NewReader("x 5")

	done, err := emu.Tick()
	assert.False(done)
	assert.ErrorIs(err, tape.ErrParseNumber("x"))
	assert.Equal(machine.STATE_AWAITING_INPUT, emu.State())

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.LineNo)

	for !done {
		done, err = emu.Tick()
		if !assert.NoError(err) {
			return
		}
	}

	assert.Equal(5, emu.A())
	assert.Equal([]int{5}, emu.Output())
	assert.Equal([]int{5}, emu.Tape.Consumed())
	assert.Equal([]int{5}, emu.Tape.Sent())
	assert.Equal(2, emu.Ticks)
}

func TestEmulatorDefaultOutput(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"PA", "IA"}
	emu.Reset()

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal([]int{0}, emu.Tape.Sent())
	assert.Equal(1, emu.A())
}

// failWriter fails the first fail writes.
type failWriter struct {
	fail int
	bytes.Buffer
}

var errWrite = errors.New("write failed")

func (fw *failWriter) Write(p []byte) (n int, err error) {
	if fw.fail > 0 {
		fw.fail--
		err = errWrite
		return
	}
	return fw.Buffer.Write(p)
}

func TestEmulatorOutputRetry(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"PA", "IA"}
	emu.Reset()
	output := &failWriter{fail: 2}
	emu.Tape.Output = output

	for range 2 {
		done, err := emu.Tick()
		assert.False(done)
		assert.ErrorIs(err, errWrite)

		var runtime *ErrRuntime
		assert.True(errors.As(err, &runtime))
		assert.Equal(1, runtime.LineNo)
		assert.Empty(emu.Tape.Sent())
		assert.Equal(0, emu.A())
	}

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal("0\n", output.String())
	assert.Equal([]int{0}, emu.Tape.Sent())
	assert.Equal([]int{0}, emu.Output())
	assert.Equal(1, emu.A())
}

func TestEmulatorSourceLines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = []string{"", "IA", "  ", "ZZ"}
	emu.Reset()

	assert.Equal(2, emu.LineNo())
	assert.Equal(0, emu.SourceLine(0))
	assert.Equal(4, emu.SourceLine(2))
	assert.Equal(5, emu.SourceLine(3))

	_, err := emu.Tick()
	assert.NoError(err)
	assert.Equal(4, emu.LineNo())

	_, err = emu.Tick()
	assert.ErrorIs(err, machine.ErrCommandUnknown)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(4, runtime.LineNo)
}

func TestEmulatorRunCancel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.MaxTicks = 0
	emu.Program = []string{"IA", "FAJ1"}
	emu.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(1, emu.Ticks)
}

func TestEmulatorRunDelay(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Delay = time.Millisecond
	emu.InitialB = 5
	emu.Program = []string{"BA", "MA", "AB"}
	emu.Reset()

	var lines []int
	emu.Trace = func(res machine.Result) {
		lines = append(lines, res.Line)
	}

	start := time.Now()
	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(15, emu.B())
	assert.Equal([]int{1, 2, 3, 0}, lines)
	assert.GreaterOrEqual(time.Since(start), 3*time.Millisecond)
}
