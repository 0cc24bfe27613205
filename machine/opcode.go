package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeOp is an instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_AB  = CodeOp(0)  // AB
	OP_BA  = CodeOp(1)  // BA
	OP_IA  = CodeOp(2)  // IA
	OP_IB  = CodeOp(3)  // IB
	OP_DA  = CodeOp(4)  // DA
	OP_DB  = CodeOp(5)  // DB
	OP_MA  = CodeOp(6)  // MA
	OP_MB  = CodeOp(7)  // MB
	OP_RA  = CodeOp(8)  // RA
	OP_RB  = CodeOp(9)  // RB
	OP_PA  = CodeOp(10) // PA
	OP_PB  = CodeOp(11) // PB
	OP_SAB = CodeOp(12) // SAB
	OP_SBA = CodeOp(13) // SBA
	OP_FAJ = CodeOp(14) // FAJ
	OP_FBJ = CodeOp(15) // FBJ
)

// IsJump returns true if the operation carries a line target.
func (op CodeOp) IsJump() bool {
	return op == OP_FAJ || op == OP_FBJ
}

// Register names one of the two machine registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_NONE = Register(0) // -
	REG_A    = Register(1) // A
	REG_B    = Register(2) // B
)

// ParseRegister converts a register name, in either case, to a Register.
func ParseRegister(name string) (reg Register, err error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "A":
		reg = REG_A
	case "B":
		reg = REG_B
	default:
		err = ErrRegisterInvalid
	}

	return
}

// Code is a decoded instruction.
type Code struct {
	Op     CodeOp
	Target int // Jump target, 1-indexed line. Zero for non-jumps.
}

// String returns the instruction token for the code.
func (code Code) String() string {
	if code.Op.IsJump() {
		return fmt.Sprintf("%v%d", code.Op, code.Target)
	}

	return code.Op.String()
}

// opMap maps complete tokens to their operation.
var opMap = map[string]CodeOp{
	"AB":  OP_AB,
	"BA":  OP_BA,
	"IA":  OP_IA,
	"IB":  OP_IB,
	"DA":  OP_DA,
	"DB":  OP_DB,
	"MA":  OP_MA,
	"MB":  OP_MB,
	"RA":  OP_RA,
	"RB":  OP_RB,
	"PA":  OP_PA,
	"PB":  OP_PB,
	"SAB": OP_SAB,
	"SBA": OP_SBA,
}

// jumpMap maps jump prefixes to their operation.
var jumpMap = map[string]CodeOp{
	"FAJ": OP_FAJ,
	"FBJ": OP_FBJ,
}

const jumpPrefixLen = 3

// Decode decodes a normalized instruction token.
func Decode(token string) (code Code, err error) {
	defer func() {
		if err != nil {
			err = &ErrDecode{Token: token, Err: err}
		}
	}()

	op, ok := opMap[token]
	if ok {
		code = Code{Op: op}
		return
	}

	if len(token) >= jumpPrefixLen {
		op, ok = jumpMap[token[:jumpPrefixLen]]
	}
	if !ok {
		err = ErrCommandUnknown
		return
	}

	target, perr := strconv.Atoi(token[jumpPrefixLen:])
	if perr != nil {
		err = ErrJumpInvalid
		return
	}
	if target < 1 {
		err = ErrJumpTarget
		return
	}

	code = Code{Op: op, Target: target}
	return
}
