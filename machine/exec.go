package machine

// effect is the outcome of executing a decoded instruction.
type effect struct {
	message string
	jump    int      // Redirect to this 1-indexed line, if non-zero.
	need    Register // Suspend for input into this register.
}

type execFunc func(m *Machine, code Code) effect

// opExec is the dispatch table from operation to state transition.
var opExec = map[CodeOp]execFunc{
	OP_AB:  move(REG_A, REG_B),
	OP_BA:  move(REG_B, REG_A),
	OP_IA:  increment(REG_A),
	OP_IB:  increment(REG_B),
	OP_DA:  decrement(REG_A),
	OP_DB:  decrement(REG_B),
	OP_MA:  triple(REG_A),
	OP_MB:  triple(REG_B),
	OP_RA:  read(REG_A),
	OP_RB:  read(REG_B),
	OP_PA:  emit(REG_A),
	OP_PB:  emit(REG_B),
	OP_SAB: sum(REG_A, REG_B),
	OP_SBA: sum(REG_B, REG_A),
	OP_FAJ: jumpNonZero(REG_A),
	OP_FBJ: jumpNonZero(REG_B),
}

func move(src, dst Register) execFunc {
	return func(m *Machine, _ Code) effect {
		value := *m.reg(src)
		*m.reg(dst) = value
		return effect{message: f("Moved %d from %v to %v", value, src, dst)}
	}
}

func increment(reg Register) execFunc {
	return func(m *Machine, _ Code) effect {
		r := m.reg(reg)
		*r += 1
		return effect{message: f("Incremented %v to %d", reg, *r)}
	}
}

func decrement(reg Register) execFunc {
	return func(m *Machine, _ Code) effect {
		r := m.reg(reg)
		*r -= 1
		return effect{message: f("Decremented %v to %d", reg, *r)}
	}
}

func triple(reg Register) execFunc {
	return func(m *Machine, _ Code) effect {
		r := m.reg(reg)
		*r *= 3
		return effect{message: f("Multiplied %v by 3, result: %d", reg, *r)}
	}
}

func read(reg Register) execFunc {
	return func(m *Machine, _ Code) effect {
		return effect{message: f("Reading input to %v", reg), need: reg}
	}
}

func emit(reg Register) execFunc {
	return func(m *Machine, _ Code) effect {
		value := *m.reg(reg)
		m.output = append(m.output, value)
		return effect{message: f("Printed %v: %d", reg, value)}
	}
}

// sum adds src into dst.
func sum(dst, src Register) execFunc {
	return func(m *Machine, _ Code) effect {
		r := m.reg(dst)
		*r += *m.reg(src)
		return effect{message: f("Added %v to %v, result: %d", src, dst, *r)}
	}
}

func jumpNonZero(reg Register) execFunc {
	return func(m *Machine, code Code) effect {
		value := *m.reg(reg)
		if value == 0 {
			return effect{message: f("%v is 0, not jumping", reg)}
		}
		return effect{
			message: f("%v is %d, jumping to line %d", reg, value, code.Target),
			jump:    code.Target,
		}
	}
}
