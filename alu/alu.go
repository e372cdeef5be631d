package alu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// Register indices into Registers.
const (
	W = iota
	X
	Y
	Z
)

// Registers is the ALU state.
type Registers [4]int64

var (
	// ErrBadInstruction indicates an unparsable line.
	ErrBadInstruction = errors.New("alu: malformed instruction")
	// ErrInputExhausted is returned when inp runs out of input.
	ErrInputExhausted = errors.New("alu: input exhausted")
	// ErrDivideByZero is returned for div or mod by zero.
	ErrDivideByZero = errors.New("alu: division by zero")
	// ErrNegativeMod is returned for mod with a negative operand.
	ErrNegativeMod = errors.New("alu: mod with negative operand")
)

// Op is an instruction opcode.
type Op int

const (
	Inp Op = iota
	Add
	Mul
	Div
	Mod
	Eql
)

var opNames = map[string]Op{"inp": Inp, "add": Add, "mul": Mul, "div": Div, "mod": Mod, "eql": Eql}

// Instruction is one decoded line. B is a register index when BReg is set,
// otherwise BVal holds a literal.
type Instruction struct {
	Op   Op
	A    int
	B    int
	BReg bool
	BVal int64
}

// Program is a sequence of instructions.
type Program []Instruction

func register(s string) (int, bool) {
	if len(s) != 1 || s[0] < 'w' || s[0] > 'z' {
		return 0, false
	}
	return int(s[0] - 'w'), true
}

// ParseInstruction decodes a single line.
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
	}
	op, ok := opNames[f[0]]
	if !ok {
		return Instruction{}, fmt.Errorf("%w: opcode %q", ErrBadInstruction, f[0])
	}
	in := Instruction{Op: op}
	if in.A, ok = register(f[1]); !ok {
		return Instruction{}, fmt.Errorf("%w: register %q", ErrBadInstruction, f[1])
	}
	if op == Inp {
		if len(f) != 2 {
			return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
		}
		return in, nil
	}
	if len(f) != 3 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
	}
	if in.B, in.BReg = register(f[2]); !in.BReg {
		v, err := strconv.ParseInt(f[2], 10, 64)
		if err != nil {
			return Instruction{}, fmt.Errorf("%w: operand %q", ErrBadInstruction, f[2])
		}
		in.BVal = v
	}
	return in, nil
}

// Parse reads one instruction per non-empty line.
func Parse(text string) (Program, error) {
	var p Program
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p = append(p, in)
	}
	return p, nil
}

// Exec runs p starting from regs, consuming inputs in order.
func (p Program) Exec(regs Registers, inputs []int64) (Registers, error) {
	for _, in := range p {
		if in.Op == Inp {
			if len(inputs) == 0 {
				return regs, ErrInputExhausted
			}
			regs[in.A], inputs = inputs[0], inputs[1:]
			continue
		}
		a, b := regs[in.A], in.BVal
		if in.BReg {
			b = regs[in.B]
		}
		switch in.Op {
		case Add:
			a += b
		case Mul:
			a *= b
		case Div:
			if b == 0 {
				return regs, ErrDivideByZero
			}
			a /= b
		case Mod:
			if b == 0 {
				return regs, ErrDivideByZero
			}
			if a < 0 || b < 0 {
				return regs, ErrNegativeMod
			}
			a %= b
		case Eql:
			if a == b {
				a = 1
			} else {
				a = 0
			}
		}
		regs[in.A] = a
	}
	return regs, nil
}

// Run executes p from zeroed registers.
func (p Program) Run(inputs []int64) (Registers, error) {
	return p.Exec(Registers{}, inputs)
}

// Accepts reports whether p leaves z at 0 for the given digits.
func (p Program) Accepts(digits []int64) (bool, error) {
	regs, err := p.Run(digits)
	if err != nil {
		return false, err
	}
	return regs[Z] == 0, nil
}
