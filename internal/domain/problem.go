package domain

import "fmt"

// Operator is the arithmetic operation of a Problem.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operators lists every operator in declaration order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Glyph is the infix symbol printed on the sheet.
func (o Operator) Glyph() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Apply computes a op b. Division truncates toward zero.
func (o Operator) Apply(a, b int) (int, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, invalidInput("operator.apply", "division by zero (%d / %d)", a, b)
		}
		return a / b, nil
	default:
		return 0, invalidInput("operator.apply", "unknown operator %d", int(o))
	}
}

// Problem is one arithmetic exercise with its precomputed answer.
type Problem struct {
	A      int      `json:"a"`
	B      int      `json:"b"`
	Op     Operator `json:"op"`
	Answer int      `json:"answer"`
}

// NewProblem computes the answer for a op b.
func NewProblem(a, b int, op Operator) (Problem, error) {
	ans, err := op.Apply(a, b)
	if err != nil {
		return Problem{}, err
	}
	return Problem{A: a, B: b, Op: op, Answer: ans}, nil
}

// InvolvesNegative reports whether an operand or the answer is negative.
func (p Problem) InvolvesNegative() bool {
	return p.A < 0 || p.B < 0 || p.Answer < 0
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = %d", p.A, p.Op.Glyph(), p.B, p.Answer)
}

func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Operator) UnmarshalText(b []byte) error {
	for _, op := range Operators {
		if op.String() == string(b) {
			*o = op
			return nil
		}
	}
	return invalidInput("operator.unmarshal", "unknown operator %q", string(b))
}
