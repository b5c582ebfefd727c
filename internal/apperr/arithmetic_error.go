package apperr

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

type ArithmeticKind int

const (
	Overflow ArithmeticKind = iota + 1
	DivisionByZero
	ModulusByZero
)

var arithmeticKindNames = map[ArithmeticKind]string{
	Overflow:       "overflow",
	DivisionByZero: "division_by_zero",
	ModulusByZero:  "modulus_by_zero",
}

func (k ArithmeticKind) String() string {
	if name, ok := arithmeticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ArithmeticKind(%d)", int(k))
}

func (k ArithmeticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ArithmeticError reports a single operator application that has no representable result.
type ArithmeticError struct {
	Kind  ArithmeticKind
	Op    operator.Operator
	Left  int
	Right int
}

func (e *ArithmeticError) Error() string {
	switch e.Kind {
	case Overflow:
		return fmt.Sprintf("integer overflow occurred during %s: %d %s %d", operationName(e.Op), e.Left, e.Op, e.Right)
	case DivisionByZero:
		return "division by zero is not allowed"
	case ModulusByZero:
		return "modulus by zero is not allowed"
	default:
		return "arithmetic error"
	}
}

// Is matches any *ArithmeticError of the same kind.
func (e *ArithmeticError) Is(target error) bool {
	t, ok := target.(*ArithmeticError)
	return ok && t.Kind == e.Kind
}

func NewOverflow(op operator.Operator, left, right int) *ArithmeticError {
	return &ArithmeticError{Kind: Overflow, Op: op, Left: left, Right: right}
}

func NewArithmetic(kind ArithmeticKind, op operator.Operator, left, right int) *ArithmeticError {
	return &ArithmeticError{Kind: kind, Op: op, Left: left, Right: right}
}

func operationName(op operator.Operator) string {
	switch op {
	case operator.Add:
		return "addition"
	case operator.Sub:
		return "subtraction"
	case operator.Mul:
		return "multiplication"
	case operator.Div:
		return "division"
	case operator.Mod:
		return "modulus"
	default:
		return "operation"
	}
}

var (
	ErrOverflow       = &ArithmeticError{Kind: Overflow}
	ErrDivisionByZero = &ArithmeticError{Kind: DivisionByZero}
	ErrModulusByZero  = &ArithmeticError{Kind: ModulusByZero}
)

// Kind returns the snake_case kind name of a calculator error, or "" for any other error.
func Kind(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind.String()
	}
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Kind.String()
	}
	return ""
}
