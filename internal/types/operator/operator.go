package operator

import (
	"fmt"
)

// Operator is one of the five binary arithmetic operators understood by the calculator.
// The set is closed: every switch over Operator handles all of its values.
//
// Usage:
//
//	op, err := operator.Parse("x") // operator.Mul
//	op.Tier()                      // operator.High
type Operator int

const (
	// Add is integer addition ("+").
	Add Operator = iota + 1

	// Sub is integer subtraction ("-").
	Sub

	// Mul is integer multiplication ("x" or "*").
	Mul

	// Div is truncating integer division ("/").
	Div

	// Mod is the remainder of truncating division ("%").
	Mod
)

// Tier is a precedence level. High binds before Low.
type Tier int

const (
	Low Tier = iota
	High
)

func (t Tier) String() string {
	switch t {
	case High:
		return "high"
	case Low:
		return "low"
	default:
		return "unknown"
	}
}

var symbols = map[string]Operator{
	"+": Add,
	"-": Sub,
	"x": Mul,
	"*": Mul,
	"/": Div,
	"%": Mod,
}

// Parse maps an operator symbol to its Operator.
func Parse(s string) (Operator, error) {
	op, ok := symbols[s]
	if !ok {
		return 0, fmt.Errorf("invalid operator: %q (must be one of + - x * / %%)", s)
	}
	return op, nil
}

// IsSymbol reports whether s is a recognised operator symbol.
func IsSymbol(s string) bool {
	_, ok := symbols[s]
	return ok
}

// String returns the canonical symbol. Multiplication is rendered as "x".
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "x"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Tier returns the precedence tier of the operator.
func (o Operator) Tier() Tier {
	switch o {
	case Mul, Div, Mod:
		return High
	default:
		return Low
	}
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	switch o {
	case Add, Sub, Mul, Div, Mod:
		return nil
	default:
		return fmt.Errorf("invalid operator: %d", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML serialization
func (o Operator) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and YAML deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
