package token

import "github.com/DjordjeVuckovic/calc/internal/types/operator"

type Type int

const (
	UNKNOWN Type = iota
	NUMBER
	OPERATOR
)

func (t Type) String() string {
	switch t {
	case UNKNOWN:
		return "UNKNOWN"
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "INVALID"
	}
}

// Token is one classified input unit with its position in the input sequence.
// Number is set for NUMBER tokens, Operator for OPERATOR tokens.
type Token struct {
	Type     Type
	Value    string
	Pos      int
	Number   int
	Operator operator.Operator
}
