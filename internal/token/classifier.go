package token

import (
	"strconv"

	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

// Classify turns a raw token into a typed Token.
// Operator symbols win over numbers, so a lone "-" is always an operator while "-7" is a number.
// For UNKNOWN tokens the returned error is the strconv failure, e.g. strconv.ErrRange.
func Classify(raw string, pos int) (Token, error) {
	if op, err := operator.Parse(raw); err == nil {
		return Token{Type: OPERATOR, Value: raw, Pos: pos, Operator: op}, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return Token{Type: UNKNOWN, Value: raw, Pos: pos}, err
	}

	return Token{Type: NUMBER, Value: raw, Pos: pos, Number: n}, nil
}
