package parser

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

// Expression is a validated token sequence split into its numbers and operators.
// len(Numbers) == len(Operators)+1 always holds for an Expression returned by Parse.
type Expression struct {
	Numbers   []int
	Operators []operator.Operator
}

// String renders the expression with canonical operator symbols, e.g. "2 + 3 x 4".
func (e *Expression) String() string {
	var b strings.Builder
	for i, n := range e.Numbers {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(e.Operators[i-1].String())
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
