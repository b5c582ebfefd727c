package evaluator

import (
	"math"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

// Compute applies a single operator to two operands with checked arithmetic.
// Division truncates toward zero and the remainder takes the sign of the dividend.
func Compute(a, b int, op operator.Operator) (int, error) {
	switch op {
	case operator.Add:
		return checkedAdd(a, b)
	case operator.Sub:
		return checkedSub(a, b)
	case operator.Mul:
		return checkedMul(a, b)
	case operator.Div:
		if b == 0 {
			return 0, apperr.NewArithmetic(apperr.DivisionByZero, op, a, b)
		}
		if a == math.MinInt && b == -1 {
			return 0, apperr.NewOverflow(op, a, b)
		}
		return a / b, nil
	case operator.Mod:
		if b == 0 {
			return 0, apperr.NewArithmetic(apperr.ModulusByZero, op, a, b)
		}
		return a % b, nil
	}
	return 0, op.Validate()
}

func checkedAdd(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, apperr.NewOverflow(operator.Add, a, b)
	}
	return s, nil
}

func checkedSub(a, b int) (int, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, apperr.NewOverflow(operator.Sub, a, b)
	}
	return d, nil
}

func checkedMul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, apperr.NewOverflow(operator.Mul, a, b)
	}
	p := a * b
	if p/b != a {
		return 0, apperr.NewOverflow(operator.Mul, a, b)
	}
	return p, nil
}
