package evaluator

import (
	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

// Evaluate computes numbers[0] ops[0] numbers[1] ... with multiply, divide and modulus
// binding before add and subtract, left to right within each tier.
//
// The first pass collapses every high tier operator into the running value it follows
// and defers the low tier ones. The second pass folds the collapsed values left to right.
// The caller guarantees len(numbers) == len(ops)+1; anything else is a MalformedExpression.
func Evaluate(numbers []int, ops []operator.Operator) (int, error) {
	if len(numbers) == 0 || len(numbers) != len(ops)+1 {
		return 0, apperr.NewParse(apperr.MalformedExpression, "", len(numbers)+len(ops))
	}

	working := make([]int, 1, len(numbers))
	working[0] = numbers[0]
	deferred := make([]operator.Operator, 0, len(ops))

	for i, op := range ops {
		next := numbers[i+1]
		switch op.Tier() {
		case operator.High:
			last := len(working) - 1
			v, err := Compute(working[last], next, op)
			if err != nil {
				return 0, err
			}
			working[last] = v
		case operator.Low:
			if err := op.Validate(); err != nil {
				return 0, err
			}
			working = append(working, next)
			deferred = append(deferred, op)
		}
	}

	result := working[0]
	for i, op := range deferred {
		v, err := Compute(result, working[i+1], op)
		if err != nil {
			return 0, err
		}
		result = v
	}

	return result, nil
}
