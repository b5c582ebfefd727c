package parser

import (
	"log/slog"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/token"
	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

// Parser validates raw tokens and extracts typed numbers and operators.
type Parser interface {
	Parse(tokens []string) (*Expression, error)
}

type TokenParser struct{}

func NewTokenParser() *TokenParser {
	return &TokenParser{}
}

// Parse checks that tokens strictly alternate number, operator, number, ... and
// returns the extracted Expression. It fails with an *apperr.ParseError on the first violation.
// Example: Input: ["10", "+", "5"] -> Numbers: [10 5], Operators: [+]
func (p *TokenParser) Parse(tokens []string) (*Expression, error) {
	if len(tokens) == 0 {
		return nil, apperr.NewParse(apperr.EmptyInput, "", 0)
	}

	expr := &Expression{
		Numbers:   make([]int, 0, len(tokens)/2+1),
		Operators: make([]operator.Operator, 0, len(tokens)/2),
	}

	for i, raw := range tokens {
		tok, err := token.Classify(raw, i)

		if i%2 == 0 {
			switch tok.Type {
			case token.NUMBER:
				expr.Numbers = append(expr.Numbers, tok.Number)
			case token.OPERATOR:
				if i == 0 {
					return nil, apperr.NewParse(apperr.LeadingOrTrailingOperator, raw, i)
				}
				return nil, apperr.NewParse(apperr.ConsecutiveOperators, tokens[i-1]+" "+raw, i)
			default:
				return nil, apperr.NewParseWrap(apperr.InvalidNumber, raw, i, err)
			}
			continue
		}

		if tok.Type != token.OPERATOR {
			return nil, apperr.NewParse(apperr.InvalidOperator, raw, i)
		}
		expr.Operators = append(expr.Operators, tok.Operator)
	}

	if last := len(tokens) - 1; last%2 == 1 {
		return nil, apperr.NewParse(apperr.LeadingOrTrailingOperator, tokens[last], last)
	}

	if len(expr.Numbers) != len(expr.Operators)+1 {
		return nil, apperr.NewParse(apperr.MalformedExpression, "", len(tokens))
	}

	slog.Debug("parsed expression", "numbers", len(expr.Numbers), "operators", len(expr.Operators))

	return expr, nil
}

// Parse is a shorthand for NewTokenParser().Parse(tokens).
func Parse(tokens []string) (*Expression, error) {
	return NewTokenParser().Parse(tokens)
}
