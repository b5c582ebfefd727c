package calculator

import (
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/calc/internal/evaluator"
	"github.com/DjordjeVuckovic/calc/internal/parser"
)

// Calculator coordinates parsing and evaluation of a pre-split token sequence.
// It holds no per-call state and is safe for concurrent use.
type Calculator struct {
	parser parser.Parser
}

type Option func(*Calculator)

// WithParser replaces the default token parser.
func WithParser(p parser.Parser) Option {
	return func(c *Calculator) {
		c.parser = p
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		parser: parser.NewTokenParser(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate parses and evaluates tokens, returning the integer result.
// Errors are *apperr.ParseError or *apperr.ArithmeticError and are returned as is.
func (c *Calculator) Evaluate(tokens []string) (int, error) {
	expr, err := c.parser.Parse(tokens)
	if err != nil {
		slog.Debug("rejected input", "tokens", tokens, "error", err)
		return 0, err
	}

	result, err := evaluator.Evaluate(expr.Numbers, expr.Operators)
	if err != nil {
		slog.Debug("evaluation failed", "expression", expr.String(), "error", err)
		return 0, err
	}

	slog.Debug("evaluated", "expression", expr.String(), "result", result)
	return result, nil
}

// Calculate is Evaluate with the result rendered in decimal.
func (c *Calculator) Calculate(tokens []string) (string, error) {
	result, err := c.Evaluate(tokens)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(result), nil
}
