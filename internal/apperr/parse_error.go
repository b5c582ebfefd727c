package apperr

import (
	"fmt"
)

// ParseKind identifies which structural rule a token sequence violated.
type ParseKind int

const (
	EmptyInput ParseKind = iota + 1
	InvalidNumber
	InvalidOperator
	ConsecutiveOperators
	LeadingOrTrailingOperator
	MalformedExpression
)

var parseKindNames = map[ParseKind]string{
	EmptyInput:                "empty_input",
	InvalidNumber:             "invalid_number",
	InvalidOperator:           "invalid_operator",
	ConsecutiveOperators:      "consecutive_operators",
	LeadingOrTrailingOperator: "leading_or_trailing_operator",
	MalformedExpression:       "malformed_expression",
}

func (k ParseKind) String() string {
	if name, ok := parseKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParseKind(%d)", int(k))
}

func (k ParseKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseError reports an input that is not a well-formed alternating sequence of numbers and operators.
// Token and Pos point at the offending token when there is one.
type ParseError struct {
	Kind  ParseKind
	Token string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.message()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) message() string {
	switch e.Kind {
	case EmptyInput:
		return "no input provided"
	case InvalidNumber:
		return fmt.Sprintf("%q at position %d is not a valid number or is out of bounds", e.Token, e.Pos)
	case InvalidOperator:
		return fmt.Sprintf("%q at position %d is not a valid operator", e.Token, e.Pos)
	case ConsecutiveOperators:
		return fmt.Sprintf("found two operators next to each other at position %d: %q", e.Pos, e.Token)
	case LeadingOrTrailingOperator:
		return fmt.Sprintf("expression cannot start or end with an operator: %q", e.Token)
	case MalformedExpression:
		return "the number of values and operators is incorrect"
	default:
		return "parse error"
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches any *ParseError of the same kind, so sentinels work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func NewParse(kind ParseKind, token string, pos int) *ParseError {
	return &ParseError{Kind: kind, Token: token, Pos: pos}
}

func NewParseWrap(kind ParseKind, token string, pos int, err error) *ParseError {
	return &ParseError{Kind: kind, Token: token, Pos: pos, Err: err}
}

var (
	ErrEmptyInput                = &ParseError{Kind: EmptyInput}
	ErrInvalidNumber             = &ParseError{Kind: InvalidNumber}
	ErrInvalidOperator           = &ParseError{Kind: InvalidOperator}
	ErrConsecutiveOperators      = &ParseError{Kind: ConsecutiveOperators}
	ErrLeadingOrTrailingOperator = &ParseError{Kind: LeadingOrTrailingOperator}
	ErrMalformedExpression       = &ParseError{Kind: MalformedExpression}
)
