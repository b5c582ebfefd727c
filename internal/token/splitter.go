package token

import (
	"fmt"

	"github.com/google/shlex"
)

// Splitter breaks a free-form expression string into raw tokens.
// It is only used at the boundaries; the parser always receives pre-split tokens.
type Splitter interface {
	Split(input string) ([]string, error)
}

// ShellSplitter splits on whitespace with shell quoting rules,
// so "2 x 3" and "'2' 'x' 3" both yield ["2", "x", "3"].
type ShellSplitter struct{}

func NewShellSplitter() *ShellSplitter {
	return &ShellSplitter{}
}

// Split converts the input string into a slice of raw tokens.
// Example: Input: `10 - -3 x 2`
func (s *ShellSplitter) Split(input string) ([]string, error) {
	parts, err := shlex.Split(input)
	if err != nil {
		return nil, fmt.Errorf("split expression: %w", err)
	}
	return parts, nil
}
