package apperr_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/types/operator"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unexpected EOF")
	err := apperr.NewValidationWrap("invalid request body", inner)

	if err.Error() != "invalid request body: unexpected EOF" {
		t.Errorf("expected 'invalid request body: unexpected EOF', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestParseError_IsMatchesKind(t *testing.T) {
	err := apperr.NewParse(apperr.ConsecutiveOperators, "+", 2)

	if !errors.Is(err, apperr.ErrConsecutiveOperators) {
		t.Error("expected error to match ErrConsecutiveOperators")
	}
	if errors.Is(err, apperr.ErrLeadingOrTrailingOperator) {
		t.Error("expected error not to match ErrLeadingOrTrailingOperator")
	}
	if errors.Is(err, apperr.ErrOverflow) {
		t.Error("parse error must not match arithmetic sentinel")
	}
}

func TestParseError_WrapsCause(t *testing.T) {
	err := apperr.NewParseWrap(apperr.InvalidNumber, "99999999999999999999", 0, strconv.ErrRange)

	if !errors.Is(err, strconv.ErrRange) {
		t.Error("expected Unwrap to expose strconv.ErrRange")
	}
	want := `"99999999999999999999" at position 0 is not a valid number or is out of bounds: value out of range`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestParseError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewParse(apperr.InvalidOperator, "^", 1)

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("calculate: %w", wrapped)

	var pe *apperr.ParseError
	if !errors.As(doubleWrapped, &pe) {
		t.Fatal("errors.As should find ParseError through double wrapping")
	}
	if pe.Token != "^" || pe.Pos != 1 {
		t.Errorf("expected token '^' at 1, got %q at %d", pe.Token, pe.Pos)
	}
	if !errors.Is(doubleWrapped, apperr.ErrInvalidOperator) {
		t.Error("errors.Is should match the kind through wrapping")
	}
}

func TestArithmeticError_Messages(t *testing.T) {
	tests := []struct {
		err  *apperr.ArithmeticError
		want string
	}{
		{apperr.NewOverflow(operator.Add, 1, 2), "integer overflow occurred during addition: 1 + 2"},
		{apperr.NewOverflow(operator.Mul, 3, 4), "integer overflow occurred during multiplication: 3 x 4"},
		{apperr.NewArithmetic(apperr.DivisionByZero, operator.Div, 5, 0), "division by zero is not allowed"},
		{apperr.NewArithmetic(apperr.ModulusByZero, operator.Mod, 5, 0), "modulus by zero is not allowed"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
		}
	}
}

func TestArithmeticError_DivisionAndModulusAreDistinct(t *testing.T) {
	div := apperr.NewArithmetic(apperr.DivisionByZero, operator.Div, 1, 0)
	mod := apperr.NewArithmetic(apperr.ModulusByZero, operator.Mod, 1, 0)

	if errors.Is(div, apperr.ErrModulusByZero) {
		t.Error("division by zero must not match modulus by zero")
	}
	if errors.Is(mod, apperr.ErrDivisionByZero) {
		t.Error("modulus by zero must not match division by zero")
	}
}

func TestKind(t *testing.T) {
	if got := apperr.Kind(fmt.Errorf("x: %w", apperr.NewParse(apperr.EmptyInput, "", 0))); got != "empty_input" {
		t.Errorf("expected empty_input, got %q", got)
	}
	if got := apperr.Kind(apperr.NewOverflow(operator.Sub, 0, 0)); got != "overflow" {
		t.Errorf("expected overflow, got %q", got)
	}
	if got := apperr.Kind(errors.New("database connection failed")); got != "" {
		t.Errorf("expected empty kind for plain error, got %q", got)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("connection reset")
	wrapped := fmt.Errorf("read body: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}
