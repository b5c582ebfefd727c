package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var pe *ParseError
		if errors.As(err, &pe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": pe.Error(), "title": "parse error", "kind": pe.Kind.String()})
			return
		}

		var ae *ArithmeticError
		if errors.As(err, &ae) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": ae.Error(), "title": "arithmetic error", "kind": ae.Kind.String()})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
