package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/token"
	"github.com/labstack/echo/v4"
)

type Evaluator interface {
	Calculate(tokens []string) (string, error)
}

// EvaluateRequest carries either pre-split tokens or a whitespace separated expression.
type EvaluateRequest struct {
	Tokens     []string `json:"tokens,omitempty" example:"2,+,3,x,4"`
	Expression string   `json:"expression,omitempty" example:"2 + 3 x 4"`
}

type EvaluateResponse struct {
	Result string   `json:"result" example:"14"`
	Tokens []string `json:"tokens"`
}

type CalcRouter struct {
	e        *echo.Echo
	calc     Evaluator
	splitter token.Splitter
}

type CalcRouterOption func(*CalcRouter)

func WithSplitter(s token.Splitter) CalcRouterOption {
	return func(r *CalcRouter) {
		r.splitter = s
	}
}

func NewCalcRouter(e *echo.Echo, calc Evaluator, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:        e,
		calc:     calc,
		splitter: token.NewShellSplitter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.GET("/evaluate", r.evaluateQueryHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates alternating numbers and operators (+ - x * / %) with integer arithmetic
// @Tags calc
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "tokens or expression"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	tokens, err := r.resolveTokens(req)
	if err != nil {
		return err
	}

	return r.evaluate(c, tokens)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an expression from the query string
// @Tags calc
// @Produce json
// @Param expr query string true "expression, e.g. 2 + 3 x 4"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /evaluate [get]
func (r *CalcRouter) evaluateQueryHandler(c echo.Context) error {
	expr := c.QueryParam("expr")
	if expr == "" {
		return apperr.NewValidation("expr query parameter is required")
	}

	tokens, err := r.splitter.Split(expr)
	if err != nil {
		return apperr.NewValidationWrap("invalid expression", err)
	}

	return r.evaluate(c, tokens)
}

func (r *CalcRouter) resolveTokens(req EvaluateRequest) ([]string, error) {
	switch {
	case req.Tokens != nil && req.Expression != "":
		return nil, apperr.NewValidation("only one of tokens or expression may be set")
	case req.Tokens != nil:
		return req.Tokens, nil
	case req.Expression != "":
		tokens, err := r.splitter.Split(req.Expression)
		if err != nil {
			return nil, apperr.NewValidationWrap("invalid expression", err)
		}
		return tokens, nil
	default:
		return nil, apperr.NewValidation("tokens or expression is required")
	}
}

func (r *CalcRouter) evaluate(c echo.Context, tokens []string) error {
	result, err := r.calc.Calculate(tokens)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, EvaluateResponse{Result: result, Tokens: tokens})
}
