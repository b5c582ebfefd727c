package suite

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/token"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

type Evaluator interface {
	Evaluate(tokens []string) (int, error)
}

type Config struct {
	Workers int
}

type Runner struct {
	config   Config
	calc     Evaluator
	splitter token.Splitter
}

func NewRunner(cfg Config, calc Evaluator) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Runner{
		config:   cfg,
		calc:     calc,
		splitter: token.NewShellSplitter(),
	}
}

// CaseResult is the outcome of one case. Got and GotError are mutually exclusive.
type CaseResult struct {
	ID       string        `json:"id"`
	Input    []string      `json:"input"`
	Want     string        `json:"want"`
	Got      string        `json:"got,omitempty"`
	GotError string        `json:"got_error,omitempty"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration_ns"`
}

type Result struct {
	SuiteName string       `json:"suite"`
	Cases     []CaseResult `json:"cases"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
}

// Run evaluates every case, up to Workers at a time. Results keep the suite order.
// A failing case does not stop the run; only context cancellation does.
func (r *Runner) Run(ctx context.Context, s *TestSuite) (*Result, error) {
	results := make([]CaseResult, len(s.Cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i := range s.Cases {
		c := &s.Cases[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.runCase(c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	res := &Result{SuiteName: s.Name, Cases: results}
	for _, cr := range results {
		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
			slog.Warn("case failed", "suite", s.Name, "id", cr.ID, "want", cr.Want, "got", cr.Got, "got_error", cr.GotError)
		}
	}

	return res, nil
}

func (r *Runner) runCase(c *Case) CaseResult {
	cr := CaseResult{ID: c.ID, Want: expected(c)}

	tokens := c.Tokens
	if c.Expression != "" {
		split, err := r.splitter.Split(c.Expression)
		if err != nil {
			cr.GotError = err.Error()
			return cr
		}
		tokens = split
	}
	if tokens == nil {
		tokens = []string{}
	}
	cr.Input = tokens

	start := time.Now()
	got, err := r.calc.Evaluate(tokens)
	cr.Duration = time.Since(start)

	if err != nil {
		cr.GotError = apperr.Kind(err)
		if cr.GotError == "" {
			cr.GotError = err.Error()
		}
		cr.Passed = c.ExpectsError() && cr.GotError == c.Error
		return cr
	}

	cr.Got = strconv.Itoa(got)
	cr.Passed = !c.ExpectsError() && got == *c.Want
	return cr
}

func expected(c *Case) string {
	if c.ExpectsError() {
		return c.Error
	}
	return strconv.Itoa(*c.Want)
}
