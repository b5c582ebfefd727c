// Command calc evaluates an integer expression given as separate arguments:
//
//	calc 2 + 3 x 4
//
// Every argument is one token. The result is printed to stdout; on any error a
// diagnostic is logged to stderr and the exit status is 1.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"github.com/DjordjeVuckovic/calc/internal/calculator"
)

func main() {
	NewAppConfig().Load()
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	result, err := calculator.New().Calculate(args)
	if err != nil {
		slog.Error("Calculation failed", "kind", apperr.Kind(err), "error", err)
		return 1
	}

	fmt.Fprintln(stdout, result)
	return 0
}
