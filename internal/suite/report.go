package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.SuiteName)
	fmt.Fprintln(tw, strings.Join([]string{"ID", "Input", "Want", "Got", "Status"}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---", "---", "---"}, "\t"))

	for _, cr := range r.Cases {
		got := cr.Got
		if cr.GotError != "" {
			got = cr.GotError
		}
		status := "PASS"
		if !cr.Passed {
			status = "FAIL"
		}
		fmt.Fprintln(tw, strings.Join([]string{cr.ID, strings.Join(cr.Input, " "), cr.Want, got, status}, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)
	tw.Flush()
}

func WriteJSON(r *Result, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
