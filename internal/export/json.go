package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gazette/internal/matching"
	"gazette/internal/runner"
)

// WriteMatchJSON writes the full report with indentation for human review.
func WriteMatchJSON(w io.Writer, report matching.Report) error {
	return writeIndented(w, report)
}

// WriteBackfillJSON writes a backfill run summary.
func WriteBackfillJSON(w io.Writer, summary runner.Summary) error {
	return writeIndented(w, summary)
}

func writeIndented(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
