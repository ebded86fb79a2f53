// package report renders a suite result as a plain-text run report for the
// CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gitlab.com/pcv-2026.net/internal/domain"
)

func glyph(status domain.TestStatus) string {
	switch status {
	case domain.StatusPassed:
		return "✔"
	case domain.StatusFailed:
		return "✘"
	case domain.StatusTimeout:
		return "⏱"
	default:
		return "⚠"
	}
}

// Render writes one line per executed test, failure diagnostics indented
// under the line, and a trailing summary.
func Render(w io.Writer, suite *domain.SuiteResult) {
	if suite.FatalError != "" {
		fmt.Fprintf(w, "✘ %s\n", suite.FatalError)
		fmt.Fprintf(w, "\npassed 0/%d\n", suite.Total)
		return
	}

	for _, r := range suite.Results {
		label := r.Label
		if label == "" {
			label = fmt.Sprintf("test %d", r.Index+1)
		}
		fmt.Fprintf(w, "%s [%d/%d] %s (%s)\n",
			glyph(r.Status), r.Index+1, suite.Total, label, formatElapsed(r.Elapsed))

		switch r.Status {
		case domain.StatusFailed:
			fmt.Fprintf(w, "    input:    %s\n", renderValue(r.Input))
			fmt.Fprintf(w, "    expected: %s\n", renderValue(r.Expected))
			fmt.Fprintf(w, "    actual:   %s\n", renderValue(r.Actual))
		case domain.StatusError, domain.StatusTimeout:
			fmt.Fprintf(w, "    %s\n", r.Message)
		}
	}

	if skipped := suite.Total - len(suite.Results); skipped > 0 {
		fmt.Fprintf(w, "  %d test(s) not executed\n", skipped)
	}

	fmt.Fprintf(w, "\npassed %d/%d in %s\n",
		suite.PassedCount, suite.Total, formatElapsed(suite.TotalElapsed))
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}

// renderValue prints values in JSON form so maps come out with sorted keys
// and strings are quoted.
func renderValue(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
