package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/pcv-2026.net/internal/domain"
)

func TestRenderPassingSuite(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &domain.SuiteResult{
		Success:      true,
		Total:        2,
		PassedCount:  2,
		TotalElapsed: 12 * time.Millisecond,
		Results: []domain.TestResult{
			{Index: 0, Status: domain.StatusPassed, Label: "example from the statement", Elapsed: 5 * time.Millisecond},
			{Index: 1, Status: domain.StatusPassed, Elapsed: 7 * time.Millisecond},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "✔ [1/2] example from the statement")
	assert.Contains(t, out, "✔ [2/2] test 2")
	assert.Contains(t, out, "passed 2/2")
}

func TestRenderFailureShowsExpectedAndActual(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &domain.SuiteResult{
		Total:       1,
		PassedCount: 0,
		Results: []domain.TestResult{{
			Index:    0,
			Status:   domain.StatusFailed,
			Input:    map[string]interface{}{"nums": []interface{}{3, 2, 4}, "target": 6},
			Expected: []interface{}{1, 2},
			Actual:   []interface{}{0, 0},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "✘ [1/1]")
	assert.Contains(t, out, "expected: [1,2]")
	assert.Contains(t, out, "actual:   [0,0]")
	assert.Contains(t, out, `"target":6`)
}

func TestRenderErrorAndTimeoutShowMessage(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &domain.SuiteResult{
		Total:       2,
		PassedCount: 0,
		Results: []domain.TestResult{
			{Index: 0, Status: domain.StatusError, Message: "division by zero"},
			{Index: 1, Status: domain.StatusTimeout, Message: "execution exceeded the 1s time limit"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "division by zero")
	assert.Contains(t, out, "time limit")
}

func TestRenderSkippedTests(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &domain.SuiteResult{
		Total:       5,
		PassedCount: 1,
		Results: []domain.TestResult{
			{Index: 0, Status: domain.StatusPassed},
			{Index: 1, Status: domain.StatusFailed},
		},
	})

	assert.Contains(t, buf.String(), "3 test(s) not executed")
}

func TestRenderFatalError(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &domain.SuiteResult{
		Total:      4,
		FatalError: "solution.star:1:25: got newline, want ':'",
	})

	out := buf.String()
	assert.Contains(t, out, "got newline")
	assert.Contains(t, out, "passed 0/4")
}
