package domain

import "time"

// TestStatus represents the outcome of a single test case
type TestStatus string

const (
	StatusPassed  TestStatus = "PASSED"
	StatusFailed  TestStatus = "FAILED"
	StatusError   TestStatus = "ERROR"
	StatusTimeout TestStatus = "TIMEOUT"
)

// TestResult represents the result of a single test case execution.
// Actual is set only when execution returned a value (PASSED/FAILED).
// Message is set for ERROR/TIMEOUT and for FAILED when a diagnostic helps.
type TestResult struct {
	Index    int                    `json:"index"`
	Status   TestStatus             `json:"status"`
	Elapsed  time.Duration          `json:"elapsed"`
	Input    map[string]interface{} `json:"input"`
	Expected interface{}            `json:"expected"`
	Actual   interface{}            `json:"actual,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Label    string                 `json:"label,omitempty"`
}

// SuiteResult represents the aggregated outcome of a validation run.
// Results is ordered by ascending index and is a prefix of the full test
// list when the stop policy or the suite budget halts early. FatalError is
// set only when the suite could not start; Results is then empty.
type SuiteResult struct {
	Success      bool          `json:"success"`
	Total        int           `json:"total"`
	PassedCount  int           `json:"passedCount"`
	TotalElapsed time.Duration `json:"totalElapsed"`
	Results      []TestResult  `json:"results"`
	FatalError   string        `json:"fatalError,omitempty"`
}

// Covered reports whether every test case in the suite was executed.
func (s *SuiteResult) Covered() bool {
	return len(s.Results) == s.Total
}
