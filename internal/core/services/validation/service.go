package validation

import (
	"context"
	"time"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// SuiteSpec describes one validation run over an ordered test suite
type SuiteSpec struct {
	EntryPoint string
	TestCases  []domain.TestCase
	Compare    CompareOptions

	// PerTestTimeout overrides the configured per-test timeout when positive.
	PerTestTimeout time.Duration
	// StopOnFirstFailure halts the suite at the first non-passing test.
	StopOnFirstFailure bool
}

// IValidationService defines the interface for running submitted code
// against a test suite
type IValidationService interface {
	// Validate runs the full suite and returns the aggregated verdict.
	Validate(ctx context.Context, code string, spec SuiteSpec) *domain.SuiteResult

	// ValidateExamples runs only the public example cases for fast feedback.
	ValidateExamples(ctx context.Context, code string, spec SuiteSpec) *domain.SuiteResult
}
