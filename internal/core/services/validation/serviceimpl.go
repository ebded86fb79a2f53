package validation

import (
	"context"
	"time"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
)

var _ IValidationService = (*ValidationService)(nil)

// ValidationService drives the ordered test suite through the execution
// backend. Tests run strictly sequentially within one call; the only
// concurrency is the backend's internal worker racing its timeout.
type ValidationService struct {
	executor secondary.CodeExecutor
	cfg      *config.ExecutionCfg
	logger   primary.Logger
}

// NewValidationService creates a new validation service
func NewValidationService(
	executor secondary.CodeExecutor,
	cfg *config.ExecutionCfg,
	logger primary.Logger,
) *ValidationService {
	return &ValidationService{
		executor: executor,
		cfg:      cfg,
		logger:   logger,
	}
}

// Validate runs the full suite and returns the aggregated verdict.
func (s *ValidationService) Validate(ctx context.Context, code string, spec SuiteSpec) *domain.SuiteResult {
	perTest := spec.PerTestTimeout
	if perTest <= 0 {
		perTest = s.cfg.PerTestTimeout
	}
	total := len(spec.TestCases)

	s.logger.Debug("Validating submission", "entryPoint", spec.EntryPoint, "tests", total)

	// Definition probe: confirm the code parses and the entry point
	// resolves before any test input is applied. Only a definition failure
	// is fatal; a probe disrupted by a timeout or an engine fault is not a
	// verdict about the code, so the per-test runs classify it themselves.
	probe := s.executor.Check(ctx, code, spec.EntryPoint, perTest)
	if probe.Fatal() {
		s.logger.Info("Submission aborted before tests",
			"entryPoint", spec.EntryPoint,
			"error", probe.Message)
		return &domain.SuiteResult{
			Total:      total,
			Results:    []domain.TestResult{},
			FatalError: probe.Message,
		}
	}
	if probe.Kind != domain.OutcomeValue {
		s.logger.Warn("Definition probe did not complete",
			"entryPoint", spec.EntryPoint,
			"kind", probe.Kind,
			"error", probe.Message)
	}

	deadline := time.Now().Add(s.cfg.SuiteBudget)
	results := make([]domain.TestResult, 0, total)

	for i, tc := range spec.TestCases {
		budget := time.Until(deadline)
		if budget <= 0 {
			s.logger.Warn("Suite budget exhausted",
				"completed", len(results),
				"total", total)
			break
		}
		timeout := perTest
		if budget < timeout {
			timeout = budget
		}

		outcome := s.executor.Run(ctx, &domain.Invocation{
			Code:       code,
			EntryPoint: spec.EntryPoint,
			Args:       tc.Input,
		}, timeout)

		result := buildResult(i, tc, outcome, spec.Compare)
		results = append(results, result)

		if spec.StopOnFirstFailure && result.Status != domain.StatusPassed {
			s.logger.Debug("Stopping at first failure", "index", i, "status", result.Status)
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	suite := Aggregate(total, results)
	s.logger.Info("Validation finished",
		"passed", suite.PassedCount,
		"total", suite.Total,
		"success", suite.Success)
	return suite
}

// ValidateExamples runs only the public example cases for fast feedback.
func (s *ValidationService) ValidateExamples(ctx context.Context, code string, spec SuiteSpec) *domain.SuiteResult {
	examples := make([]domain.TestCase, 0, len(spec.TestCases))
	for _, tc := range spec.TestCases {
		if !tc.Hidden {
			examples = append(examples, tc)
		}
	}
	spec.TestCases = examples
	return s.Validate(ctx, code, spec)
}

// buildResult maps one execution outcome onto a per-test result
func buildResult(index int, tc domain.TestCase, outcome *domain.Outcome, opts CompareOptions) domain.TestResult {
	result := domain.TestResult{
		Index:    index,
		Elapsed:  outcome.Elapsed,
		Input:    tc.Input,
		Expected: tc.Expected,
		Label:    tc.Label,
	}

	switch outcome.Kind {
	case domain.OutcomeValue:
		result.Actual = outcome.Value
		if Equivalent(outcome.Value, tc.Expected, opts) {
			result.Status = domain.StatusPassed
		} else {
			result.Status = domain.StatusFailed
		}
	case domain.OutcomeTimeout:
		result.Status = domain.StatusTimeout
		result.Message = outcome.Message
	default:
		result.Status = domain.StatusError
		result.Message = outcome.Message
	}

	return result
}
