package validation

import (
	"time"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// Aggregate reduces the ordered per-test results into a SuiteResult.
// Success requires full-suite coverage with every result PASSED.
// TotalElapsed sums per-test elapsed times, not orchestration wall clock.
func Aggregate(total int, results []domain.TestResult) *domain.SuiteResult {
	passed := 0
	var totalElapsed time.Duration
	for _, r := range results {
		totalElapsed += r.Elapsed
		if r.Status == domain.StatusPassed {
			passed++
		}
	}

	return &domain.SuiteResult{
		Success:      len(results) == total && passed == len(results),
		Total:        total,
		PassedCount:  passed,
		TotalElapsed: totalElapsed,
		Results:      results,
	}
}
