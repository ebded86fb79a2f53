package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/pcv-2026.net/internal/domain"
)

func TestAggregateAllPassed(t *testing.T) {
	suite := Aggregate(2, []domain.TestResult{
		{Index: 0, Status: domain.StatusPassed, Elapsed: 10 * time.Millisecond},
		{Index: 1, Status: domain.StatusPassed, Elapsed: 15 * time.Millisecond},
	})

	assert.True(t, suite.Success)
	assert.Equal(t, 2, suite.PassedCount)
	assert.Equal(t, 25*time.Millisecond, suite.TotalElapsed)
	assert.True(t, suite.Covered())
}

func TestAggregatePartialCoverageIsNotSuccess(t *testing.T) {
	// A passing prefix is not a passing suite.
	suite := Aggregate(3, []domain.TestResult{
		{Index: 0, Status: domain.StatusPassed},
		{Index: 1, Status: domain.StatusPassed},
	})

	assert.False(t, suite.Success)
	assert.Equal(t, 2, suite.PassedCount)
	assert.False(t, suite.Covered())
}

func TestAggregateAnyNonPassedFails(t *testing.T) {
	for _, status := range []domain.TestStatus{domain.StatusFailed, domain.StatusError, domain.StatusTimeout} {
		suite := Aggregate(2, []domain.TestResult{
			{Index: 0, Status: domain.StatusPassed},
			{Index: 1, Status: status},
		})
		assert.False(t, suite.Success, "status %s must fail the suite", status)
	}
}

func TestAggregateEmptySuite(t *testing.T) {
	suite := Aggregate(0, nil)

	assert.True(t, suite.Success)
	assert.Equal(t, 0, suite.PassedCount)
}
