package submission

import (
	"context"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// ISubmissionService defines the interface for grading user submissions
type ISubmissionService interface {
	// Submit runs the full test suite for a problem and records the
	// submission when every test passes.
	Submit(ctx context.Context, userID, problemSlug, code string) (*domain.SuiteResult, error)

	// RunExamples runs only the problem's public example cases.
	RunExamples(ctx context.Context, problemSlug, code string) (*domain.SuiteResult, error)

	// GetHistory retrieves a user's accepted submissions, newest first
	GetHistory(ctx context.Context, userID string, limit int) ([]*domain.Submission, error)
}
