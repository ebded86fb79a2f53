package secondary

import (
	"context"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// SubmissionRepository defines the interface for storing accepted submissions
type SubmissionRepository interface {
	// SaveSubmission saves an accepted submission record
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	// GetByUser retrieves a user's submissions, newest first
	GetByUser(ctx context.Context, userID string, limit int) ([]*domain.Submission, error)
}
