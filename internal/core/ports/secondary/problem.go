package secondary

import (
	"context"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// ProblemRepository defines the interface for the read-only problem catalog
type ProblemRepository interface {
	// GetBySlug retrieves a full problem, including hidden test cases
	GetBySlug(ctx context.Context, slug string) (*domain.Problem, error)

	// List retrieves all problems without their test cases
	List(ctx context.Context) ([]*domain.Problem, error)

	// Save stores or replaces a problem
	Save(ctx context.Context, problem *domain.Problem) error
}
