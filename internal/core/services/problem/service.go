package problem

import (
	"context"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// IProblemService defines the interface for browsing the problem catalog
type IProblemService interface {
	// ListProblems retrieves all problems without their test cases
	ListProblems(ctx context.Context) ([]*domain.Problem, error)

	// GetProblem retrieves a full problem by slug
	GetProblem(ctx context.Context, slug string) (*domain.Problem, error)
}
