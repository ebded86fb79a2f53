package problem

import (
	"context"
	"fmt"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

var _ IProblemService = (*ProblemService)(nil)

// ProblemService implements the IProblemService interface
type ProblemService struct {
	problemRepo secondary.ProblemRepository
	logger      primary.Logger
}

// NewProblemService creates a new problem service
func NewProblemService(problemRepo secondary.ProblemRepository, logger primary.Logger) *ProblemService {
	return &ProblemService{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

// ListProblems retrieves all problems without their test cases
func (s *ProblemService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	problems, err := s.problemRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

// GetProblem retrieves a full problem by slug
func (s *ProblemService) GetProblem(ctx context.Context, slug string) (*domain.Problem, error) {
	prob, err := s.problemRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("Failed to get problem", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if prob == nil {
		return nil, errs.ProblemNotFound
	}
	return prob, nil
}
