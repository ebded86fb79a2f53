package submission

import (
	"context"
	"fmt"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/core/services/validation"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	problemRepo    secondary.ProblemRepository
	submissionRepo secondary.SubmissionRepository
	validator      validation.IValidationService
	cfg            *config.ExecutionCfg
	logger         primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	problemRepo secondary.ProblemRepository,
	submissionRepo secondary.SubmissionRepository,
	validator validation.IValidationService,
	cfg *config.ExecutionCfg,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		validator:      validator,
		cfg:            cfg,
		logger:         logger,
	}
}

// Submit runs the full test suite for a problem and records the submission
// when every test passes.
func (s *SubmissionService) Submit(ctx context.Context, userID, problemSlug, code string) (*domain.SuiteResult, error) {
	prob, err := s.loadProblem(ctx, problemSlug)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Grading submission", "user", userID, "problem", problemSlug)
	suite := s.validator.Validate(ctx, code, s.suiteSpec(prob))

	if suite.Success {
		record := domain.NewSubmission(userID, problemSlug, code, suite)
		if err := s.submissionRepo.SaveSubmission(ctx, record); err != nil {
			// The verdict is still valid; losing the record is the lesser
			// failure, so log and return the suite.
			s.logger.Error("Failed to save submission", "user", userID, "problem", problemSlug, "error", err)
		}
	}

	return suite, nil
}

// RunExamples runs only the problem's public example cases.
func (s *SubmissionService) RunExamples(ctx context.Context, problemSlug, code string) (*domain.SuiteResult, error) {
	prob, err := s.loadProblem(ctx, problemSlug)
	if err != nil {
		return nil, err
	}
	return s.validator.ValidateExamples(ctx, code, s.suiteSpec(prob)), nil
}

// GetHistory retrieves a user's accepted submissions, newest first
func (s *SubmissionService) GetHistory(ctx context.Context, userID string, limit int) ([]*domain.Submission, error) {
	records, err := s.submissionRepo.GetByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("Failed to get submission history", "user", userID, "error", err)
		return nil, fmt.Errorf("failed to get submission history: %w", err)
	}
	return records, nil
}

func (s *SubmissionService) loadProblem(ctx context.Context, slug string) (*domain.Problem, error) {
	prob, err := s.problemRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("Failed to load problem", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if prob == nil {
		return nil, errs.ProblemNotFound
	}
	return prob, nil
}

func (s *SubmissionService) suiteSpec(prob *domain.Problem) validation.SuiteSpec {
	return validation.SuiteSpec{
		EntryPoint: validation.EntryPointName(prob.Signature),
		TestCases:  prob.TestCases,
		Compare: validation.CompareOptions{
			Unordered:      prob.CompareMode == domain.CompareUnordered,
			FloatTolerance: prob.FloatTolerance,
		},
		StopOnFirstFailure: s.cfg.StopOnFirstFailure,
	}
}
