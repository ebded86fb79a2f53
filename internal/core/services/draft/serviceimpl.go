package draft

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

var _ IDraftService = (*DraftService)(nil)

// DraftService implements the IDraftService interface
type DraftService struct {
	store  secondary.DraftStore
	cfg    *config.DraftCfg
	logger primary.Logger
}

// NewDraftService creates a new draft service
func NewDraftService(store secondary.DraftStore, cfg *config.DraftCfg, logger primary.Logger) *DraftService {
	return &DraftService{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// SaveDraft stores the user's in-progress code for a problem
func (s *DraftService) SaveDraft(ctx context.Context, userID, problemSlug, code string) error {
	draft := &domain.Draft{
		UserID:      userID,
		ProblemSlug: problemSlug,
		Code:        code,
		SavedAt:     time.Now(),
	}
	if err := s.store.SaveDraft(ctx, draft, s.cfg.TTL); err != nil {
		s.logger.Error("Failed to save draft", "user", userID, "problem", problemSlug, "error", err)
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// GetDraft retrieves the user's draft for a problem
func (s *DraftService) GetDraft(ctx context.Context, userID, problemSlug string) (*domain.Draft, error) {
	draft, err := s.store.GetDraft(ctx, userID, problemSlug)
	if err != nil {
		s.logger.Error("Failed to get draft", "user", userID, "problem", problemSlug, "error", err)
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	if draft == nil {
		return nil, errs.DraftNotFound
	}
	return draft, nil
}

// DeleteDraft removes the user's draft for a problem
func (s *DraftService) DeleteDraft(ctx context.Context, userID, problemSlug string) error {
	if err := s.store.DeleteDraft(ctx, userID, problemSlug); err != nil {
		s.logger.Error("Failed to delete draft", "user", userID, "problem", problemSlug, "error", err)
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
