package secondary

import (
	"context"
	"time"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// DraftStore defines the interface for draft persistence
type DraftStore interface {
	// SaveDraft stores a draft with the given time to live
	SaveDraft(ctx context.Context, draft *domain.Draft, ttl time.Duration) error

	// GetDraft retrieves a draft; returns nil when none exists
	GetDraft(ctx context.Context, userID, problemSlug string) (*domain.Draft, error)

	// DeleteDraft removes a draft
	DeleteDraft(ctx context.Context, userID, problemSlug string) error

	// SweepDrafts removes malformed or empty drafts and returns how many
	// live drafts remain. Used by the background janitor.
	SweepDrafts(ctx context.Context) (int, error)
}
