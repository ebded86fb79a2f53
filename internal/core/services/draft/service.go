package draft

import (
	"context"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// IDraftService defines the interface for in-progress solution drafts
type IDraftService interface {
	// SaveDraft stores the user's in-progress code for a problem
	SaveDraft(ctx context.Context, userID, problemSlug, code string) error

	// GetDraft retrieves the user's draft for a problem
	GetDraft(ctx context.Context, userID, problemSlug string) (*domain.Draft, error)

	// DeleteDraft removes the user's draft for a problem
	DeleteDraft(ctx context.Context, userID, problemSlug string) error
}
