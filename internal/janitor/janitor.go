package janitor

import (
	"context"
	"time"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
)

// DraftJanitor periodically sweeps the draft store, dropping entries that
// would fail to decode on read. Expiry itself is handled by the store TTL.
type DraftJanitor struct {
	cfg    *config.DraftCfg
	drafts secondary.DraftStore
	logger primary.Logger
}

func NewDraftJanitor(cfg *config.DraftCfg, drafts secondary.DraftStore, logger primary.Logger) *DraftJanitor {
	return &DraftJanitor{
		cfg:    cfg,
		drafts: drafts,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (j *DraftJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *DraftJanitor) sweep(ctx context.Context) {
	live, err := j.drafts.SweepDrafts(ctx)
	if err != nil {
		j.logger.Error("Draft sweep failed", "error", err)
		return
	}
	j.logger.Info("Draft sweep complete", "liveDrafts", live)
}
