package draftport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
)

const (
	draftKeyPrefix = "draft:"
)

var _ secondary.DraftStore = (*DraftStore)(nil)

// DraftStore implements the DraftStore interface with Redis
type DraftStore struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewDraftStore creates a new Redis draft store
func NewDraftStore(redisClient *redis.Client, logger primary.Logger) *DraftStore {
	return &DraftStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

func draftKey(userID, problemSlug string) string {
	return draftKeyPrefix + userID + ":" + problemSlug
}

// SaveDraft stores a draft with the given time to live
func (r *DraftStore) SaveDraft(ctx context.Context, draft *domain.Draft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	key := draftKey(draft.UserID, draft.ProblemSlug)
	if err := r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

// GetDraft retrieves a draft; returns nil when none exists
func (r *DraftStore) GetDraft(ctx context.Context, userID, problemSlug string) (*domain.Draft, error) {
	data, err := r.redisClient.Get(ctx, draftKey(userID, problemSlug)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft domain.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

// DeleteDraft removes a draft
func (r *DraftStore) DeleteDraft(ctx context.Context, userID, problemSlug string) error {
	if err := r.redisClient.Del(ctx, draftKey(userID, problemSlug)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// SweepDrafts removes malformed or empty drafts and returns how many live
// drafts remain. Expiry itself is handled by the key TTL; the sweep keeps
// the keyspace clean of entries that would fail to decode on read.
func (r *DraftStore) SweepDrafts(ctx context.Context) (int, error) {
	var cursor uint64
	var draftKeys []string
	var err error

	// Use SCAN to iterate over keys with the draft prefix
	for {
		var keys []string
		keys, cursor, err = r.redisClient.Scan(ctx, cursor, draftKeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan draft keys: %w", err)
		}
		draftKeys = append(draftKeys, keys...)
		if cursor == 0 {
			break
		}
	}

	if len(draftKeys) == 0 {
		return 0, nil
	}

	draftData, err := r.redisClient.MGet(ctx, draftKeys...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve draft data: %w", err)
	}

	live := 0
	for i, data := range draftData {
		if data == nil {
			continue
		}
		var draft domain.Draft
		if err := json.Unmarshal([]byte(data.(string)), &draft); err != nil || strings.TrimSpace(draft.Code) == "" {
			if delErr := r.redisClient.Del(ctx, draftKeys[i]).Err(); delErr != nil {
				r.logger.Warn("Failed to delete stale draft", "key", draftKeys[i], "error", delErr)
				continue
			}
			continue
		}
		live++
	}

	return live, nil
}
