package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Warn(string, ...interface{})  {}

type fakeDraftStore struct {
	drafts  map[string]*domain.Draft
	lastTTL time.Duration
}

func key(userID, slug string) string { return userID + "/" + slug }

func (f *fakeDraftStore) SaveDraft(ctx context.Context, d *domain.Draft, ttl time.Duration) error {
	f.drafts[key(d.UserID, d.ProblemSlug)] = d
	f.lastTTL = ttl
	return nil
}

func (f *fakeDraftStore) GetDraft(ctx context.Context, userID, slug string) (*domain.Draft, error) {
	return f.drafts[key(userID, slug)], nil
}

func (f *fakeDraftStore) DeleteDraft(ctx context.Context, userID, slug string) error {
	delete(f.drafts, key(userID, slug))
	return nil
}

func (f *fakeDraftStore) SweepDrafts(ctx context.Context) (int, error) {
	return len(f.drafts), nil
}

func newService() (*DraftService, *fakeDraftStore) {
	store := &fakeDraftStore{drafts: map[string]*domain.Draft{}}
	svc := NewDraftService(store, &config.DraftCfg{TTL: 72 * time.Hour, SweepInterval: time.Minute}, testLogger{})
	return svc, store
}

func TestSaveDraftUsesConfiguredTTL(t *testing.T) {
	svc, store := newService()

	err := svc.SaveDraft(context.Background(), "alice", "two-sum", "def twoSum(nums, target):\n    pass\n")
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, store.lastTTL)

	d, err := svc.GetDraft(context.Background(), "alice", "two-sum")
	require.NoError(t, err)
	assert.Equal(t, "alice", d.UserID)
	assert.False(t, d.SavedAt.IsZero())
}

func TestGetDraftMissing(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetDraft(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, errs.DraftNotFound)
}

func TestDeleteDraft(t *testing.T) {
	svc, _ := newService()

	require.NoError(t, svc.SaveDraft(context.Background(), "alice", "two-sum", "code"))
	require.NoError(t, svc.DeleteDraft(context.Background(), "alice", "two-sum"))

	_, err := svc.GetDraft(context.Background(), "alice", "two-sum")
	assert.ErrorIs(t, err, errs.DraftNotFound)
}
