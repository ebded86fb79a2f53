package problemstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pcv-2026.net/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Warn(string, ...interface{})  {}

func TestSaveAndGetBySlug(t *testing.T) {
	store := NewProblemStore(t.TempDir(), testLogger{})

	err := store.Save(context.Background(), &domain.Problem{
		Slug:      "two-sum",
		Title:     "Two Sum",
		Signature: "def twoSum(nums, target):",
		TestCases: []domain.TestCase{
			{Input: map[string]interface{}{"nums": []interface{}{float64(2), float64(7)}, "target": float64(9)}, Expected: []interface{}{float64(0), float64(1)}},
		},
	})
	require.NoError(t, err)

	p, err := store.GetBySlug(context.Background(), "two-sum")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Two Sum", p.Title)
	require.Len(t, p.TestCases, 1)
	assert.Equal(t, []interface{}{float64(0), float64(1)}, p.TestCases[0].Expected)
}

func TestGetBySlugMissingReturnsNil(t *testing.T) {
	store := NewProblemStore(t.TempDir(), testLogger{})

	p, err := store.GetBySlug(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewProblemStore(dir, testLogger{})

	require.NoError(t, store.Save(context.Background(), &domain.Problem{Slug: "ok", Title: "OK"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	problems, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "ok", problems[0].Slug)
}
