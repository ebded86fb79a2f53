package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id", "user_id", "problem_slug").
		From("submissions").
		Where("user_id = ?", "alice").
		OrderBy("submitted_at", false).
		Limit(50).
		Build()

	assert.Equal(t,
		"SELECT id, user_id, problem_slug FROM public.submissions WHERE user_id = ? ORDER BY submitted_at DESC LIMIT 50",
		query)
	assert.Equal(t, []interface{}{"alice"}, args)
}

func TestBuildSelectMultipleWhereJoinedWithAnd(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id").
		From("submissions").
		Where("user_id = ?", "alice").
		Where("problem_slug = ?", "two-sum").
		Build()

	assert.Equal(t,
		"SELECT id FROM public.submissions WHERE user_id = ? AND problem_slug = ?",
		query)
	assert.Equal(t, []interface{}{"alice", "two-sum"}, args)
}

func TestBuildInsert(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Insert("user_name", "display_name").
		Into("users").
		Values("alice", "Alice").
		Build()

	assert.Equal(t,
		"INSERT INTO public.users (user_name, display_name) VALUES (?, ?)",
		query)
	assert.Equal(t, []interface{}{"alice", "Alice"}, args)
}

func TestBuildInsertColumnValueMismatch(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Insert("user_name", "display_name").
		Into("users").
		Values("alice").
		Build()

	require.Empty(t, query)
	assert.Nil(t, args)
}
