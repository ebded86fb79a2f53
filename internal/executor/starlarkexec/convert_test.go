package starlarkexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.starlark.net/starlark"
)

func TestToStarlarkIntegralFloatBecomesInt(t *testing.T) {
	// JSON decodes 9 as 9.0; solutions must still be able to use it as an
	// index or dict key.
	v, err := toStarlark(float64(9))
	require.NoError(t, err)

	_, ok := v.(starlark.Int)
	assert.True(t, ok, "expected starlark.Int, got %T", v)
}

func TestToStarlarkRejectsUnsupported(t *testing.T) {
	_, err := toStarlark(struct{}{})
	assert.Error(t, err)
}

func TestToKwargsSortsKeys(t *testing.T) {
	kwargs, err := toKwargs(map[string]interface{}{
		"target": 9,
		"nums":   []interface{}{2, 7},
	})
	require.NoError(t, err)
	require.Len(t, kwargs, 2)

	assert.Equal(t, starlark.String("nums"), kwargs[0][0])
	assert.Equal(t, starlark.String("target"), kwargs[1][0])
}

func TestFromStarlarkNestedStructures(t *testing.T) {
	list := starlark.NewList([]starlark.Value{
		starlark.MakeInt(1),
		starlark.String("a"),
		starlark.None,
	})
	dict := starlark.NewDict(1)
	require.NoError(t, dict.SetKey(starlark.String("inner"), list))

	got := fromStarlark(dict)

	assert.Equal(t, map[string]interface{}{
		"inner": []interface{}{int64(1), "a", nil},
	}, got)
}
