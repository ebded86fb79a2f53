package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalentNumbers(t *testing.T) {
	opts := CompareOptions{}

	// The interpreter returns int64; catalog expectations decode as float64.
	assert.True(t, Equivalent(int64(3), float64(3), opts))
	assert.True(t, Equivalent(3, int64(3), opts))
	assert.False(t, Equivalent(int64(3), int64(4), opts))
	assert.False(t, Equivalent(int64(3), "3", opts))
}

func TestEquivalentFloatTolerance(t *testing.T) {
	opts := CompareOptions{}

	assert.True(t, Equivalent(0.1+0.2, 0.3, opts))
	assert.True(t, Equivalent(1e9+0.5001, 1e9+0.5, opts), "relative tolerance scales with magnitude")
	assert.False(t, Equivalent(0.3001, 0.3, opts))

	wide := CompareOptions{FloatTolerance: 0.01}
	assert.True(t, Equivalent(0.3001, 0.3, wide))
}

func TestEquivalentIntegralValuesCompareExactly(t *testing.T) {
	opts := CompareOptions{}

	// JSON cannot distinguish 1e9 from the integer 1000000000, so integral
	// values are graded exactly; tolerance would let off-by-one integers
	// pass at large magnitude.
	assert.False(t, Equivalent(1e9+1.0, 1e9, opts))
	assert.False(t, Equivalent(int64(1000000001), int64(1000000000), opts))
	assert.True(t, Equivalent(int64(1000000000), 1e9, opts))
}

func TestEquivalentSequences(t *testing.T) {
	opts := CompareOptions{}

	assert.True(t, Equivalent(
		[]interface{}{int64(0), int64(1)},
		[]interface{}{float64(0), float64(1)},
		opts))
	assert.False(t, Equivalent(
		[]interface{}{int64(1), int64(0)},
		[]interface{}{int64(0), int64(1)},
		opts))
	assert.False(t, Equivalent(
		[]interface{}{int64(0)},
		[]interface{}{int64(0), int64(1)},
		opts))
}

func TestEquivalentUnorderedMultiset(t *testing.T) {
	opts := CompareOptions{Unordered: true}

	assert.True(t, Equivalent(
		[]interface{}{int64(1), int64(0)},
		[]interface{}{int64(0), int64(1)},
		opts))
	// Multiset, not set: duplicate counts must match.
	assert.False(t, Equivalent(
		[]interface{}{int64(1), int64(1), int64(0)},
		[]interface{}{int64(0), int64(0), int64(1)},
		opts))
}

func TestEquivalentMappings(t *testing.T) {
	opts := CompareOptions{}

	assert.True(t, Equivalent(
		map[string]interface{}{"a": int64(1), "b": []interface{}{int64(2)}},
		map[string]interface{}{"a": float64(1), "b": []interface{}{float64(2)}},
		opts))
	assert.False(t, Equivalent(
		map[string]interface{}{"a": int64(1)},
		map[string]interface{}{"a": int64(1), "b": int64(2)},
		opts))
}

func TestEquivalentNilAndIncomparable(t *testing.T) {
	opts := CompareOptions{}

	assert.True(t, Equivalent(nil, nil, opts))
	assert.False(t, Equivalent(nil, int64(0), opts))
	assert.False(t, Equivalent(int64(0), nil, opts))
	assert.False(t, Equivalent([]interface{}{}, map[string]interface{}{}, opts))
	assert.True(t, Equivalent("ok", "ok", opts))
	assert.False(t, Equivalent(true, "true", opts))
}
