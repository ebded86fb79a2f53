package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryPointName(t *testing.T) {
	assert.Equal(t, "twoSum", EntryPointName("def twoSum(nums, target):"))
	assert.Equal(t, "mean", EntryPointName("  def mean(values):  "))
	assert.Equal(t, "f", EntryPointName("def f():"))
	assert.Equal(t, "solution", EntryPointName("not a signature"))
	assert.Equal(t, "solution", EntryPointName(""))
}
