package starlarkexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Warn(string, ...interface{})  {}

func newTestBackend() *Backend {
	return NewBackend(&config.ExecutionCfg{
		PerTestTimeout: 5 * time.Second,
		SuiteBudget:    60 * time.Second,
	}, testLogger{})
}

const twoSumCode = `
def twoSum(nums, target):
    seen = {}
    for i, n in enumerate(nums):
        rest = target - n
        if rest in seen:
            return [seen[rest], i]
        seen[n] = i
    return []
`

func TestRunReturnsValue(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       twoSumCode,
		EntryPoint: "twoSum",
		Args: map[string]interface{}{
			"nums":   []interface{}{2, 7, 11, 15},
			"target": 9,
		},
	}, time.Second)

	require.Equal(t, domain.OutcomeValue, out.Kind, out.Message)
	assert.Equal(t, []interface{}{int64(0), int64(1)}, out.Value)
}

func TestRunWrongAnswerStillReturnsValue(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def twoSum(nums, target):\n    return [0, 0]\n",
		EntryPoint: "twoSum",
		Args: map[string]interface{}{
			"nums":   []interface{}{3, 2, 4},
			"target": 6,
		},
	}, time.Second)

	require.Equal(t, domain.OutcomeValue, out.Kind)
	assert.Equal(t, []interface{}{int64(0), int64(0)}, out.Value)
}

func TestCheckSyntaxError(t *testing.T) {
	b := newTestBackend()

	// Missing colon after the parameter list.
	out := b.Check(context.Background(), "def twoSum(nums, target)\n    return []\n", "twoSum", time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindDefinition, out.ErrorKind)
	assert.True(t, out.Fatal())
	assert.NotEmpty(t, out.Message)
}

func TestCheckMissingEntryPoint(t *testing.T) {
	b := newTestBackend()

	out := b.Check(context.Background(), "def other():\n    return 1\n", "twoSum", time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindDefinition, out.ErrorKind)
	assert.Contains(t, out.Message, "twoSum")
}

func TestCheckEmptyCode(t *testing.T) {
	b := newTestBackend()

	out := b.Check(context.Background(), "   \n", "solution", time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindDefinition, out.ErrorKind)
}

func TestCheckDeniedCapability(t *testing.T) {
	b := newTestBackend()

	// open is not in the environment, so the reference fails to resolve
	// before anything runs.
	out := b.Check(context.Background(), "def solution():\n    return open(\"/etc/passwd\")\n", "solution", time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindDefinition, out.ErrorKind)
	assert.Contains(t, out.Message, "open")
}

func TestRunInfiniteLoopTimesOut(t *testing.T) {
	b := newTestBackend()

	start := time.Now()
	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution():\n    while True:\n        pass\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{},
	}, 200*time.Millisecond)
	wall := time.Since(start)

	require.Equal(t, domain.OutcomeTimeout, out.Kind)
	assert.Less(t, wall, 5*time.Second, "timeout must preempt the loop promptly")
}

func TestRunDivisionByZero(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution(a, b):\n    return a // b\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{"a": 1, "b": 0},
	}, time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindZeroDivision, out.ErrorKind)
	assert.Contains(t, out.Message, "division by zero")
}

func TestRunNameError(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution(x):\n    if x:\n        y = 1\n    return y\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{"x": false},
	}, time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.Equal(t, domain.ErrKindName, out.ErrorKind)
}

func TestRunMissingDictKeyIsRuntimeError(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution(x):\n    return x[\"missing\"]\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{"x": map[string]interface{}{"a": 1}},
	}, time.Second)

	require.Equal(t, domain.OutcomeRuntimeError, out.Kind)
	assert.NotEqual(t, domain.ErrKindInternal, out.ErrorKind)
	assert.NotEmpty(t, out.Message)
}

func TestRunArgumentMutationDoesNotLeak(t *testing.T) {
	b := newTestBackend()

	inv := &domain.Invocation{
		Code:       "def solution(nums):\n    nums.append(99)\n    return len(nums)\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{"nums": []interface{}{1, 2, 3}},
	}

	first := b.Run(context.Background(), inv, time.Second)
	second := b.Run(context.Background(), inv, time.Second)

	require.Equal(t, domain.OutcomeValue, first.Kind)
	require.Equal(t, domain.OutcomeValue, second.Kind)
	assert.Equal(t, first.Value, second.Value, "each invocation must see a fresh copy of the input")
	assert.Equal(t, []interface{}{1, 2, 3}, inv.Args["nums"])
}

func TestRunIsDeterministic(t *testing.T) {
	b := newTestBackend()

	inv := &domain.Invocation{
		Code:       twoSumCode,
		EntryPoint: "twoSum",
		Args: map[string]interface{}{
			"nums":   []interface{}{3, 2, 4},
			"target": 6,
		},
	}

	first := b.Run(context.Background(), inv, time.Second)
	for i := 0; i < 5; i++ {
		again := b.Run(context.Background(), inv, time.Second)
		require.Equal(t, first.Kind, again.Kind)
		require.Equal(t, first.Value, again.Value)
	}
}

func TestRunMathModuleAvailable(t *testing.T) {
	b := newTestBackend()

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution(x):\n    return math.sqrt(x)\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{"x": 16},
	}, time.Second)

	require.Equal(t, domain.OutcomeValue, out.Kind, out.Message)
	assert.Equal(t, 4.0, out.Value)
}

func TestRunStepBudgetBecomesTimeout(t *testing.T) {
	b := NewBackend(&config.ExecutionCfg{
		PerTestTimeout: 5 * time.Second,
		SuiteBudget:    60 * time.Second,
		MaxSteps:       1000,
	}, testLogger{})

	out := b.Run(context.Background(), &domain.Invocation{
		Code:       "def solution():\n    n = 0\n    for i in range(1000000):\n        n += i\n    return n\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{},
	}, 10*time.Second)

	require.Equal(t, domain.OutcomeTimeout, out.Kind)
}

func TestRunCancelledContext(t *testing.T) {
	b := newTestBackend()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := b.Run(ctx, &domain.Invocation{
		Code:       "def solution():\n    while True:\n        pass\n",
		EntryPoint: "solution",
		Args:       map[string]interface{}{},
	}, 10*time.Second)

	require.Equal(t, domain.OutcomeTimeout, out.Kind)
}
