package starlarkexec

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
)

const solutionFilename = "solution.star"

var _ secondary.CodeExecutor = (*Backend)(nil)

// Backend runs one invocation per call on a fresh Starlark thread under the
// restricted environment. Timeouts cancel the thread; cancellation preempts
// the interpreter even inside pure-compute infinite loops, so the caller is
// never blocked past the bound.
type Backend struct {
	predeclared starlark.StringDict
	opts        *syntax.FileOptions
	maxSteps    uint64
	logger      primary.Logger
}

// NewBackend creates a new in-process execution backend
func NewBackend(cfg *config.ExecutionCfg, logger primary.Logger) *Backend {
	return &Backend{
		predeclared: RestrictedEnv(),
		opts:        FileOptions(),
		maxSteps:    cfg.MaxSteps,
		logger:      logger,
	}
}

// Check compiles the code and resolves the entry point without invoking it.
func (b *Backend) Check(ctx context.Context, code, entryPoint string, timeout time.Duration) *domain.Outcome {
	return b.execute(ctx, &domain.Invocation{Code: code, EntryPoint: entryPoint}, timeout, false)
}

// Run executes one invocation bounded by the timeout.
func (b *Backend) Run(ctx context.Context, inv *domain.Invocation, timeout time.Duration) *domain.Outcome {
	return b.execute(ctx, inv, timeout, true)
}

func (b *Backend) execute(ctx context.Context, inv *domain.Invocation, timeout time.Duration, invoke bool) *domain.Outcome {
	start := time.Now()

	if strings.TrimSpace(inv.Code) == "" {
		return definitionOutcome("code cannot be empty", time.Since(start))
	}

	thread := &starlark.Thread{Name: "solution"}
	if b.maxSteps > 0 {
		thread.SetMaxExecutionSteps(b.maxSteps)
	}

	// Buffered so the abandoned worker can finish after a timeout without
	// anyone reading from the channel.
	done := make(chan *domain.Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("executor worker panicked", "panic", r)
				done <- &domain.Outcome{
					Kind:      domain.OutcomeRuntimeError,
					ErrorKind: domain.ErrKindInternal,
					Message:   fmt.Sprintf("internal executor failure: %v", r),
					Elapsed:   time.Since(start),
				}
			}
		}()
		done <- b.invoke(thread, inv, invoke, start)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out
	case <-timer.C:
		thread.Cancel("time limit exceeded")
		return &domain.Outcome{
			Kind:    domain.OutcomeTimeout,
			Message: fmt.Sprintf("execution exceeded the %s time limit", timeout),
			Elapsed: timeout,
		}
	case <-ctx.Done():
		thread.Cancel("validation canceled")
		return &domain.Outcome{
			Kind:    domain.OutcomeTimeout,
			Message: "execution canceled: " + ctx.Err().Error(),
			Elapsed: time.Since(start),
		}
	}
}

func (b *Backend) invoke(thread *starlark.Thread, inv *domain.Invocation, invoke bool, start time.Time) *domain.Outcome {
	globals, err := starlark.ExecFileOptions(b.opts, thread, solutionFilename, inv.Code, b.predeclared)
	if err != nil {
		// Failures at this stage happen before any test input is applied:
		// syntax errors, unresolved names, or top-level faults.
		return definitionOutcome(errorMessage(err), time.Since(start))
	}

	fn, ok := globals[inv.EntryPoint]
	if !ok {
		return definitionOutcome(fmt.Sprintf("function %q is not defined", inv.EntryPoint), time.Since(start))
	}
	callable, ok := fn.(starlark.Callable)
	if !ok {
		return definitionOutcome(fmt.Sprintf("%q is not callable", inv.EntryPoint), time.Since(start))
	}

	if !invoke {
		return &domain.Outcome{Kind: domain.OutcomeValue, Elapsed: time.Since(start)}
	}

	kwargs, err := toKwargs(inv.Args)
	if err != nil {
		return &domain.Outcome{
			Kind:      domain.OutcomeRuntimeError,
			ErrorKind: domain.ErrKindInternal,
			Message:   fmt.Sprintf("failed to convert arguments: %v", err),
			Elapsed:   time.Since(start),
		}
	}

	value, err := starlark.Call(thread, callable, nil, kwargs)
	if err != nil {
		return classifyCallError(err, time.Since(start))
	}

	return &domain.Outcome{
		Kind:    domain.OutcomeValue,
		Value:   fromStarlark(value),
		Elapsed: time.Since(start),
	}
}

func definitionOutcome(message string, elapsed time.Duration) *domain.Outcome {
	return &domain.Outcome{
		Kind:      domain.OutcomeRuntimeError,
		ErrorKind: domain.ErrKindDefinition,
		Message:   message,
		Elapsed:   elapsed,
	}
}

// classifyCallError maps a failure raised during the entry point call onto
// the closed ErrorKind set. Cancellation and step-budget errors become
// timeouts; this covers the race where the worker notices its own
// cancellation before the backend's timer branch does.
func classifyCallError(err error, elapsed time.Duration) *domain.Outcome {
	msg := errorMessage(err)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "cancelled") || strings.Contains(lower, "too many steps") {
		return &domain.Outcome{
			Kind:    domain.OutcomeTimeout,
			Message: msg,
			Elapsed: elapsed,
		}
	}

	return &domain.Outcome{
		Kind:      domain.OutcomeRuntimeError,
		ErrorKind: classifyMessage(lower),
		Message:   msg,
		Elapsed:   elapsed,
	}
}

func classifyMessage(lower string) domain.ErrorKind {
	switch {
	case strings.Contains(lower, "division by zero"),
		strings.Contains(lower, "modulo by zero"):
		return domain.ErrKindZeroDivision
	case strings.Contains(lower, "not defined"),
		strings.Contains(lower, "undefined"),
		strings.Contains(lower, "referenced before assignment"):
		return domain.ErrKindName
	case strings.Contains(lower, "unhashable"),
		strings.Contains(lower, "not callable"),
		strings.Contains(lower, "not iterable"),
		strings.Contains(lower, "unknown binary op"),
		strings.Contains(lower, "field or method"),
		strings.Contains(lower, "argument"):
		return domain.ErrKindType
	default:
		return domain.ErrKindRuntime
	}
}

// errorMessage prefers the interpreter's own message over the wrapped
// backtrace so per-test diagnostics stay one line.
func errorMessage(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Msg
	}
	return err.Error()
}
