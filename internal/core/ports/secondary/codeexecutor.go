package secondary

import (
	"context"
	"time"

	"gitlab.com/pcv-2026.net/internal/domain"
)

// CodeExecutor runs untrusted submitted code inside a capability-restricted
// environment. Implementations never hang past the timeout and never let one
// invocation's failure corrupt a later one. Both methods always return a
// non-nil outcome; engine faults surface as ErrKindInternal, never as a
// panic or a Go error.
//
// The in-process implementation lives in internal/executor/starlarkexec; a
// process- or container-based backend can replace it behind this same
// interface when hard security boundaries are required.
type CodeExecutor interface {
	// Check compiles the code and resolves the entry point without invoking
	// it. Used as the definition probe before any test runs.
	Check(ctx context.Context, code, entryPoint string, timeout time.Duration) *domain.Outcome

	// Run executes one invocation bounded by the timeout.
	Run(ctx context.Context, inv *domain.Invocation, timeout time.Duration) *domain.Outcome
}
