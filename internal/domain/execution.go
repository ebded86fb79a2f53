package domain

import "time"

// OutcomeKind represents the kind of an execution outcome
type OutcomeKind string

const (
	OutcomeValue        OutcomeKind = "value"
	OutcomeRuntimeError OutcomeKind = "runtimeError"
	OutcomeTimeout      OutcomeKind = "timeout"
)

// ErrorKind is the closed classification of execution failures. New failure
// kinds are added by extending this set, not by branching on message text
// outside the executor.
type ErrorKind string

const (
	ErrKindDefinition   ErrorKind = "definitionError"
	ErrKindName         ErrorKind = "nameError"
	ErrKindType         ErrorKind = "typeError"
	ErrKindZeroDivision ErrorKind = "zeroDivision"
	ErrKindRuntime      ErrorKind = "runtimeError"
	ErrKindInternal     ErrorKind = "internalError"
)

// Invocation is one (code, entry point, arguments) unit submitted for
// execution. Arguments are converted to fresh interpreter values per call,
// so submitted code can never mutate the stored test case inputs.
type Invocation struct {
	Code       string
	EntryPoint string
	Args       map[string]interface{}
}

// Outcome represents the result of running one invocation. Exactly one of
// the three kinds is produced; Value is set only for OutcomeValue, ErrorKind
// and Message only for OutcomeRuntimeError and OutcomeTimeout.
type Outcome struct {
	Kind      OutcomeKind
	Value     interface{}
	ErrorKind ErrorKind
	Message   string
	Elapsed   time.Duration
}

// Fatal reports whether the outcome should abort a suite before any test
// runs (the code does not parse or the entry point is missing).
func (o *Outcome) Fatal() bool {
	return o.Kind == OutcomeRuntimeError && o.ErrorKind == ErrKindDefinition
}
