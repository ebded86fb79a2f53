package config

import (
	"os"
	"strconv"
	"time"
)

// ExecutionCfg bounds a single validation run. PerTestTimeout caps each test
// invocation; SuiteBudget caps the whole suite independent of the sum of
// per-test timeouts.
type ExecutionCfg struct {
	PerTestTimeout     time.Duration
	SuiteBudget        time.Duration
	StopOnFirstFailure bool
	// MaxSteps caps interpreter steps per invocation. Zero disables the cap
	// and leaves the wall-clock timeout as the only bound.
	MaxSteps uint64
}

func NewExecutionCfg() *ExecutionCfg {
	perTestSec := os.Getenv("EXECUTION_PER_TEST_TIMEOUT_SEC")
	suiteBudgetSec := os.Getenv("EXECUTION_SUITE_BUDGET_SEC")
	varInt, err := strconv.Atoi(perTestSec)
	if err != nil {
		varInt = 5
	}
	varInt2, err := strconv.Atoi(suiteBudgetSec)
	if err != nil {
		varInt2 = 60
	}
	maxSteps, err := strconv.ParseUint(os.Getenv("EXECUTION_MAX_STEPS"), 10, 64)
	if err != nil {
		maxSteps = 0
	}
	return &ExecutionCfg{
		PerTestTimeout:     time.Duration(varInt) * time.Second,
		SuiteBudget:        time.Duration(varInt2) * time.Second,
		StopOnFirstFailure: os.Getenv("EXECUTION_STOP_ON_FIRST_FAILURE") == "true",
		MaxSteps:           maxSteps,
	}
}
