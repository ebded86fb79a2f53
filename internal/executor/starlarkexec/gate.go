package starlarkexec

import (
	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// The capability gate for submitted code. Programs resolve names against the
// Starlark universe plus the predeclared set below, and nothing else: there
// is no file, network, process, dynamic-load, or reflection symbol anywhere
// in that namespace, so code like open(...) fails to resolve before it runs.
//
// A stronger isolation backend (separate process, cgroup limits) can be
// plugged in behind secondary.CodeExecutor; it must expose this same symbol
// set to keep verdicts identical across backends.

// RestrictedEnv builds the predeclared environment handed to every
// invocation. The universe already provides the general-purpose allow-list
// (len, range, enumerate, sorted, min, max, abs, zip, list, dict, set,
// tuple, str, int, float, bool, reversed, any, all); only the math module is
// added on top. Pure construction, no failure mode.
func RestrictedEnv() starlark.StringDict {
	return starlark.StringDict{
		"math": starlarkmath.Module,
	}
}

// FileOptions returns the dialect options for submitted code. Loops,
// recursion and sets are enabled so real algorithmic solutions can run;
// the load statement stays disabled, so no module can be imported.
func FileOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}
}
