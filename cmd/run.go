package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/pcv-2026.net/internal/adapter/file/problemstore"
	"gitlab.com/pcv-2026.net/internal/adapter/logging"
	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/core/services/validation"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/executor/starlarkexec"
	"gitlab.com/pcv-2026.net/internal/report"
)

var (
	runProblemsDir string
	runCodeFile    string
	runExamples    bool
	runStopOnFail  bool
	runTimeout     time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <slug>",
	Short: "Validate a solution file against a problem from a local catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	runCmd.Flags().StringVar(&runProblemsDir, "problems", "examples/problems", "directory of problem JSON files")
	runCmd.Flags().StringVar(&runCodeFile, "code", "", "path to the solution file")
	runCmd.Flags().BoolVar(&runExamples, "examples", false, "run only the public example cases")
	runCmd.Flags().BoolVar(&runStopOnFail, "stop-on-failure", false, "halt the suite at the first non-passing test")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "per-test timeout override, e.g. 2s")
	_ = runCmd.MarkFlagRequired("code")
	rootCmd.AddCommand(runCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	slug := args[0]
	logger := logging.NewDevelopmentZapLogger()

	store := problemstore.NewProblemStore(runProblemsDir, logger)
	prob, err := store.GetBySlug(cmd.Context(), slug)
	if err != nil {
		return err
	}
	if prob == nil {
		return fmt.Errorf("problem %q not found in %s", slug, runProblemsDir)
	}

	code, err := os.ReadFile(runCodeFile)
	if err != nil {
		return fmt.Errorf("failed to read solution file: %w", err)
	}

	execCfg := config.NewExecutionCfg()
	backend := starlarkexec.NewBackend(execCfg, logger)
	validator := validation.NewValidationService(backend, execCfg, logger)

	spec := validation.SuiteSpec{
		EntryPoint: validation.EntryPointName(prob.Signature),
		TestCases:  prob.TestCases,
		Compare: validation.CompareOptions{
			Unordered:      prob.CompareMode == domain.CompareUnordered,
			FloatTolerance: prob.FloatTolerance,
		},
		PerTestTimeout:     runTimeout,
		StopOnFirstFailure: runStopOnFail,
	}

	var suite *domain.SuiteResult
	if runExamples {
		suite = validator.ValidateExamples(cmd.Context(), string(code), spec)
	} else {
		suite = validator.Validate(cmd.Context(), string(code), spec)
	}

	report.Render(os.Stdout, suite)

	if !suite.Success {
		os.Exit(1)
	}
	return nil
}
