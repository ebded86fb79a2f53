package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gitlab.com/pcv-2026.net/internal/adapter/file/problemstore"
	"gitlab.com/pcv-2026.net/internal/adapter/logging"
)

var problemsDir string

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List problems in a local catalog directory",
	RunE:  listProblems,
}

func init() {
	problemsCmd.Flags().StringVar(&problemsDir, "problems", "examples/problems", "directory of problem JSON files")
	rootCmd.AddCommand(problemsCmd)
}

func listProblems(cmd *cobra.Command, args []string) error {
	logger := logging.NewDevelopmentZapLogger()

	store := problemstore.NewProblemStore(problemsDir, logger)
	problems, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slug", "Title", "Difficulty", "Tests"})
	for _, p := range problems {
		table.Append([]string{
			p.Slug,
			p.Title,
			string(p.Difficulty),
			fmt.Sprintf("%d", len(p.TestCases)),
		})
	}
	table.Render()

	return nil
}
