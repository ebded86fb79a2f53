package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envName string

var rootCmd = &cobra.Command{
	Use:          "pcv",
	Short:        "Practice problem code validator",
	Long:         "pcv grades untrusted solution code against per-problem test suites,\neither as a long-running API server or as a one-shot CLI run.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "environment name; loads <name>.env before reading config")
	cobra.OnInitialize(initReader)
}

func initReader() {
	if envName == "" {
		return
	}
	if err := godotenv.Load(envName + ".env"); err != nil {
		log.Fatalf("Error loading %s.env file", envName)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
