// Package main provides the jobscore command line tool for scoring job postings against a candidate profile.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobscore/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "jobscore",
	Short:         "Job relevance scoring",
	Long:          "jobscore scores job postings against a candidate profile on skills, title, seniority, location, domain and response likelihood.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verbose bool
	logJSON bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output and debug logs")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs instead of console logs")
}

// newLogger builds the logger for a command from the global flags.
func newLogger() *zap.Logger {
	log, err := logger.New(logJSON, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return zap.NewNop()
	}
	return log
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Interrupt stops scheduling new jobs
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
