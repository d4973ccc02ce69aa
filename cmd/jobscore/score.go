package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscore/internal/config"
	"github.com/jonathan/jobscore/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a file of job postings against a profile",
	Long: `Loads a profile (JSON or YAML) and a JSON array of job postings, drops postings below the
profile's compensation floor, scores the rest and writes them highest score first.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath       string
	scoreProfile          string
	scoreJobs             string
	scoreOutput           string
	scoreVariants         string
	scoreConcurrency      int
	scoreMinScore         float64
	scoreLimit            int
	scoreSkipCompFloor    bool
	scoreKeepDealbreakers bool
	scoreDatabaseURL      string
)

func init() {
	// Config file flag (processed first)
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to profile JSON or YAML file")
	scoreCmd.Flags().StringVarP(&scoreJobs, "jobs", "j", "", "Path to job results JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Output file for scored results (default scores.json)")
	scoreCmd.Flags().StringVar(&scoreVariants, "variants", "", "YAML file of extra skill variants")
	scoreCmd.Flags().IntVar(&scoreConcurrency, "concurrency", 0, "Number of jobs scored in parallel")
	scoreCmd.Flags().Float64Var(&scoreMinScore, "min-score", 0, "Drop results scoring below this value")
	scoreCmd.Flags().IntVar(&scoreLimit, "limit", 0, "Keep at most this many results (0 keeps all)")
	scoreCmd.Flags().BoolVar(&scoreSkipCompFloor, "skip-comp-floor", false, "Do not filter jobs by the profile's comp_floor")
	scoreCmd.Flags().BoolVar(&scoreKeepDealbreakers, "keep-dealbreakers", false, "Keep jobs that hit a dealbreaker in the output")

	// Database URL for run persistence
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = scoreProfile
	}
	if flags.Changed("jobs") {
		cfg.Jobs = scoreJobs
	}
	if flags.Changed("out") {
		cfg.Output = scoreOutput
	}
	if flags.Changed("variants") {
		cfg.Variants = scoreVariants
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = scoreConcurrency
	}
	if flags.Changed("min-score") {
		cfg.MinScore = scoreMinScore
	}
	if flags.Changed("limit") {
		cfg.Limit = scoreLimit
	}
	if flags.Changed("skip-comp-floor") {
		cfg.SkipCompFloor = scoreSkipCompFloor
	}
	if flags.Changed("keep-dealbreakers") {
		cfg.KeepDealbreakers = scoreKeepDealbreakers
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = logJSON
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Output:      config.DefaultOutput,
		Concurrency: config.DefaultConcurrency,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	// Step 4: Validate
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}
	if cfg.Jobs == "" {
		return fmt.Errorf("--jobs is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbose, logJSON = cfg.Verbose, cfg.LogJSON
	log := newLogger()
	defer func() { _ = log.Sync() }()

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		ProfilePath:      cfg.Profile,
		JobsPath:         cfg.Jobs,
		OutputPath:       cfg.Output,
		VariantsPath:     cfg.Variants,
		Concurrency:      cfg.Concurrency,
		MinScore:         cfg.MinScore,
		Limit:            cfg.Limit,
		SkipCompFloor:    cfg.SkipCompFloor,
		KeepDealbreakers: cfg.KeepDealbreakers,
		Verbose:          cfg.Verbose,
		DatabaseURL:      cfg.DatabaseURL,
		Logger:           log,
		Out:              cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Scored %d of %d jobs (run %s)\n", result.Summary.Kept, result.Summary.Total, result.RunID)
	_, _ = fmt.Fprintf(out, "Results: %s\n", cfg.Output)
	return nil
}
