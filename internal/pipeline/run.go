// Package pipeline provides the batch scoring run: load inputs, filter, score, rank, write and persist.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobscore/internal/db"
	"github.com/jonathan/jobscore/internal/ingestion"
	"github.com/jonathan/jobscore/internal/logger"
	"github.com/jonathan/jobscore/internal/observability"
	"github.com/jonathan/jobscore/internal/parsing"
	"github.com/jonathan/jobscore/internal/profile"
	"github.com/jonathan/jobscore/internal/ranking"
	"github.com/jonathan/jobscore/internal/schemas"
	"github.com/jonathan/jobscore/internal/skills"
	"github.com/jonathan/jobscore/internal/types"
	schemafiles "github.com/jonathan/jobscore/schemas"
)

// DefaultConcurrency is used when Options.Concurrency is not positive.
const DefaultConcurrency = 4

// Options holds configuration for a scoring run
type Options struct {
	ProfilePath      string
	JobsPath         string
	OutputPath       string // empty skips writing the output file
	VariantsPath     string // optional YAML file of extra skill variants
	Concurrency      int
	MinScore         float64
	Limit            int
	SkipCompFloor    bool
	KeepDealbreakers bool
	Verbose          bool
	DatabaseURL      string
	Logger           *zap.Logger
	Out              io.Writer // verbose output; defaults to os.Stdout
}

// Output is the document written to Options.OutputPath
type Output struct {
	RunID     string            `json:"run_id"`
	TotalJobs int               `json:"total_jobs"`
	Filtered  int               `json:"filtered"`
	Scored    []types.ScoredJob `json:"scored"`
}

// Result describes a finished scoring run
type Result struct {
	RunID   uuid.UUID
	Summary observability.RunSummary
	Scored  []types.ScoredJob
}

// Run executes a full scoring run
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	prof, err := profile.LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if opts.Verbose {
		printer.PrintProfile(prof)
	}

	jobs, metadata, err := ingestion.LoadJobResults(opts.JobsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	log.Info("loaded inputs",
		zap.String("profile", opts.ProfilePath),
		zap.String("jobs", opts.JobsPath),
		zap.Int("job_count", metadata.JobCount),
		zap.String("input_hash", metadata.Hash))

	scorer, err := newScorer(opts.VariantsPath)
	if err != nil {
		return nil, err
	}

	summary := observability.RunSummary{Total: len(jobs)}
	if !opts.SkipCompFloor {
		var below int
		jobs, below = FilterByCompFloor(jobs, prof.CompFloor)
		summary.BelowFloor = below
		if below > 0 {
			log.Info("filtered jobs below compensation floor", zap.Int("count", below))
		}
	}

	// Database persistence is optional; a connection failure does not stop the run.
	var database *db.DB
	runID := uuid.New()
	if opts.DatabaseURL != "" {
		database, runID = openRun(ctx, log, opts, prof, metadata, runID)
		if database != nil {
			defer database.Close()
		}
	}
	log = logger.WithFields(log, zap.String(logger.FieldRunID, runID.String()))

	scored, err := ScoreJobs(ctx, scorer, prof, jobs, opts.Concurrency, log)
	if err != nil {
		if database != nil {
			if cerr := database.CompleteRun(ctx, runID, db.RunStatusFailed, 0); cerr != nil {
				log.Warn("failed to mark run as failed", zap.Error(cerr))
			}
		}
		return nil, err
	}

	if database != nil {
		if err := database.SaveScores(ctx, runID, scored); err != nil {
			log.Warn("failed to persist scores", zap.Error(err))
		}
	}

	kept, dealbreakers, belowMin := Rank(scored, opts.MinScore, opts.Limit, opts.KeepDealbreakers)
	summary.Dealbreakers = dealbreakers
	summary.BelowMin = belowMin
	summary.Kept = len(kept)

	if database != nil {
		if err := database.CompleteRun(ctx, runID, db.RunStatusCompleted, len(kept)); err != nil {
			log.Warn("failed to complete run", zap.Error(err))
		}
	}

	if opts.OutputPath != "" {
		output := Output{
			RunID:     runID.String(),
			TotalJobs: summary.Total,
			Filtered:  summary.Total - summary.Kept,
			Scored:    kept,
		}
		if err := WriteOutput(opts.OutputPath, output); err != nil {
			return nil, err
		}
		log.Info("wrote scores", zap.String("path", opts.OutputPath), zap.Int("kept", len(kept)))
	}

	if opts.Verbose {
		for i := range kept {
			printer.PrintScore(&kept[i].Job, &kept[i].Score)
		}
		printer.PrintRanking(kept)
		printer.PrintRunSummary(summary)
	}

	return &Result{RunID: runID, Summary: summary, Scored: kept}, nil
}

func newScorer(variantsPath string) (*ranking.Scorer, error) {
	if variantsPath == "" {
		return ranking.NewScorer(nil), nil
	}
	extra, err := skills.LoadVariantDefs(variantsPath)
	if err != nil {
		return nil, err
	}
	table, err := skills.NewVariantTableWithExtras(extra)
	if err != nil {
		return nil, fmt.Errorf("invalid skill variants in %s: %w", variantsPath, err)
	}
	return ranking.NewScorer(table), nil
}

// openRun connects to the database and records a new run. On any failure it logs a warning
// and returns a nil DB so the run continues without persistence.
func openRun(ctx context.Context, log *zap.Logger, opts Options, prof *types.Profile, metadata *ingestion.Metadata, fallbackID uuid.UUID) (*db.DB, uuid.UUID) {
	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		log.Warn("failed to connect to database, continuing without persistence", zap.Error(err))
		return nil, fallbackID
	}
	if err := database.EnsureSchema(ctx); err != nil {
		log.Warn("failed to prepare database, continuing without persistence", zap.Error(err))
		database.Close()
		return nil, fallbackID
	}
	runID, err := database.CreateRun(ctx, db.RunInput{
		ProfileName: prof.Name,
		JobsPath:    opts.JobsPath,
		InputHash:   metadata.Hash,
		TotalJobs:   metadata.JobCount,
	})
	if err != nil {
		log.Warn("failed to create run, continuing without persistence", zap.Error(err))
		database.Close()
		return nil, fallbackID
	}
	log.Debug("created database run", zap.String(logger.FieldRunID, runID.String()))
	return database, runID
}

// FilterByCompFloor keeps the jobs whose salary meets the floor and reports how many were dropped.
// Jobs with no parseable salary are kept.
func FilterByCompFloor(jobs []types.JobResult, floor *float64) ([]types.JobResult, int) {
	if floor == nil {
		return jobs, 0
	}
	kept := make([]types.JobResult, 0, len(jobs))
	for _, job := range jobs {
		if parsing.MeetsFloor(job.Salary, floor) {
			kept = append(kept, job)
		}
	}
	return kept, len(jobs) - len(kept)
}

// ScoreJobs scores every job with at most concurrency scorers running at once.
// Results keep the input order. Cancelling ctx stops scheduling new jobs and returns ctx's error.
func ScoreJobs(ctx context.Context, scorer *ranking.Scorer, prof *types.Profile, jobs []types.JobResult, concurrency int, log *zap.Logger) ([]types.ScoredJob, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	log = logger.WithFields(log)

	results := make([]types.ScoredJob, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range jobs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			score := scorer.ScoreJob(prof, &jobs[i])
			results[i] = types.ScoredJob{Job: jobs[i], Score: *score}
			log.Debug("scored job", append(logger.JobFields(&jobs[i]), logger.ScoreFields(score)...)...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", err)
	}
	return results, nil
}

// Rank orders scored jobs by overall score, highest first, after dropping dealbreaker hits
// (unless keepDealbreakers) and results under minScore. A positive limit caps the result.
// Ties keep input order. It returns the kept jobs and the dealbreaker and below-minimum counts.
func Rank(scored []types.ScoredJob, minScore float64, limit int, keepDealbreakers bool) (kept []types.ScoredJob, dealbreakers, belowMin int) {
	kept = make([]types.ScoredJob, 0, len(scored))
	for _, s := range scored {
		if s.Score.HasDealbreaker() {
			dealbreakers++
			if keepDealbreakers {
				kept = append(kept, s)
			}
			continue
		}
		if s.Score.Overall < minScore {
			belowMin++
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score.Overall > kept[j].Score.Overall
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, dealbreakers, belowMin
}

// WriteOutput checks output against the score results schema and writes it as indented JSON.
func WriteOutput(path string, output Output) error {
	if output.Scored == nil {
		output.Scored = []types.ScoredJob{}
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := schemas.ValidateDocument(schemafiles.ScoreResults, data); err != nil {
		return fmt.Errorf("output failed schema validation: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
