// Package db provides PostgreSQL persistence for scoring runs and job scores.
package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/jobscore/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// JobKey identifies a posting within a run: its URL when present, otherwise a hash of
// title, company and location.
func JobKey(job *types.JobResult) string {
	if u := strings.TrimSpace(job.URL); u != "" {
		return u
	}
	sum := sha256.Sum256([]byte(strings.ToLower(strings.Join(
		[]string{strings.TrimSpace(job.Title), strings.TrimSpace(job.Company), strings.TrimSpace(job.Location)}, "|"))))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// CreateRun creates a new scoring run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, input RunInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scoring_runs (profile_name, jobs_path, input_hash, total_jobs, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.ProfileName, input.JobsPath, input.InputHash, input.TotalJobs, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a scoring run as finished with the given status
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, keptJobs int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE scoring_runs SET status = $1, kept_jobs = $2, completed_at = NOW() WHERE id = $3`,
		status, keptJobs, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a scoring run by ID. Returns nil when it does not exist.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_name, jobs_path, input_hash, status, total_jobs, kept_jobs, created_at, completed_at
		 FROM scoring_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.ProfileName, &run.JobsPath, &run.InputHash, &run.Status,
		&run.TotalJobs, &run.KeptJobs, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

const insertScoreSQL = `INSERT INTO job_scores
	(run_id, job_key, title, company, url, skill_match, title_relevance, seniority, location,
	 domain_fit, response_likelihood, overall, dealbreaker, matched_skills, result)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (run_id, job_key) DO UPDATE SET
		title = EXCLUDED.title, company = EXCLUDED.company, url = EXCLUDED.url,
		skill_match = EXCLUDED.skill_match, title_relevance = EXCLUDED.title_relevance,
		seniority = EXCLUDED.seniority, location = EXCLUDED.location,
		domain_fit = EXCLUDED.domain_fit, response_likelihood = EXCLUDED.response_likelihood,
		overall = EXCLUDED.overall, dealbreaker = EXCLUDED.dealbreaker,
		matched_skills = EXCLUDED.matched_skills, result = EXCLUDED.result, created_at = NOW()`

func scoreArgs(runID uuid.UUID, scored *types.ScoredJob) ([]any, error) {
	resultJSON, err := json.Marshal(scored.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score: %w", err)
	}

	var dealbreaker *string
	if scored.Score.HasDealbreaker() {
		d := scored.Score.Dealbreaker
		dealbreaker = &d
	}
	matched := scored.Score.MatchedSkills
	if matched == nil {
		matched = []string{}
	}

	s := scored.Score
	return []any{
		runID, JobKey(&scored.Job), scored.Job.Title, scored.Job.Company, scored.Job.URL,
		s.SkillMatch, s.TitleRelevance, s.Seniority, s.Location, s.DomainFit, s.ResponseLikelihood,
		s.Overall, dealbreaker, matched, resultJSON,
	}, nil
}

// SaveScore stores one job score for a run, replacing an earlier score for the same job
func (db *DB) SaveScore(ctx context.Context, runID uuid.UUID, scored *types.ScoredJob) error {
	args, err := scoreArgs(runID, scored)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, insertScoreSQL, args...); err != nil {
		return fmt.Errorf("failed to save score for %q: %w", scored.Job.Title, err)
	}
	return nil
}

// SaveScores stores many job scores for a run in one batch
func (db *DB) SaveScores(ctx context.Context, runID uuid.UUID, scored []types.ScoredJob) error {
	if len(scored) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range scored {
		args, err := scoreArgs(runID, &scored[i])
		if err != nil {
			return err
		}
		batch.Queue(insertScoreSQL, args...)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i := range scored {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save score for %q: %w", scored[i].Job.Title, err)
		}
	}
	return nil
}

// ListScores returns a run's scores, highest overall first. A limit of 0 returns all of them.
func (db *DB) ListScores(ctx context.Context, runID uuid.UUID, limit int) ([]StoredScore, error) {
	query := `SELECT id, run_id, job_key, title, company, url, overall, dealbreaker, result, created_at
		 FROM job_scores WHERE run_id = $1 ORDER BY overall DESC, title`
	args := []any{runID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var scores []StoredScore
	for rows.Next() {
		var s StoredScore
		var resultJSON []byte
		if err := rows.Scan(&s.ID, &s.RunID, &s.JobKey, &s.Title, &s.Company, &s.URL,
			&s.Overall, &s.Dealbreaker, &resultJSON, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &s.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score %s: %w", s.ID, err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}
