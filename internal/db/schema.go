package db

import (
	"context"
	"fmt"
)

// schemaSQL creates the scoring tables when they do not exist yet.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS scoring_runs (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	profile_name  TEXT NOT NULL DEFAULT '',
	jobs_path     TEXT NOT NULL DEFAULT '',
	input_hash    TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'running',
	total_jobs    INTEGER NOT NULL DEFAULT 0,
	kept_jobs     INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	completed_at  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS job_scores (
	id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	run_id              UUID NOT NULL REFERENCES scoring_runs(id) ON DELETE CASCADE,
	job_key             TEXT NOT NULL,
	title               TEXT NOT NULL DEFAULT '',
	company             TEXT NOT NULL DEFAULT '',
	url                 TEXT NOT NULL DEFAULT '',
	skill_match         DOUBLE PRECISION NOT NULL,
	title_relevance     DOUBLE PRECISION NOT NULL,
	seniority           DOUBLE PRECISION NOT NULL,
	location            DOUBLE PRECISION NOT NULL,
	domain_fit          DOUBLE PRECISION NOT NULL,
	response_likelihood DOUBLE PRECISION NOT NULL,
	overall             DOUBLE PRECISION NOT NULL,
	dealbreaker         TEXT,
	matched_skills      TEXT[] NOT NULL DEFAULT '{}',
	result              JSONB NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (run_id, job_key)
);

CREATE INDEX IF NOT EXISTS job_scores_run_overall_idx ON job_scores (run_id, overall DESC);
`

// EnsureSchema creates the scoring tables if they are missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
