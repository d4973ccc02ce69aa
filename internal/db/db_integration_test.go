//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jobscore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func TestRunLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	runID, err := db.CreateRun(ctx, RunInput{
		ProfileName: "Integration",
		JobsPath:    "jobs.json",
		InputHash:   "abc",
		TotalJobs:   3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, runID)

	run, err := db.GetRun(ctx, runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.Equal(t, 3, run.TotalJobs)
	assert.Nil(t, run.CompletedAt)

	scored := []types.ScoredJob{
		{Job: types.JobResult{Title: "Low", Company: "Acme"}, Score: types.ScoreResult{SkillMatch: 1, TitleRelevance: 1, Seniority: 1, Location: 1, DomainFit: 1, ResponseLikelihood: 1, Overall: 1}},
		{Job: types.JobResult{Title: "High", Company: "Acme", URL: "https://example.com/high"}, Score: types.ScoreResult{SkillMatch: 5, TitleRelevance: 5, Seniority: 3, Location: 3, DomainFit: 3, ResponseLikelihood: 3, Overall: 4.1, MatchedSkills: []string{"Go"}}},
	}
	require.NoError(t, db.SaveScores(ctx, runID, scored))
	require.NoError(t, db.SaveScore(ctx, runID, &types.ScoredJob{
		Job:   types.JobResult{Title: "Blocked", Company: "Acme"},
		Score: types.ScoreResult{Dealbreaker: "on-site"},
	}))

	require.NoError(t, db.CompleteRun(ctx, runID, RunStatusCompleted, 2))

	run, err = db.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.Equal(t, 2, run.KeptJobs)
	assert.NotNil(t, run.CompletedAt)

	scores, err := db.ListScores(ctx, runID, 0)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, "High", scores[0].Title)
	assert.Equal(t, []string{"Go"}, scores[0].Result.MatchedSkills)
	assert.Equal(t, "Blocked", scores[2].Title)
	require.NotNil(t, scores[2].Dealbreaker)
	assert.Equal(t, "on-site", *scores[2].Dealbreaker)

	top, err := db.ListScores(ctx, runID, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "High", top[0].Title)
}

func TestSaveScore_ReplacesSameJob_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	runID, err := db.CreateRun(ctx, RunInput{ProfileName: "Replace"})
	require.NoError(t, err)

	job := types.JobResult{Title: "SRE", Company: "Acme"}
	first := types.ScoreResult{SkillMatch: 1, Overall: 0, Dealbreaker: "Dealbreaker: on-site"}
	second := types.ScoreResult{SkillMatch: 4.5, Overall: 3.5}
	require.NoError(t, db.SaveScore(ctx, runID, &types.ScoredJob{Job: job, Score: first}))
	require.NoError(t, db.SaveScore(ctx, runID, &types.ScoredJob{Job: job, Score: second}))

	scores, err := db.ListScores(ctx, runID, 0)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3.5, scores[0].Overall)
	assert.Nil(t, scores[0].Dealbreaker)
	assert.Equal(t, 4.5, scores[0].Result.SkillMatch)

	var skillMatch float64
	err = db.pool.QueryRow(ctx,
		`SELECT skill_match FROM job_scores WHERE run_id = $1`, runID).Scan(&skillMatch)
	require.NoError(t, err)
	assert.Equal(t, 4.5, skillMatch)
}

func TestGetRun_NotFound_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	run, err := db.GetRun(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, run)
}
