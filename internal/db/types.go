package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jobscore/internal/types"
)

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run represents a scoring run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	ProfileName string     `json:"profile_name"`
	JobsPath    string     `json:"jobs_path"`
	InputHash   string     `json:"input_hash"`
	Status      string     `json:"status"`
	TotalJobs   int        `json:"total_jobs"`
	KeptJobs    int        `json:"kept_jobs"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunInput represents input for creating a scoring run
type RunInput struct {
	ProfileName string
	JobsPath    string
	InputHash   string
	TotalJobs   int
}

// StoredScore represents one persisted job score
type StoredScore struct {
	ID          uuid.UUID         `json:"id"`
	RunID       uuid.UUID         `json:"run_id"`
	JobKey      string            `json:"job_key"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	URL         string            `json:"url,omitempty"`
	Overall     float64           `json:"overall"`
	Dealbreaker *string           `json:"dealbreaker,omitempty"`
	Result      types.ScoreResult `json:"result"`
	CreatedAt   time.Time         `json:"created_at"`
}
