package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/jobscore/internal/schemas"
	"github.com/jonathan/jobscore/internal/types"
	schemafiles "github.com/jonathan/jobscore/schemas"
)

// LoadJobResults reads a JSON array of job postings, checks it against the job results
// schema and cleans every posting. The returned metadata identifies the input file.
func LoadJobResults(path string) ([]types.JobResult, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	jobs, err := ParseJobResults(content)
	if err != nil {
		return nil, nil, err
	}

	return jobs, NewMetadata(string(content), path, len(jobs)), nil
}

// ParseJobResults decodes and cleans a JSON array of job postings.
func ParseJobResults(content []byte) ([]types.JobResult, error) {
	if err := schemas.ValidateDocument(schemafiles.JobResults, content); err != nil {
		return nil, fmt.Errorf("job results failed schema validation: %w", err)
	}

	var jobs []types.JobResult
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job results: %w", err)
	}

	for i := range jobs {
		cleaned, err := PrepareJob(jobs[i])
		if err != nil {
			return nil, fmt.Errorf("job %d (%q): %w", i, jobs[i].Title, err)
		}
		jobs[i] = cleaned
	}

	return jobs, nil
}

// PrepareJob trims the posting's short fields, renders an HTML description as text and
// classifies the posting's source.
func PrepareJob(job types.JobResult) (types.JobResult, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Location = strings.TrimSpace(job.Location)
	job.Arrangement = strings.TrimSpace(job.Arrangement)
	job.Salary = strings.TrimSpace(job.Salary)
	job.Source = strings.TrimSpace(job.Source)
	job.EmploymentType = strings.TrimSpace(job.EmploymentType)

	description, err := HTMLToText(job.Description)
	if err != nil {
		return job, err
	}
	job.Description = description

	return types.NewJobResult(job), nil
}
