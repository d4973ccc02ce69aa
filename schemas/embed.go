// Package schemas holds the JSON Schemas for jobscore's input and output files.
package schemas

import "embed"

// Schema file names.
const (
	Profile      = "profile.schema.json"
	JobResults   = "job_results.schema.json"
	ScoreResults = "score_results.schema.json"
)

// Files contains every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS
