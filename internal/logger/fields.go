package logger

import (
	"strings"

	"github.com/jonathan/jobscore/internal/types"
	"go.uber.org/zap"
)

// Structured log field keys.
const (
	FieldRunID       = "run_id"
	FieldJobTitle    = "job_title"
	FieldCompany     = "company"
	FieldSource      = "source"
	FieldOverall     = "overall"
	FieldDealbreaker = "dealbreaker"
)

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// JobFields describes a posting. Empty values are omitted to keep entries compact.
func JobFields(job *types.JobResult) []zap.Field {
	if job == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 3)
	for _, f := range []struct{ key, value string }{
		{FieldJobTitle, job.Title},
		{FieldCompany, job.Company},
		{FieldSource, job.Source},
	} {
		if v := strings.TrimSpace(f.value); v != "" {
			fields = append(fields, zap.String(f.key, v))
		}
	}
	return fields
}

// ScoreFields describes a score result.
func ScoreFields(result *types.ScoreResult) []zap.Field {
	if result == nil {
		return nil
	}

	fields := []zap.Field{zap.Float64(FieldOverall, result.Overall)}
	if result.HasDealbreaker() {
		fields = append(fields, zap.String(FieldDealbreaker, result.Dealbreaker))
	}
	return fields
}
