package ranking

import (
	"testing"

	"github.com/jonathan/jobscore/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDetectJobLevel(t *testing.T) {
	tests := []struct {
		title       string
		description string
		expected    types.Level
	}{
		{"Junior Developer", "", types.LevelEntry},
		{"Jr. Developer", "", types.LevelEntry},
		{"Software Engineering Intern", "", types.LevelEntry},
		{"Software Engineer II", "", types.LevelMid},
		{"Software Engineer III", "", types.LevelSenior},
		{"Senior Software Engineer", "", types.LevelSenior},
		{"Sr Data Engineer", "", types.LevelSenior},
		{"Senior Staff Engineer", "", types.LevelStaff},
		{"Tech Lead", "", types.LevelStaff},
		{"Principal Engineer", "", types.LevelPrincipal},
		{"VP of Engineering", "", types.LevelExecutive},
		{"Head of Platform", "", types.LevelExecutive},
		{"Software Engineer", "Requires 5+ years of experience", types.LevelSenior},
		{"Software Engineer", "3-5 years building APIs", types.LevelMid},
		{"Software Engineer", "1 yrs experience", types.LevelEntry},
		{"Senior Engineer", "1 year of experience", types.LevelSenior},
		{"Software Engineer", "Build things", types.LevelUnknown},
		{"", "", types.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.description, func(t *testing.T) {
			job := &types.JobResult{Title: tt.title, Description: tt.description}
			assert.Equal(t, tt.expected, DetectJobLevel(job))
		})
	}
}

func TestSeniorityScore(t *testing.T) {
	six := 6
	tests := []struct {
		name     string
		level    string
		years    *int
		title    string
		desc     string
		expected float64
	}{
		{"same tier", "senior", nil, "Senior Software Engineer", "", 5.0},
		{"one tier apart", "senior", nil, "Staff Engineer", "", 3.5},
		{"two tiers apart", "entry", nil, "Senior Engineer", "", 2.0},
		{"far apart", "entry", nil, "Principal Engineer", "", 1.0},
		{"alias level", "lead", nil, "Staff Engineer", "", 5.0},
		{"years fallback", "", &six, "Software Engineer", "5+ years of Go", 5.0},
		{"level wins over years", "mid", &six, "Software Engineer II", "", 5.0},
		{"profile unknown", "", nil, "Senior Engineer", "", NeutralScore},
		{"job unknown", "senior", nil, "Software Engineer", "", NeutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.Profile{Level: tt.level, YearsExperience: tt.years}
			job := &types.JobResult{Title: tt.title, Description: tt.desc}
			assert.Equal(t, tt.expected, SeniorityScore(profile, job))
		})
	}
}
