package ranking

import (
	"testing"

	"github.com/jonathan/jobscore/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeArrangement(t *testing.T) {
	tests := map[string]string{
		"Remote":           types.ArrangementRemote,
		"100% remote (US)": types.ArrangementRemote,
		"Hybrid":           types.ArrangementHybrid,
		"On-site":          types.ArrangementOnsite,
		"onsite":           types.ArrangementOnsite,
		"In office 5 days": types.ArrangementOnsite,
		"Full-time":        "",
		"":                 "",
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeArrangement(input))
		})
	}
}

func TestJobArrangement_Inference(t *testing.T) {
	assert.Equal(t, types.ArrangementHybrid, JobArrangement(&types.JobResult{Arrangement: "Hybrid", Location: "Remote"}))
	assert.Equal(t, types.ArrangementRemote, JobArrangement(&types.JobResult{Location: "Remote (US)"}))
	assert.Equal(t, types.ArrangementRemote, JobArrangement(&types.JobResult{Title: "Backend Engineer (Remote)"}))
	assert.Equal(t, types.ArrangementHybrid, JobArrangement(&types.JobResult{Description: "This is a hybrid role."}))
	assert.Equal(t, "", JobArrangement(&types.JobResult{Location: "Austin, TX"}))
}

func TestLocationScore(t *testing.T) {
	tests := []struct {
		name        string
		arrangement []string
		location    string
		market      string
		job         types.JobResult
		expected    float64
	}{
		{"no preference", nil, "", "", types.JobResult{Arrangement: "Remote"}, NeutralScore},
		{"unknown job arrangement", []string{"remote"}, "", "", types.JobResult{Location: "Austin, TX"}, NeutralScore},
		{"remote wanted remote offered", []string{"remote"}, "", "", types.JobResult{Arrangement: "Remote"}, 5.0},
		{"remote offered not wanted", []string{"onsite"}, "Austin, TX", "", types.JobResult{Location: "Remote"}, 2.5},
		{"hybrid in matching city", []string{"hybrid"}, "Austin, TX", "", types.JobResult{Arrangement: "Hybrid", Location: "Austin, TX"}, 5.0},
		{"city part matches", []string{"onsite"}, "Austin, TX", "", types.JobResult{Arrangement: "On-site", Location: "Austin"}, 5.0},
		{"target market matches", []string{"onsite"}, "Round Rock, TX", "Austin", types.JobResult{Arrangement: "Onsite", Location: "Austin, Texas"}, 5.0},
		{"hybrid location unknown", []string{"hybrid"}, "", "", types.JobResult{Arrangement: "Hybrid", Location: "Austin, TX"}, 4.0},
		{"hybrid job location unknown", []string{"hybrid"}, "Austin, TX", "", types.JobResult{Arrangement: "Hybrid"}, 4.0},
		{"hybrid wrong city", []string{"hybrid"}, "Austin, TX", "", types.JobResult{Arrangement: "Hybrid", Location: "Seattle, WA"}, 1.5},
		{"onsite not wanted but commutable", []string{"remote"}, "Austin, TX", "", types.JobResult{Arrangement: "Onsite", Location: "Austin, TX"}, 2.0},
		{"onsite not wanted elsewhere", []string{"remote"}, "Austin, TX", "", types.JobResult{Arrangement: "Onsite", Location: "Seattle, WA"}, 1.0},
		{"whole words only", []string{"onsite"}, "York", "", types.JobResult{Arrangement: "Onsite", Location: "New Yorkshire"}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.Profile{
				Arrangement:  tt.arrangement,
				Location:     tt.location,
				TargetMarket: tt.market,
			}
			assert.Equal(t, tt.expected, LocationScore(profile, &tt.job))
		})
	}
}
