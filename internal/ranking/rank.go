package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobscore/internal/skills"
	"github.com/jonathan/jobscore/internal/types"
)

// Staffing preference adjustments applied to staffing-sourced postings after weighting.
const (
	staffingBoost   = 0.5
	staffingPenalty = 1.0
)

// Scorer scores job postings against a profile using a read-only variant table.
// A Scorer holds no mutable state and is safe for concurrent use.
type Scorer struct {
	table *skills.VariantTable
}

// NewScorer returns a Scorer that resolves skill variants through table.
// A nil table selects the built-in variant table.
func NewScorer(table *skills.VariantTable) *Scorer {
	if table == nil {
		table = skills.DefaultVariantTable()
	}
	return &Scorer{table: table}
}

var defaultScorer = NewScorer(nil)

// ScoreJob scores job against profile with the built-in variant table.
func ScoreJob(profile *types.Profile, job *types.JobResult) *types.ScoreResult {
	return defaultScorer.ScoreJob(profile, job)
}

// ScoreJob scores one job posting against a profile.
// A matched dealbreaker short-circuits scoring with an overall score of 0.
func (s *Scorer) ScoreJob(profile *types.Profile, job *types.JobResult) *types.ScoreResult {
	text := job.SearchText()

	if phrase, ok := FindDealbreaker(text, profile.Dealbreakers); ok {
		return &types.ScoreResult{
			Overall:     0,
			Dealbreaker: phrase,
			Notes:       fmt.Sprintf("Dealbreaker matched (%q)", phrase),
		}
	}

	skillMatch, matchedSkills := SkillMatchScore(profile, job, s.table)
	result := &types.ScoreResult{
		SkillMatch:         skillMatch,
		TitleRelevance:     TitleRelevanceScore(profile, job),
		Seniority:          SeniorityScore(profile, job),
		Location:           LocationScore(profile, job),
		DomainFit:          DomainFitScore(profile, job),
		ResponseLikelihood: ResponseLikelihoodScore(job),
		MatchedSkills:      matchedSkills,
	}

	w := profile.Weights()
	raw := w.SkillMatch()*result.SkillMatch +
		w.TitleRelevance()*result.TitleRelevance +
		w.Seniority()*result.Seniority +
		w.Location()*result.Location +
		w.DomainFit()*result.DomainFit +
		w.ResponseLikelihood()*result.ResponseLikelihood

	// Weights may sum to slightly more or less than 1.
	raw = clamp(raw, MinScore, MaxScore)

	overall := raw
	if job.IsStaffing() {
		overall = applyStaffingPreference(raw, profile.Staffing())
	}
	result.Overall = clamp(overall, 0, MaxScore)
	result.Notes = generateNotes(result, job.IsStaffing(), profile.Staffing())

	return result
}

func applyStaffingPreference(raw float64, pref types.StaffingPreference) float64 {
	switch pref {
	case types.StaffingBoost:
		return min(raw+staffingBoost, MaxScore)
	case types.StaffingPenalize:
		return max(raw-staffingPenalty, MinScore)
	default:
		return raw
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// generateNotes creates a brief explanation of the score.
func generateNotes(result *types.ScoreResult, staffing bool, pref types.StaffingPreference) string {
	var parts []string

	// Skill match description
	if len(result.MatchedSkills) > 0 {
		skillsList := strings.Join(result.MatchedSkills, ", ")
		if result.SkillMatch >= 4.0 {
			parts = append(parts, fmt.Sprintf("Strong skill match (%s)", skillsList))
		} else if result.SkillMatch >= 2.6 {
			parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", skillsList))
		} else {
			parts = append(parts, fmt.Sprintf("Weak skill match (%s)", skillsList))
		}
	} else if result.SkillMatch != NeutralScore {
		parts = append(parts, "No skill matches")
	}

	// Title description
	if result.TitleRelevance >= 4.0 {
		parts = append(parts, "Title matches target")
	} else if result.TitleRelevance <= MinScore {
		parts = append(parts, "Title unrelated to targets")
	}

	if result.Seniority >= MaxScore {
		parts = append(parts, "Seniority aligned")
	} else if result.Seniority <= 2.0 {
		parts = append(parts, "Seniority mismatch")
	}

	if result.Location >= 4.0 {
		parts = append(parts, "Location fits")
	} else if result.Location <= locationMismatchScore {
		parts = append(parts, "Location mismatch")
	}

	if result.DomainFit >= 4.0 {
		parts = append(parts, "Domain experience relevant")
	}

	if staffing {
		switch pref {
		case types.StaffingBoost:
			parts = append(parts, "Staffing firm posting (boosted)")
		case types.StaffingPenalize:
			parts = append(parts, "Staffing firm posting (penalized)")
		default:
			parts = append(parts, "Staffing firm posting")
		}
	}

	return strings.Join(parts, ". ")
}
