package types

// ScoreResult is the relevance score of one job against one profile.
// Component scores lie in [1, 5]; Overall lies in [0, 5] and is exactly 0 only when a
// dealbreaker matched, in which case the component scores are left at zero.
type ScoreResult struct {
	SkillMatch         float64  `json:"skill_match"`
	TitleRelevance     float64  `json:"title_relevance"`
	Seniority          float64  `json:"seniority"`
	Location           float64  `json:"location"`
	DomainFit          float64  `json:"domain_fit"`
	ResponseLikelihood float64  `json:"response_likelihood"`
	Overall            float64  `json:"overall"`
	Dealbreaker        string   `json:"dealbreaker,omitempty"`
	MatchedSkills      []string `json:"matched_skills,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// HasDealbreaker reports whether the score was overridden by a dealbreaker.
func (r *ScoreResult) HasDealbreaker() bool {
	return r.Dealbreaker != ""
}

// ScoredJob pairs a job posting with its score.
type ScoredJob struct {
	Job   JobResult   `json:"job"`
	Score ScoreResult `json:"score"`
}
