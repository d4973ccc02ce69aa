// Package ranking scores job postings against a candidate profile.
package ranking

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/jobscore/internal/skills"
	"github.com/jonathan/jobscore/internal/types"
)

// Component score bounds. NeutralScore is returned whenever the profile or the job carries
// no evidence for a component, so an unset preference never drags a job down.
const (
	MinScore     = 1.0
	MaxScore     = 5.0
	NeutralScore = 3.0
)

const (
	coreSkillWeight      = 1.0
	secondarySkillWeight = 0.5

	titleExactScore    = 5.0
	titleContainsScore = 4.0
	titleOverlapBase   = 2.0
	titleOverlapRange  = 1.5

	staffingResponseScore = 2.0
)

// SkillMatchScore maps the weighted share of profile skills found in the job onto [1, 5].
// Core skills count fully, secondary skills count half. It also returns the display names of
// the matched skills, canonicalized through the variant table.
func SkillMatchScore(profile *types.Profile, job *types.JobResult, table *skills.VariantTable) (float64, []string) {
	if len(profile.CoreSkills) == 0 {
		return NeutralScore, nil
	}

	text := job.SearchText()
	if strings.TrimSpace(text) == "" {
		return NeutralScore, nil
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	matched := make([]string, 0)
	seen := make(map[string]bool)

	accumulate := func(list []string, weight float64) {
		for _, skill := range list {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			totalWeight += weight
			if !skillInText(table, skill, text) {
				continue
			}
			matchedWeight += weight

			name := skill
			if canonical, ok := table.Canonical(skill); ok {
				name = canonical
			}
			if !seen[name] {
				seen[name] = true
				matched = append(matched, name)
			}
		}
	}

	accumulate(profile.CoreSkills, coreSkillWeight)
	accumulate(profile.SecondarySkills, secondarySkillWeight)

	if totalWeight == 0 {
		return NeutralScore, nil
	}

	ratio := matchedWeight / totalWeight
	return MinScore + (MaxScore-MinScore)*ratio, matched
}

func skillInText(table *skills.VariantTable, skill, text string) bool {
	for _, rule := range table.BuildSkillRules(skill) {
		if rule.Matches(text) {
			return true
		}
	}
	return false
}

var titleStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true, "for": true,
	"to": true, "in": true, "at": true, "with": true, "or": true,
}

// titleTokens splits a title into lowercase word tokens, keeping '+' and '#' so that
// "C++ Developer" keeps its language token.
func titleTokens(title string) []string {
	return strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#')
	})
}

// TitleRelevanceScore scores the job title against the profile's target titles.
// The best target wins: exact match 5.0, target contained in the title 4.0, partial word
// overlap 2.0-3.5, no overlap 1.0.
func TitleRelevanceScore(profile *types.Profile, job *types.JobResult) float64 {
	jobTokens := titleTokens(job.Title)
	if len(jobTokens) == 0 {
		return NeutralScore
	}
	jobTitle := strings.Join(jobTokens, " ")
	padded := " " + jobTitle + " "

	jobWords := make(map[string]bool, len(jobTokens))
	for _, w := range jobTokens {
		jobWords[w] = true
	}

	best := 0.0
	for _, target := range profile.TargetTitles {
		targetTokens := titleTokens(target)
		if len(targetTokens) == 0 {
			continue
		}
		targetTitle := strings.Join(targetTokens, " ")

		if targetTitle == jobTitle {
			return titleExactScore
		}
		if strings.Contains(padded, " "+targetTitle+" ") {
			best = max(best, titleContainsScore)
			continue
		}

		significant := 0
		overlap := 0
		for _, w := range targetTokens {
			if len(w) < 2 || titleStopWords[w] {
				continue
			}
			significant++
			if jobWords[w] {
				overlap++
			}
		}
		if significant == 0 {
			best = max(best, MinScore)
			continue
		}
		if overlap == 0 {
			best = max(best, MinScore)
			continue
		}
		best = max(best, titleOverlapBase+titleOverlapRange*float64(overlap)/float64(significant))
	}

	if best == 0 {
		return NeutralScore
	}
	return best
}

// ResponseLikelihoodScore is a fixed prior on how likely the posting is to lead to a response.
// Staffing firm postings respond less often; everything else is neutral.
func ResponseLikelihoodScore(job *types.JobResult) float64 {
	if job.IsStaffing() {
		return staffingResponseScore
	}
	return NeutralScore
}

var knownIndustries = regexp.MustCompile(`(?i)\b(healthcare|health care|fintech|banking|insurance|e-?commerce|retail|gaming|edtech|government|defense|automotive|blockchain|crypto|adtech|biotech|energy|logistics|media|telecom)\b`)

// DomainFitScore scores overlap between the profile's domain expertise and the posting.
// Domains are matched like skills, so a short domain such as "AI" needs a whole word.
// One hit scores 4.0 and two or more 5.0. When nothing overlaps but the posting names a known
// industry, that is a clear mismatch and scores 2.0; otherwise the result is neutral.
func DomainFitScore(profile *types.Profile, job *types.JobResult) float64 {
	domains := make([]skills.MatchRule, 0, len(profile.DomainExpertise))
	for _, d := range profile.DomainExpertise {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, skills.BuildMatchRule(d))
		}
	}
	if len(domains) == 0 {
		return NeutralScore
	}

	text := strings.Join([]string{job.Title, job.Company, job.Description}, "\n")
	if strings.TrimSpace(text) == "" {
		return NeutralScore
	}

	hits := 0
	for _, d := range domains {
		if d.Matches(text) {
			hits++
		}
	}

	switch {
	case hits >= 2:
		return MaxScore
	case hits == 1:
		return 4.0
	case knownIndustries.MatchString(text):
		return 2.0
	default:
		return NeutralScore
	}
}
