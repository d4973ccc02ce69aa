package profile

import (
	"strings"

	"github.com/jonathan/jobscore/internal/types"
)

// Normalize trims list entries, drops blanks and duplicates, and canonicalizes the
// arrangement and staffing preference labels. Skill names keep their original spelling.
func Normalize(p *types.Profile) {
	p.CoreSkills = cleanList(p.CoreSkills)
	p.SecondarySkills = cleanList(p.SecondarySkills)
	p.TargetTitles = cleanList(p.TargetTitles)
	p.DomainExpertise = cleanList(p.DomainExpertise)
	p.Dealbreakers = cleanList(p.Dealbreakers)

	arrangements := make([]string, 0, len(p.Arrangement))
	for _, a := range p.Arrangement {
		arrangements = append(arrangements, normalizeArrangement(a))
	}
	p.Arrangement = cleanList(arrangements)

	p.Level = strings.ToLower(strings.TrimSpace(p.Level))
	p.Location = strings.TrimSpace(p.Location)
	p.TargetMarket = strings.TrimSpace(p.TargetMarket)
	p.StaffingPreference = types.StaffingPreference(strings.ToLower(strings.TrimSpace(string(p.StaffingPreference))))
}

func normalizeArrangement(a string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	switch a {
	case "on-site", "on site", "in-office", "in office":
		return types.ArrangementOnsite
	default:
		return a
	}
}

// cleanList trims entries and removes blanks and case-insensitive duplicates, keeping the first spelling.
func cleanList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
