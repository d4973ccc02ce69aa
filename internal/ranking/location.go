package ranking

import (
	"strings"
	"unicode"

	"github.com/jonathan/jobscore/internal/types"
)

const (
	locationMatchScore        = 5.0
	locationUnknownScore      = 4.0
	locationRemoteFallback    = 2.5
	locationCommutableScore   = 2.0
	locationMismatchScore     = 1.5
	locationIncompatibleScore = 1.0
)

// NormalizeArrangement maps free-text work arrangement labels to remote, hybrid or onsite.
// It returns "" when the text names none of them.
func NormalizeArrangement(text string) string {
	blob := strings.ToLower(text)
	switch {
	case strings.Contains(blob, "remote"):
		return types.ArrangementRemote
	case strings.Contains(blob, "hybrid"):
		return types.ArrangementHybrid
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") ||
		strings.Contains(blob, "on site") || strings.Contains(blob, "in-office") ||
		strings.Contains(blob, "in office"):
		return types.ArrangementOnsite
	default:
		return ""
	}
}

// JobArrangement returns the posting's work arrangement: the explicit field when it is
// recognizable, otherwise inferred from location and title, then from the description.
func JobArrangement(job *types.JobResult) string {
	if a := NormalizeArrangement(job.Arrangement); a != "" {
		return a
	}
	if a := NormalizeArrangement(job.Location + " " + job.Title); a != "" {
		return a
	}
	return NormalizeArrangement(job.Description)
}

// phraseKey lowercases and reduces text to space-separated words for whole-word comparison.
func phraseKey(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	return strings.Join(words, " ")
}

// profilePlaces returns the place phrases to look for: each configured location string and its
// leading segment (the city or metro in "Austin, TX").
func profilePlaces(profile *types.Profile) []string {
	var places []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := phraseKey(s)
		if key == "" || key == "remote" || seen[key] {
			return
		}
		seen[key] = true
		places = append(places, key)
	}
	for _, loc := range []string{profile.Location, profile.TargetMarket} {
		if strings.TrimSpace(loc) == "" {
			continue
		}
		add(loc)
		if i := strings.IndexAny(loc, ",;/"); i > 0 {
			add(loc[:i])
		}
	}
	return places
}

// locationMatch reports whether both sides know a location and whether they agree.
func locationMatch(profile *types.Profile, job *types.JobResult) (known, matched bool) {
	places := profilePlaces(profile)
	jobLoc := phraseKey(job.Location)
	if len(places) == 0 || jobLoc == "" {
		return false, false
	}
	padded := " " + jobLoc + " "
	for _, p := range places {
		if strings.Contains(padded, " "+p+" ") {
			return true, true
		}
	}
	return true, false
}

// LocationScore scores the posting's arrangement and location against the profile's preferences.
func LocationScore(profile *types.Profile, job *types.JobResult) float64 {
	if len(profile.Arrangement) == 0 {
		return NeutralScore
	}

	arrangement := JobArrangement(job)
	switch arrangement {
	case "":
		return NeutralScore
	case types.ArrangementRemote:
		if profile.PrefersArrangement(types.ArrangementRemote) {
			return locationMatchScore
		}
		return locationRemoteFallback
	}

	known, matched := locationMatch(profile, job)
	if profile.PrefersArrangement(arrangement) {
		switch {
		case !known:
			return locationUnknownScore
		case matched:
			return locationMatchScore
		default:
			return locationMismatchScore
		}
	}
	if matched {
		return locationCommutableScore
	}
	return locationIncompatibleScore
}
