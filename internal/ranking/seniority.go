package ranking

import (
	"regexp"
	"strconv"

	"github.com/jonathan/jobscore/internal/types"
)

// titleLevelCues are checked in order; the first match wins so that "Senior Staff Engineer"
// resolves to staff and "Lead Data Scientist" to staff rather than a lower tier.
var titleLevelCues = []struct {
	level   types.Level
	pattern *regexp.Regexp
}{
	{types.LevelExecutive, regexp.MustCompile(`(?i)\b(director|vp|vice president|head of|chief|cto|cio)\b`)},
	{types.LevelPrincipal, regexp.MustCompile(`(?i)\b(principal|distinguished|fellow|architect)\b`)},
	{types.LevelStaff, regexp.MustCompile(`(?i)\b(staff|lead)\b`)},
	{types.LevelSenior, regexp.MustCompile(`(?i)\b(senior|sr|iii)\b`)},
	{types.LevelEntry, regexp.MustCompile(`(?i)\b(junior|jr|intern|internship|entry[- ]level|graduate|new grad|associate)\b`)},
	{types.LevelMid, regexp.MustCompile(`(?i)\b(mid[- ]level|intermediate|ii)\b`)},
}

var yearsRequiredPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:(?:-|to)\s*\d{1,2}\s*\+?\s*)?(?:years|yrs)\b`)

func profileLevel(profile *types.Profile) types.Level {
	if lvl, ok := types.ParseLevel(profile.Level); ok {
		return lvl
	}
	if profile.YearsExperience != nil {
		return types.LevelFromYears(*profile.YearsExperience)
	}
	return types.LevelUnknown
}

// DetectJobLevel infers a posting's seniority from title cues, falling back to the first
// "N+ years" requirement in the description.
func DetectJobLevel(job *types.JobResult) types.Level {
	for _, cue := range titleLevelCues {
		if cue.pattern.MatchString(job.Title) {
			return cue.level
		}
	}

	if m := yearsRequiredPattern.FindStringSubmatch(job.Description); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			return types.LevelFromYears(years)
		}
	}
	return types.LevelUnknown
}

// SeniorityScore compares the profile's tier with the posting's detected tier.
// Same tier 5.0, one apart 3.5, two apart 2.0, further 1.0. Unknown on either side is neutral.
func SeniorityScore(profile *types.Profile, job *types.JobResult) float64 {
	want := profileLevel(profile)
	if want == types.LevelUnknown {
		return NeutralScore
	}
	got := DetectJobLevel(job)
	if got == types.LevelUnknown {
		return NeutralScore
	}

	distance := int(want) - int(got)
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return MaxScore
	case 1:
		return 3.5
	case 2:
		return 2.0
	default:
		return MinScore
	}
}
