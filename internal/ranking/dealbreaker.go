package ranking

import "strings"

// FindDealbreaker returns the first dealbreaker phrase, in profile order, that occurs in jobText.
// Matching is a case-insensitive substring search; phrases are free text, so "on-site" matches
// inside "strictly on-site only". Blank phrases are ignored.
func FindDealbreaker(jobText string, dealbreakers []string) (string, bool) {
	if len(dealbreakers) == 0 || jobText == "" {
		return "", false
	}

	text := strings.ToLower(jobText)
	for _, phrase := range dealbreakers {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		if normalized == "" {
			continue
		}
		if strings.Contains(text, normalized) {
			return phrase, true
		}
	}
	return "", false
}
