// Package parsing provides parsing of free-text job posting fields.
package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HoursPerYear is the full-time hours used to annualize hourly rates.
const HoursPerYear = 2080

var (
	// first numeric token: comma-grouped or plain digits, optional decimals, optional k suffix
	salaryNumberPattern = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+|\d+)(\.\d+)?(\s*k\b)?`)
	hourlyPattern       = regexp.MustCompile(`(?i)(/\s*(?:hr|hour|h)\b|\bper\s+hour\b|\bhourly\b|\ban\s+hour\b|\bph\b)`)
)

// ParseSalary extracts an annual-equivalent amount from a free-text compensation string.
// Only the first number is used, so ranges resolve to their lower bound. Hourly rates are
// multiplied by HoursPerYear. The second return value is false when nothing could be parsed.
func ParseSalary(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	m := salaryNumberPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	digits := strings.ReplaceAll(m[1], ",", "") + m[2]
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}

	if strings.TrimSpace(m[3]) != "" {
		value *= 1000
	}
	if hourlyPattern.MatchString(text) {
		value *= HoursPerYear
	}

	return value, true
}

// MeetsFloor reports whether a salary string satisfies a compensation floor.
// A nil floor or an unparseable salary passes: unknown compensation is not a reason to drop a job.
func MeetsFloor(salary string, floor *float64) bool {
	if floor == nil {
		return true
	}
	value, ok := ParseSalary(salary)
	if !ok {
		return true
	}
	return value >= *floor
}
