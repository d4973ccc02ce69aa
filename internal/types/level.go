package types

import "strings"

// Level is a seniority tier. Higher values are more senior.
type Level int

// Seniority tiers.
const (
	LevelUnknown Level = iota
	LevelEntry
	LevelMid
	LevelSenior
	LevelStaff
	LevelPrincipal
	LevelExecutive
)

var levelNames = map[string]Level{
	"intern":       LevelEntry,
	"entry":        LevelEntry,
	"junior":       LevelEntry,
	"associate":    LevelEntry,
	"mid":          LevelMid,
	"intermediate": LevelMid,
	"senior":       LevelSenior,
	"staff":        LevelStaff,
	"lead":         LevelStaff,
	"principal":    LevelPrincipal,
	"director":     LevelExecutive,
	"vp":           LevelExecutive,
	"head":         LevelExecutive,
	"executive":    LevelExecutive,
}

// ParseLevel maps a profile level label (including common aliases such as "junior" or "lead")
// to a tier.
func ParseLevel(label string) (Level, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.TrimSuffix(key, "-level")
	key = strings.TrimSuffix(key, " level")
	lvl, ok := levelNames[key]
	return lvl, ok
}

// LevelFromYears maps years of experience to a tier.
func LevelFromYears(years int) Level {
	switch {
	case years < 0:
		return LevelUnknown
	case years < 2:
		return LevelEntry
	case years < 5:
		return LevelMid
	case years < 8:
		return LevelSenior
	case years < 12:
		return LevelStaff
	default:
		return LevelPrincipal
	}
}

func (l Level) String() string {
	switch l {
	case LevelEntry:
		return "entry"
	case LevelMid:
		return "mid"
	case LevelSenior:
		return "senior"
	case LevelStaff:
		return "staff"
	case LevelPrincipal:
		return "principal"
	case LevelExecutive:
		return "executive"
	default:
		return "unknown"
	}
}
