package skills

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// ambiguousTokens are skill tokens that commonly occur inside ordinary words
// ("go" in "google", "r" in "server", "java" in "javascript") and always need word boundaries.
var ambiguousTokens = map[string]bool{
	"c":     true,
	"r":     true,
	"d":     true,
	"v":     true,
	"go":    true,
	"ai":    true,
	"ml":    true,
	"ui":    true,
	"ux":    true,
	"qa":    true,
	"ts":    true,
	"js":    true,
	"net":   true,
	"rest":  true,
	"rails": true,
	"java":  true,
	"scala": true,
	"rust":  true,
	"dart":  true,
	"swift": true,
}

var wordOnly = regexp.MustCompile(`^\w+$`)

// MatchRule is a compiled, case-insensitive matcher for a single skill or variant string.
type MatchRule struct {
	token    string
	anchored bool
	re       *regexp.Regexp
}

// Anchored tokens must not touch a word character or one of '#', '+', '.' on either side, so
// "c" stays out of "C#" and "C++" and "js" stays out of "Node.js". A trailing '.' that ends a
// sentence still counts as a boundary.
const (
	anchorBefore = `(?:^|[^\w#+.])`
	anchorAfter  = `(?:$|[^\w#+.]|\.(?:$|\W))`
)

// BuildMatchRule builds the match rule for a token.
//
// Word-boundary anchoring is applied to known ambiguous tokens and to tokens of at most two
// word characters. Short tokens containing symbols such as "c#" or "c++" are matched literally:
// a boundary next to a symbol would make them unmatchable.
func BuildMatchRule(token string) MatchRule {
	token = strings.TrimSpace(token)
	if token == "" {
		return MatchRule{}
	}

	lower := strings.ToLower(token)
	anchored := ambiguousTokens[lower] ||
		(utf8.RuneCountInString(lower) <= 2 && wordOnly.MatchString(lower))

	pattern := regexp.QuoteMeta(lower)
	if anchored {
		pattern = anchorBefore + pattern + anchorAfter
	}

	return MatchRule{
		token:    token,
		anchored: anchored,
		re:       regexp.MustCompile(`(?i)` + pattern),
	}
}

// Matches reports whether the rule's token occurs in text.
func (r MatchRule) Matches(text string) bool {
	if r.re == nil || text == "" {
		return false
	}
	return r.re.MatchString(text)
}

// Token returns the token the rule was built from.
func (r MatchRule) Token() string { return r.token }

// Anchored reports whether the rule requires word boundaries.
func (r MatchRule) Anchored() bool { return r.anchored }

// IsAmbiguous reports whether token is in the fixed ambiguous short-token set.
func IsAmbiguous(token string) bool {
	return ambiguousTokens[strings.ToLower(strings.TrimSpace(token))]
}

var ruleCache sync.Map

// cachedRule returns the rule for token, compiling it on first use.
func cachedRule(token string) MatchRule {
	key := strings.TrimSpace(token)
	if r, ok := ruleCache.Load(key); ok {
		return r.(MatchRule)
	}
	r, _ := ruleCache.LoadOrStore(key, BuildMatchRule(key))
	return r.(MatchRule)
}

// BuildSkillRules returns match rules for a skill and every variant the table knows for it.
// Variant rules are compiled when the table is built; the skill's own rule is compiled once per
// distinct spelling. Duplicate tokens (case-insensitive) appear once.
func (t *VariantTable) BuildSkillRules(skill string) []MatchRule {
	own := strings.ToLower(strings.TrimSpace(skill))
	if own == "" {
		return nil
	}

	entry := t.find(skill)
	if entry == nil {
		return []MatchRule{cachedRule(skill)}
	}

	rules := make([]MatchRule, 0, len(entry.rules)+1)
	rules = append(rules, cachedRule(skill))
	for _, r := range entry.rules {
		if strings.ToLower(r.Token()) == own {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}
