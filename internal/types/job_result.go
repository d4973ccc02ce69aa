package types

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

// SourceKind classifies where a posting came from.
type SourceKind int

// Source kinds.
const (
	SourceDirect SourceKind = iota
	SourceStaffing
)

func (k SourceKind) String() string {
	if k == SourceStaffing {
		return "staffing"
	}
	return "direct"
}

// staffingTermPattern finds generic staffing and recruiting wording in a source or company name.
var staffingTermPattern = regexp.MustCompile(`(?i)\b(?:staffing|recruit\w*|talent acquisition|talent solutions)\b`)

// staffingFirms are staffing and recruiting firms recognized by name.
var staffingFirms = []string{
	"robert half",
	"teksystems",
	"randstad",
	"adecco",
	"insight global",
	"kforce",
	"aerotek",
	"manpower",
	"manpowergroup",
	"apex systems",
	"cybercoders",
	"hays",
	"modis",
	"akkodis",
	"motion recruitment",
	"jobot",
}

// staffingBoards are job boards whose listings come mostly from agencies. Only a posting's
// source can name one; a company called "Dice" is not a job board.
var staffingBoards = []string{
	"dice",
}

// staffingSourcePattern matches a firm or board name as a whole word inside a source identifier
// such as "dice" or "teksystems-careers".
var staffingSourcePattern = func() *regexp.Regexp {
	names := make([]string, 0, len(staffingFirms)+len(staffingBoards))
	for _, n := range append(append([]string{}, staffingFirms...), staffingBoards...) {
		names = append(names, strings.ReplaceAll(regexp.QuoteMeta(n), " ", `[\s_-]?`))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(names, "|") + `)\b`)
}()

// companySuffixes are dropped from the end of a company name before comparing it with a firm name.
var companySuffixes = map[string]bool{
	"inc": true, "llc": true, "ltd": true, "plc": true, "corp": true, "corporation": true,
	"co": true, "company": true, "group": true, "international": true, "usa": true, "us": true,
}

// companyKey lowercases a company name, drops punctuation and trailing corporate suffixes,
// and removes spaces so that "TEK systems, Inc." and "TEKsystems" compare equal.
func companyKey(company string) string {
	words := strings.FieldsFunc(strings.ToLower(company), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for len(words) > 1 && companySuffixes[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, "")
}

// isStaffingFirm reports whether the whole company name is a known staffing firm.
func isStaffingFirm(company string) bool {
	key := companyKey(company)
	if key == "" {
		return false
	}
	for _, firm := range staffingFirms {
		if key == strings.ReplaceAll(firm, " ", "") {
			return true
		}
	}
	return false
}

// ClassifySource derives the source kind from a posting's source identifier and company name.
// Sources match firm and board names as words. Companies match generic staffing wording or
// must be a known firm by their whole name, so "Hays Prejudice Labs" stays direct.
func ClassifySource(source, company string) SourceKind {
	switch {
	case staffingTermPattern.MatchString(source), staffingTermPattern.MatchString(company):
		return SourceStaffing
	case staffingSourcePattern.MatchString(source):
		return SourceStaffing
	case isStaffingFirm(company):
		return SourceStaffing
	default:
		return SourceDirect
	}
}

// JobResult is one job posting
type JobResult struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Arrangement    string `json:"arrangement,omitempty"`
	Salary         string `json:"salary,omitempty"`
	DatePosted     string `json:"date_posted,omitempty"`
	Description    string `json:"description"`
	URL            string `json:"url,omitempty"`
	Source         string `json:"source,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`

	// SourceKind is derived from Source and Company when the JobResult is built or decoded.
	SourceKind SourceKind `json:"-"`
}

// NewJobResult returns a copy of job with its source kind classified.
func NewJobResult(job JobResult) JobResult {
	job.SourceKind = ClassifySource(job.Source, job.Company)
	return job
}

// UnmarshalJSON decodes a job posting and classifies its source.
func (j *JobResult) UnmarshalJSON(data []byte) error {
	type plain JobResult
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*j = NewJobResult(JobResult(decoded))
	return nil
}

// IsStaffing reports whether the posting came from a staffing firm.
func (j *JobResult) IsStaffing() bool {
	return j.SourceKind == SourceStaffing
}

// SearchText returns every free-text field of the posting joined for phrase searches.
func (j *JobResult) SearchText() string {
	parts := []string{j.Title, j.Company, j.Location, j.Arrangement, j.EmploymentType, j.Salary, j.Description}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
