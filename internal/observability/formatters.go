// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobscore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the loaded profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Name))
	}
	sb.WriteString(fmt.Sprintf("Core skills: %s\n", strings.Join(profile.CoreSkills, ", ")))
	if len(profile.SecondarySkills) > 0 {
		sb.WriteString(fmt.Sprintf("Secondary:   %s\n", strings.Join(profile.SecondarySkills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Titles:      %s\n", strings.Join(profile.TargetTitles, ", ")))
	if profile.Level != "" {
		sb.WriteString(fmt.Sprintf("Level:       %s\n", profile.Level))
	}
	if len(profile.Arrangement) > 0 {
		sb.WriteString(fmt.Sprintf("Arrangement: %s\n", strings.Join(profile.Arrangement, ", ")))
	}
	if profile.CompFloor != nil {
		sb.WriteString(fmt.Sprintf("Comp floor:  %.0f\n", *profile.CompFloor))
	}
	sb.WriteString(fmt.Sprintf("Staffing:    %s\n", profile.Staffing()))

	w := profile.Weights()
	sb.WriteString("\nWeights:\n")
	sb.WriteString(fmt.Sprintf("  skills %.2f  title %.2f  seniority %.2f\n", w.SkillMatch(), w.TitleRelevance(), w.Seniority()))
	sb.WriteString(fmt.Sprintf("  location %.2f  domain %.2f  response %.2f", w.Location(), w.DomainFit(), w.ResponseLikelihood()))

	p.printBox("PROFILE", sb.String())
}

// PrintScore outputs the component breakdown of a single score.
func (p *Printer) PrintScore(job *types.JobResult, result *types.ScoreResult) {
	if job == nil || result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("%s\n", job.Company))
	}
	sb.WriteString("\n")

	if result.HasDealbreaker() {
		sb.WriteString(fmt.Sprintf("Dealbreaker: %q\n", result.Dealbreaker))
		sb.WriteString(fmt.Sprintf("Overall:     %.2f", result.Overall))
		p.printBox("SCORE", sb.String())
		return
	}

	for _, c := range []struct {
		name  string
		score float64
	}{
		{"Skill match", result.SkillMatch},
		{"Title", result.TitleRelevance},
		{"Seniority", result.Seniority},
		{"Location", result.Location},
		{"Domain fit", result.DomainFit},
		{"Response", result.ResponseLikelihood},
	} {
		sb.WriteString(fmt.Sprintf("%-12s %.2f %s\n", c.name, c.score, bar(c.score)))
	}
	sb.WriteString(fmt.Sprintf("%-12s %.2f", "Overall", result.Overall))
	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched:     %s", strings.Join(result.MatchedSkills, ", ")))
	}
	if result.Notes != "" {
		sb.WriteString(fmt.Sprintf("\n\n%s", result.Notes))
	}

	p.printBox("SCORE", sb.String())
}

// bar renders a score in [0, 5] as a ten-cell gauge.
func bar(score float64) string {
	filled := int(score*2 + 0.5)
	filled = max(0, min(filled, 10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintRanking outputs the top N scored jobs.
func (p *Printer) PrintRanking(scored []types.ScoredJob) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs scored: %d\n\n", len(scored)))

	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scored[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Job.Title))
		sb.WriteString(fmt.Sprintf("    %s  Score: %.2f\n", s.Job.Company, s.Score.Overall))
		if len(s.Score.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(s.Score.MatchedSkills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(scored)-maxItemsToShow))
	}

	p.printBox("TOP SCORED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// RunSummary counts what happened to the jobs of one scoring run.
type RunSummary struct {
	Total        int
	BelowFloor   int
	Dealbreakers int
	BelowMin     int
	Kept         int
}

// PrintRunSummary outputs the job counts of a scoring run.
func (p *Printer) PrintRunSummary(s RunSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs loaded:           %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("Below comp floor:      %d\n", s.BelowFloor))
	sb.WriteString(fmt.Sprintf("Dealbreakers:          %d\n", s.Dealbreakers))
	sb.WriteString(fmt.Sprintf("Below minimum score:   %d\n", s.BelowMin))
	sb.WriteString(fmt.Sprintf("Kept:                  %d", s.Kept))

	p.printBox("RUN SUMMARY", sb.String())
}
