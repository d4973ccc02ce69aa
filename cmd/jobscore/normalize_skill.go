package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscore/internal/skills"
)

var normalizeSkillCmd = &cobra.Command{
	Use:   "normalize-skill <skill>...",
	Short: "Show how skills are normalized and matched",
	Long:  "Prints each skill's normalized key, its canonical name, the variants searched for it and whether it is matched on word boundaries.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalizeSkill,
}

var normalizeVariants string

func init() {
	normalizeSkillCmd.Flags().StringVar(&normalizeVariants, "variants", "", "YAML file of extra skill variants")

	rootCmd.AddCommand(normalizeSkillCmd)
}

func runNormalizeSkill(cmd *cobra.Command, args []string) error {
	table := skills.DefaultVariantTable()
	if normalizeVariants != "" {
		extra, err := skills.LoadVariantDefs(normalizeVariants)
		if err != nil {
			return err
		}
		table, err = skills.NewVariantTableWithExtras(extra)
		if err != nil {
			return fmt.Errorf("invalid skill variants in %s: %w", normalizeVariants, err)
		}
	}

	out := cmd.OutOrStdout()
	for _, skill := range args {
		canonical, known := table.Canonical(skill)
		if !known {
			canonical = "(unknown)"
		}

		rules := table.BuildSkillRules(skill)
		terms := make([]string, 0, len(rules))
		for _, r := range rules {
			term := r.Token()
			if r.Anchored() {
				term += " [word]"
			}
			terms = append(terms, term)
		}

		_, _ = fmt.Fprintf(out, "%s\n", skill)
		_, _ = fmt.Fprintf(out, "  normalized: %s\n", skills.Normalize(skill))
		_, _ = fmt.Fprintf(out, "  canonical:  %s\n", canonical)
		_, _ = fmt.Fprintf(out, "  matches:    %s\n", strings.Join(terms, ", "))
	}
	return nil
}
