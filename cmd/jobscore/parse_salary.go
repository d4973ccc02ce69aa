package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscore/internal/parsing"
)

var parseSalaryCmd = &cobra.Command{
	Use:   "parse-salary <text>...",
	Short: "Parse salary strings into annual amounts",
	Long:  "Parses each argument as a free-text salary and prints its annual-equivalent amount. Hourly rates are annualized at 2080 hours.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParseSalary,
}

var salaryFloor float64

func init() {
	parseSalaryCmd.Flags().Float64Var(&salaryFloor, "floor", 0, "Also report whether each salary meets this compensation floor")

	rootCmd.AddCommand(parseSalaryCmd)
}

func runParseSalary(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var floor *float64
	if cmd.Flags().Changed("floor") {
		floor = &salaryFloor
	}

	for _, text := range args {
		value, ok := parsing.ParseSalary(text)
		if !ok {
			_, _ = fmt.Fprintf(out, "%q: no salary found\n", text)
			continue
		}
		if floor == nil {
			_, _ = fmt.Fprintf(out, "%q: %.0f\n", text, value)
			continue
		}
		verdict := "meets floor"
		if !parsing.MeetsFloor(text, floor) {
			verdict = "below floor"
		}
		_, _ = fmt.Fprintf(out, "%q: %.0f (%s)\n", text, value, verdict)
	}
	return nil
}
