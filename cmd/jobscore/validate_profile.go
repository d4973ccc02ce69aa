package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscore/internal/observability"
	"github.com/jonathan/jobscore/internal/profile"
)

var validateProfileCmd = &cobra.Command{
	Use:   "validate-profile",
	Short: "Check that a profile file can be used for scoring",
	Long:  "Loads a JSON or YAML profile, checks it against the profile schema, normalizes it and validates its fields and scoring weights.",
	RunE:  runValidateProfile,
}

var validateProfilePath string

func init() {
	validateProfileCmd.Flags().StringVarP(&validateProfilePath, "profile", "p", "", "Path to profile JSON or YAML file (required)")

	_ = validateProfileCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(validateProfileCmd)
}

func runValidateProfile(cmd *cobra.Command, _ []string) error {
	p, err := profile.LoadProfile(validateProfilePath)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Profile is invalid: %v\n", err)
		return fmt.Errorf("profile validation failed")
	}

	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(p)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile is valid: %s\n", validateProfilePath)
	return nil
}
