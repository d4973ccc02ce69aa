package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscore/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long: `Validates a JSON document against a JSON Schema file, such as the schemas in the schemas/ directory.

--schema may name a file directly or by its name under schemas/ (for example profile.schema.json).
Pass --json - to read the document from stdin.`,
	RunE: runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path or schemas/ name of JSON Schema file (required)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON document, or - for stdin (required)")

	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

// resolveSchema returns path unchanged when it exists, otherwise the first match found by
// schemas.ResolveSchemaPath for the path itself or for the path under schemas/.
func resolveSchema(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if resolved := schemas.ResolveSchemaPath(path); resolved != "" {
		return resolved
	}
	if resolved := schemas.ResolveSchemaPath(filepath.Join("schemas", path)); resolved != "" {
		return resolved
	}
	return path
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath := resolveSchema(validateSchemaPath)

	var err error
	source := validateJSONPath
	if validateJSONPath == "-" {
		source = "stdin"
		err = validateStdin(cmd.InOrStdin(), schemaPath)
	} else {
		err = schemas.ValidateJSON(schemaPath, validateJSONPath)
	}
	if err == nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", source)
		return nil
	}

	stderr := cmd.ErrOrStderr()
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(stderr, "Validation failed:\n")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(stderr, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed")
	}
	return err
}

func validateStdin(in io.Reader, schemaPath string) error {
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	document, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read JSON from stdin: %w", err)
	}
	return schemas.ValidateJSONString(string(schemaContent), string(document))
}
