package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileSchema = filepath.Join("..", "..", "schemas", "profile.schema.json")
	jobsSchema    = filepath.Join("..", "..", "schemas", "job_results.schema.json")
)

func TestValidateCommand_Success(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate", "--schema", profileSchema, "--json", validProfile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	_, stderr, err := executeCommand(t, "validate", "--schema", jobsSchema, "--json", testdataDir+"/invalid/jobs_wrong_type.json")
	require.Error(t, err)
	assert.Contains(t, stderr, "Validation failed")
	assert.Contains(t, stderr, "company")
}

func TestValidateCommand_SchemaByName(t *testing.T) {
	stdout, _, err := executeCommand(t, "validate", "--schema", "profile.schema.json", "--json", validProfile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")
}

func TestValidateCommand_MissingSchema(t *testing.T) {
	_, _, err := executeCommand(t, "validate", "--schema", "missing.schema.json", "--json", validProfile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateCommand_Stdin(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantInErr string
	}{
		{
			name:  "valid job list",
			input: `[{"title": "Backend Engineer", "company": "Acme"}]`,
		},
		{
			name:      "company with wrong type",
			input:     `[{"title": "Backend Engineer", "company": 42}]`,
			wantErr:   true,
			wantInErr: "company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeCommandWithInput(t, tt.input, "validate", "--schema", "job_results.schema.json", "--json", "-")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, stderr, "Validation failed")
				assert.Contains(t, stderr, tt.wantInErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, "Validation passed: stdin")
		})
	}
}

func TestValidateCommand_MissingFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Missing --schema", []string{"validate", "--json", validProfile}},
		{"Missing --json", []string{"validate", "--schema", profileSchema}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
		})
	}
}

func TestValidateCommand_ExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", jobsSchema, "--json", filepath.Join("..", "..", "testdata", "invalid", "jobs_wrong_type.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}
