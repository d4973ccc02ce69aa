package schemas_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jobscore/internal/schemas"
	schemafiles "github.com/jonathan/jobscore/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	schemafiles.Profile,
	schemafiles.JobResults,
	schemafiles.ScoreResults,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_Embedded(t *testing.T) {
	embedded, err := fs.Glob(schemafiles.Files, "*.schema.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, schemaFiles, embedded)

	for _, schemaFile := range schemaFiles {
		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		inBinary, err := fs.ReadFile(schemafiles.Files, schemaFile)
		require.NoError(t, err)
		assert.Equal(t, onDisk, inBinary)
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType, "schema should declare a type")
			assert.True(t, hasSchema, "schema should declare $schema")
		})
	}
}

func TestProfileSchema_Documents(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "minimal profile",
			doc:  `{"core_skills": ["Go"], "target_titles": ["Backend Engineer"]}`,
		},
		{
			name: "full profile",
			doc: `{
				"core_skills": ["Go", "Kubernetes"],
				"secondary_skills": ["Docker"],
				"target_titles": ["Backend Engineer"],
				"level": "senior",
				"years_experience": 7,
				"arrangement": ["remote", "hybrid"],
				"location": "Austin, TX",
				"dealbreakers": ["clearance"],
				"comp_floor": 150000,
				"scoring_weights": {
					"skill_match": 0.35, "title_relevance": 0.2, "seniority": 0.15,
					"location": 0.1, "domain_fit": 0.1, "response_likelihood": 0.1
				},
				"staffing_preference": "penalize"
			}`,
		},
		{
			name: "null weights",
			doc:  `{"core_skills": ["Go"], "target_titles": ["SRE"], "scoring_weights": null}`,
		},
		{
			name:    "missing core skills",
			doc:     `{"target_titles": ["SRE"]}`,
			wantErr: true,
		},
		{
			name:    "empty target titles",
			doc:     `{"core_skills": ["Go"], "target_titles": []}`,
			wantErr: true,
		},
		{
			name:    "weight below minimum",
			doc:     `{"core_skills": ["Go"], "target_titles": ["SRE"], "scoring_weights": {"skill_match": 0.01, "title_relevance": 0.2, "seniority": 0.15, "location": 0.1, "domain_fit": 0.1, "response_likelihood": 0.1}}`,
			wantErr: true,
		},
		{
			name:    "negative years",
			doc:     `{"core_skills": ["Go"], "target_titles": ["SRE"], "years_experience": -1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateDocument(schemafiles.Profile, []byte(tt.doc))
			if tt.wantErr {
				var validationErr *schemas.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobResultsSchema_Documents(t *testing.T) {
	assert.NoError(t, schemas.ValidateDocument(schemafiles.JobResults, []byte(`[{"title": "SRE", "company": "Acme"}]`)))
	assert.NoError(t, schemas.ValidateDocument(schemafiles.JobResults, []byte(`[]`)))
	assert.Error(t, schemas.ValidateDocument(schemafiles.JobResults, []byte(`{"title": "SRE"}`)))
	assert.Error(t, schemas.ValidateDocument(schemafiles.JobResults, []byte(`[{"company": "Acme"}]`)))
}
