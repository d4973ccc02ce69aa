// Package profile loads candidate profiles from JSON or YAML files.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/jobscore/internal/schemas"
	"github.com/jonathan/jobscore/internal/types"
	schemafiles "github.com/jonathan/jobscore/schemas"
	"gopkg.in/yaml.v3"
)

// Format is a profile file encoding.
type Format string

// Supported profile formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Anything other than .yaml or .yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadProfile reads, schema-checks, decodes, normalizes and validates a profile file.
func LoadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return ParseProfile(content, FormatForPath(path))
}

// ParseProfile decodes profile content in the given format. Scoring weights are validated
// while decoding, so an invalid weight set is rejected here rather than at scoring time.
func ParseProfile(content []byte, format Format) (*types.Profile, error) {
	document, err := toJSON(content, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateDocument(schemafiles.Profile, document); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var p types.Profile
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &p)
	default:
		err = json.Unmarshal(content, &p)
	}
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to decode %s profile", format),
			Cause:   err,
		}
	}

	Normalize(&p)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// toJSON returns content as a JSON document for schema validation.
func toJSON(content []byte, format Format) ([]byte, error) {
	if format != FormatYAML {
		return content, nil
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to convert YAML to JSON",
			Cause:   err,
		}
	}
	return out, nil
}
