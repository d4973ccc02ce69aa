package skills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultVariantDefs returns a copy of the built-in variant definitions.
func DefaultVariantDefs() []VariantDef {
	defs := make([]VariantDef, len(defaultVariants))
	for i, d := range defaultVariants {
		defs[i] = VariantDef{
			Canonical: d.Canonical,
			Variants:  append([]string(nil), d.Variants...),
		}
	}
	return defs
}

// LoadVariantDefs reads additional variant definitions from a YAML file shaped as
//
//   - canonical: Snowflake
//     variants: [snowflake db, snowsql]
func LoadVariantDefs(path string) ([]VariantDef, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variants file %s: %w", path, err)
	}

	var defs []VariantDef
	if err := yaml.Unmarshal(content, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse variants file %s: %w", path, err)
	}
	return defs, nil
}

// NewVariantTableWithExtras builds a table from the built-in definitions followed by extra.
// Extras that collide with a built-in entry are rejected like any other collision.
func NewVariantTableWithExtras(extra []VariantDef) (*VariantTable, error) {
	if len(extra) == 0 {
		return DefaultVariantTable(), nil
	}
	return NewVariantTable(append(DefaultVariantDefs(), extra...))
}
