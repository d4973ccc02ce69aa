package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVariantTable_Builds(t *testing.T) {
	table := DefaultVariantTable()
	require.NotNil(t, table)
	assert.Equal(t, len(defaultVariants), table.Len())
	assert.Same(t, table, DefaultVariantTable(), "default table should be built once")
}

func TestVariantTable_Lookup(t *testing.T) {
	table := DefaultVariantTable()

	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"canonical name", "Kubernetes", "k8s"},
		{"lowercase canonical", "kubernetes", "k8s"},
		{"alias resolves to entry", "k8s", "kubernetes"},
		{"dotted form", "node.js", "nodejs"},
		{"spaced form", "node js", "node.js"},
		{"camel form", "NodeJS", "node.js"},
		{"symbol skill", "C#", "csharp"},
		{"alias with space", "c sharp", "c#"},
		{"golang alias", "Golang", "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := table.Lookup(tt.query)
			assert.Contains(t, variants, tt.contains)
		})
	}
}

func TestVariantTable_LookupKeepsSurfaceForms(t *testing.T) {
	variants := DefaultVariantTable().Lookup("Node.js")
	assert.Equal(t, []string{"node.js", "nodejs"}, variants)
}

func TestVariantTable_LookupUnknown(t *testing.T) {
	table := DefaultVariantTable()
	assert.Empty(t, table.Lookup("COBOL"))
	assert.Empty(t, table.Lookup(""))

	var nilTable *VariantTable
	assert.Empty(t, nilTable.Lookup("python"))
	assert.Equal(t, 0, nilTable.Len())
}

func TestVariantTable_C_And_CSharpAreSeparate(t *testing.T) {
	table := DefaultVariantTable()
	assert.Equal(t, []string{"c"}, table.Lookup("C"))
	assert.NotContains(t, table.Lookup("C#"), "c")
}

func TestVariantTable_Canonical(t *testing.T) {
	table := DefaultVariantTable()

	name, ok := table.Canonical("k8s")
	assert.True(t, ok)
	assert.Equal(t, "Kubernetes", name)

	name, ok = table.Canonical("POSTGRES")
	assert.True(t, ok)
	assert.Equal(t, "PostgreSQL", name)

	_, ok = table.Canonical("fortran")
	assert.False(t, ok)
}

func TestNewVariantTable_AddsCanonicalWhenMissing(t *testing.T) {
	table, err := NewVariantTable([]VariantDef{
		{Canonical: "Kubernetes", Variants: []string{"k8s"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kubernetes", "k8s"}, table.Lookup("kubernetes"))
}

func TestNewVariantTable_RejectsCanonicalCollision(t *testing.T) {
	_, err := NewVariantTable([]VariantDef{
		{Canonical: "Node.js", Variants: []string{"node.js"}},
		{Canonical: "Node JS", Variants: []string{"node js"}},
	})
	require.Error(t, err)

	var tableErr *TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, "nodejs", tableErr.Key)
	assert.Contains(t, err.Error(), "collides")
}

func TestNewVariantTable_RejectsVariantShadowingCanonical(t *testing.T) {
	_, err := NewVariantTable([]VariantDef{
		{Canonical: "Go", Variants: []string{"golang"}},
		{Canonical: "Golang Tools", Variants: []string{"go"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides with canonical skill")
}

func TestNewVariantTable_RejectsSharedVariant(t *testing.T) {
	_, err := NewVariantTable([]VariantDef{
		{Canonical: "Apache Spark", Variants: []string{"spark"}},
		{Canonical: "Spark AR", Variants: []string{"spark"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claimed by both")
}

func TestNewVariantTable_RejectsEmptyCanonical(t *testing.T) {
	_, err := NewVariantTable([]VariantDef{{Canonical: " . ", Variants: []string{"x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
