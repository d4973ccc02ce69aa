package skills

import (
	"fmt"
	"strings"
	"sync"
)

// VariantDef declares a canonical skill and its equivalent surface forms.
type VariantDef struct {
	Canonical string   `yaml:"canonical" json:"canonical"`
	Variants  []string `yaml:"variants" json:"variants"`
}

type variantEntry struct {
	canonical string
	variants  []string
	rules     []MatchRule
}

// VariantTable maps normalized skill keys to their surface variants.
// It is read-only after construction and safe for concurrent use.
type VariantTable struct {
	entries map[string]*variantEntry
	aliases map[string]*variantEntry
}

// defaultVariants lists the built-in skill variants. Values keep their original punctuation
// because match rule construction depends on it.
var defaultVariants = []VariantDef{
	{Canonical: "Python", Variants: []string{"python", "python3", "py3"}},
	{Canonical: "Kubernetes", Variants: []string{"kubernetes", "k8s", "kube"}},
	{Canonical: "Go", Variants: []string{"go", "golang"}},
	{Canonical: "JavaScript", Variants: []string{"javascript", "js", "ecmascript", "es6"}},
	{Canonical: "TypeScript", Variants: []string{"typescript", "ts"}},
	{Canonical: "Node.js", Variants: []string{"node.js", "nodejs"}},
	{Canonical: "React", Variants: []string{"react", "react.js", "reactjs"}},
	{Canonical: "Vue", Variants: []string{"vue", "vue.js", "vuejs"}},
	{Canonical: "Angular", Variants: []string{"angular", "angularjs"}},
	{Canonical: "C#", Variants: []string{"c#", "csharp", "c sharp"}},
	{Canonical: "C++", Variants: []string{"c++", "cpp"}},
	{Canonical: "C", Variants: []string{"c"}},
	{Canonical: "R", Variants: []string{"r", "rlang"}},
	{Canonical: ".NET", Variants: []string{".net", "dotnet", "asp.net"}},
	{Canonical: "Java", Variants: []string{"java", "jvm"}},
	{Canonical: "PostgreSQL", Variants: []string{"postgresql", "postgres", "psql"}},
	{Canonical: "MySQL", Variants: []string{"mysql", "mariadb"}},
	{Canonical: "MongoDB", Variants: []string{"mongodb", "mongo"}},
	{Canonical: "AWS", Variants: []string{"aws", "amazon web services"}},
	{Canonical: "GCP", Variants: []string{"gcp", "google cloud", "google cloud platform"}},
	{Canonical: "Azure", Variants: []string{"azure", "microsoft azure"}},
	{Canonical: "Docker", Variants: []string{"docker", "dockerfile"}},
	{Canonical: "Terraform", Variants: []string{"terraform", "hcl"}},
	{Canonical: "CI/CD", Variants: []string{"ci/cd", "cicd", "continuous integration", "continuous delivery"}},
	{Canonical: "Machine Learning", Variants: []string{"machine learning", "ml"}},
	{Canonical: "Artificial Intelligence", Variants: []string{"artificial intelligence", "ai"}},
	{Canonical: "Natural Language Processing", Variants: []string{"natural language processing", "nlp"}},
	{Canonical: "Amazon Redshift", Variants: []string{"amazon redshift", "redshift"}},
	{Canonical: "Elasticsearch", Variants: []string{"elasticsearch", "elastic search", "opensearch"}},
	{Canonical: "GraphQL", Variants: []string{"graphql", "gql"}},
	{Canonical: "REST", Variants: []string{"rest", "restful", "rest api"}},
	{Canonical: "Microservices", Variants: []string{"microservices", "micro-services", "microservice"}},
	{Canonical: "Apache Kafka", Variants: []string{"apache kafka", "kafka"}},
	{Canonical: "Apache Spark", Variants: []string{"apache spark", "spark", "pyspark"}},
	{Canonical: "Scikit-learn", Variants: []string{"scikit-learn", "sklearn"}},
	{Canonical: "TensorFlow", Variants: []string{"tensorflow", "tf2"}},
	{Canonical: "PyTorch", Variants: []string{"pytorch"}},
	{Canonical: "Ruby on Rails", Variants: []string{"ruby on rails", "rails"}},
	{Canonical: "Objective-C", Variants: []string{"objective-c", "objc"}},
	{Canonical: "UX Design", Variants: []string{"ux design", "ux", "user experience"}},
	{Canonical: "UI Design", Variants: []string{"ui design", "ui", "user interface"}},
	{Canonical: "Quality Assurance", Variants: []string{"quality assurance", "qa"}},
}

var (
	defaultTableOnce sync.Once
	defaultTable     *VariantTable
)

// DefaultVariantTable returns the built-in variant table. The table is built on first use and
// never modified afterwards.
func DefaultVariantTable() *VariantTable {
	defaultTableOnce.Do(func() {
		table, err := NewVariantTable(defaultVariants)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in variant table: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}

// NewVariantTable builds a table from the given definitions.
// Two canonical entries normalizing to the same key, or a variant normalizing to a key owned by
// another entry, is rejected instead of silently merging unrelated skills.
func NewVariantTable(defs []VariantDef) (*VariantTable, error) {
	t := &VariantTable{
		entries: make(map[string]*variantEntry, len(defs)),
		aliases: make(map[string]*variantEntry),
	}

	for _, def := range defs {
		key := Normalize(def.Canonical)
		if key == "" {
			return nil, &TableError{Message: "canonical skill name is empty"}
		}
		if existing, ok := t.entries[key]; ok {
			return nil, &TableError{
				Key:     key,
				Message: fmt.Sprintf("%q collides with %q", def.Canonical, existing.canonical),
			}
		}

		entry := &variantEntry{canonical: def.Canonical}
		seen := make(map[string]bool, len(def.Variants)+1)
		add := func(v string) {
			lower := strings.ToLower(strings.TrimSpace(v))
			if lower == "" || seen[lower] {
				return
			}
			seen[lower] = true
			entry.variants = append(entry.variants, strings.TrimSpace(v))
		}
		if !containsFold(def.Variants, def.Canonical) {
			add(def.Canonical)
		}
		for _, v := range def.Variants {
			add(v)
		}
		entry.rules = make([]MatchRule, 0, len(entry.variants))
		for _, v := range entry.variants {
			entry.rules = append(entry.rules, BuildMatchRule(v))
		}
		t.entries[key] = entry
	}

	// Aliases are registered after all canonical keys so that a variant can never shadow
	// another entry's canonical key regardless of declaration order.
	for key, entry := range t.entries {
		for _, v := range entry.variants {
			alias := Normalize(v)
			if alias == key {
				continue
			}
			if owner, ok := t.entries[alias]; ok && owner != entry {
				return nil, &TableError{
					Key:     alias,
					Message: fmt.Sprintf("variant %q of %q collides with canonical skill %q", v, entry.canonical, owner.canonical),
				}
			}
			if owner, ok := t.aliases[alias]; ok && owner != entry {
				return nil, &TableError{
					Key:     alias,
					Message: fmt.Sprintf("variant %q is claimed by both %q and %q", v, owner.canonical, entry.canonical),
				}
			}
			t.aliases[alias] = entry
		}
	}

	return t, nil
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func (t *VariantTable) find(skill string) *variantEntry {
	if t == nil {
		return nil
	}
	key := Normalize(skill)
	if key == "" {
		return nil
	}
	if entry, ok := t.entries[key]; ok {
		return entry
	}
	return t.aliases[key]
}

// Lookup returns the surface variants for a skill, or nil if the skill is unknown.
// The query is normalized first, so "NodeJS", "node.js" and "node js" resolve to the same entry.
// The returned slice must not be modified.
func (t *VariantTable) Lookup(skill string) []string {
	entry := t.find(skill)
	if entry == nil {
		return nil
	}
	return entry.variants
}

// Canonical returns the canonical display name for a skill or one of its variants.
func (t *VariantTable) Canonical(skill string) (string, bool) {
	entry := t.find(skill)
	if entry == nil {
		return "", false
	}
	return entry.canonical, true
}

// Len returns the number of canonical entries.
func (t *VariantTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
