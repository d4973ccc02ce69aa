package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatchRule_Anchoring(t *testing.T) {
	tests := []struct {
		token    string
		anchored bool
	}{
		{"c", true},
		{"r", true},
		{"go", true},
		{"java", true},
		{"k8", true},
		{"c#", false},
		{"c++", false},
		{"f#", false},
		{"python", false},
		{"k8s", false},
		{"node.js", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.anchored, BuildMatchRule(tt.token).Anchored())
		})
	}
}

func TestMatchRule_AmbiguousTokensNeedWholeWords(t *testing.T) {
	tests := []struct {
		name  string
		token string
		text  string
		want  bool
	}{
		{"go inside google", "go", "We are hiring at Google", false},
		{"go standalone", "go", "Strong Go experience", true},
		{"go with punctuation", "go", "Languages: Go, Rust", true},
		{"c inside architecture", "c", "microservice architecture", false},
		{"c standalone", "c", "Embedded C and assembly", true},
		{"r inside server", "r", "server side rendering", false},
		{"r standalone", "R", "Statistics in R or Python", true},
		{"java inside javascript", "java", "Modern JavaScript", false},
		{"java standalone", "java", "Java 17 backend", true},
		{"ml inside html", "ml", "HTML and CSS", false},
		{"rest inside interest", "rest", "interest in APIs", false},
		{"c before hash", "c", "Experience with C# required", false},
		{"c before plus", "c", "Modern C++17 codebase", false},
		{"c before slash", "c", "C/C++ firmware", true},
		{"js after dot", "js", "Backend in Node.js", false},
		{"net after dot", "net", "ASP.NET MVC", false},
		{"go ends sentence", "go", "We write Go.", true},
		{"go before dotted word", "go", "Edit go.mod files", false},
		{"go at start", "go", "Go, Rust and Python", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMatchRule(tt.token).Matches(tt.text))
		})
	}
}

func TestMatchRule_SymbolTokensMatchLiterally(t *testing.T) {
	tests := []struct {
		name  string
		token string
		text  string
		want  bool
	}{
		{"c# in sentence", "c#", "Experience with C# required", true},
		{"c# at end", "c#", "Languages: C#", true},
		{"c++ with version", "c++", "Modern C++17 codebase", true},
		{"c++ standalone", "C++", "c++ and rust", true},
		{"c# absent", "c#", "Experience with C required", false},
		{"dotted token", "node.js", "Backend in Node.js and Postgres", true},
		{"dot is literal", "node.js", "nodexjs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMatchRule(tt.token).Matches(tt.text))
		})
	}
}

func TestMatchRule_PlainTokensMatchSubstrings(t *testing.T) {
	assert.True(t, BuildMatchRule("python").Matches("Python3 scripting"))
	assert.True(t, BuildMatchRule("k8s").Matches("Deploying to K8S clusters"))
	assert.True(t, BuildMatchRule("Amazon Web Services").Matches("amazon web services (AWS)"))
}

func TestMatchRule_EmptyInputs(t *testing.T) {
	assert.False(t, BuildMatchRule("").Matches("anything"))
	assert.False(t, BuildMatchRule("python").Matches(""))
	assert.False(t, MatchRule{}.Matches("python"))
}

func TestIsAmbiguous(t *testing.T) {
	assert.True(t, IsAmbiguous("Go"))
	assert.True(t, IsAmbiguous(" c "))
	assert.False(t, IsAmbiguous("c#"))
	assert.False(t, IsAmbiguous("python"))
}

func TestBuildSkillRules(t *testing.T) {
	rules := DefaultVariantTable().BuildSkillRules("Kubernetes")

	tokens := make([]string, 0, len(rules))
	for _, r := range rules {
		tokens = append(tokens, r.Token())
	}
	assert.Equal(t, []string{"Kubernetes", "k8s", "kube"}, tokens)

	rules = DefaultVariantTable().BuildSkillRules("Haskell")
	assert.Len(t, rules, 1)
	assert.Equal(t, "Haskell", rules[0].Token())

	assert.Empty(t, DefaultVariantTable().BuildSkillRules("  "))
}

func TestBuildSkillRules_ReusesCompiledRules(t *testing.T) {
	table := DefaultVariantTable()

	first := table.BuildSkillRules("k8s")
	second := table.BuildSkillRules("k8s")
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i].re, second[i].re, first[i].Token())
	}

	assert.Equal(t, []string{"k8s", "kubernetes", "kube"}, func() []string {
		tokens := make([]string, 0, len(first))
		for _, r := range first {
			tokens = append(tokens, r.Token())
		}
		return tokens
	}())
}
