package types

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Component names used as scoring weight keys.
const (
	ComponentSkillMatch         = "skill_match"
	ComponentTitleRelevance     = "title_relevance"
	ComponentSeniority          = "seniority"
	ComponentLocation           = "location"
	ComponentDomainFit          = "domain_fit"
	ComponentResponseLikelihood = "response_likelihood"
)

// Weight bounds for a valid ScoringWeights.
const (
	MinWeight     = 0.05
	MaxWeight     = 1.0
	WeightEpsilon = 0.01
)

// ScoringWeights holds the weight of each of the six scoring components.
// The zero value means "not customized" and resolves to DefaultScoringWeights. A non-zero value
// can only be obtained through NewScoringWeights or by decoding, both of which validate.
type ScoringWeights struct {
	skillMatch         float64
	titleRelevance     float64
	seniority          float64
	location           float64
	domainFit          float64
	responseLikelihood float64
}

// DefaultScoringWeights returns the weights used when a profile does not customize them.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		skillMatch:         0.35,
		titleRelevance:     0.20,
		seniority:          0.15,
		location:           0.10,
		domainFit:          0.10,
		responseLikelihood: 0.10,
	}
}

// NewScoringWeights validates and returns a weight set.
// Each weight must lie in [MinWeight, MaxWeight] and the six must sum to 1.0 within WeightEpsilon.
// Invalid sets are rejected rather than renormalized.
func NewScoringWeights(skillMatch, titleRelevance, seniority, location, domainFit, responseLikelihood float64) (ScoringWeights, error) {
	w := ScoringWeights{
		skillMatch:         skillMatch,
		titleRelevance:     titleRelevance,
		seniority:          seniority,
		location:           location,
		domainFit:          domainFit,
		responseLikelihood: responseLikelihood,
	}
	if err := w.validate(); err != nil {
		return ScoringWeights{}, err
	}
	return w, nil
}

func (w ScoringWeights) validate() error {
	var problems []string
	sum := 0.0
	for _, c := range w.components() {
		if math.IsNaN(c.value) || c.value < MinWeight || c.value > MaxWeight {
			problems = append(problems, fmt.Sprintf("%s=%.4g is outside [%.2f, %.2f]", c.name, c.value, MinWeight, MaxWeight))
		}
		sum += c.value
	}
	if math.Abs(sum-1.0) > WeightEpsilon {
		problems = append(problems, fmt.Sprintf("weights sum to %.4g, want 1.0 ± %.2f", sum, WeightEpsilon))
	}
	if len(problems) > 0 {
		return &WeightsError{Problems: problems}
	}
	return nil
}

type weightComponent struct {
	name  string
	value float64
}

func (w ScoringWeights) components() []weightComponent {
	return []weightComponent{
		{ComponentSkillMatch, w.skillMatch},
		{ComponentTitleRelevance, w.titleRelevance},
		{ComponentSeniority, w.seniority},
		{ComponentLocation, w.location},
		{ComponentDomainFit, w.domainFit},
		{ComponentResponseLikelihood, w.responseLikelihood},
	}
}

// IsZero reports whether the weights were never customized.
func (w ScoringWeights) IsZero() bool {
	return w == ScoringWeights{}
}

// OrDefault returns w, or the default weights when w is the zero value.
func (w ScoringWeights) OrDefault() ScoringWeights {
	if w.IsZero() {
		return DefaultScoringWeights()
	}
	return w
}

// SkillMatch returns the skill match weight.
func (w ScoringWeights) SkillMatch() float64 { return w.skillMatch }

// TitleRelevance returns the title relevance weight.
func (w ScoringWeights) TitleRelevance() float64 { return w.titleRelevance }

// Seniority returns the seniority weight.
func (w ScoringWeights) Seniority() float64 { return w.seniority }

// Location returns the location weight.
func (w ScoringWeights) Location() float64 { return w.location }

// DomainFit returns the domain fit weight.
func (w ScoringWeights) DomainFit() float64 { return w.domainFit }

// ResponseLikelihood returns the response likelihood weight.
func (w ScoringWeights) ResponseLikelihood() float64 { return w.responseLikelihood }

// Map returns the weights keyed by component name.
func (w ScoringWeights) Map() map[string]float64 {
	out := make(map[string]float64, 6)
	for _, c := range w.components() {
		out[c.name] = c.value
	}
	return out
}

func scoringWeightsFromMap(m map[string]float64) (ScoringWeights, error) {
	known := map[string]bool{
		ComponentSkillMatch:         true,
		ComponentTitleRelevance:     true,
		ComponentSeniority:          true,
		ComponentLocation:           true,
		ComponentDomainFit:          true,
		ComponentResponseLikelihood: true,
	}

	var problems []string
	var unknown []string
	for k := range m {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		problems = append(problems, fmt.Sprintf("unknown component %q", k))
	}
	for _, name := range []string{
		ComponentSkillMatch, ComponentTitleRelevance, ComponentSeniority,
		ComponentLocation, ComponentDomainFit, ComponentResponseLikelihood,
	} {
		if _, ok := m[name]; !ok {
			problems = append(problems, fmt.Sprintf("missing component %q", name))
		}
	}
	if len(problems) > 0 {
		return ScoringWeights{}, &WeightsError{Problems: problems}
	}

	return NewScoringWeights(
		m[ComponentSkillMatch],
		m[ComponentTitleRelevance],
		m[ComponentSeniority],
		m[ComponentLocation],
		m[ComponentDomainFit],
		m[ComponentResponseLikelihood],
	)
}

// MarshalJSON encodes the weights as an object keyed by component name.
// Zero weights encode as null.
func (w ScoringWeights) MarshalJSON() ([]byte, error) {
	if w.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(w.Map())
}

// UnmarshalJSON decodes and validates a weight object. null and {} leave the weights unset.
func (w *ScoringWeights) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*w = ScoringWeights{}
		return nil
	}
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("scoring_weights: %w", err)
	}
	if len(m) == 0 {
		*w = ScoringWeights{}
		return nil
	}
	parsed, err := scoringWeightsFromMap(m)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalYAML encodes the weights as a mapping keyed by component name.
func (w ScoringWeights) MarshalYAML() (any, error) {
	if w.IsZero() {
		return nil, nil
	}
	return w.Map(), nil
}

// UnmarshalYAML decodes and validates a weight mapping.
func (w *ScoringWeights) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]float64
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("scoring_weights: %w", err)
	}
	if len(m) == 0 {
		*w = ScoringWeights{}
		return nil
	}
	parsed, err := scoringWeightsFromMap(m)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
