// Package types provides type definitions for the profiles, job postings and scores handled by the jobscore system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Work arrangements a profile can prefer and a job can offer.
const (
	ArrangementRemote = "remote"
	ArrangementHybrid = "hybrid"
	ArrangementOnsite = "onsite"
)

// StaffingPreference controls how postings from staffing firms are adjusted after weighting.
type StaffingPreference string

// Staffing preferences.
const (
	StaffingBoost    StaffingPreference = "boost"
	StaffingNeutral  StaffingPreference = "neutral"
	StaffingPenalize StaffingPreference = "penalize"
)

// Profile is the candidate's search configuration
type Profile struct {
	Name               string             `json:"name,omitempty" yaml:"name,omitempty"`
	CoreSkills         []string           `json:"core_skills" yaml:"core_skills" validate:"required,min=1,dive,required"`
	SecondarySkills    []string           `json:"secondary_skills,omitempty" yaml:"secondary_skills,omitempty" validate:"dive,required"`
	TargetTitles       []string           `json:"target_titles" yaml:"target_titles" validate:"required,min=1,dive,required"`
	Level              string             `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,seniority_level"`
	YearsExperience    *int               `json:"years_experience,omitempty" yaml:"years_experience,omitempty" validate:"omitempty,gte=0"`
	Arrangement        []string           `json:"arrangement,omitempty" yaml:"arrangement,omitempty" validate:"dive,oneof=remote hybrid onsite"`
	Location           string             `json:"location,omitempty" yaml:"location,omitempty"`
	TargetMarket       string             `json:"target_market,omitempty" yaml:"target_market,omitempty"`
	DomainExpertise    []string           `json:"domain_expertise,omitempty" yaml:"domain_expertise,omitempty"`
	Dealbreakers       []string           `json:"dealbreakers,omitempty" yaml:"dealbreakers,omitempty"`
	CompFloor          *float64           `json:"comp_floor,omitempty" yaml:"comp_floor,omitempty" validate:"omitempty,gte=0"`
	ScoringWeights     ScoringWeights     `json:"scoring_weights,omitempty" yaml:"scoring_weights,omitempty"`
	StaffingPreference StaffingPreference `json:"staffing_preference,omitempty" yaml:"staffing_preference,omitempty" validate:"omitempty,oneof=boost neutral penalize"`
}

var profileValidator = newProfileValidator()

func newProfileValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("seniority_level", func(fl validator.FieldLevel) bool {
		_, ok := ParseLevel(fl.Field().String())
		return ok
	}); err != nil {
		panic(fmt.Sprintf("failed to register seniority_level validation: %v", err))
	}
	return v
}

// Validate checks the profile's shape. Scoring weights are validated when they are constructed
// or decoded, so a Profile can never hold an invalid non-zero weight set.
func (p *Profile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return &ProfileError{Message: strings.Join(msgs, "; "), Cause: err}
		}
		return &ProfileError{Message: "validation failed", Cause: err}
	}
	return nil
}

// Weights returns the effective scoring weights.
func (p *Profile) Weights() ScoringWeights {
	return p.ScoringWeights.OrDefault()
}

// Staffing returns the effective staffing preference; unset means neutral.
func (p *Profile) Staffing() StaffingPreference {
	if p.StaffingPreference == "" {
		return StaffingNeutral
	}
	return p.StaffingPreference
}

// PrefersArrangement reports whether the profile lists the given arrangement.
func (p *Profile) PrefersArrangement(arrangement string) bool {
	for _, a := range p.Arrangement {
		if strings.EqualFold(strings.TrimSpace(a), arrangement) {
			return true
		}
	}
	return false
}
