package types

import (
	"fmt"
	"strings"
)

// WeightsError reports an invalid scoring weight set
type WeightsError struct {
	Problems []string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("invalid scoring weights: %s", strings.Join(e.Problems, "; "))
}

// ProfileError reports a structurally invalid profile
type ProfileError struct {
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}
