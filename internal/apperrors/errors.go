package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition indicates a status change the lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidField describes a field that was present but rejected.
type InvalidField struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports why a submission was rejected. It wraps ErrValidation.
type ValidationError struct {
	Kind    string         `json:"kind"`
	Missing []string       `json:"missing,omitempty"`
	Invalid []InvalidField `json:"invalid,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		invalid := make([]string, len(e.Invalid))
		for i, f := range e.Invalid {
			invalid[i] = fmt.Sprintf("%s (%s)", f.Field, f.Reason)
		}
		parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: %s log rejected", ErrValidation.Error(), e.Kind)
	}
	return fmt.Sprintf("%s: %s log: %s", ErrValidation.Error(), e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HasProblems reports whether any field was missing or invalid.
func (e *ValidationError) HasProblems() bool {
	return len(e.Missing) > 0 || len(e.Invalid) > 0
}
