package validators

import (
	"fmt"
	"strings"
)

// Validator provides comprehensive validation functionality for the
// itinerary solve request before it ever reaches the solver boundary.
type Validator struct {
	sanitizer *Sanitizer
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		sanitizer: NewSanitizer(),
	}
}

// ValidationError represents a validation error with field information
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements error interface
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// AddError adds a validation error
func (ve *ValidationErrors) AddError(field, message string) {
	*ve = append(*ve, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// SolveRequestInput mirrors the solver input described in spec §6, ahead
// of any unit conversion (start_time/end_time are still hours here).
type SolveRequestInput struct {
	Budget      float64
	StartTime   float64
	EndTime     float64
	StartNodeID int
	Interests   map[string]int
}

// ValidateSolveRequest validates a complete itinerary solve request and
// returns every violation found, so the HTTP facade can surface a single
// 422 response carrying the full set of field errors (spec §6, §7
// InvalidInput kind).
func (v *Validator) ValidateSolveRequest(req SolveRequestInput) error {
	errs := ValidationErrors{}

	if err := ValidateBudget(req.Budget); err != nil {
		errs.AddError("budget", err.Error())
	}

	if err := ValidateTimeWindow(req.StartTime, req.EndTime); err != nil {
		errs.AddError("end_time", err.Error())
	}

	if req.Interests == nil {
		errs.AddError("interests", ErrInvalidCategorySet.Error())
	} else if err := ValidateInterests(req.Interests); err != nil {
		errs.AddError("interests", err.Error())
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SanitizeInterestKeys runs every interests-map category key through the
// sanitizer before it is matched against the known category enum, so a
// stray zero-width character or extra whitespace picked up in transit
// doesn't turn a legitimate category name into an unrecognized one.
func (v *Validator) SanitizeInterestKeys(interests map[string]int) map[string]int {
	if interests == nil {
		return nil
	}

	clean := make(map[string]int, len(interests))
	for cat, star := range interests {
		clean[v.sanitizer.SanitizeInput(cat)] = star
	}
	return clean
}
