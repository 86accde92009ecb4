package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrOpportunityFetch   = errors.New("opportunity fetch failed")
	ErrEmployeeResolution = errors.New("employee resolution failed")
)

// DefaultOpportunityFetchMessage is used when the opportunity API gives no reason.
const DefaultOpportunityFetchMessage = "failed to fetch opportunity details"

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// OpportunityFetchError reports that opportunity details could not be copied
// onto a proposal: the API said no, answered with something unreadable, or
// could not be reached at all.
type OpportunityFetchError struct {
	OpportunityNumber string
	Message           string
	Err               error
}

// NewOpportunityFetchError builds an OpportunityFetchError, falling back to
// DefaultOpportunityFetchMessage when message is empty.
func NewOpportunityFetchError(number, message string, cause error) *OpportunityFetchError {
	if message == "" {
		message = DefaultOpportunityFetchMessage
	}
	return &OpportunityFetchError{OpportunityNumber: number, Message: message, Err: cause}
}

func (e *OpportunityFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("opportunity %s: %s: %v", e.OpportunityNumber, e.Message, e.Err)
	}
	return fmt.Sprintf("opportunity %s: %s", e.OpportunityNumber, e.Message)
}

// Unwrap exposes both ErrOpportunityFetch and the underlying cause.
func (e *OpportunityFetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOpportunityFetch}
	}
	return []error{ErrOpportunityFetch, e.Err}
}

// EmployeeResolutionError reports a failure while searching for, looking up
// or creating the employee named in a proposal's "proposed by" field.
type EmployeeResolutionError struct {
	ProposedBy string
	Stage      string
	Err        error
}

func (e *EmployeeResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve employee %q: %s", e.ProposedBy, e.Stage)
	}
	return fmt.Sprintf("resolve employee %q: %s: %v", e.ProposedBy, e.Stage, e.Err)
}

// Unwrap exposes both ErrEmployeeResolution and the underlying cause.
func (e *EmployeeResolutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEmployeeResolution}
	}
	return []error{ErrEmployeeResolution, e.Err}
}
