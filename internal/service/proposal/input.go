package proposal

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

const (
	maxTextLength        = 255
	maxDescriptionLength = 10000

	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ProposalInput is a create payload or an update patch. A nil field is not
// supplied. Description is plain text; it is stored as rich text.
type ProposalInput struct {
	OpportunityNumber *string
	ProposedBy        *string
	ProposalName      *string
	ClientName        *string
	Value             *float64
	PStatus           *string
	Description       *string
}

// Validate checks all fields and collects all errors.
func (i ProposalInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"opportunity_number", i.OpportunityNumber},
		{"proposed_by", i.ProposedBy},
		{"proposal_name", i.ProposalName},
		{"client_name", i.ClientName},
		{"pstatus", i.PStatus},
	} {
		if f.value != nil && len(*f.value) > maxTextLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: fmt.Sprintf("max %d characters", maxTextLength)})
		}
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toData converts the input into the mutable payload the hooks work on.
// Identifier fields are trimmed; blank ones count as not supplied.
func (i ProposalInput) toData() domain.ProposalData {
	d := domain.ProposalData{
		OpportunityNumber: trimOrNil(i.OpportunityNumber),
		ProposedBy:        trimOrNil(i.ProposedBy),
		ProposalName:      i.ProposalName,
		ClientName:        i.ClientName,
		Value:             i.Value,
		PStatus:           i.PStatus,
	}
	if i.Description != nil {
		d.Description = domain.ToRichText(*i.Description)
	}
	return d
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// ListInput holds pagination parameters. A zero Limit means DefaultListLimit.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return DefaultListLimit
	}
	return i.Limit
}
