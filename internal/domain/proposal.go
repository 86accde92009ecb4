package domain

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is the primary business record enriched before it is saved.
// Nullable columns are pointers; Description is never nil once stored.
type Proposal struct {
	ID                uuid.UUID  `db:"id"`
	OpportunityNumber *string    `db:"opportunity_number"`
	ProposedBy        *string    `db:"proposed_by"`
	ProposalName      *string    `db:"proposal_name"`
	ClientName        *string    `db:"client_name"`
	Value             *float64   `db:"value"`
	PStatus           *string    `db:"pstatus"`
	Description       RichText   `db:"description"`
	ChooseEmployee    *uuid.UUID `db:"choose_employee"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// ProposalData is the mutable payload of a pending create or update.
// A nil field means "not supplied"; on update it leaves the stored value alone.
// Lifecycle hooks mutate it in place before it is persisted.
type ProposalData struct {
	OpportunityNumber *string
	ProposedBy        *string
	ProposalName      *string
	ClientName        *string
	Value             *float64
	PStatus           *string
	Description       RichText
	ChooseEmployee    *uuid.UUID
}

// ApplyOpportunity overwrites all five opportunity-derived fields at once.
func (d *ProposalData) ApplyOpportunity(o Opportunity) {
	name, client, status, value := o.ProposalName, o.ClientName, o.Status, o.Value
	d.ProposalName = &name
	d.ClientName = &client
	d.Value = &value
	d.PStatus = &status
	d.Description = ToRichText(o.Description)
}

// NewProposal builds a Proposal from the payload. A missing description
// becomes a single empty paragraph.
func (d ProposalData) NewProposal(id uuid.UUID, now time.Time) Proposal {
	p := Proposal{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.ApplyTo(&p)
	if p.Description == nil {
		p.Description = ToRichText("")
	}
	return p
}

// ApplyTo copies every supplied field onto p.
func (d ProposalData) ApplyTo(p *Proposal) {
	if d.OpportunityNumber != nil {
		p.OpportunityNumber = d.OpportunityNumber
	}
	if d.ProposedBy != nil {
		p.ProposedBy = d.ProposedBy
	}
	if d.ProposalName != nil {
		p.ProposalName = d.ProposalName
	}
	if d.ClientName != nil {
		p.ClientName = d.ClientName
	}
	if d.Value != nil {
		p.Value = d.Value
	}
	if d.PStatus != nil {
		p.PStatus = d.PStatus
	}
	if d.Description != nil {
		p.Description = d.Description
	}
	if d.ChooseEmployee != nil {
		p.ChooseEmployee = d.ChooseEmployee
	}
}

// FirstNonEmpty returns the first non-nil, non-empty string among the
// candidates, or "" when there is none.
func FirstNonEmpty(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}
