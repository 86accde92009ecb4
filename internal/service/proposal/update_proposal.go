package proposal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// UpdateProposal applies a patch to a stored proposal after running the
// update hooks. Enrichment failures are logged and never block the update.
//
// The hooks run outside a transaction: a failed employee upsert would
// otherwise abort the transaction the proposal update needs.
func (s *Service) UpdateProposal(ctx context.Context, id uuid.UUID, input ProposalInput) (*domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, _, err := s.update(ctx, id, input.toData())
	return updated, err
}

// ReenrichResult is the outcome of ReenrichProposal.
type ReenrichResult struct {
	Proposal *domain.Proposal
	Report   UpdateReport
}

// ReenrichProposal re-runs enrichment for a stored proposal using its own
// opportunity number and proposer, then saves it.
func (s *Service) ReenrichProposal(ctx context.Context, id uuid.UUID) (*ReenrichResult, error) {
	updated, report, err := s.update(ctx, id, domain.ProposalData{})
	if err != nil {
		return nil, err
	}
	return &ReenrichResult{Proposal: updated, Report: report}, nil
}

func (s *Service) update(ctx context.Context, id uuid.UUID, data domain.ProposalData) (*domain.Proposal, UpdateReport, error) {
	stored, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return nil, UpdateReport{}, fmt.Errorf("get proposal: %w", err)
	}

	report := s.hooks.BeforeUpdate(ctx, stored, &data)

	next := *stored
	data.ApplyTo(&next)
	next.UpdatedAt = s.now()

	updated, err := s.proposals.Update(ctx, next)
	if err != nil {
		return nil, report, fmt.Errorf("update proposal: %w", err)
	}

	s.log.InfoContext(ctx, "proposal updated",
		slog.String("proposal_id", id.String()),
		slog.Bool("enriched", report.OK()),
	)

	return updated, report, nil
}
