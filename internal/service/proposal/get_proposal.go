package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// GetProposal returns a proposal by ID.
func (s *Service) GetProposal(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	p, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

// ListProposals returns a page of proposals, newest first, and the total count.
func (s *Service) ListProposals(ctx context.Context, input ListInput) ([]domain.Proposal, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.proposals.List(ctx, input.limit(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list proposals: %w", err)
	}
	return items, total, nil
}
