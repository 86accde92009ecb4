package proposal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// CreateProposal enriches and stores a new proposal. Enrichment and the
// insert share one transaction, so an employee created along the way is
// rolled back if the proposal cannot be saved. Any enrichment error aborts
// the create.
func (s *Service) CreateProposal(ctx context.Context, input ProposalInput) (*domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	data := input.toData()

	var created *domain.Proposal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.hooks.BeforeCreate(ctx, &data); err != nil {
			return err
		}

		p, err := s.proposals.Create(ctx, data.NewProposal(uuid.New(), s.now()))
		if err != nil {
			return fmt.Errorf("create proposal: %w", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "proposal created",
		slog.String("proposal_id", created.ID.String()),
		slog.String("opportunity_number", domain.FirstNonEmpty(created.OpportunityNumber)),
	)

	return created, nil
}
