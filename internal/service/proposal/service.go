// Package proposal enriches proposals with opportunity and employee data
// before they are persisted, and exposes proposal and employee reads.
package proposal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

type opportunityFetcher interface {
	FetchOpportunity(ctx context.Context, number string) (*domain.Opportunity, error)
}

type employeeSearcher interface {
	FindEmployee(ctx context.Context, query string) (*domain.EmployeeSearchHit, error)
}

type employeeRepo interface {
	Upsert(ctx context.Context, e domain.Employee) (*domain.Employee, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, limit, offset int) ([]domain.Employee, int, error)
}

type proposalRepo interface {
	Create(ctx context.Context, p domain.Proposal) (*domain.Proposal, error)
	Update(ctx context.Context, p domain.Proposal) (*domain.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	List(ctx context.Context, limit, offset int) ([]domain.Proposal, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type enrichmentRecorder interface {
	RecordEnrichment(step, operation, outcome string)
}

// Service runs the enrichment hooks and persists proposals.
type Service struct {
	hooks     *Hooks
	proposals proposalRepo
	employees employeeRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new proposal service.
func NewService(
	log *slog.Logger,
	hooks *Hooks,
	proposals proposalRepo,
	employees employeeRepo,
	tx txManager,
) *Service {
	return &Service{
		hooks:     hooks,
		proposals: proposals,
		employees: employees,
		tx:        tx,
		log:       log.With("service", "proposal"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
