package proposal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// OpportunityEnricher copies opportunity details onto a proposal payload.
type OpportunityEnricher struct {
	fetcher opportunityFetcher
}

// NewOpportunityEnricher creates an OpportunityEnricher.
func NewOpportunityEnricher(fetcher opportunityFetcher) *OpportunityEnricher {
	return &OpportunityEnricher{fetcher: fetcher}
}

// Enrich fetches the opportunity and overwrites proposalName, clientName,
// value, pstatus and description on data. Either all five fields are
// written or none are. An empty number is a no-op reported as applied=false.
func (e *OpportunityEnricher) Enrich(ctx context.Context, number string, data *domain.ProposalData) (applied bool, err error) {
	if number == "" {
		return false, nil
	}

	opp, err := e.fetcher.FetchOpportunity(ctx, number)
	if err != nil {
		var fetchErr *domain.OpportunityFetchError
		if errors.As(err, &fetchErr) {
			return false, err
		}
		return false, domain.NewOpportunityFetchError(number, "", err)
	}
	if opp == nil {
		return false, domain.NewOpportunityFetchError(number, "", nil)
	}

	data.ApplyOpportunity(*opp)
	return true, nil
}

// EmployeeResolver links a proposal to the local employee matching its
// free-text "proposed by" value, creating the employee on first sight.
type EmployeeResolver struct {
	searcher  employeeSearcher
	employees employeeRepo
	log       *slog.Logger
	newID     func() uuid.UUID
	now       func() time.Time
}

// NewEmployeeResolver creates an EmployeeResolver.
func NewEmployeeResolver(log *slog.Logger, searcher employeeSearcher, employees employeeRepo) *EmployeeResolver {
	return &EmployeeResolver{
		searcher:  searcher,
		employees: employees,
		log:       log.With("component", "employee_resolver"),
		newID:     uuid.New,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ResolveResult says what Resolve did.
type ResolveResult int

const (
	ResolveSkipped ResolveResult = iota // proposedBy was empty
	ResolveNoMatch                      // search found nobody; chooseEmployee untouched
	ResolveLinked                       // chooseEmployee set
)

// Resolve searches for proposedBy and, on a hit, upserts the employee by
// email and sets data.ChooseEmployee. With no hit it logs a warning and
// leaves data.ChooseEmployee as it was. Errors are *domain.EmployeeResolutionError.
func (r *EmployeeResolver) Resolve(ctx context.Context, proposedBy string, data *domain.ProposalData) (ResolveResult, error) {
	if proposedBy == "" {
		return ResolveSkipped, nil
	}

	hit, err := r.searcher.FindEmployee(ctx, proposedBy)
	if err != nil {
		var resErr *domain.EmployeeResolutionError
		if errors.As(err, &resErr) {
			return ResolveSkipped, err
		}
		return ResolveSkipped, &domain.EmployeeResolutionError{ProposedBy: proposedBy, Stage: "search", Err: err}
	}
	if hit == nil {
		r.log.WarnContext(ctx, "no employee found for proposed_by", slog.String("proposed_by", proposedBy))
		return ResolveNoMatch, nil
	}

	emp, created, err := r.employees.Upsert(ctx, hit.ToEmployee(r.newID(), r.now()))
	if err != nil {
		return ResolveSkipped, &domain.EmployeeResolutionError{ProposedBy: proposedBy, Stage: "upsert", Err: err}
	}
	if created {
		r.log.InfoContext(ctx, "employee created from search hit",
			slog.String("employee_id", emp.ID.String()),
			slog.String("email", emp.Email),
		)
	}

	id := emp.ID
	data.ChooseEmployee = &id
	return ResolveLinked, nil
}
