package proposal

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/metrics"
)

// Enrichment step and operation label values.
const (
	StepOpportunity = "opportunity"
	StepEmployee    = "employee"

	OperationCreate = "create"
	OperationUpdate = "update"
)

// Hooks are the lifecycle entry points run before a proposal is saved.
type Hooks struct {
	opportunity *OpportunityEnricher
	employee    *EmployeeResolver
	metrics     enrichmentRecorder
	log         *slog.Logger
}

// NewHooks creates Hooks. rec may be nil.
func NewHooks(log *slog.Logger, opportunity *OpportunityEnricher, employee *EmployeeResolver, rec enrichmentRecorder) *Hooks {
	if rec == nil {
		rec = (*metrics.Metrics)(nil)
	}
	return &Hooks{
		opportunity: opportunity,
		employee:    employee,
		metrics:     rec,
		log:         log.With("component", "proposal_hooks"),
	}
}

// UpdateReport carries the enrichment errors swallowed by BeforeUpdate.
type UpdateReport struct {
	OpportunityErr error
	EmployeeErr    error
}

// OK reports whether both steps finished without error.
func (r UpdateReport) OK() bool {
	return r.OpportunityErr == nil && r.EmployeeErr == nil
}

// BeforeCreate enriches data from the opportunity API and then links the
// proposing employee. The first failure aborts and is returned; the caller
// must not persist the proposal.
func (h *Hooks) BeforeCreate(ctx context.Context, data *domain.ProposalData) error {
	if err := h.enrichOpportunity(ctx, OperationCreate, domain.FirstNonEmpty(data.OpportunityNumber), data); err != nil {
		return err
	}
	return h.resolveEmployee(ctx, OperationCreate, domain.FirstNonEmpty(data.ProposedBy), data)
}

// BeforeUpdate runs the same steps as BeforeCreate against the pending
// patch. An opportunity number or proposer missing from the patch is taken
// from stored. Failures are logged and returned in the report, never as an
// error: the update always proceeds.
func (h *Hooks) BeforeUpdate(ctx context.Context, stored *domain.Proposal, data *domain.ProposalData) UpdateReport {
	number := domain.FirstNonEmpty(data.OpportunityNumber, stored.OpportunityNumber)
	proposedBy := domain.FirstNonEmpty(data.ProposedBy, stored.ProposedBy)

	var report UpdateReport

	if err := h.enrichOpportunity(ctx, OperationUpdate, number, data); err != nil {
		h.log.WarnContext(ctx, "opportunity enrichment failed, update continues",
			slog.String("proposal_id", stored.ID.String()),
			slog.String("opportunity_number", number),
			slog.String("error", err.Error()),
		)
		report.OpportunityErr = err
	}

	if err := h.resolveEmployee(ctx, OperationUpdate, proposedBy, data); err != nil {
		h.log.WarnContext(ctx, "employee resolution failed, update continues",
			slog.String("proposal_id", stored.ID.String()),
			slog.String("proposed_by", proposedBy),
			slog.String("error", err.Error()),
		)
		report.EmployeeErr = err
	}

	return report
}

func (h *Hooks) enrichOpportunity(ctx context.Context, op, number string, data *domain.ProposalData) error {
	applied, err := h.opportunity.Enrich(ctx, number, data)
	switch {
	case err != nil:
		h.metrics.RecordEnrichment(StepOpportunity, op, metrics.OutcomeFailure)
	case !applied:
		h.metrics.RecordEnrichment(StepOpportunity, op, metrics.OutcomeSkipped)
	default:
		h.metrics.RecordEnrichment(StepOpportunity, op, metrics.OutcomeSuccess)
	}
	return err
}

func (h *Hooks) resolveEmployee(ctx context.Context, op, proposedBy string, data *domain.ProposalData) error {
	res, err := h.employee.Resolve(ctx, proposedBy, data)
	switch {
	case err != nil:
		h.metrics.RecordEnrichment(StepEmployee, op, metrics.OutcomeFailure)
	case res == ResolveNoMatch:
		h.metrics.RecordEnrichment(StepEmployee, op, metrics.OutcomeNoMatch)
	case res == ResolveSkipped:
		h.metrics.RecordEnrichment(StepEmployee, op, metrics.OutcomeSkipped)
	default:
		h.metrics.RecordEnrichment(StepEmployee, op, metrics.OutcomeSuccess)
	}
	return err
}
