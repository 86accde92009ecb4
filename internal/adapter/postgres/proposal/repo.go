// Package proposal implements the Proposal repository using PostgreSQL.
package proposal

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/proposal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proposal-backend/internal/domain"
)

const table = "proposals"

var columns = []string{
	"id", "opportunity_number", "proposed_by", "proposal_name", "client_name",
	"value", "pstatus", "description", "choose_employee", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides proposal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new proposal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts p and returns the stored row.
// Returns domain.ErrNotFound if choose_employee references a missing employee.
func (r *Repo) Create(ctx context.Context, p domain.Proposal) (*domain.Proposal, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.OpportunityNumber, p.ProposedBy, p.ProposalName, p.ClientName,
			p.Value, p.PStatus, p.Description, p.ChooseEmployee, p.CreatedAt, p.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert proposal: %w", err)
	}

	var out domain.Proposal
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "proposal", p.ID)
	}

	return &out, nil
}

// Update overwrites every mutable column of the proposal identified by p.ID.
// Returns domain.ErrNotFound if the proposal does not exist.
func (r *Repo) Update(ctx context.Context, p domain.Proposal) (*domain.Proposal, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("opportunity_number", p.OpportunityNumber).
		Set("proposed_by", p.ProposedBy).
		Set("proposal_name", p.ProposalName).
		Set("client_name", p.ClientName).
		Set("value", p.Value).
		Set("pstatus", p.PStatus).
		Set("description", p.Description).
		Set("choose_employee", p.ChooseEmployee).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update proposal: %w", err)
	}

	var out domain.Proposal
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "proposal", p.ID)
	}

	return &out, nil
}

// GetByID returns a proposal by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get proposal: %w", err)
	}

	var p domain.Proposal
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.MapError(err, "proposal", id)
	}

	return &p, nil
}

// List returns a page of proposals, newest first, together with the total count.
// Returns an empty slice (not nil) when there are no proposals.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Proposal, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list proposals: %w", err)
	}

	proposals := []domain.Proposal{}
	if err := pgxscan.Select(ctx, q, &proposals, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list proposals: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count proposals: %w", err)
	}

	return proposals, total, nil
}
