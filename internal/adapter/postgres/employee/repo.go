// Package employee implements the Employee repository using PostgreSQL.
package employee

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/proposal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proposal-backend/internal/domain"
)

const table = "employees"

var columns = []string{"id", "employee_name", "email", "job_title", "department", "created_at", "updated_at"}

// upsertSuffix turns a duplicate email into a no-op update so the existing
// row is returned unchanged. xmax is zero only for freshly inserted tuples.
const upsertSuffix = `ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, employee_name, email, job_title, department, created_at, updated_at, (xmax = 0) AS inserted`

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new employee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type upsertRow struct {
	domain.Employee
	Inserted bool `db:"inserted"`
}

// Upsert inserts e unless an employee with the same email already exists,
// in which case the stored row is returned untouched. The bool reports
// whether a new row was created.
func (r *Repo) Upsert(ctx context.Context, e domain.Employee) (*domain.Employee, bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.EmployeeName, e.Email, e.JobTitle, e.Department, e.CreatedAt, e.UpdatedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build upsert employee: %w", err)
	}

	var row upsertRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, false, postgres.MapError(err, "employee", e.Email)
	}

	return &row.Employee, row.Inserted, nil
}

// GetByID returns an employee by primary key.
// Returns domain.ErrNotFound if no employee has that id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.Employee, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get employee: %w", err)
	}

	var e domain.Employee
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &e, query, args...); err != nil {
		return nil, postgres.MapError(err, "employee", key)
	}

	return &e, nil
}

// List returns a page of employees ordered by name together with the total count.
// Returns an empty slice (not nil) when there are no employees.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Employee, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("employee_name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list employees: %w", err)
	}

	employees := []domain.Employee{}
	if err := pgxscan.Select(ctx, q, &employees, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	return employees, total, nil
}
