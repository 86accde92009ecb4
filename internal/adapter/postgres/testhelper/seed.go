package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEmployee inserts an employee with a unique email.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Employee{
		ID:           uuid.New(),
		EmployeeName: "Employee " + suffix,
		Email:        "employee-" + suffix + "@example.com",
		JobTitle:     "Engineer",
		Department:   "Delivery",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (id, employee_name, email, job_title, department, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.EmployeeName, e.Email, e.JobTitle, e.Department, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}

	return e
}

// SeedProposal inserts a proposal carrying an opportunity number and proposer.
func SeedProposal(t *testing.T, pool *pgxpool.Pool) domain.Proposal {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	number := "OPP-" + suffix
	proposedBy := "Proposer " + suffix
	p := domain.Proposal{
		ID:                uuid.New(),
		OpportunityNumber: &number,
		ProposedBy:        &proposedBy,
		Description:       domain.ToRichText(""),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO proposals (id, opportunity_number, proposed_by, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.OpportunityNumber, p.ProposedBy, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProposal: %v", err)
	}

	return p
}
