package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a locally persisted staff member. Email is unique.
type Employee struct {
	ID           uuid.UUID `db:"id"`
	EmployeeName string    `db:"employee_name"`
	Email        string    `db:"email"`
	JobTitle     string    `db:"job_title"`
	Department   string    `db:"department"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// EmployeeSearchHit is a candidate employee returned by the search index.
type EmployeeSearchHit struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
}

// ToEmployee builds a new Employee from a search hit, copying
// name, email, role and department. Name and email are normalized.
func (h EmployeeSearchHit) ToEmployee(id uuid.UUID, now time.Time) Employee {
	return Employee{
		ID:           id,
		EmployeeName: NormalizeName(h.Name),
		Email:        NormalizeEmail(h.Email),
		JobTitle:     h.Role,
		Department:   h.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
