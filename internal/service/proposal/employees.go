package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// GetEmployee returns a locally stored employee by ID.
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns a page of employees ordered by name, and the total count.
func (s *Service) ListEmployees(ctx context.Context, input ListInput) ([]domain.Employee, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.employees.List(ctx, input.limit(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	return items, total, nil
}
