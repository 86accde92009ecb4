package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/service/proposal"
)

type employeeService interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context, input proposal.ListInput) ([]domain.Employee, int, error)
}

// EmployeeHandler serves the read-only /api/employees endpoints.
type EmployeeHandler struct {
	svc employeeService
	log *slog.Logger
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(svc employeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: logger.With("handler", "employee")}
}

type employeeResponse struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	Email        string    `json:"email"`
	JobTitle     string    `json:"jobTitle"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Get handles GET /api/employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(*e))
}

// List handles GET /api/employees?limit=&offset=.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListEmployees(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]employeeResponse, len(items))
	for i, e := range items {
		out[i] = toEmployeeResponse(e)
	}

	writeJSON(w, http.StatusOK, listResponse[employeeResponse]{
		Items:  out,
		Total:  total,
		Limit:  effectiveLimit(input.Limit),
		Offset: input.Offset,
	})
}

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:           e.ID.String(),
		EmployeeName: e.EmployeeName,
		Email:        e.Email,
		JobTitle:     e.JobTitle,
		Department:   e.Department,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
