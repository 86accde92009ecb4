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

type proposalService interface {
	CreateProposal(ctx context.Context, input proposal.ProposalInput) (*domain.Proposal, error)
	UpdateProposal(ctx context.Context, id uuid.UUID, input proposal.ProposalInput) (*domain.Proposal, error)
	ReenrichProposal(ctx context.Context, id uuid.UUID) (*proposal.ReenrichResult, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListProposals(ctx context.Context, input proposal.ListInput) ([]domain.Proposal, int, error)
}

// ProposalHandler serves /api/proposals.
type ProposalHandler struct {
	svc proposalService
	log *slog.Logger
}

// NewProposalHandler creates a ProposalHandler.
func NewProposalHandler(svc proposalService, logger *slog.Logger) *ProposalHandler {
	return &ProposalHandler{svc: svc, log: logger.With("handler", "proposal")}
}

// proposalRequest is both the create body and the update patch.
// Omitted or null fields are not supplied.
type proposalRequest struct {
	OpportunityNumber *string  `json:"opportunityNumber"`
	ProposedBy        *string  `json:"proposedBy"`
	ProposalName      *string  `json:"proposalName"`
	ClientName        *string  `json:"clientName"`
	Value             *float64 `json:"value"`
	PStatus           *string  `json:"pstatus"`
	Description       *string  `json:"description"`
}

func (req proposalRequest) toInput() proposal.ProposalInput {
	return proposal.ProposalInput{
		OpportunityNumber: req.OpportunityNumber,
		ProposedBy:        req.ProposedBy,
		ProposalName:      req.ProposalName,
		ClientName:        req.ClientName,
		Value:             req.Value,
		PStatus:           req.PStatus,
		Description:       req.Description,
	}
}

type proposalResponse struct {
	ID                string          `json:"id"`
	OpportunityNumber *string         `json:"opportunityNumber"`
	ProposedBy        *string         `json:"proposedBy"`
	ProposalName      *string         `json:"proposalName"`
	ClientName        *string         `json:"clientName"`
	Value             *float64        `json:"value"`
	PStatus           *string         `json:"pstatus"`
	Description       domain.RichText `json:"description"`
	ChooseEmployee    *string         `json:"chooseEmployee"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type enrichmentStatus struct {
	OK          bool   `json:"ok"`
	Opportunity string `json:"opportunityError,omitempty"`
	Employee    string `json:"employeeError,omitempty"`
}

type reenrichResponse struct {
	Proposal   proposalResponse `json:"proposal"`
	Enrichment enrichmentStatus `json:"enrichment"`
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Create handles POST /api/proposals.
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreateProposal(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/proposals/"+p.ID.String())
	writeJSON(w, http.StatusCreated, toProposalResponse(*p))
}

// Update handles PUT /api/proposals/{id}.
func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req proposalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdateProposal(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProposalResponse(*p))
}

// Reenrich handles POST /api/proposals/{id}/enrich.
func (h *ProposalHandler) Reenrich(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ReenrichProposal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := enrichmentStatus{OK: res.Report.OK()}
	if res.Report.OpportunityErr != nil {
		status.Opportunity = res.Report.OpportunityErr.Error()
	}
	if res.Report.EmployeeErr != nil {
		status.Employee = res.Report.EmployeeErr.Error()
	}

	writeJSON(w, http.StatusOK, reenrichResponse{
		Proposal:   toProposalResponse(*res.Proposal),
		Enrichment: status,
	})
}

// Get handles GET /api/proposals/{id}.
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProposal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProposalResponse(*p))
}

// List handles GET /api/proposals?limit=&offset=.
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListProposals(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]proposalResponse, len(items))
	for i, p := range items {
		out[i] = toProposalResponse(p)
	}

	writeJSON(w, http.StatusOK, listResponse[proposalResponse]{
		Items:  out,
		Total:  total,
		Limit:  effectiveLimit(input.Limit),
		Offset: input.Offset,
	})
}

func toProposalResponse(p domain.Proposal) proposalResponse {
	resp := proposalResponse{
		ID:                p.ID.String(),
		OpportunityNumber: p.OpportunityNumber,
		ProposedBy:        p.ProposedBy,
		ProposalName:      p.ProposalName,
		ClientName:        p.ClientName,
		Value:             p.Value,
		PStatus:           p.PStatus,
		Description:       p.Description,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.ChooseEmployee != nil {
		id := p.ChooseEmployee.String()
		resp.ChooseEmployee = &id
	}
	return resp
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func listInput(r *http.Request) (proposal.ListInput, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return proposal.ListInput{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return proposal.ListInput{}, err
	}
	return proposal.ListInput{Limit: limit, Offset: offset}, nil
}

func effectiveLimit(limit int) int {
	if limit == 0 {
		return proposal.DefaultListLimit
	}
	return limit
}
