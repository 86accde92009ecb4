package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/proposal-backend/internal/domain"
)

// searchRequest is the query body for POST /indexes/employees/search.
type searchRequest struct {
	Q     string `json:"q"`
	Limit int    `json:"limit"`
}

// searchResponse is the subset of the search API response we consume.
type searchResponse struct {
	Hits *[]apiHit `json:"hits"`
}

// apiHit is one document from the employees index.
type apiHit struct {
	ID         json.RawMessage `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
}

// toDomain validates the hit and converts it. Email is the upsert key and
// name becomes the employee's name, so both are required.
func (h apiHit) toDomain() (domain.EmployeeSearchHit, error) {
	if strings.TrimSpace(h.Email) == "" {
		return domain.EmployeeSearchHit{}, fmt.Errorf("hit has no email")
	}
	if strings.TrimSpace(h.Name) == "" {
		return domain.EmployeeSearchHit{}, fmt.Errorf("hit has no name")
	}
	return domain.EmployeeSearchHit{
		ID:         rawID(h.ID),
		Name:       h.Name,
		Email:      h.Email,
		Role:       h.Role,
		Department: h.Department,
	}, nil
}

// rawID renders a document id that may be a JSON string or number.
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
