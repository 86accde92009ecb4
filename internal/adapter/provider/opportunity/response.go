package opportunity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// apiResponse is the envelope returned by the opportunity API.
type apiResponse struct {
	Success *bool           `json:"success"`
	Data    *apiOpportunity `json:"data"`
	Message string          `json:"message"`
}

// apiOpportunity is the data payload for a single opportunity.
// Pointers distinguish absent fields from zero values.
type apiOpportunity struct {
	OpportunityNumber string      `json:"opportunityNumber"`
	ProposalName      *string     `json:"proposalName"`
	ClientName        *string     `json:"clientName"`
	Value             *flexNumber `json:"value"`
	Status            *string     `json:"status"`
	Description       *string     `json:"description"`
}

// validate checks that every field copied onto a proposal is present and
// that value is finite.
func (o *apiOpportunity) validate() error {
	switch {
	case o.ProposalName == nil:
		return fmt.Errorf("data.proposalName is missing")
	case o.ClientName == nil:
		return fmt.Errorf("data.clientName is missing")
	case o.Value == nil:
		return fmt.Errorf("data.value is missing")
	case math.IsNaN(float64(*o.Value)) || math.IsInf(float64(*o.Value), 0):
		return fmt.Errorf("data.value %v is not a finite number", float64(*o.Value))
	case o.Status == nil:
		return fmt.Errorf("data.status is missing")
	}
	return nil
}

// flexNumber accepts a JSON number or a string holding one.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number", s)
		}
		*n = flexNumber(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("value is not a number: %w", err)
	}
	*n = flexNumber(f)
	return nil
}
