package domain

// Opportunity holds the proposal details the opportunity API keeps for a deal.
// It is read-only and never stored on its own.
type Opportunity struct {
	OpportunityNumber string
	ProposalName      string
	ClientName        string
	Value             float64
	Status            string
	Description       string
}
