package rest

import "net/http"

// RegisterAPI mounts the proposal and employee endpoints on mux.
func RegisterAPI(mux *http.ServeMux, proposals *ProposalHandler, employees *EmployeeHandler) {
	mux.HandleFunc("POST /api/proposals", proposals.Create)
	mux.HandleFunc("GET /api/proposals", proposals.List)
	mux.HandleFunc("GET /api/proposals/{id}", proposals.Get)
	mux.HandleFunc("PUT /api/proposals/{id}", proposals.Update)
	mux.HandleFunc("POST /api/proposals/{id}/enrich", proposals.Reenrich)

	mux.HandleFunc("GET /api/employees", employees.List)
	mux.HandleFunc("GET /api/employees/{id}", employees.Get)
}

// RegisterHealth mounts the probe endpoints on mux.
func RegisterHealth(mux *http.ServeMux, health *HealthHandler) {
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
}
