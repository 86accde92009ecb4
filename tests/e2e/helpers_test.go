//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/proposal-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/proposal-backend/internal/app"
	"github.com/heartmarshall/proposal-backend/internal/auth"
	"github.com/heartmarshall/proposal-backend/internal/config"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
	searchKey = "search-key"
)

// ---------------------------------------------------------------------------
// Fake integrations.
// ---------------------------------------------------------------------------

// fakeIntegrations serves both the opportunity API and the employee search
// index. Responses are keyed by opportunity number and search query.
type fakeIntegrations struct {
	mu            sync.Mutex
	opportunities map[string]string // number -> JSON body
	hits          map[string]string // query -> JSON hit object
	down          bool
	searches      int
}

func newFakeIntegrations() *fakeIntegrations {
	return &fakeIntegrations{
		opportunities: map[string]string{},
		hits:          map[string]string{},
	}
}

func (f *fakeIntegrations) setOpportunity(number, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opportunities[number] = body
}

func (f *fakeIntegrations) setHit(query, hit string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[query] = hit
}

func (f *fakeIntegrations) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeIntegrations) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searches
}

func (f *fakeIntegrations) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /opportunity/{number}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		body, ok := f.opportunities[r.PathValue("number")]
		down := f.down
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case down:
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"success":false,"message":"Salesforce unavailable"}`))
		case !ok:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Opportunity not found"}`))
		default:
			w.Write([]byte(body))
		}
	})

	mux.HandleFunc("POST /indexes/employees/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Meili-API-Key") != searchKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Q     string `json:"q"`
			Limit int    `json:"limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Limit != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.searches++
		hit, ok := f.hits[req.Q]
		down := f.down
		f.mu.Unlock()

		if down {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.Write([]byte(`{"hits":[]}`))
			return
		}
		w.Write([]byte(`{"hits":[` + hit + `]}`))
	})

	return mux
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Fakes  *fakeIntegrations
	token  string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application against a real PostgreSQL
// container (shared via testhelper) and in-process fake integrations.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	fakes := newFakeIntegrations()
	ext := httptest.NewServer(fakes.handler())
	t.Cleanup(ext.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{WriteRateLimit: 0},
		Auth:   config.AuthConfig{JWTSecret: jwtSecret, JWTIssuer: jwtIssuer},
		Integrations: config.IntegrationsConfig{
			OpportunityAPIBase: ext.URL + "/opportunity",
			SearchAPIBase:      ext.URL,
			SearchAPIKey:       searchKey,
			RequestTimeout:     5 * time.Second,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	a := app.NewWithPool(cfg, logger, pool)

	handler, stop := a.Handler()
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	token, err := auth.NewJWTManager(jwtSecret, jwtIssuer).GenerateToken("cms-e2e", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Fakes:  fakes,
		token:  token,
	}
}

// do sends an authenticated JSON request and returns status + decoded body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	return ts.doWithToken(t, method, path, body, ts.token)
}

func (ts *testServer) doWithToken(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode, result
}

func opportunityBody(number string) string {
	return `{"success":true,"data":{"opportunityNumber":"` + number + `",` +
		`"proposalName":"Cloud migration","clientName":"Acme","value":"125000.50",` +
		`"status":"Qualification","description":"Phase one\nPhase two"}}`
}

func hitBody(name, email string) string {
	return `{"id":1,"name":"` + name + `","email":"` + email + `","role":"Account Executive","department":"Sales"}`
}
