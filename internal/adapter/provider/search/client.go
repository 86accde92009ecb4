// Package search looks employees up in the full-text search index.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/proposal-backend/internal/config"
	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/metrics"
)

const (
	serviceName  = "search"
	searchPath   = "/indexes/employees/search"
	apiKeyHeader = "X-Meili-API-Key"
	maxBodyBytes = 1 << 20
)

type observer interface {
	ObserveOutbound(service, outcome string, d time.Duration)
}

// Client queries the employees index.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    observer
	log        *slog.Logger
}

// NewClient creates a Client for the configured search API. obs may be nil.
func NewClient(cfg config.IntegrationsConfig, obs observer, logger *slog.Logger) *Client {
	if obs == nil {
		obs = (*metrics.Metrics)(nil)
	}
	return &Client{
		baseURL:    cfg.SearchAPIBase,
		apiKey:     cfg.SearchAPIKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		metrics:    obs,
		log:        logger.With("adapter", "search"),
	}
}

// FindEmployee returns the best match for the free-text query, or nil, nil
// when the index has no match. Failures are *domain.EmployeeResolutionError.
func (c *Client) FindEmployee(ctx context.Context, query string) (*domain.EmployeeSearchHit, error) {
	start := time.Now()
	hit, err := c.find(ctx, query)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailure
	case hit == nil:
		outcome = metrics.OutcomeNoMatch
	}
	c.metrics.ObserveOutbound(serviceName, outcome, time.Since(start))

	if err != nil {
		return nil, &domain.EmployeeResolutionError{ProposedBy: query, Stage: "search", Err: err}
	}
	return hit, nil
}

func (c *Client) find(ctx context.Context, query string) (*domain.EmployeeSearchHit, error) {
	payload, err := json.Marshal(searchRequest{Q: query, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.log.DebugContext(ctx, "search request", slog.String("query", query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if result.Hits == nil {
		return nil, fmt.Errorf("malformed response: hits is missing")
	}

	hits := *result.Hits
	c.log.DebugContext(ctx, "search response",
		slog.String("query", query),
		slog.Int("hits", len(hits)),
	)

	if len(hits) == 0 {
		return nil, nil
	}

	hit, err := hits[0].toDomain()
	if err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return &hit, nil
}
