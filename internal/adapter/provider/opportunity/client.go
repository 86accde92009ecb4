// Package opportunity fetches proposal details from the opportunity API
// (a Salesforce stand-in) and validates its responses.
package opportunity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/proposal-backend/internal/config"
	"github.com/heartmarshall/proposal-backend/internal/domain"
	"github.com/heartmarshall/proposal-backend/internal/metrics"
)

const (
	serviceName  = "opportunity"
	maxBodyBytes = 1 << 20
)

type observer interface {
	ObserveOutbound(service, outcome string, d time.Duration)
}

// Client talks to GET {base}/{opportunityNumber}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    observer
	log        *slog.Logger
}

// NewClient creates a Client for the configured opportunity API. obs may be nil.
func NewClient(cfg config.IntegrationsConfig, obs observer, logger *slog.Logger) *Client {
	if obs == nil {
		obs = (*metrics.Metrics)(nil)
	}
	return &Client{
		baseURL:    cfg.OpportunityAPIBase,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		metrics:    obs,
		log:        logger.With("adapter", "opportunity"),
	}
}

// FetchOpportunity makes exactly one request for the given opportunity.
// Every failure is returned as *domain.OpportunityFetchError: transport and
// decoding problems wrap the cause, a refusal carries the API's message.
func (c *Client) FetchOpportunity(ctx context.Context, number string) (*domain.Opportunity, error) {
	start := time.Now()
	opp, err := c.fetch(ctx, number)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	c.metrics.ObserveOutbound(serviceName, outcome, time.Since(start))

	return opp, err
}

func (c *Client) fetch(ctx context.Context, number string) (*domain.Opportunity, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(number)

	c.log.DebugContext(ctx, "opportunity request", slog.String("opportunity_number", number))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewOpportunityFetchError(number, "create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewOpportunityFetchError(number, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewOpportunityFetchError(number, "read body", err)
	}

	var result apiResponse
	decodeErr := json.Unmarshal(body, &result)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok {
		// The API usually explains a refusal even on error statuses.
		msg := ""
		if decodeErr == nil {
			msg = result.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, domain.NewOpportunityFetchError(number, msg, nil)
	}

	if decodeErr != nil {
		return nil, domain.NewOpportunityFetchError(number, "decode response", decodeErr)
	}
	if result.Success == nil {
		return nil, domain.NewOpportunityFetchError(number, "malformed response", fmt.Errorf("success flag is missing"))
	}
	if !*result.Success || result.Data == nil {
		return nil, domain.NewOpportunityFetchError(number, result.Message, nil)
	}
	if err := result.Data.validate(); err != nil {
		return nil, domain.NewOpportunityFetchError(number, "malformed response", err)
	}

	opp := toDomain(number, result.Data)

	c.log.DebugContext(ctx, "opportunity response",
		slog.String("opportunity_number", number),
		slog.Int("status", resp.StatusCode),
		slog.String("opportunity_status", opp.Status),
	)

	return opp, nil
}

func toDomain(number string, d *apiOpportunity) *domain.Opportunity {
	opp := &domain.Opportunity{
		OpportunityNumber: number,
		ProposalName:      *d.ProposalName,
		ClientName:        *d.ClientName,
		Value:             float64(*d.Value),
		Status:            *d.Status,
	}
	if d.OpportunityNumber != "" {
		opp.OpportunityNumber = d.OpportunityNumber
	}
	if d.Description != nil {
		opp.Description = *d.Description
	}
	return opp
}
