package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Integrations.validate(); err != nil {
		return fmt.Errorf("integrations: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	return nil
}

func (i *IntegrationsConfig) validate() error {
	if err := validateBaseURL(i.OpportunityAPIBase); err != nil {
		return fmt.Errorf("opportunity_api_base: %w", err)
	}
	if err := validateBaseURL(i.SearchAPIBase); err != nil {
		return fmt.Errorf("search_api_base: %w", err)
	}
	if i.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be >= 0 (got %v)", i.RequestTimeout)
	}

	i.OpportunityAPIBase = strings.TrimRight(i.OpportunityAPIBase, "/")
	i.SearchAPIBase = strings.TrimRight(i.SearchAPIBase, "/")

	return nil
}

func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
