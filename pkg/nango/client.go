// Package nango provides a client for the Nango credential broker.
package nango

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/apperrors"
	"github.com/ekaya-inc/airtable-mcp/pkg/config"
	"github.com/ekaya-inc/airtable-mcp/pkg/logging"
	"github.com/ekaya-inc/airtable-mcp/pkg/urlutil"
)

// DefaultTimeout is the maximum time to wait for Nango responses.
const DefaultTimeout = 30 * time.Second

// Environment variable names reported when identity fields are missing.
const (
	EnvConnectionID  = "NANGO_CONNECTION_ID"
	EnvIntegrationID = "NANGO_INTEGRATION_ID"
	EnvBaseURL       = "NANGO_BASE_URL"
	EnvSecretKey     = "NANGO_SECRET_KEY"
)

// Identity is the connection whose credentials are requested from Nango.
type Identity struct {
	ConnectionID  string
	IntegrationID string
	BaseURL       string
	SecretKey     string
}

// IdentityFromConfig copies the Nango settings into an Identity.
func IdentityFromConfig(cfg config.NangoConfig) Identity {
	return Identity{
		ConnectionID:  cfg.ConnectionID,
		IntegrationID: cfg.IntegrationID,
		BaseURL:       cfg.BaseURL,
		SecretKey:     cfg.SecretKey,
	}
}

// Validate returns a configuration error naming every missing field,
// in the order connection id, integration id, base URL, secret key.
func (i Identity) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{EnvConnectionID, i.ConnectionID},
		{EnvIntegrationID, i.IntegrationID},
		{EnvBaseURL, i.BaseURL},
		{EnvSecretKey, i.SecretKey},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewConfigurationError(missing)
	}
	return nil
}

// CredentialPayload is the connection document returned by Nango, verbatim.
type CredentialPayload map[string]any

// Client provides access to the Nango connection API.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Nango client. A nil httpClient gets DefaultTimeout.
func NewClient(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger.Named("nango"),
	}
}

// FetchConnectionCredentials asks Nango for the connection's current
// credentials, requesting a refresh of the access token.
// Broker failures are never retried.
func (c *Client) FetchConnectionCredentials(ctx context.Context, identity Identity) (CredentialPayload, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := urlutil.JoinPath(identity.BaseURL, "connection", identity.ConnectionID)
	if err != nil {
		return nil, apperrors.NewBrokerError("failed to build Nango URL", err)
	}

	query := url.Values{}
	query.Set("provider_config_key", identity.IntegrationID)
	query.Set("refresh_token", "true")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, apperrors.NewBrokerError("failed to create Nango request", err)
	}

	req.Header.Set("Authorization", "Bearer "+identity.SecretKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching connection credentials from Nango",
		zap.String("connection_id", identity.ConnectionID),
		zap.String("integration_id", identity.IntegrationID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Nango request failed", zap.String("error", logging.SanitizeError(err)))
		return nil, apperrors.NewBrokerError("failed to get Nango credentials", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewBrokerError("failed to read Nango response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Nango returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.SanitizeBody(body)))
		return nil, apperrors.NewBrokerError("failed to get Nango credentials",
			fmt.Errorf("%s returned status %d: %s", urlutil.StripQuery(req.URL), resp.StatusCode, logging.SanitizeBody(body)))
	}

	var payload CredentialPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewBrokerError("failed to parse Nango response", err)
	}
	if payload == nil {
		return nil, apperrors.NewBrokerError("failed to parse Nango response", fmt.Errorf("expected a JSON object, got %s", logging.TruncateString(string(body), 50)))
	}

	return payload, nil
}
