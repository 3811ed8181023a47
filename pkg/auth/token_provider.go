// Package auth turns Nango connection credentials into the bearer token
// used for Airtable requests.
package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/apperrors"
	"github.com/ekaya-inc/airtable-mcp/pkg/logging"
	"github.com/ekaya-inc/airtable-mcp/pkg/metrics"
	"github.com/ekaya-inc/airtable-mcp/pkg/nango"
)

// errPrefix is prepended to every failure so callers see one family of
// "cannot authenticate" errors regardless of the underlying kind.
const errPrefix = "failed to get authentication token from Nango"

// CredentialFetcher fetches the broker payload for a connection identity.
// Implemented by *nango.Client.
type CredentialFetcher interface {
	FetchConnectionCredentials(ctx context.Context, identity nango.Identity) (nango.CredentialPayload, error)
}

// TokenProvider turns broker payloads into Airtable access tokens.
//
// Every call goes to the broker; nothing is cached between calls, so
// concurrent callers never share or race on a token.
type TokenProvider struct {
	broker   CredentialFetcher
	identity nango.Identity
	metrics  *metrics.Collector
	logger   *zap.Logger
}

// NewTokenProvider creates a provider for one connection identity.
// collector may be nil.
func NewTokenProvider(broker CredentialFetcher, identity nango.Identity, collector *metrics.Collector, logger *zap.Logger) *TokenProvider {
	return &TokenProvider{
		broker:   broker,
		identity: identity,
		metrics:  collector,
		logger:   logger.Named("token-provider"),
	}
}

// AccessToken fetches a fresh access token from the broker.
// All failures satisfy errors.Is(err, apperrors.ErrAuthentication).
func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	payload, err := p.broker.FetchConnectionCredentials(ctx, p.identity)
	if err != nil {
		p.metrics.ObserveBrokerFetch(metrics.BrokerResultFailure)
		p.logger.Warn("Credential fetch failed",
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.String("error", logging.SanitizeError(err)))
		return "", apperrors.Wrap(err, errPrefix)
	}
	p.metrics.ObserveBrokerFetch(metrics.BrokerResultSuccess)

	token, ok := ExtractAccessToken(payload)
	if !ok {
		p.logger.Warn("Broker response has no access token",
			zap.Strings("top_level_keys", payloadKeys(payload)))
		return "", apperrors.Wrap(apperrors.NewCredentialShapeError("no access_token found in broker response"), errPrefix)
	}

	return token, nil
}

// AuthorizationHeader returns the Authorization header value for an Airtable request.
func (p *TokenProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	token, err := p.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}

// ExtractAccessToken looks for the token in the two accepted payload shapes,
// in order: {"credentials": {"access_token": ...}} then {"access_token": ...}.
// Only non-empty string values match.
func ExtractAccessToken(payload nango.CredentialPayload) (string, bool) {
	if creds, ok := payload["credentials"].(map[string]any); ok {
		if token, ok := creds["access_token"].(string); ok && token != "" {
			return token, true
		}
	}
	if token, ok := payload["access_token"].(string); ok && token != "" {
		return token, true
	}
	return "", false
}

// payloadKeys lists top level keys for diagnostics without logging values.
func payloadKeys(payload nango.CredentialPayload) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	return keys
}
