// Package airtable encodes Airtable REST API operations and executes them
// through an authenticated gateway that normalizes every response.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/apperrors"
	"github.com/ekaya-inc/airtable-mcp/pkg/logging"
	"github.com/ekaya-inc/airtable-mcp/pkg/metrics"
	"github.com/ekaya-inc/airtable-mcp/pkg/urlutil"
)

// DefaultBaseURL is the Airtable REST API root.
const DefaultBaseURL = "https://api.airtable.com/v0"

// DefaultTimeout is the maximum time to wait for an Airtable response.
const DefaultTimeout = 30 * time.Second

// AuthorizationSource supplies the Authorization header for each call.
// Implemented by *auth.TokenProvider.
type AuthorizationSource interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// Executor runs one encoded request. Implemented by *Gateway.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
}

// Gateway performs authenticated Airtable calls. It holds no per-call state
// and is safe for concurrent use.
type Gateway struct {
	baseURL    string
	auth       AuthorizationSource
	httpClient *http.Client
	metrics    *metrics.Collector
	logger     *zap.Logger
}

// NewGateway creates a gateway rooted at baseURL. A nil httpClient gets
// DefaultTimeout; collector may be nil.
func NewGateway(baseURL string, auth AuthorizationSource, httpClient *http.Client, collector *metrics.Collector, logger *zap.Logger) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}
	return &Gateway{
		baseURL:    baseURL,
		auth:       auth,
		httpClient: httpClient,
		metrics:    collector,
		logger:     logger.Named("gateway"),
	}
}

// Execute performs exactly one HTTP round trip for req and classifies the
// result. Failures are always *apperrors.Error; nothing is retried.
func (g *Gateway) Execute(ctx context.Context, req Request) (outcome *Outcome, err error) {
	requestID := uuid.NewString()
	start := time.Now()
	logger := g.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.PathString()),
	)

	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = apperrors.NewUnexpectedError(fmt.Errorf("panic: %v", r))
		}

		duration := time.Since(start)
		if err != nil {
			kind := apperrors.KindOf(err)
			g.metrics.ObserveGatewayRequest(req.Method, string(kind), duration)
			logFailure(logger, kind, err, duration)
			return
		}
		g.metrics.ObserveGatewayRequest(req.Method, string(outcome.Kind), duration)
		logger.Debug("Airtable request completed",
			zap.String("outcome", string(outcome.Kind)),
			zap.Int("status", outcome.StatusCode),
			zap.Duration("duration", duration))
	}()

	httpReq, err := g.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(fmt.Errorf("failed to read response: %w", err))
	}

	return classifyResponse(resp.StatusCode, resp.Status, body)
}

// buildRequest encodes req and attaches headers. The Authorization header
// is fetched last so an unencodable request never reaches the broker.
func (g *Gateway) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	if req.Method == "" {
		return nil, apperrors.NewUnexpectedError(fmt.Errorf("request method is empty"))
	}

	u, err := urlutil.JoinPath(g.baseURL, req.Path...)
	if err != nil {
		return nil, apperrors.NewUnexpectedError(fmt.Errorf("failed to build URL: %w", err))
	}
	u.RawQuery = req.Query.Encode()

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.NewUnexpectedError(fmt.Errorf("failed to encode request body: %w", err))
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, apperrors.NewUnexpectedError(fmt.Errorf("failed to create request: %w", err))
	}

	authorization, err := g.auth.AuthorizationHeader(ctx)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", authorization)
	httpReq.Header.Set("Content-Type", "application/json")
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	return httpReq, nil
}

// classifyResponse maps a status and body onto an Outcome or an API status error.
func classifyResponse(statusCode int, status string, body []byte) (*Outcome, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, apperrors.NewAPIStatusError(statusCode, reasonPhrase(statusCode, status), errorDetail(body))
	}

	if len(body) == 0 {
		return &Outcome{Kind: OutcomeEmpty, StatusCode: statusCode}, nil
	}

	if json.Valid(body) {
		return &Outcome{Kind: OutcomeJSON, StatusCode: statusCode, JSON: json.RawMessage(body)}, nil
	}

	return &Outcome{Kind: OutcomeRaw, StatusCode: statusCode, Raw: string(body)}, nil
}

// reasonPhrase extracts "Unprocessable Entity" from "422 Unprocessable Entity",
// falling back to the standard text for the code.
func reasonPhrase(statusCode int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if reason == "" {
		reason = http.StatusText(statusCode)
	}
	return reason
}

// errorDetail returns error.message from a JSON error body, the compacted
// JSON body when that path is absent, or the raw text for non-JSON bodies.
func errorDetail(body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	if obj, ok := parsed.(map[string]any); ok {
		if errObj, ok := obj["error"].(map[string]any); ok {
			if msg, ok := errObj["message"].(string); ok {
				return msg
			}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return string(body)
	}
	return compact.String()
}

// logFailure logs at a level matching how actionable the failure is.
func logFailure(logger *zap.Logger, kind apperrors.Kind, err error, duration time.Duration) {
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("error", logging.SanitizeError(err)),
		zap.Duration("duration", duration),
	}
	switch kind {
	case apperrors.KindAPIStatus:
		// Usually caused by tool input; the caller sees the message.
		logger.Info("Airtable request rejected", fields...)
	case apperrors.KindUnexpected:
		logger.Error("Airtable request failed unexpectedly", fields...)
	default:
		logger.Warn("Airtable request failed", fields...)
	}
}
