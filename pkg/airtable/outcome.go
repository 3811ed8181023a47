package airtable

import (
	"encoding/json"
	"fmt"
)

// OutcomeKind discriminates the successful response shapes.
type OutcomeKind string

const (
	// OutcomeJSON is a 2xx response whose body parsed as JSON.
	OutcomeJSON OutcomeKind = "json"
	// OutcomeEmpty is a 2xx response with no body.
	OutcomeEmpty OutcomeKind = "empty"
	// OutcomeRaw is a 2xx response whose body is not JSON.
	OutcomeRaw OutcomeKind = "raw"
)

// Outcome is a normalized successful response.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	JSON       json.RawMessage // set for OutcomeJSON, verbatim from the server
	Raw        string          // set for OutcomeRaw
}

// Payload renders the outcome as the caller-facing JSON document:
// the body itself, {"success": true}, or {"raw_response": "..."}.
func (o Outcome) Payload() (json.RawMessage, error) {
	switch o.Kind {
	case OutcomeJSON:
		return o.JSON, nil
	case OutcomeEmpty:
		return json.RawMessage(`{"success":true}`), nil
	case OutcomeRaw:
		b, err := json.Marshal(struct {
			RawResponse string `json:"raw_response"`
		}{o.Raw})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal raw response: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown outcome kind %q", o.Kind)
}

// MarshalJSON implements json.Marshaler using Payload.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return o.Payload()
}

// Decode unmarshals a JSON outcome into v, typically one of the entity
// shape models. Other kinds cannot be decoded.
func (o Outcome) Decode(v any) error {
	if o.Kind != OutcomeJSON {
		return fmt.Errorf("cannot decode %s outcome", o.Kind)
	}
	if err := json.Unmarshal(o.JSON, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
