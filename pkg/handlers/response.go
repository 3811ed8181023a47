package handlers

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON shape of every non-MCP HTTP error.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	return WriteJSON(w, statusCode, errorBody{Error: errorCode, Message: message})
}

// WriteJSON writes a JSON response and returns any encoding error.
// The body is encoded before the status is written so an encoding failure
// does not leave a half-written 200.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(append(b, '\n'))
	return err
}
