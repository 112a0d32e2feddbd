package main

import (
	"encoding/json"
	"net/http"
)

// Response helpers for common HTTP response patterns

// writeJSONResponse writes a JSON response with the given status code
func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes an error response with the given status code and message
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"error":  message,
		"status": "error",
	})
}

// writeBadRequestResponse writes a 400 Bad Request response
func writeBadRequestResponse(w http.ResponseWriter, message string) {
	writeErrorResponse(w, http.StatusBadRequest, message)
}

// writeDatasetUnavailableResponse reports a dataset load failure with a
// pointer to the diagnostics endpoint.
func writeDatasetUnavailableResponse(w http.ResponseWriter, err error) {
	writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{
		"error":       "Error loading dashboard: " + err.Error(),
		"status":      "error",
		"hint":        "Make sure the analysis pipeline has generated the required files",
		"diagnostics": "/api/v1/diagnostics",
	})
}
