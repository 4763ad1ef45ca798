package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes the structured error payload {"detail": msg}.
func WriteDetail(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, models.APIErrorResponse{"detail": msg}, statusCode)
}

// WriteFieldErrors writes a validation payload where every key is a field
// name mapped to its messages, e.g. {"email": ["This field is required."]}.
func WriteFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	payload := make(models.APIErrorResponse, len(fields))
	for k, v := range fields {
		payload[k] = v
	}
	_, _ = WriteJSON(w, payload, http.StatusBadRequest)
}
