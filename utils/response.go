package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON shape every API handler responds with.
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Issues  map[string]string `json:"issues,omitempty"`
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RespondSuccess(w http.ResponseWriter, code int, data any) {
	RespondWithJSON(w, code, Envelope{Success: true, Data: data})
}

func RespondError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, Envelope{Success: false, Error: msg})
}

// RespondIssues reports a schema validation failure with field-level detail.
func RespondIssues(w http.ResponseWriter, msg string, issues map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, Envelope{Success: false, Error: msg, Issues: issues})
}

type M map[string]interface{}
