package http

import (
	"encoding/json"
	"net/http"
)

const (
	msgNoInput       = "No input data provided"
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "internal error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// writeError emits the API error envelope. The category is the standard
// status text (Bad Request, Not Found, ...), which is contractual.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error:   http.StatusText(status),
		Message: msg,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"internal error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeValidationError emits a 400 with every field error attributed to
// its field.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	payload, err := json.Marshal(validationResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: "Validation failed",
		Fields:  fields,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"internal error"}`))
		return
	}
	_, _ = w.Write(payload)
}
