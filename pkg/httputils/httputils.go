package httputils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gfranca/atalho/internal/constants"
	"github.com/google/uuid"
)

const CorrelationIDHeader = "X-Correlation-Id"

// APIResponse is the uniform envelope on every JSON response: success flag,
// optional payload, optional human-readable message.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// GetCorrelationID extracts the correlation ID from the request header.
// If not present, generates a new UUID v4.
func GetCorrelationID(r *http.Request) string {
	correlationID := r.Header.Get(CorrelationIDHeader)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return correlationID
}

// WriteAPIError writes a failure envelope using a predefined APIError.
func WriteAPIError(w http.ResponseWriter, r *http.Request, apiErr constants.APIError) {
	writeJSON(w, r, apiErr.Status, APIResponse{
		Success: false,
		Message: apiErr.Message,
	})
}

// WriteAPISuccess writes a success envelope using a predefined APISuccess.
func WriteAPISuccess(w http.ResponseWriter, r *http.Request, apiSuccess constants.APISuccess, data any) {
	writeJSON(w, r, apiSuccess.Status, APIResponse{
		Success: true,
		Data:    data,
		Message: apiSuccess.Message,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, response APIResponse) {
	w.Header().Set(CorrelationIDHeader, GetCorrelationID(r))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}
