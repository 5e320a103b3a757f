package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"wada-stylist/internal/domain/valueobjects"
)

// カテゴリごとのHTTPステータス
var failureStatus = map[valueobjects.FailureCategory]int{
	valueobjects.FailureValidation:         http.StatusBadRequest,
	valueobjects.FailureOversized:          http.StatusRequestEntityTooLarge,
	valueobjects.FailureUnsupportedType:    http.StatusUnsupportedMediaType,
	valueobjects.FailureTimeout:            http.StatusGatewayTimeout,
	valueobjects.FailureConnectivity:       http.StatusServiceUnavailable,
	valueobjects.FailureServiceUnavailable: http.StatusServiceUnavailable,
	valueobjects.FailureParse:              http.StatusBadGateway,
	valueobjects.FailureNotFound:           http.StatusNotFound,
	valueobjects.FailureForbidden:          http.StatusForbidden,
	valueobjects.FailureInternal:           http.StatusInternalServerError,
}

type errorResponse struct {
	Error       string `json:"error"`
	UserMessage string `json:"userMessage,omitempty"`
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, errorResponse{Error: message, UserMessage: message})
}

// sendFailure maps err onto its HTTP status. Upstream details are logged, not returned.
func sendFailure(w http.ResponseWriter, r *http.Request, err error) {
	failure, ok := valueobjects.AsFailure(err)
	if !ok {
		failure = valueobjects.NewFailure(valueobjects.FailureInternal, "An error occurred. Please try again.", err)
	}

	status, ok := failureStatus[failure.Category]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		slog.Warn("Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	message := failure.UserMessage
	if message == "" {
		message = failure.Message
	}
	sendJSON(w, status, errorResponse{Error: failure.Message, UserMessage: message})
}

// requireSession writes 401 when the request carries no session.
func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		sendError(w, "No session found", http.StatusUnauthorized)
		return "", false
	}
	return sessionID, true
}
