package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmvillal/tasktrack/internal/redact"
)

// ErrorPayload is the error half of the response envelope.
type ErrorPayload struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ServiceResponse is the envelope every endpoint writes. Exactly one of Data
// and Error is set; Paging accompanies list data only.
type ServiceResponse struct {
	Data   interface{}   `json:"data,omitempty"`
	Error  *ErrorPayload `json:"error,omitempty"`
	Paging interface{}   `json:"paging,omitempty"`
}

// RespondWithJSON writes an envelope carrying data with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, status, ServiceResponse{Data: data})
}

// RespondWithPage writes an envelope carrying list data plus page metadata.
func RespondWithPage(w http.ResponseWriter, r *http.Request, status int, data, paging interface{}) {
	writeEnvelope(w, status, ServiceResponse{Data: data, Paging: paging})
}

// RespondWithError writes an error envelope with the given status and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeEnvelope(w, status, ServiceResponse{
		Error: &ErrorPayload{Status: status, Message: message},
	})
}

// RespondWithErrorAndLog writes an error envelope exposing only userMessage
// and logs the underlying error in redacted form. Server errors log at ERROR,
// client errors at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeEnvelope(w, status, ServiceResponse{
		Error: &ErrorPayload{Status: status, Message: userMessage},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, envelope ServiceResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
