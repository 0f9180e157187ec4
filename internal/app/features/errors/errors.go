// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Response is the JSON body written for every failed request.
type Response struct {
	Error   string `json:"error"`
	ErrorID string `json:"error_id,omitempty"`
}

// ErrorLogger logs a request failure with its cause and writes a JSON error
// to the client. Server errors carry an error_id that also appears in the log
// line so an operator can find the cause from a user report.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger. A nil logger discards output.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err at Error level and writes a 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	id := uuid.NewString()
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("error_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	WriteJSON(w, http.StatusInternalServerError, Response{Error: userMsg, ErrorID: id})
}

// LogBadRequest logs err at Warn level and writes a 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	WriteJSON(w, http.StatusBadRequest, Response{Error: userMsg})
}

// NotFound writes a 404. Nothing is logged.
func NotFound(w http.ResponseWriter, userMsg string) {
	WriteJSON(w, http.StatusNotFound, Response{Error: userMsg})
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
