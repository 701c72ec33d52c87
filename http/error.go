package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/lumi"
)

// codes maps lumi error codes to HTTP status codes.
var codes = map[string]int{
	lumi.EINVALID:     http.StatusBadRequest,
	lumi.ENOTFOUND:    http.StatusNotFound,
	lumi.EUNSUPPORTED: http.StatusBadRequest,
	lumi.EUNAVAILABLE: http.StatusServiceUnavailable,
	lumi.EUPSTREAM:    http.StatusBadGateway,
	lumi.EMALFORMED:   http.StatusBadGateway,
	lumi.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for a lumi error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Error writes err as a JSON body with the mapped status code.
// Internal errors are logged and their text is not exposed.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := lumi.ErrorCode(err)
	if code == lumi.EINTERNAL {
		logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", GetRequestID(r.Context()),
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), errorResponse{Detail: lumi.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
