package httputils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/okvr/osuauth/internal/utils/errutils"
)

// Write writes the given headers and body to the given response writer.
//
// A string body is written as plain text. Any other non-nil body is written as JSON.
func Write(w http.ResponseWriter, status int, headers map[string]string, body any) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}

	switch asserted := body.(type) {
	case nil:
		w.WriteHeader(status)
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(asserted)); err != nil {
			slog.Error("error in ResponseWriter.Write call", "err", err)
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("error in json Encode call", "err", err)
		}
	}
}

// WriteErr writes the given error to the given response writer.
// It uses the errutils package to deduce the status code and body of the response.
func WriteErr(w http.ResponseWriter, err error) {
	httpError := errutils.ToHTTPError(err)
	Write(w, httpError.Status, nil, httpError)
}
