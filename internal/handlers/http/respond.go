// internal/handlers/http/respond.go
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"weatherpro/internal/util"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error util.AppError `json:"error"`
}

// writeError renders err as {"error":{code,message}}. Errors that are not an
// AppError become internal with the fallback message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ae := util.AsAppError(err, fallback)
	status := ae.Status()
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s req=%s: %v", r.Method, r.URL.Path, r.Header.Get("X-Request-ID"), err)
	}
	writeJSON(w, status, errorBody{Error: ae})
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, util.BadInput(msg), msg)
}

// decodeJSON reads a small JSON body into v.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<16))
	return dec.Decode(v)
}
