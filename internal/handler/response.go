package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/forgo/phonebook/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an {"error": "..."} response, or a bare status when the
// error carries no message
func WriteError(w http.ResponseWriter, err *model.APIError) {
	err.WriteJSON(w)
}

// WriteHTML writes an HTML fragment with a 200 status
func WriteHTML(w http.ResponseWriter, format string, args ...interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, format, args...)
}

// DecodeJSON decodes a JSON request body into the given struct.
// Unknown fields are accepted: clients send whole records back on update.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
