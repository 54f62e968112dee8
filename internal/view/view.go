// Package view renders JSON responses.
package view

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	// Encode into a buffer first to catch any errors before the header is written.
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Error writes an ErrorBody with the given status code.
func Error(w http.ResponseWriter, status int, msg string) error {
	return JSON(w, status, ErrorBody{Error: msg})
}
