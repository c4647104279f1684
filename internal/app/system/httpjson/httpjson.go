// Package httpjson holds the JSON response conventions shared by every
// handler: responses carry Content-Type application/json, and error
// bodies are always {"error": "<message>"}.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write sends v as a JSON response with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error sends the standard error envelope with the given status code.
// Messages are deliberately generic; detail stays in the server logs.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]string{"error": message})
}
