package errors

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform non-2xx response body: the numeric status is
// repeated in the payload so browser clients don't need to inspect headers.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes the standard error envelope for a status code.
func Respond(w http.ResponseWriter, status int) {
	RespondMessage(w, status, Message(status))
}

// RespondMessage writes the error envelope with a custom message.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 envelope.
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound)
}

// RespondMethodNotAllowed writes a 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	Respond(w, http.StatusMethodNotAllowed)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity)
}

// RespondServerError writes a 500 envelope.
func RespondServerError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError)
}
