package errors

import "net/http"

// Message returns the public envelope message for a status code. Every
// failure surface uses these fixed strings; internal error detail stays in
// the logs.
func Message(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusMethodNotAllowed:
		return "The method is not allowed for the requested URL."
	case http.StatusUnprocessableEntity:
		return "Unable to process request."
	default:
		return "Server error."
	}
}
