package helpers

import (
	"encoding/json"
	"net/http"
)

// Fixed error details returned to clients.
const (
	DetailActivityNotFound = "Activity not found"
	DetailAlreadySignedUp  = "Student already signed up for this activity"
	DetailNotRegistered    = "Student is not registered for this activity"
	DetailInternalError    = "Internal server error"
)

// MessageResponse is the body of a successful roster change.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONMessage writes a 200 response with {"message": message}.
func WriteJSONMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteJSONError writes statusCode with {"detail": detail}.
func WriteJSONError(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, ErrorResponse{Detail: detail})
}
