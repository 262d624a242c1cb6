package utils

import (
	"encoding/json"
	"net/http"
	"triviaapi/models"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bed request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// ErrorMessage returns the fixed client message for a status code.
func ErrorMessage(statusCode int) string {
	if msg, ok := errorMessages[statusCode]; ok {
		return msg
	}
	return http.StatusText(statusCode)
}

func SendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func SendSuccess(w http.ResponseWriter, body interface{}) {
	SendJSON(w, http.StatusOK, body)
}

// SendError writes the error envelope with the fixed message for statusCode.
func SendError(w http.ResponseWriter, statusCode int) {
	SendErrorMessage(w, statusCode, ErrorMessage(statusCode))
}

func SendErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, models.ErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}

// NotFound and MethodNotAllowed are installed as the router fallbacks.
func NotFound(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	SendError(w, http.StatusMethodNotAllowed)
}
