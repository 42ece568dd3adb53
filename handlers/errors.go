package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapp/service"
)

// ErrorResponse is the envelope every failed request answers with.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	})
}

// writeServiceError maps domain errors onto the transport: lookups that miss
// answer 404, duplicate signatures 400, and the two ranking failures answer
// 200 with the envelope as body. Anything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var notFound *service.NotFoundError
	var duplicate *service.DuplicateSignatureError
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		writeError(w, http.StatusBadRequest, duplicate.Error())
	case errors.Is(err, service.ErrNoVotes), errors.Is(err, service.ErrAllZero):
		writeError(w, http.StatusOK, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
