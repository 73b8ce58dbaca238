package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"skillscope/internal/assessment"
	"skillscope/internal/service"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses and validates a request body.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// statusFor maps the error taxonomy to HTTP codes: not-found lookups to 404,
// rejected input to 400, lifecycle conflicts to 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, assessment.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrSessionExists),
		errors.Is(err, service.ErrAttemptCompleted),
		errors.Is(err, service.ErrAlreadyRegistered),
		errors.Is(err, assessment.ErrQuestionMismatch),
		errors.Is(err, assessment.ErrNoPendingQuestion):
		return http.StatusConflict
	case errors.Is(err, assessment.ErrInvalidAnswer),
		errors.Is(err, assessment.ErrUnknownSkill),
		errors.Is(err, assessment.ErrNoQuestions),
		errors.Is(err, assessment.ErrNoRequiredSkills),
		errors.Is(err, service.ErrReportNotReady):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}
