package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"skillscope/internal/assessment"
	"skillscope/internal/service"
)

// AssessmentHandler exposes the live assessment session endpoints.
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Start handles POST /v1/assessments/{attemptId}/start
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	result, err := h.assessmentSvc.Start(r.Context(), attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// NextQuestion handles GET /v1/assessments/{attemptId}/next-question
func (h *AssessmentHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	result, err := h.assessmentSvc.NextQuestion(r.Context(), attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	switch {
	case result.Completed:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":         "Assessment completed",
			"candidateReport": result.Report,
		})
	case result.NoMoreAvailable:
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "No more questions available",
		})
	default:
		writeJSON(w, http.StatusOK, result.Question)
	}
}

// SubmitAnswerRequest is the body for answer submission. QuestionNumber must
// be the ordinal issued with the question being answered.
type SubmitAnswerRequest struct {
	Skill          string  `json:"skill" validate:"required"`
	QuestionNumber int     `json:"questionNumber" validate:"required,min=1"`
	Answer         int     `json:"answer" validate:"required,min=1,max=4"`
	TimeTakenSec   float64 `json:"timeTakenSec" validate:"min=0"`
}

// SubmitAnswer handles POST /v1/assessments/{attemptId}/answer
func (h *AssessmentHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	var req SubmitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := h.assessmentSvc.SubmitAnswer(attemptID, assessment.SubmitInput{
		Skill:       req.Skill,
		Ordinal:     req.QuestionNumber,
		AnswerIndex: req.Answer,
		TimeTaken:   req.TimeTakenSec,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}

// End handles POST /v1/assessments/{attemptId}/end
func (h *AssessmentHandler) End(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	report, err := h.assessmentSvc.End(r.Context(), attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Assessment completed",
		"candidateReport": report,
	})
}

// Report handles GET /v1/assessments/{attemptId}/report
func (h *AssessmentHandler) Report(w http.ResponseWriter, r *http.Request) {
	attemptID := mux.Vars(r)["attemptId"]

	report, err := h.assessmentSvc.Report(r.Context(), attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
