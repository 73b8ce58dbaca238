package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"skillscope/internal/service"
)

// JobHandler exposes job creation, registration, and ranking endpoints.
type JobHandler struct {
	jobSvc     *service.JobService
	rankingSvc *service.RankingService
}

func NewJobHandler(jobSvc *service.JobService, rankingSvc *service.RankingService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc, rankingSvc: rankingSvc}
}

// CreateJobRequest is the body for creating an assessment.
type CreateJobRequest struct {
	RecruiterID     string            `json:"recruiterId" validate:"required"`
	Title           string            `json:"title" validate:"required"`
	Company         string            `json:"company"`
	Location        string            `json:"location"`
	Description     string            `json:"description"`
	ExperienceMin   float64           `json:"experienceMin" validate:"min=0"`
	ExperienceMax   float64           `json:"experienceMax" validate:"min=0"`
	DurationMinutes int               `json:"durationMinutes" validate:"required,min=1"`
	NumQuestions    int               `json:"numQuestions" validate:"required,min=1"`
	Schedule        time.Time         `json:"schedule" validate:"required"`
	Skills          []JobSkillRequest `json:"skills" validate:"required,min=1,dive"`
}

type JobSkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

// Create handles POST /v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := make([]service.SkillInput, len(req.Skills))
	for i, sk := range req.Skills {
		skills[i] = service.SkillInput{Name: sk.Name, Priority: sk.Priority}
	}
	job, err := h.jobSvc.Create(r.Context(), service.CreateJobInput{
		RecruiterID:     req.RecruiterID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		ExperienceMin:   req.ExperienceMin,
		ExperienceMax:   req.ExperienceMax,
		DurationMinutes: req.DurationMinutes,
		NumQuestions:    req.NumQuestions,
		Schedule:        req.Schedule,
		Skills:          skills,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Get handles GET /v1/jobs/{jobId}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, err := h.jobSvc.Get(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// RegisterRequest is the body for registering a candidate.
type RegisterRequest struct {
	CandidateID string `json:"candidateId" validate:"required"`
}

// Register handles POST /v1/jobs/{jobId}/register
func (h *JobHandler) Register(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	attemptID, err := h.jobSvc.Register(r.Context(), jobID, req.CandidateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"attemptId": attemptID})
}

// Registrations handles GET /v1/jobs/{jobId}/candidates
func (h *JobHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	regs, err := h.jobSvc.Registrations(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

// Ranking handles GET /v1/jobs/{jobId}/ranking
func (h *JobHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	rows, err := h.rankingSvc.RankCandidates(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobId":      jobID,
		"candidates": rows,
	})
}
