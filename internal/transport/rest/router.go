package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"skillscope/internal/service"
	"skillscope/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService *service.AssessmentService
	JobService        *service.JobService
	RankingService    *service.RankingService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	jobHandler := handler.NewJobHandler(c.JobService, c.RankingService)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Recruiter-facing routes
	v1.HandleFunc("/jobs", jobHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/jobs/{jobId}", jobHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/jobs/{jobId}/register", jobHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/jobs/{jobId}/candidates", jobHandler.Registrations).Methods("GET", "OPTIONS")
	v1.HandleFunc("/jobs/{jobId}/ranking", jobHandler.Ranking).Methods("GET", "OPTIONS")

	// Candidate-facing assessment routes
	v1.HandleFunc("/assessments/{attemptId}/start", assessmentHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{attemptId}/next-question", assessmentHandler.NextQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{attemptId}/answer", assessmentHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{attemptId}/end", assessmentHandler.End).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{attemptId}/report", assessmentHandler.Report).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
