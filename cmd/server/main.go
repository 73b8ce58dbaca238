package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillscope/internal/cache"
	"skillscope/internal/config"
	"skillscope/internal/repository"
	"skillscope/internal/service"
	"skillscope/internal/transport/rest"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Repositories
	skillRepo := repository.NewSkillRepo(db)
	jobRepo := repository.NewJobRepo(db)
	candidateRepo := repository.NewCandidateRepo(db)
	candidateSkillRepo := repository.NewCandidateSkillRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)
	registrationRepo := repository.NewRegistrationRepo(db)

	// Caches
	reportCache := cache.NewReportCache(rdb, cfg.ReportTTL)
	rankingCache := cache.NewRankingCache(rdb, cfg.RankingTTL)

	// Services
	assessmentSvc := service.NewAssessmentService(
		attemptRepo, candidateRepo, candidateSkillRepo, jobRepo, questionRepo,
		reportCache, cfg.FinalizeRetries,
	)
	jobSvc := service.NewJobService(jobRepo, skillRepo, registrationRepo, attemptRepo, candidateRepo)
	rankingSvc := service.NewRankingService(
		jobRepo, registrationRepo, candidateRepo, candidateSkillRepo, attemptRepo, rankingCache,
	)

	container := &rest.Container{
		AssessmentService: assessmentSvc,
		JobService:        jobSvc,
		RankingService:    rankingSvc,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/jobs")
		log.Println("  GET  /v1/jobs/{jobId}")
		log.Println("  POST /v1/jobs/{jobId}/register")
		log.Println("  GET  /v1/jobs/{jobId}/candidates")
		log.Println("  GET  /v1/jobs/{jobId}/ranking")
		log.Println("  POST /v1/assessments/{attemptId}/start")
		log.Println("  GET  /v1/assessments/{attemptId}/next-question")
		log.Println("  POST /v1/assessments/{attemptId}/answer")
		log.Println("  POST /v1/assessments/{attemptId}/end")
		log.Println("  GET  /v1/assessments/{attemptId}/report")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
