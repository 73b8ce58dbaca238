package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/assessment"
	"skillscope/internal/cache"
	"skillscope/internal/model"
	"skillscope/internal/repository"
)

var (
	// ErrNotFound wraps unknown attempt/candidate/job lookups.
	ErrNotFound = errors.New("not found")
	// ErrAttemptCompleted rejects starting an attempt that already has a report.
	ErrAttemptCompleted = errors.New("attempt already completed")
	// ErrReportNotReady rejects report reads before the attempt finishes.
	ErrReportNotReady = errors.New("attempt has no report yet")
)

// AssessmentService drives the live assessment engine from persisted records:
// it snapshots the job's requirements into the session at start, proxies the
// scheduler calls, and owns the durable finalization write.
type AssessmentService struct {
	attempts        repository.AttemptRepo
	candidates      repository.CandidateRepo
	candidateSkills repository.CandidateSkillRepo
	jobs            repository.JobRepo
	questions       repository.QuestionRepo
	reports         cache.ReportCache
	engine          *assessment.Engine
}

func NewAssessmentService(
	attempts repository.AttemptRepo,
	candidates repository.CandidateRepo,
	candidateSkills repository.CandidateSkillRepo,
	jobs repository.JobRepo,
	questions repository.QuestionRepo,
	reports cache.ReportCache,
	finalizeRetries int,
) *AssessmentService {
	svc := &AssessmentService{
		attempts:        attempts,
		candidates:      candidates,
		candidateSkills: candidateSkills,
		jobs:            jobs,
		questions:       questions,
		reports:         reports,
	}
	sink := &durableSink{
		attempts: attempts,
		reports:  reports,
		retries:  finalizeRetries,
	}
	svc.engine = assessment.NewEngine(sink)
	return svc
}

// StartResult is what the client needs to run the test UI.
type StartResult struct {
	TotalQuestions  int `json:"totalQuestions"`
	DurationSeconds int `json:"durationSeconds"`
}

// Start loads the attempt's candidate and job, snapshots required skills and
// proficiencies, builds the question bank, and opens the live session.
func (s *AssessmentService) Start(ctx context.Context, attemptID string) (*StartResult, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, notFound("attempt", attemptID, err)
	}
	if attempt.Status == model.AttemptCompleted {
		return nil, ErrAttemptCompleted
	}
	candidate, err := s.candidates.GetByID(ctx, attempt.CandidateID)
	if err != nil {
		return nil, notFound("candidate", attempt.CandidateID, err)
	}
	job, err := s.jobs.GetByID(ctx, attempt.JobID)
	if err != nil {
		return nil, notFound("job", attempt.JobID, err)
	}

	proficiencies, err := s.candidateSkills.ForCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("loading candidate skills: %w", err)
	}
	questions, err := s.questions.ForJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("loading question bank: %w", err)
	}

	cfg := assessment.StartConfig{
		AttemptID:           attemptID,
		CandidateExperience: candidate.YearsOfExperience,
		ExperienceMin:       job.ExperienceMin,
		ExperienceMax:       job.ExperienceMax,
		TotalQuestions:      job.NumQuestions,
		Duration:            time.Duration(job.DurationMin) * time.Minute,
		RequiredSkills:      job.RequiredSkills,
		Proficiencies:       proficiencies,
		Questions:           questions,
	}
	session, err := s.engine.Start(cfg)
	if err != nil {
		return nil, err
	}

	if err := s.attempts.MarkStarted(ctx, attemptID, session.StartedAt); err != nil {
		log.Printf("failed to mark attempt %s started: %v", attemptID, err)
	}

	return &StartResult{
		TotalQuestions:  cfg.TotalQuestions,
		DurationSeconds: int(cfg.Duration.Seconds()),
	}, nil
}

// NextQuestion proxies the scheduler; a completed result already carries the
// persisted report.
func (s *AssessmentService) NextQuestion(ctx context.Context, attemptID string) (*assessment.NextResult, error) {
	return s.engine.NextQuestion(ctx, attemptID)
}

// SubmitAnswer grades the pending question for the attempt.
func (s *AssessmentService) SubmitAnswer(attemptID string, in assessment.SubmitInput) (string, error) {
	return s.engine.SubmitAnswer(attemptID, in)
}

// End finalizes the attempt early.
func (s *AssessmentService) End(ctx context.Context, attemptID string) (model.PerformanceReport, error) {
	return s.engine.End(ctx, attemptID)
}

// Report returns the frozen report of a completed attempt, cache first.
func (s *AssessmentService) Report(ctx context.Context, attemptID string) (model.PerformanceReport, error) {
	if report, err := s.reports.Get(ctx, attemptID); err == nil && report != nil {
		return report, nil
	} else if err != nil {
		log.Printf("report cache read for attempt %s: %v", attemptID, err)
	}

	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, notFound("attempt", attemptID, err)
	}
	if attempt.Status != model.AttemptCompleted || attempt.Report == nil {
		return nil, ErrReportNotReady
	}
	return attempt.Report, nil
}

// durableSink persists finalized reports. The write is retried before giving
// up: a session dropped without a stored report cannot be reconstructed.
type durableSink struct {
	attempts repository.AttemptRepo
	reports  cache.ReportCache
	retries  int
}

func (d *durableSink) SaveReport(ctx context.Context, attemptID string, report model.PerformanceReport, endedAt time.Time) error {
	var err error
	for i := 0; i <= d.retries; i++ {
		if err = d.attempts.Complete(ctx, attemptID, report, endedAt); err == nil {
			if cacheErr := d.reports.Set(ctx, attemptID, report); cacheErr != nil {
				log.Printf("report cache write for attempt %s: %v", attemptID, cacheErr)
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 100 * time.Millisecond):
		}
	}
	return fmt.Errorf("completing attempt %s: %w", attemptID, err)
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("loading %s %s: %w", kind, id, err)
}
