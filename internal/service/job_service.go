package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
	"skillscope/internal/repository"
)

// ErrAlreadyRegistered rejects a second registration for the same (job,
// candidate) pair.
var ErrAlreadyRegistered = errors.New("candidate already registered for this job")

// JobService owns job creation (with lazy skill records) and candidate
// registration, which mints the attempt that the assessment engine later runs.
type JobService struct {
	jobs          repository.JobRepo
	skills        repository.SkillRepo
	registrations repository.RegistrationRepo
	attempts      repository.AttemptRepo
	candidates    repository.CandidateRepo
}

func NewJobService(
	jobs repository.JobRepo,
	skills repository.SkillRepo,
	registrations repository.RegistrationRepo,
	attempts repository.AttemptRepo,
	candidates repository.CandidateRepo,
) *JobService {
	return &JobService{
		jobs:          jobs,
		skills:        skills,
		registrations: registrations,
		attempts:      attempts,
		candidates:    candidates,
	}
}

// SkillInput names a required skill with its word-form priority.
type SkillInput struct {
	Name     string
	Priority string // low, medium, high
}

// CreateJobInput carries everything a recruiter supplies for a new assessment.
type CreateJobInput struct {
	RecruiterID     string
	Title           string
	Company         string
	Location        string
	Description     string
	ExperienceMin   float64
	ExperienceMax   float64
	DurationMinutes int
	NumQuestions    int
	Schedule        time.Time
	Skills          []SkillInput
}

var priorityWords = map[string]int{
	"low":    model.PriorityLow,
	"medium": model.PriorityMedium,
	"high":   model.PriorityHigh,
}

// Create persists the job with its required skills, creating skill records
// that do not exist yet.
func (s *JobService) Create(ctx context.Context, in CreateJobInput) (*model.Job, error) {
	required := make([]model.RequiredSkill, 0, len(in.Skills))
	for _, sk := range in.Skills {
		priority, ok := priorityWords[sk.Priority]
		if !ok {
			return nil, fmt.Errorf("invalid priority %q for skill %s: must be low, medium, or high", sk.Priority, sk.Name)
		}
		if _, err := s.skills.EnsureByName(ctx, sk.Name, "technical"); err != nil {
			return nil, fmt.Errorf("ensuring skill %s: %w", sk.Name, err)
		}
		required = append(required, model.RequiredSkill{Name: sk.Name, Priority: priority})
	}

	job := &model.Job{
		RecruiterID:    in.RecruiterID,
		Title:          in.Title,
		Company:        in.Company,
		Location:       in.Location,
		Description:    in.Description,
		ExperienceMin:  in.ExperienceMin,
		ExperienceMax:  in.ExperienceMax,
		DurationMin:    in.DurationMinutes,
		NumQuestions:   in.NumQuestions,
		Schedule:       in.Schedule,
		RequiredSkills: required,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return job, nil
}

// Get loads one job.
func (s *JobService) Get(ctx context.Context, jobID string) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFound("job", jobID, err)
	}
	return job, nil
}

// Register signs a candidate up for a job's assessment and mints the attempt
// the engine will run. Returns the attempt id.
func (s *JobService) Register(ctx context.Context, jobID, candidateID string) (string, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return "", notFound("job", jobID, err)
	}
	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		return "", notFound("candidate", candidateID, err)
	}
	if _, err := s.registrations.Find(ctx, jobID, candidateID); err == nil {
		return "", ErrAlreadyRegistered
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("checking registration: %w", err)
	}

	attemptID := uuid.NewString()
	attempt := &model.Attempt{
		ID:          attemptID,
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      model.AttemptRegistered,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return "", fmt.Errorf("creating attempt: %w", err)
	}
	reg := &model.Registration{
		CandidateID: candidateID,
		JobID:       jobID,
		AttemptID:   attemptID,
	}
	if err := s.registrations.Register(ctx, reg); err != nil {
		return "", fmt.Errorf("registering candidate: %w", err)
	}
	return attemptID, nil
}

// Registrations lists a job's registered candidates.
func (s *JobService) Registrations(ctx context.Context, jobID string) ([]*model.Registration, error) {
	return s.registrations.ForJob(ctx, jobID)
}
