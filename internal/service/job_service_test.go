package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscope/internal/model"
)

func newJobService() (*JobService, *fakeJobRepo, *fakeSkillRepo, *fakeRegistrationRepo, *fakeAttemptRepo, *fakeCandidateRepo) {
	jobs := newFakeJobRepo()
	skills := newFakeSkillRepo()
	regs := &fakeRegistrationRepo{}
	attempts := newFakeAttemptRepo()
	candidates := newFakeCandidateRepo()
	return NewJobService(jobs, skills, regs, attempts, candidates), jobs, skills, regs, attempts, candidates
}

func TestCreateJobMapsPriorityWords(t *testing.T) {
	svc, _, skills, _, _, _ := newJobService()
	ctx := context.Background()

	job, err := svc.Create(ctx, CreateJobInput{
		RecruiterID:     "rec-1",
		Title:           "Backend Engineer",
		ExperienceMin:   2,
		ExperienceMax:   5,
		DurationMinutes: 20,
		NumQuestions:    8,
		Skills: []SkillInput{
			{Name: "Go", Priority: "high"},
			{Name: "SQL", Priority: "medium"},
			{Name: "Docker", Priority: "low"},
		},
	})
	require.NoError(t, err)
	require.Len(t, job.RequiredSkills, 3)
	assert.Equal(t, model.PriorityHigh, job.RequiredSkills[0].Priority)
	assert.Equal(t, model.PriorityMedium, job.RequiredSkills[1].Priority)
	assert.Equal(t, model.PriorityLow, job.RequiredSkills[2].Priority)

	// skill records were created on the fly
	for _, name := range []string{"Go", "SQL", "Docker"} {
		_, err := skills.GetByName(ctx, name)
		assert.NoError(t, err, name)
	}
}

func TestCreateJobRejectsUnknownPriority(t *testing.T) {
	svc, _, _, _, _, _ := newJobService()

	_, err := svc.Create(context.Background(), CreateJobInput{
		Title:  "Bad Job",
		Skills: []SkillInput{{Name: "Go", Priority: "urgent"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid priority")
}

func TestRegisterMintsAttemptOnce(t *testing.T) {
	svc, jobs, _, regs, attempts, candidates := newJobService()
	ctx := context.Background()

	require.NoError(t, jobs.Create(ctx, &model.Job{ID: "job-1", Title: "SRE"}))
	require.NoError(t, candidates.Create(ctx, &model.Candidate{ID: "cand-1", Name: "Mira"}))

	attemptID, err := svc.Register(ctx, "job-1", "cand-1")
	require.NoError(t, err)
	require.NotEmpty(t, attemptID)

	attempt, err := attempts.GetByID(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptRegistered, attempt.Status)
	assert.Equal(t, "cand-1", attempt.CandidateID)

	reg, err := regs.Find(ctx, "job-1", "cand-1")
	require.NoError(t, err)
	assert.Equal(t, attemptID, reg.AttemptID)

	_, err = svc.Register(ctx, "job-1", "cand-1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterUnknownJobOrCandidate(t *testing.T) {
	svc, jobs, _, _, _, _ := newJobService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "nope", "cand-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, jobs.Create(ctx, &model.Job{ID: "job-1"}))
	_, err = svc.Register(ctx, "job-1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
