package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
	"skillscope/internal/ranking"
)

// In-memory stand-ins for the Mongo repos and Redis caches. They return
// mongo.ErrNoDocuments on misses the way the real repos do.

type fakeAttemptRepo struct {
	attempts     map[string]*model.Attempt
	completeErrs int
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[string]*model.Attempt)}
}

func (f *fakeAttemptRepo) Create(ctx context.Context, attempt *model.Attempt) error {
	cp := *attempt
	f.attempts[attempt.ID] = &cp
	return nil
}

func (f *fakeAttemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttemptRepo) MarkStarted(ctx context.Context, id string, startedAt time.Time) error {
	a, ok := f.attempts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = model.AttemptStarted
	a.StartTime = &startedAt
	return nil
}

func (f *fakeAttemptRepo) Complete(ctx context.Context, id string, report model.PerformanceReport, endedAt time.Time) error {
	if f.completeErrs > 0 {
		f.completeErrs--
		return errors.New("mongo write failed")
	}
	a, ok := f.attempts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = model.AttemptCompleted
	a.Report = report
	a.EndTime = &endedAt
	return nil
}

func (f *fakeAttemptRepo) CompletedForJob(ctx context.Context, jobID string) ([]*model.Attempt, error) {
	var out []*model.Attempt
	for _, a := range f.attempts {
		if a.JobID == jobID && a.Status == model.AttemptCompleted {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCandidateRepo struct {
	candidates map[string]*model.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*model.Candidate)}
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c *model.Candidate) error {
	f.candidates[c.ID] = c
	return nil
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (f *fakeCandidateRepo) ListByIDs(ctx context.Context, ids []string) ([]*model.Candidate, error) {
	var out []*model.Candidate
	for _, id := range ids {
		if c, ok := f.candidates[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCandidateSkillRepo struct {
	rows map[string]map[string]int // candidateID -> skill -> proficiency
}

func newFakeCandidateSkillRepo() *fakeCandidateSkillRepo {
	return &fakeCandidateSkillRepo{rows: make(map[string]map[string]int)}
}

func (f *fakeCandidateSkillRepo) Upsert(ctx context.Context, cs *model.CandidateSkill) error {
	if f.rows[cs.CandidateID] == nil {
		f.rows[cs.CandidateID] = make(map[string]int)
	}
	f.rows[cs.CandidateID][cs.Skill] = cs.Proficiency
	return nil
}

func (f *fakeCandidateSkillRepo) ForCandidate(ctx context.Context, candidateID string) (map[string]int, error) {
	return f.rows[candidateID], nil
}

func (f *fakeCandidateSkillRepo) ForCandidates(ctx context.Context, candidateIDs []string) (map[string]map[string]int, error) {
	out := make(map[string]map[string]int)
	for _, id := range candidateIDs {
		if rows, ok := f.rows[id]; ok {
			out[id] = rows
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs map[string]*model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*model.Job)}
}

func (f *fakeJobRepo) Create(ctx context.Context, job *model.Job) error {
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(f.jobs)+1)
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return j, nil
}

func (f *fakeJobRepo) ListByRecruiter(ctx context.Context, recruiterID string) ([]*model.Job, error) {
	var out []*model.Job
	for _, j := range f.jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	questions map[string][]model.Question // jobID -> questions
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[string][]model.Question)}
}

func (f *fakeQuestionRepo) InsertMany(ctx context.Context, questions []model.Question) error {
	for _, q := range questions {
		f.questions[q.JobID] = append(f.questions[q.JobID], q)
	}
	return nil
}

func (f *fakeQuestionRepo) ForJob(ctx context.Context, jobID string) ([]model.Question, error) {
	return f.questions[jobID], nil
}

func (f *fakeQuestionRepo) CountForJob(ctx context.Context, jobID string) (int64, error) {
	return int64(len(f.questions[jobID])), nil
}

type fakeRegistrationRepo struct {
	regs []*model.Registration
}

func (f *fakeRegistrationRepo) Register(ctx context.Context, reg *model.Registration) error {
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeRegistrationRepo) ForJob(ctx context.Context, jobID string) ([]*model.Registration, error) {
	var out []*model.Registration
	for _, r := range f.regs {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) Find(ctx context.Context, jobID, candidateID string) (*model.Registration, error) {
	for _, r := range f.regs {
		if r.JobID == jobID && r.CandidateID == candidateID {
			return r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeSkillRepo struct {
	skills map[string]*model.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[string]*model.Skill)}
}

func (f *fakeSkillRepo) GetByName(ctx context.Context, name string) (*model.Skill, error) {
	s, ok := f.skills[name]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (f *fakeSkillRepo) EnsureByName(ctx context.Context, name, category string) (*model.Skill, error) {
	if s, ok := f.skills[name]; ok {
		return s, nil
	}
	s := &model.Skill{ID: name, Name: name, Category: category}
	f.skills[name] = s
	return s, nil
}

func (f *fakeSkillRepo) List(ctx context.Context) ([]*model.Skill, error) {
	var out []*model.Skill
	for _, s := range f.skills {
		out = append(out, s)
	}
	return out, nil
}

type fakeReportCache struct {
	reports map[string]model.PerformanceReport
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{reports: make(map[string]model.PerformanceReport)}
}

func (f *fakeReportCache) Set(ctx context.Context, attemptID string, report model.PerformanceReport) error {
	f.reports[attemptID] = report
	return nil
}

func (f *fakeReportCache) Get(ctx context.Context, attemptID string) (model.PerformanceReport, error) {
	return f.reports[attemptID], nil
}

func (f *fakeReportCache) Delete(ctx context.Context, attemptID string) error {
	delete(f.reports, attemptID)
	return nil
}

type fakeRankingCache struct {
	boards map[string][]ranking.RankedCandidate
}

func newFakeRankingCache() *fakeRankingCache {
	return &fakeRankingCache{boards: make(map[string][]ranking.RankedCandidate)}
}

func (f *fakeRankingCache) SetBoard(ctx context.Context, jobID string, rows []ranking.RankedCandidate) error {
	f.boards[jobID] = rows
	return nil
}

func (f *fakeRankingCache) GetBoard(ctx context.Context, jobID string) ([]ranking.RankedCandidate, error) {
	return f.boards[jobID], nil
}

func (f *fakeRankingCache) Top(ctx context.Context, jobID string, limit int) ([]string, error) {
	rows := f.boards[jobID]
	var out []string
	for i, row := range rows {
		if i >= limit {
			break
		}
		out = append(out, row.CandidateID)
	}
	return out, nil
}
