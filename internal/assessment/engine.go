package assessment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"skillscope/internal/model"
)

var (
	ErrSessionNotFound   = errors.New("assessment session not found")
	ErrSessionExists     = errors.New("assessment session already started")
	ErrNoQuestions       = errors.New("no questions available for this job")
	ErrNoRequiredSkills  = errors.New("job has no required skills")
	ErrNoPendingQuestion = errors.New("no question is awaiting an answer")
	ErrQuestionMismatch  = errors.New("submitted answer does not match the pending question")
	ErrUnknownSkill      = errors.New("skill is not tracked by this session")
	ErrInvalidAnswer     = errors.New("answer index must be between 1 and 4")
)

// ReportSink persists a finalized report. The engine keeps the session alive
// when the sink fails so the terminating call can be retried; a session
// discarded without a durable report would be unrecoverable.
type ReportSink interface {
	SaveReport(ctx context.Context, attemptID string, report model.PerformanceReport, endedAt time.Time) error
}

// StartConfig carries everything a new session needs, snapshotted at start.
type StartConfig struct {
	AttemptID           string
	CandidateExperience float64
	ExperienceMin       float64
	ExperienceMax       float64
	TotalQuestions      int
	Duration            time.Duration
	RequiredSkills      []model.RequiredSkill
	Proficiencies       map[string]int
	Questions           []model.Question
}

// ServedQuestion is what the candidate sees: text and options only, never the
// correct answer.
type ServedQuestion struct {
	Ordinal int      `json:"questionNumber"`
	Skill   string   `json:"skill"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// NextResult is the outcome of one NextQuestion call. Exactly one of Question,
// Completed, or NoMoreAvailable is set.
type NextResult struct {
	Question        *ServedQuestion
	Completed       bool
	Report          model.PerformanceReport
	NoMoreAvailable bool
}

// SubmitInput identifies the answer being submitted. Ordinal must match the
// pending question issued by the last NextQuestion call.
type SubmitInput struct {
	Skill       string
	Ordinal     int
	AnswerIndex int
	TimeTaken   float64
}

// Engine drives live assessment sessions against the keyed store.
type Engine struct {
	store  *Store
	sink   ReportSink
	now    func() time.Time
	newRNG func() *rand.Rand
}

func NewEngine(sink ReportSink) *Engine {
	return &Engine{
		store: NewStore(),
		sink:  sink,
		now:   time.Now,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Start builds the question bank, allocates quotas, and registers the live
// session. Fails when the job has no required skills or no questions.
func (e *Engine) Start(cfg StartConfig) (*Session, error) {
	if len(cfg.RequiredSkills) == 0 {
		return nil, ErrNoRequiredSkills
	}
	if len(cfg.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	bank, err := NewBank(cfg.Questions, e.newRNG())
	if err != nil {
		return nil, fmt.Errorf("building question bank: %w", err)
	}
	s := newSession(cfg, bank, e.now())
	if err := e.store.Put(s); err != nil {
		return nil, err
	}
	return s, nil
}

// NextQuestion serves the next question for the attempt, or finalizes the
// session when its question or time budget is spent.
func (e *Engine) NextQuestion(ctx context.Context, attemptID string) (*NextResult, error) {
	s, release, err := e.store.Acquire(attemptID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := e.now()
	if s.expired(now) {
		report, err := e.finalize(ctx, s, now)
		if err != nil {
			return nil, err
		}
		return &NextResult{Completed: true, Report: report}, nil
	}

	for _, skill := range s.skillsByPriority() {
		if s.Quota[skill] <= 0 {
			continue
		}
		q, ok := s.Bank.TakeNext(s.CurrentBand[skill], skill)
		if !ok {
			// partition exhausted: skip the skill for this call, quota intact
			continue
		}
		s.Quota[skill]--
		s.QuestionCount++
		s.Served = append(s.Served, q)
		s.Pending = &pendingQuestion{
			Question: q,
			Skill:    skill,
			Band:     s.CurrentBand[skill],
			Ordinal:  s.QuestionCount,
		}
		return &NextResult{Question: &ServedQuestion{
			Ordinal: s.QuestionCount,
			Skill:   skill,
			Text:    q.Text,
			Options: q.Options,
		}}, nil
	}

	// Every skill with quota left has an empty partition at its current band.
	// Not a terminal state: bands may move and open partitions back up.
	return &NextResult{NoMoreAvailable: true}, nil
}

// SubmitAnswer grades the pending question, updates the skill's stats, and
// moves its band one step. Quota and the global counter are owned by
// NextQuestion and left untouched here.
func (e *Engine) SubmitAnswer(attemptID string, in SubmitInput) (string, error) {
	s, release, err := e.store.Acquire(attemptID)
	if err != nil {
		return "", err
	}
	defer release()

	if _, ok := s.Priorities[in.Skill]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSkill, in.Skill)
	}
	if in.AnswerIndex < 1 || in.AnswerIndex > 4 {
		return "", ErrInvalidAnswer
	}
	if s.Pending == nil {
		return "", ErrNoPendingQuestion
	}
	if in.Ordinal != s.Pending.Ordinal || in.Skill != s.Pending.Skill {
		return "", fmt.Errorf("%w: got question %d for %s, pending is %d for %s",
			ErrQuestionMismatch, in.Ordinal, in.Skill, s.Pending.Ordinal, s.Pending.Skill)
	}

	q := s.Pending.Question
	if in.AnswerIndex > len(q.Options) {
		return "", ErrInvalidAnswer
	}
	chosen := q.Options[in.AnswerIndex-1]
	correct := chosen == q.Answer

	stats := s.Stats[in.Skill]
	stats.Attempted++
	stats.TimeSpent += in.TimeTaken
	stats.Responses = append(stats.Responses, model.Response{
		Question:     q.Text,
		Chosen:       chosen,
		Correct:      q.Answer,
		IsCorrect:    correct,
		Band:         s.Pending.Band.String(),
		TimeTakenSec: in.TimeTaken,
	})

	var feedback string
	if correct {
		stats.Correct++
		feedback = "✅ Nice one! That was spot on."
	} else {
		stats.Incorrect++
		feedback = fmt.Sprintf("❌ Oops! The correct answer was: %s", q.Answer)
	}
	s.CurrentBand[in.Skill] = s.CurrentBand[in.Skill].Advance(correct)
	s.Pending = nil

	return feedback, nil
}

// End finalizes the session immediately, regardless of remaining quota or
// time.
func (e *Engine) End(ctx context.Context, attemptID string) (model.PerformanceReport, error) {
	s, release, err := e.store.Acquire(attemptID)
	if err != nil {
		return nil, err
	}
	defer release()
	return e.finalize(ctx, s, e.now())
}

// finalize freezes the report, writes it through the sink, and removes the
// live session. Caller holds the session lock. On a sink failure the session
// stays live so the same call can be retried.
func (e *Engine) finalize(ctx context.Context, s *Session, now time.Time) (model.PerformanceReport, error) {
	report := buildReport(s)
	if err := e.sink.SaveReport(ctx, s.AttemptID, report, now); err != nil {
		return nil, fmt.Errorf("persisting report for attempt %s: %w", s.AttemptID, err)
	}
	e.store.Remove(s.AttemptID)
	return report, nil
}
