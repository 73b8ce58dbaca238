package assessment

import (
	"math"
	"sort"
	"time"

	"skillscope/internal/model"
)

// skillStats accumulates one skill's results while the session is live. The
// aggregator freezes it into a model.SkillReport at the end.
type skillStats struct {
	Attempted int
	Correct   int
	Incorrect int
	TimeSpent float64
	Responses []model.Response
}

// pendingQuestion is the single question served by the last NextQuestion call
// and not yet answered. SubmitAnswer validates against it.
type pendingQuestion struct {
	Question model.Question
	Skill    string
	Band     Band
	Ordinal  int
}

// Session is the live state machine for one attempt. All fields are guarded by
// the store's per-attempt lock; nothing here is safe for unguarded sharing.
type Session struct {
	AttemptID string

	TotalQuestions int
	Duration       time.Duration
	StartedAt      time.Time

	// Snapshot of the job's required skills at start time; later edits to the
	// job do not affect an in-flight session.
	SkillOrder []string
	Priorities map[string]int

	Quota       map[string]int
	CurrentBand map[string]Band
	InitialBand map[string]Band

	Stats map[string]*skillStats

	QuestionCount int
	Bank          *Bank
	Pending       *pendingQuestion
	Served        []model.Question
}

// allocateQuotas splits the total question budget across skills proportionally
// to priority. Shares round half-to-even and every skill gets at least one
// question, so the sum may drift from the budget by up to len(skills)-1.
func allocateQuotas(skills []model.RequiredSkill, totalQuestions int) map[string]int {
	prioritySum := 0
	for _, rs := range skills {
		prioritySum += rs.Priority
	}
	quotas := make(map[string]int, len(skills))
	for _, rs := range skills {
		share := 0.0
		if prioritySum > 0 {
			share = float64(rs.Priority) / float64(prioritySum) * float64(totalQuestions)
		}
		n := int(math.RoundToEven(share))
		if n < 1 {
			n = 1
		}
		quotas[rs.Name] = n
	}
	return quotas
}

func newSession(cfg StartConfig, bank *Bank, startedAt time.Time) *Session {
	base := InitialBand(cfg.CandidateExperience, cfg.ExperienceMin, cfg.ExperienceMax)

	order := make([]string, 0, len(cfg.RequiredSkills))
	priorities := make(map[string]int, len(cfg.RequiredSkills))
	current := make(map[string]Band, len(cfg.RequiredSkills))
	initial := make(map[string]Band, len(cfg.RequiredSkills))
	stats := make(map[string]*skillStats, len(cfg.RequiredSkills))
	for _, rs := range cfg.RequiredSkills {
		order = append(order, rs.Name)
		priorities[rs.Name] = rs.Priority
		band := BandForProficiency(cfg.Proficiencies[rs.Name], base)
		current[rs.Name] = band
		initial[rs.Name] = band
		stats[rs.Name] = &skillStats{}
	}

	return &Session{
		AttemptID:      cfg.AttemptID,
		TotalQuestions: cfg.TotalQuestions,
		Duration:       cfg.Duration,
		StartedAt:      startedAt,
		SkillOrder:     order,
		Priorities:     priorities,
		Quota:          allocateQuotas(cfg.RequiredSkills, cfg.TotalQuestions),
		CurrentBand:    current,
		InitialBand:    initial,
		Stats:          stats,
		Bank:           bank,
	}
}

// expired reports whether the session's time or question budget is spent.
func (s *Session) expired(now time.Time) bool {
	return s.QuestionCount >= s.TotalQuestions || now.Sub(s.StartedAt) >= s.Duration
}

// skillsByPriority returns the tracked skills in descending priority order,
// ties keeping their start-time order.
func (s *Session) skillsByPriority() []string {
	out := make([]string, len(s.SkillOrder))
	copy(out, s.SkillOrder)
	sort.SliceStable(out, func(i, j int) bool {
		return s.Priorities[out[i]] > s.Priorities[out[j]]
	})
	return out
}
