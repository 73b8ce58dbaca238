package service

import (
	"context"
	"fmt"
	"log"

	"skillscope/internal/cache"
	"skillscope/internal/model"
	"skillscope/internal/ranking"
	"skillscope/internal/repository"
)

// RankingService runs the pure ranking engine over persisted records and
// mirrors the result into the Redis board. It never touches live sessions.
type RankingService struct {
	jobs            repository.JobRepo
	registrations   repository.RegistrationRepo
	candidates      repository.CandidateRepo
	candidateSkills repository.CandidateSkillRepo
	attempts        repository.AttemptRepo
	board           cache.RankingCache
}

func NewRankingService(
	jobs repository.JobRepo,
	registrations repository.RegistrationRepo,
	candidates repository.CandidateRepo,
	candidateSkills repository.CandidateSkillRepo,
	attempts repository.AttemptRepo,
	board cache.RankingCache,
) *RankingService {
	return &RankingService{
		jobs:            jobs,
		registrations:   registrations,
		candidates:      candidates,
		candidateSkills: candidateSkills,
		attempts:        attempts,
		board:           board,
	}
}

// RankCandidates scores every candidate registered for the job, blending in
// completed-attempt accuracy where it exists.
func (s *RankingService) RankCandidates(ctx context.Context, jobID string) ([]ranking.RankedCandidate, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFound("job", jobID, err)
	}

	regs, err := s.registrations.ForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading registrations: %w", err)
	}
	candidateIDs := make([]string, len(regs))
	for i, reg := range regs {
		candidateIDs[i] = reg.CandidateID
	}

	candidates, err := s.candidates.ListByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	byID := make(map[string]*model.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	proficiencies, err := s.candidateSkills.ForCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("loading candidate skills: %w", err)
	}

	completed, err := s.attempts.CompletedForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading completed attempts: %w", err)
	}
	// keep the most recent completion per candidate
	latest := make(map[string]*model.Attempt, len(completed))
	for _, a := range completed {
		cur, ok := latest[a.CandidateID]
		if !ok || (a.EndTime != nil && (cur.EndTime == nil || a.EndTime.After(*cur.EndTime))) {
			latest[a.CandidateID] = a
		}
	}
	reports := make(map[string]model.PerformanceReport, len(latest))
	for id, a := range latest {
		reports[id] = a.Report
	}

	// registration order is the stable tie order
	inputs := make([]ranking.Input, 0, len(regs))
	for _, reg := range regs {
		c, ok := byID[reg.CandidateID]
		if !ok {
			continue
		}
		inputs = append(inputs, ranking.Input{
			Candidate:     *c,
			Proficiencies: proficiencies[c.ID],
			Report:        reports[c.ID],
		})
	}

	rows := ranking.Rank(ranking.JobInfo{
		Title:         job.Title,
		ExperienceMin: job.ExperienceMin,
		ExperienceMax: job.ExperienceMax,
	}, job.RequiredSkills, inputs)

	if err := s.board.SetBoard(ctx, jobID, rows); err != nil {
		log.Printf("ranking board write for job %s: %v", jobID, err)
	}
	return rows, nil
}
