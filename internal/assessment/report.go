package assessment

import (
	"math"

	"skillscope/internal/model"
)

// buildReport folds the session's running stats into the frozen per-skill
// report: final band, two-decimal accuracy, full response log.
func buildReport(s *Session) model.PerformanceReport {
	report := make(model.PerformanceReport, len(s.SkillOrder))
	for _, skill := range s.SkillOrder {
		stats := s.Stats[skill]
		accuracy := 0.0
		if stats.Attempted > 0 {
			accuracy = roundTwo(float64(stats.Correct) / float64(stats.Attempted) * 100)
		}
		responses := make([]model.Response, len(stats.Responses))
		copy(responses, stats.Responses)
		report[skill] = model.SkillReport{
			QuestionsAttempted: stats.Attempted,
			CorrectAnswers:     stats.Correct,
			IncorrectAnswers:   stats.Incorrect,
			FinalBand:          s.CurrentBand[skill].String(),
			TimeSpentSec:       stats.TimeSpent,
			AccuracyPercent:    accuracy,
			Responses:          responses,
		}
	}
	return report
}

// roundTwo rounds to two decimals, halves to even.
func roundTwo(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
