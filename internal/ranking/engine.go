// Package ranking scores candidates against a job's required skills. All
// functions are pure: they read their inputs and return new values, so the
// engine is safe to run concurrently across candidates.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"skillscope/internal/model"
)

// Weights for the pre-assessment blend: skill match dominates experience fit.
const (
	skillWeight      = 0.7
	experienceWeight = 0.3
)

// JobInfo is the slice of a job the engine needs.
type JobInfo struct {
	Title         string
	ExperienceMin float64
	ExperienceMax float64
}

// Input bundles one candidate's data for ranking.
type Input struct {
	Candidate     model.Candidate
	Proficiencies map[string]int
	// Report is the frozen performance report of a completed attempt, nil when
	// the candidate has not finished the assessment.
	Report model.PerformanceReport
}

// RankedCandidate is one row of the ranking output.
type RankedCandidate struct {
	CandidateID     string   `json:"candidateId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	SkillScore      float64  `json:"skillScore"`
	ExperienceScore float64  `json:"experienceScore"`
	PreScore        float64  `json:"preScore"`
	PostScore       *float64 `json:"postScore,omitempty"`
	CombinedScore   float64  `json:"combinedScore"`
	HasReport       bool     `json:"hasReport"`
	Rank            int      `json:"rank"`
	Justification   string   `json:"justification"`
}

// SkillScore is Σ(priority·proficiency) over matched skills normalized by
// Σ(priority)·max proficiency, in [0,1]. Also returns the matched skill
// descriptions used in the justification.
func SkillScore(proficiencies map[string]int, required []model.RequiredSkill) (float64, []string) {
	maxScore := 0
	for _, rs := range required {
		maxScore += rs.Priority * model.MaxProficiency
	}
	if maxScore == 0 {
		return 0, nil
	}
	score := 0
	var matched []string
	for _, rs := range required {
		proficiency := proficiencies[rs.Name]
		if proficiency > 0 {
			matched = append(matched, fmt.Sprintf("%s (Proficiency: %d)", rs.Name, proficiency))
			score += rs.Priority * proficiency
		}
	}
	return float64(score) / float64(maxScore), matched
}

// ExperienceScore measures distance from the job window's midpoint, 1 at the
// midpoint falling linearly to 0 at (and beyond) the window edges. A
// zero-width window scores 1 regardless of the candidate's experience, per
// the degenerate-requirement rule.
func ExperienceScore(experience, min, max float64) float64 {
	expRange := max - min
	if expRange <= 0 {
		return 1
	}
	diff := math.Abs(experience - (min+max)/2)
	return math.Max(0, 1-diff/(expRange/2))
}

// PreScore blends skill match and experience fit.
func PreScore(skillScore, experienceScore float64) float64 {
	return skillWeight*skillScore + experienceWeight*experienceScore
}

// PostScore is the report's average skill accuracy normalized to [0,1]. The
// second return is false when no completed report exists.
func PostScore(report model.PerformanceReport) (float64, bool) {
	if report == nil {
		return 0, false
	}
	return report.AverageAccuracy() / 100, true
}

// CombinedScore halves the pre score and adds the post half only when a
// completed report exists.
func CombinedScore(preScore float64, postScore float64, hasPost bool) float64 {
	combined := 0.5 * preScore
	if hasPost {
		combined += 0.5 * postScore
	}
	return combined
}

// Rank scores every candidate and orders them: candidates with a completed
// attempt first, then by descending combined score, ties keeping input order.
// Ranks are assigned 1..n in the final order.
func Rank(job JobInfo, required []model.RequiredSkill, inputs []Input) []RankedCandidate {
	rows := make([]RankedCandidate, 0, len(inputs))
	for _, in := range inputs {
		skillScore, matched := SkillScore(in.Proficiencies, required)
		expScore := ExperienceScore(in.Candidate.YearsOfExperience, job.ExperienceMin, job.ExperienceMax)
		preScore := PreScore(skillScore, expScore)
		postScore, hasPost := PostScore(in.Report)

		row := RankedCandidate{
			CandidateID:     in.Candidate.ID,
			Name:            in.Candidate.Name,
			Email:           in.Candidate.Email,
			SkillScore:      skillScore,
			ExperienceScore: expScore,
			PreScore:        preScore,
			CombinedScore:   CombinedScore(preScore, postScore, hasPost),
			HasReport:       hasPost,
			Justification:   justification(in.Candidate, job, matched),
		}
		if hasPost {
			p := postScore
			row.PostScore = &p
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].HasReport != rows[j].HasReport {
			return rows[i].HasReport
		}
		return rows[i].CombinedScore > rows[j].CombinedScore
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// justification renders the human-readable reason for a candidate's position:
// matched skills and how their experience sits against the job's window.
func justification(c model.Candidate, job JobInfo, matched []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is ranked based on ", c.Name)
	if len(matched) > 0 {
		fmt.Fprintf(&b, "strong skills in %s", strings.Join(matched, ", "))
	} else {
		b.WriteString("limited skill matches")
	}
	fmt.Fprintf(&b, " and %g years of experience, which ", c.YearsOfExperience)

	diff := math.Abs(c.YearsOfExperience - (job.ExperienceMin+job.ExperienceMax)/2)
	switch {
	case diff < 0.5:
		b.WriteString("closely matches")
	case diff < 1.5:
		b.WriteString("reasonably matches")
	default:
		b.WriteString("is outside")
	}
	fmt.Fprintf(&b, " the job's %g-%g year requirement.", job.ExperienceMin, job.ExperienceMax)
	return b.String()
}
