package model

import "time"

type AttemptStatus string

const (
	AttemptRegistered AttemptStatus = "registered"
	AttemptStarted    AttemptStatus = "started"
	AttemptCompleted  AttemptStatus = "completed"
)

// Attempt is one candidate's single scheduled run of a job's assessment.
type Attempt struct {
	ID          string            `json:"id" bson:"_id"`
	CandidateID string            `json:"candidateId" bson:"candidateId"`
	JobID       string            `json:"jobId" bson:"jobId"`
	Status      AttemptStatus     `json:"status" bson:"status"`
	StartTime   *time.Time        `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime     *time.Time        `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Report      PerformanceReport `json:"report,omitempty" bson:"report,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// PerformanceReport is the frozen per-skill outcome of a completed attempt.
type PerformanceReport map[string]SkillReport

type SkillReport struct {
	QuestionsAttempted int        `json:"questionsAttempted" bson:"questionsAttempted"`
	CorrectAnswers     int        `json:"correctAnswers" bson:"correctAnswers"`
	IncorrectAnswers   int        `json:"incorrectAnswers" bson:"incorrectAnswers"`
	FinalBand          string     `json:"finalBand" bson:"finalBand"`
	TimeSpentSec       float64    `json:"timeSpentSec" bson:"timeSpentSec"`
	AccuracyPercent    float64    `json:"accuracyPercent" bson:"accuracyPercent"`
	Responses          []Response `json:"responses" bson:"responses"`
}

// Response records a single answered question inside a skill report.
type Response struct {
	Question     string  `json:"question" bson:"question"`
	Chosen       string  `json:"chosen" bson:"chosen"`
	Correct      string  `json:"correct" bson:"correct"`
	IsCorrect    bool    `json:"isCorrect" bson:"isCorrect"`
	Band         string  `json:"band" bson:"band"`
	TimeTakenSec float64 `json:"timeTakenSec" bson:"timeTakenSec"`
}

// AverageAccuracy is the mean accuracy across the report's skills, in percent.
func (r PerformanceReport) AverageAccuracy() float64 {
	if len(r) == 0 {
		return 0
	}
	sum := 0.0
	for _, sr := range r {
		sum += sr.AccuracyPercent
	}
	return sum / float64(len(r))
}

// Registration records a candidate signing up for a job's assessment.
type Registration struct {
	CandidateID  string    `json:"candidateId" bson:"candidateId"`
	JobID        string    `json:"jobId" bson:"jobId"`
	AttemptID    string    `json:"attemptId" bson:"attemptId"`
	RegisteredAt time.Time `json:"registeredAt" bson:"registeredAt"`
}
