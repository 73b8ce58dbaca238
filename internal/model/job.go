package model

import "time"

type Job struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	RecruiterID    string          `json:"recruiterId" bson:"recruiterId"`
	Title          string          `json:"title" bson:"title"`
	Company        string          `json:"company" bson:"company"`
	Location       string          `json:"location,omitempty" bson:"location,omitempty"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	ExperienceMin  float64         `json:"experienceMin" bson:"experienceMin"`
	ExperienceMax  float64         `json:"experienceMax" bson:"experienceMax"`
	DurationMin    int             `json:"durationMinutes" bson:"durationMinutes"`
	NumQuestions   int             `json:"numQuestions" bson:"numQuestions"`
	Schedule       time.Time       `json:"schedule" bson:"schedule"`
	RequiredSkills []RequiredSkill `json:"requiredSkills" bson:"requiredSkills"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
}

type Candidate struct {
	ID                string  `json:"id" bson:"_id,omitempty"`
	Name              string  `json:"name" bson:"name"`
	Email             string  `json:"email" bson:"email"`
	Location          string  `json:"location,omitempty" bson:"location,omitempty"`
	Degree            string  `json:"degree,omitempty" bson:"degree,omitempty"`
	YearsOfExperience float64 `json:"yearsOfExperience" bson:"yearsOfExperience"`
}
