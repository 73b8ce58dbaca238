package model

// Priority weights for a job's required skills
const (
	PriorityLow    = 2
	PriorityMedium = 3
	PriorityHigh   = 5
)

// Proficiency levels inferred for a candidate's skills
const (
	ProficiencyBeginner     = 4
	ProficiencyIntermediate = 6
	ProficiencyAdvanced     = 8
)

// MaxProficiency is the ceiling of the proficiency scale, used to normalize
// skill-match scores.
const MaxProficiency = ProficiencyAdvanced

type Skill struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
}

// RequiredSkill ties a skill name to its priority within a job. Embedded in
// the job document.
type RequiredSkill struct {
	Name     string `json:"name" bson:"name"`
	Priority int    `json:"priority" bson:"priority"`
}

// CandidateSkill is a candidate's inferred proficiency for one skill.
type CandidateSkill struct {
	CandidateID string `json:"candidateId" bson:"candidateId"`
	Skill       string `json:"skill" bson:"skill"`
	Proficiency int    `json:"proficiency" bson:"proficiency"`
}
