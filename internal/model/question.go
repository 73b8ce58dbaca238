package model

// Difficulty bands, easiest to hardest. The assessment engine walks these as a
// closed enumeration; records store the string form.
const (
	BandGood    = "good"
	BandBetter  = "better"
	BandPerfect = "perfect"
)

// Question is one multiple-choice question in a job's bank, belonging to
// exactly one (skill, band) partition.
type Question struct {
	ID      string   `json:"id" bson:"_id,omitempty"`
	JobID   string   `json:"jobId" bson:"jobId"`
	Skill   string   `json:"skill" bson:"skill"`
	Text    string   `json:"question" bson:"question"`
	Options []string `json:"options" bson:"options"`
	Answer  string   `json:"answer" bson:"answer"` // text of the correct option
	Band    string   `json:"band" bson:"band"`
}
