package assessment

import (
	"fmt"

	"skillscope/internal/model"
)

// Band is an ordered three-level difficulty tier. Transitions move one step at
// a time and saturate at the edges.
type Band int

const (
	BandGood Band = iota
	BandBetter
	BandPerfect
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return model.BandGood
	case BandBetter:
		return model.BandBetter
	case BandPerfect:
		return model.BandPerfect
	}
	return "unknown"
}

// ParseBand maps the stored string form back to a Band.
func ParseBand(s string) (Band, error) {
	switch s {
	case model.BandGood:
		return BandGood, nil
	case model.BandBetter:
		return BandBetter, nil
	case model.BandPerfect:
		return BandPerfect, nil
	}
	return BandGood, fmt.Errorf("unknown difficulty band %q", s)
}

// Next moves one step toward perfect, staying put at the ceiling.
func (b Band) Next() Band {
	if b >= BandPerfect {
		return BandPerfect
	}
	return b + 1
}

// Prev moves one step toward good, staying put at the floor.
func (b Band) Prev() Band {
	if b <= BandGood {
		return BandGood
	}
	return b - 1
}

// Advance applies one answer outcome: up on correct, down on incorrect.
func (b Band) Advance(correct bool) Band {
	if correct {
		return b.Next()
	}
	return b.Prev()
}

// InitialBand splits the job's [min,max] experience window into three equal
// sub-intervals mapped to good/better/perfect and returns the one containing
// the candidate's experience. Experience outside the window, a reversed window,
// or a zero-width window all fall back to good.
func InitialBand(experience, min, max float64) Band {
	interval := (max - min) / 3
	if interval <= 0 {
		return BandGood
	}
	switch {
	case experience >= min && experience <= min+interval:
		return BandGood
	case experience > min+interval && experience <= min+2*interval:
		return BandBetter
	case experience > min+2*interval && experience <= max:
		return BandPerfect
	}
	return BandGood
}

// BandForProficiency maps an inferred proficiency level to a starting band,
// falling back to the experience-derived band when the level is absent or
// unrecognized.
func BandForProficiency(level int, fallback Band) Band {
	switch level {
	case model.ProficiencyBeginner:
		return BandGood
	case model.ProficiencyIntermediate:
		return BandBetter
	case model.ProficiencyAdvanced:
		return BandPerfect
	}
	return fallback
}
