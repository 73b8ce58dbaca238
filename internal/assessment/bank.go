package assessment

import (
	"fmt"
	"math/rand"

	"skillscope/internal/model"
)

type partition struct {
	band  Band
	skill string
}

// Bank holds a session's question pool partitioned by (band, skill). Each
// partition is shuffled once at build time and then consumed front-to-back, so
// no question repeats within a session.
type Bank struct {
	partitions map[partition][]model.Question
}

// NewBank groups questions by (band, skill) and shuffles each partition with
// the given RNG. A nil rng leaves load order as-is (used by tests).
func NewBank(questions []model.Question, rng *rand.Rand) (*Bank, error) {
	parts := make(map[partition][]model.Question)
	for _, q := range questions {
		band, err := ParseBand(q.Band)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		key := partition{band: band, skill: q.Skill}
		parts[key] = append(parts[key], q)
	}
	if rng != nil {
		for _, qs := range parts {
			rng.Shuffle(len(qs), func(i, j int) {
				qs[i], qs[j] = qs[j], qs[i]
			})
		}
	}
	return &Bank{partitions: parts}, nil
}

// TakeNext removes and returns the next question for the partition. The second
// return is false when the partition is empty; callers skip the skill rather
// than failing.
func (b *Bank) TakeNext(band Band, skill string) (model.Question, bool) {
	key := partition{band: band, skill: skill}
	qs := b.partitions[key]
	if len(qs) == 0 {
		return model.Question{}, false
	}
	q := qs[0]
	b.partitions[key] = qs[1:]
	return q, true
}

// Remaining reports how many questions are left in a partition.
func (b *Bank) Remaining(band Band, skill string) int {
	return len(b.partitions[partition{band: band, skill: skill}])
}

// Size is the total number of questions left across all partitions.
func (b *Bank) Size() int {
	n := 0
	for _, qs := range b.partitions {
		n += len(qs)
	}
	return n
}
