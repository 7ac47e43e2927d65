package quiz

import (
	"math/rand"
	"time"

	"github.com/triviahub/trivia-api/internal/question"
)

// State describes a quiz session as derived from a single request; the
// server keeps nothing between calls.
type State string

const (
	// StateInProgress means unseen questions remain in the pool.
	StateInProgress State = "in_progress"

	// StateExhausted means every eligible question has been asked.
	StateExhausted State = "exhausted"
)

// Picker selects the next unseen question uniformly at random. The random
// source is injected so tests can fix the sequence.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker builds a Picker from src; a nil src falls back to a time seed.
func NewPicker(src rand.Source) *Picker {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Picker{rnd: rand.New(src)}
}

// Next filters the asked ids out of the pool and picks one of the remaining
// questions at random. An empty eligible set, including an empty pool,
// reports exhaustion with no question.
func (p *Picker) Next(pool []question.Question, asked []int) (*question.Question, State) {
	seen := make(map[int]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	eligible := make([]question.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}

	if len(eligible) == 0 {
		return nil, StateExhausted
	}

	next := eligible[p.rnd.Intn(len(eligible))]
	return &next, StateInProgress
}
