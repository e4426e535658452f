package entities

import (
	"math/rand"
	"time"
)

// Shoe deals from a conceptually infinite supply of cards: every draw picks a
// suit and a rank independently and uniformly, with replacement.
type Shoe struct {
	rng *rand.Rand
}

// NewShoe creates a shoe. A zero seed uses the current time.
func NewShoe(seed int64) *Shoe {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shoe{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Draw returns a new face-up card
func (s *Shoe) Draw() Card {
	suit := Suits[s.rng.Intn(len(Suits))]
	rank := Ranks[s.rng.Intn(len(Ranks))]
	return NewCard(suit, rank)
}
