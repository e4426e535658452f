package blackjack

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Score is the visible total of a hand. Low counts every ace as 1. High is
// Low+10 when at least one visible ace is present, otherwise 0.
type Score struct {
	Low  int
	High int
}

// HasAlternate reports whether the hand has a usable soft total
func (s Score) HasAlternate() bool {
	return s.High > 0
}

// String renders the score the way players read it, e.g. "7 or 17"
func (s Score) String() string {
	if s.High > 0 {
		return fmt.Sprintf("%d or %d", s.Low, s.High)
	}
	return fmt.Sprintf("%d", s.Low)
}

// Hand represents a set of cards held by the player or the dealer.
// score and hasBlackjack are recomputed after every mutation.
type Hand struct {
	cards         []entities.Card
	score         Score
	hasAce        bool
	hasBlackjack  bool
	splitDisabled bool
	dealer        bool
}

// NewHand creates an empty player hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]entities.Card, 0, 2),
	}
}

// NewDealerHand creates an empty dealer hand
func NewDealerHand() *Hand {
	h := NewHand()
	h.dealer = true
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.cards = append(h.cards, card)
	if card.IsAce() {
		h.hasAce = true
	}
	h.updateTotal()
}

// HideCard turns card idx face down. Hiding a hidden card is a no-op.
func (h *Hand) HideCard(idx int) {
	h.mustIndex(idx)
	if !h.cards[idx].IsHidden() {
		h.cards[idx].ToggleVisibility()
	}
	h.updateTotal()
}

// RevealCard turns card idx face up. Revealing a visible card is a no-op.
func (h *Hand) RevealCard(idx int) {
	h.mustIndex(idx)
	if h.cards[idx].IsHidden() {
		h.cards[idx].ToggleVisibility()
	}
	h.updateTotal()
}

// CanSplit returns true for exactly two cards of the same value on a hand
// that has not been split before
func (h *Hand) CanSplit() bool {
	if len(h.cards) != 2 || h.splitDisabled {
		return false
	}
	return h.cards[0].SameValue(h.cards[1])
}

// Split moves the second card into a new hand and returns it. The parent can
// never split again. Aces split into two hands that can neither split nor hit.
func (h *Hand) Split() *Hand {
	if !h.CanSplit() {
		panic("blackjack: Split called on a hand that cannot split")
	}

	fromAce := h.cards[0].IsAce()
	moved := h.cards[1]
	h.cards = h.cards[:1]
	h.splitDisabled = true
	h.updateTotal()

	child := NewHand()
	child.splitDisabled = fromAce
	child.AddCard(moved)
	return child
}

// Score returns the visible score
func (h *Hand) Score() Score {
	return h.score
}

// HasAce reports whether an ace was ever added to the hand
func (h *Hand) HasAce() bool {
	return h.hasAce
}

// HasBlackjack reports a two card 21, counting hidden cards
func (h *Hand) HasBlackjack() bool {
	return h.hasBlackjack
}

// IsSplitDisabled reports whether the hand may no longer be split
func (h *Hand) IsSplitDisabled() bool {
	return h.splitDisabled
}

// IsSplitFromAce reports whether the hand came out of splitting aces
func (h *Hand) IsSplitFromAce() bool {
	if h.splitDisabled && len(h.cards) > 0 {
		return h.cards[0].IsAce()
	}
	return false
}

// IsDealer reports whether this is the dealer's hand
func (h *Hand) IsDealer() bool {
	return h.dealer
}

// Card returns the card at idx
func (h *Hand) Card(idx int) entities.Card {
	h.mustIndex(idx)
	return h.cards[idx]
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []entities.Card {
	out := make([]entities.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Equal compares two hands as multisets of cards, ignoring order and visibility
func (h *Hand) Equal(other *Hand) bool {
	if other == nil || len(h.cards) != len(other.cards) {
		return false
	}

	used := make([]bool, len(other.cards))
	for _, c := range h.cards {
		found := false
		for i, o := range other.cards {
			if !used[i] && c.Equal(o) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String lists the cards one per line
func (h *Hand) String() string {
	lines := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

func (h *Hand) mustIndex(idx int) {
	if idx < 0 || idx >= len(h.cards) {
		panic(fmt.Sprintf("blackjack: card index %d out of range for hand of %d", idx, len(h.cards)))
	}
}

// updateTotal recomputes the visible score and the blackjack flag. Only one
// ace ever counts as 11.
func (h *Hand) updateTotal() {
	visibleLow, fullLow := 0, 0
	visibleAce := false
	for _, c := range h.cards {
		if !c.IsHidden() {
			visibleLow += c.LowValue()
			if c.IsAce() {
				visibleAce = true
			}
		}
		fullLow += c.LowValue()
	}

	h.score = Score{Low: visibleLow}
	if visibleAce {
		h.score.High = visibleLow + 10
	}

	fullHigh := 0
	if h.hasAce {
		fullHigh = fullLow + 10
	}
	h.hasBlackjack = len(h.cards) == 2 && (fullLow == Blackjack || fullHigh == Blackjack)
}
