package entities

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists every suit in draw order
var Suits = []Suit{Hearts, Spades, Diamonds, Clubs}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "ace"
	Two   Rank = "two"
	Three Rank = "three"
	Four  Rank = "four"
	Five  Rank = "five"
	Six   Rank = "six"
	Seven Rank = "seven"
	Eight Rank = "eight"
	Nine  Rank = "nine"
	Ten   Rank = "ten"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
)

// Ranks lists every rank in draw order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// rankValues maps a rank to its blackjack values. Only the ace has two.
var rankValues = map[Rank][]int{
	Ace:   {1, 11},
	Two:   {2},
	Three: {3},
	Four:  {4},
	Five:  {5},
	Six:   {6},
	Seven: {7},
	Eight: {8},
	Nine:  {9},
	Ten:   {10},
	Jack:  {10},
	Queen: {10},
	King:  {10},
}

var rankShort = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

// Values returns the blackjack values for the rank, lowest first
func (r Rank) Values() []int {
	return rankValues[r]
}

// Card represents a playing card. Suit and rank never change once dealt;
// only the visibility flag is toggled.
type Card struct {
	Suit   Suit
	Rank   Rank
	hidden bool
}

// NewCard creates a new face-up card
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// Values returns the card's blackjack values (ace = [1 11])
func (c Card) Values() []int {
	return c.Rank.Values()
}

// LowValue returns the smallest value of the card
func (c Card) LowValue() int {
	values := c.Values()
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsHidden reports whether the card is face down
func (c Card) IsHidden() bool {
	return c.hidden
}

// ToggleVisibility flips the card face up or face down
func (c *Card) ToggleVisibility() {
	c.hidden = !c.hidden
}

// IsRed reports whether the card has a red suit
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Equal compares rank and suit, ignoring visibility
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// SameValue reports whether both cards carry the same value list, so a ten and
// a jack compare equal.
func (c Card) SameValue(other Card) bool {
	a, b := c.Values(), other.Values()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the string representation of the card
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", title(string(c.Rank)), title(string(c.Suit)))
}

// Short returns a compact form such as "A♥"
func (c Card) Short() string {
	return rankShort[c.Rank] + c.Suit.Symbol()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
