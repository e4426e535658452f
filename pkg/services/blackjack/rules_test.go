package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/blackjack/pkg/entities"
)

func TestPlayerCanPlay(t *testing.T) {
	testCases := []struct {
		name     string
		hand     *Hand
		expected bool
	}{
		{"Hard 15", handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Five)), true},
		{"Soft 21", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Five)), false},
		{"Hard 21", handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Six)), false},
		{"Bust", handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Nine)), false},
		{"Soft 17", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Six)), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PlayerCanPlay(tc.hand))
		})
	}

	aces := handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Ace))
	child := aces.Split()
	child.AddCard(card(entities.Clubs, entities.Two))
	assert.False(t, PlayerCanPlay(child), "ace split hands must stand")
}

func TestDealerCanPlay(t *testing.T) {
	testCases := []struct {
		name     string
		hand     *Hand
		expected bool
	}{
		{"Hard 16 hits", handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Six)), true},
		{"Hard 17 stands", handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Seven)), false},
		{"Soft 17 stands", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Two), card(entities.Clubs, entities.Four)), false},
		{"Soft 16 hits", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Five)), true},
		{"Hard 16 with ace hits", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Ten)), true},
		{"Hard 17 with ace stands", handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Six), card(entities.Clubs, entities.Ten)), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DealerCanPlay(tc.hand))
		})
	}
}

func TestEffectiveScore(t *testing.T) {
	assert.Equal(t, 17, EffectiveScore(handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Six))))
	assert.Equal(t, 16, EffectiveScore(handOf(card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Ten))))
	assert.Equal(t, 25, EffectiveScore(handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Five), card(entities.Clubs, entities.Ten))))
}

func TestIsSuccessful(t *testing.T) {
	assert.True(t, IsSuccessful(handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ace), card(entities.Clubs, entities.Ten))))
	assert.False(t, IsSuccessful(handOf(card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Two), card(entities.Clubs, entities.Ten))))
}

func TestCompareScores(t *testing.T) {
	assert.Equal(t, entities.OutcomeTie, CompareScores(19, 19, false))
	assert.Equal(t, entities.OutcomeWin, CompareScores(20, 19, false))
	assert.Equal(t, entities.OutcomeLoss, CompareScores(18, 19, false))
	assert.Equal(t, entities.OutcomeWin, CompareScores(12, 24, true))
}

func TestBets(t *testing.T) {
	assert.True(t, IsAcceptedBet(25))
	assert.False(t, IsAcceptedBet(30))

	assert.Equal(t, []int64{10, 25}, AvailableBets(49))
	assert.Equal(t, []int64{10, 25, 50, 100}, AvailableBets(500))
	assert.Empty(t, AvailableBets(9))
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Blackjack! You won!\n", OutcomeMessage(entities.OutcomeBlackjack))
	assert.Equal(t, "You won!\n", OutcomeMessage(entities.OutcomeWin))
	assert.Equal(t, "It's a tie!\n", OutcomeMessage(entities.OutcomeTie))
	assert.Equal(t, "You lost!\n", OutcomeMessage(entities.OutcomeLoss))
	assert.Equal(t, "Dealer bust! You won!\n", MsgDealerBust)
	assert.Equal(t, "Dealer's got Blackjack! You lost!\n", MsgDealerBlackjack)
}
