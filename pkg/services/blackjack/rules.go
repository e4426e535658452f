package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	Blackjack       = 21  // Best possible total
	MaxHands        = 4   // Max player hands after splitting
	DealerStandsOn  = 17  // Dealer stops drawing at this total
	HoleCardIndex   = 0   // The dealer's first card is dealt face down
	StartingBalance = 100 // Chips a new session starts with
	MinBet          = 10  // Smallest accepted bet
)

// AcceptedBets are the only denominations a player may wager
var AcceptedBets = []int64{10, 25, 50, 100}

// Outcome messages shown to the player
const (
	MsgTie             = "It's a tie!\n"
	MsgWin             = "You won!\n"
	MsgLoss            = "You lost!\n"
	MsgBlackjack       = "Blackjack! " + MsgWin
	MsgBust            = "Bust!\n"
	MsgDealerBust      = "Dealer bust! " + MsgWin
	MsgDealerBlackjack = "Dealer's got Blackjack! " + MsgLoss
)

// OutcomeMessage returns the message for a settled hand
func OutcomeMessage(outcome entities.Outcome) string {
	switch outcome {
	case entities.OutcomeWin:
		return MsgWin
	case entities.OutcomeBlackjack:
		return MsgBlackjack
	case entities.OutcomeTie:
		return MsgTie
	case entities.OutcomeLoss:
		return MsgLoss
	}
	return ""
}

// PlayerCanPlay reports whether the player may still act on the hand.
// Hands split from aces get one card and must stand.
func PlayerCanPlay(h *Hand) bool {
	if h.IsSplitFromAce() {
		return false
	}
	score := h.Score()
	return score.Low < Blackjack && score.High != Blackjack
}

// DealerCanPlay reports whether the dealer must draw. A soft total counts
// while it does not bust, so the dealer stands on soft 17.
func DealerCanPlay(h *Hand) bool {
	score := h.Score()
	if h.HasAce() && score.HasAlternate() && score.High <= Blackjack {
		return score.High < DealerStandsOn
	}
	return score.Low < DealerStandsOn
}

// IsSuccessful returns false once the hand is bust
func IsSuccessful(h *Hand) bool {
	return h.Score().Low <= Blackjack
}

// EffectiveScore returns the soft total when it does not bust, else the hard total
func EffectiveScore(h *Hand) int {
	score := h.Score()
	if score.High > 0 && score.High <= Blackjack {
		return score.High
	}
	return score.Low
}

// CompareScores settles a standing player total against the dealer
func CompareScores(player, dealer int, dealerBust bool) entities.Outcome {
	switch {
	case dealerBust:
		return entities.OutcomeWin
	case player == dealer:
		return entities.OutcomeTie
	case player > dealer:
		return entities.OutcomeWin
	default:
		return entities.OutcomeLoss
	}
}

// IsAcceptedBet reports whether amount is one of the accepted denominations
func IsAcceptedBet(amount int64) bool {
	for _, b := range AcceptedBets {
		if b == amount {
			return true
		}
	}
	return false
}

// AvailableBets returns the accepted denominations the balance can cover
func AvailableBets(balance int64) []int64 {
	bets := make([]int64, 0, len(AcceptedBets))
	for _, b := range AcceptedBets {
		if b <= balance {
			bets = append(bets, b)
		}
	}
	return bets
}
