package blackjack

import (
	"context"

	"github.com/fadedpez/blackjack/internal/types"
)

// canSplit checks whether hand i may be split right now
func (r *Round) canSplit(i int) bool {
	if i >= MaxHands-1 || len(r.Hands) >= MaxHands {
		return false
	}
	if !r.Hands[i].CanSplit() {
		return false
	}
	return r.bankroll.CanCover(r.bankroll.Bet())
}

// canDouble checks whether hand i may be doubled down. Only the first
// hand, untouched, can double.
func (r *Round) canDouble(i int) bool {
	if i != 0 || len(r.Hands) != 1 || r.Hands[i].Len() != 2 {
		return false
	}
	return r.bankroll.CanCover(r.bankroll.HandBet(i))
}

// split moves the second card of hand i into a new hand wagered at the base bet
func (r *Round) split(ctx context.Context, i int) error {
	idx, err := r.bankroll.AddHandBet(ctx)
	if err != nil {
		return types.WrapError(types.ErrInsufficientFunds, "could not fund split", err)
	}

	child := r.Hands[i].Split()
	r.Hands = append(r.Hands, child)
	if idx != len(r.Hands)-1 {
		return types.NewGameError(types.ErrInternalError, "split wager is not aligned with its hand")
	}

	r.logger.Debug("Split hand", "hand", i, "new_hand", idx, "from_ace", child.IsSplitFromAce())
	r.presenter.UpdateBalanceDisplay(r.bankroll.Balance())
	r.presenter.UpdateCardView(r.Hands[i], false)
	r.presenter.UpdateCardView(child, false)
	return nil
}

// doubleDown doubles the wager on hand i and draws exactly one card
func (r *Round) doubleDown(ctx context.Context, i int) error {
	if err := r.bankroll.DoubleBet(ctx, i); err != nil {
		return types.WrapError(types.ErrInsufficientFunds, "could not fund double down", err)
	}
	r.doubled[i] = true

	r.logger.Debug("Doubled down", "hand", i, "bet", r.bankroll.HandBet(i))
	r.presenter.UpdateBalanceDisplay(r.bankroll.Balance())
	r.hit(i)
	return nil
}
