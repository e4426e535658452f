package blackjack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	hitStand            = []entities.Action{entities.ActionHit, entities.ActionStand}
	hitStandSplit       = []entities.Action{entities.ActionHit, entities.ActionStand, entities.ActionSplit}
	hitStandDouble      = []entities.Action{entities.ActionHit, entities.ActionStand, entities.ActionDouble}
	hitStandSplitDouble = []entities.Action{entities.ActionHit, entities.ActionStand, entities.ActionSplit, entities.ActionDouble}
)

type RoundTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestRoundSuite(t *testing.T) {
	suite.Run(t, new(RoundTestSuite))
}

func (s *RoundTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RoundTestSuite) play(f *roundFixture) *entities.RoundResult {
	result, err := f.round.Play(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.StateDone, f.round.State)
	s.Empty(f.drawer.cards, "every scripted card should be dealt")
	return result
}

// Deal order is player, dealer, player, dealer. The dealer's first card is the hole card.

func (s *RoundTestSuite) TestPlayerBlackjack() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Nine),
		card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Seven),
	})

	result := s.play(f)

	s.Equal([]string{"Blackjack! You won!\n"}, f.presenter.messages)
	s.Equal(int64(120), f.bankroll.Balance(), "blackjack nets twice the bet")
	s.Equal([]int64{90, 120}, f.presenter.balances)
	s.Empty(f.presenter.offered, "no prompt after a natural")
	s.False(f.round.Dealer.Card(HoleCardIndex).IsHidden(), "hole card is revealed")
	s.True(result.Natural)
	s.Require().Len(result.HandResults, 1)
	s.Equal(entities.OutcomeBlackjack, result.HandResults[0].Outcome)
	s.Equal(int64(30), result.HandResults[0].Payout)
}

func (s *RoundTestSuite) TestBothBlackjackTie() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Jack), card(entities.Spades, entities.Jack),
		card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Ace),
	})

	result := s.play(f)

	s.Equal([]string{"It's a tie!\n"}, f.presenter.messages)
	s.Equal(int64(100), f.bankroll.Balance())
	s.Equal(entities.OutcomeTie, result.HandResults[0].Outcome)
}

func (s *RoundTestSuite) TestDealerBlackjack() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Nine), card(entities.Spades, entities.Ace),
		card(entities.Hearts, entities.Eight), card(entities.Spades, entities.King),
	})

	result := s.play(f)

	s.Equal([]string{"Dealer's got Blackjack! You lost!\n"}, f.presenter.messages)
	s.Equal(int64(90), f.bankroll.Balance())
	s.Empty(f.presenter.offered)
	s.Require().Len(f.presenter.dealerViews, 2)
	s.Equal(Score{Low: 10}, f.presenter.dealerViews[0], "only the up card shows before the peek")
	s.Equal(Score{Low: 11, High: 21}, f.presenter.dealerViews[1])
	s.Equal(entities.OutcomeLoss, result.HandResults[0].Outcome)
}

func (s *RoundTestSuite) TestBustBeforeLoss() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Two), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Three), card(entities.Diamonds, entities.Ten),
		card(entities.Clubs, entities.Ten), card(entities.Hearts, entities.Ten),
	}, entities.ActionHit, entities.ActionHit)

	result := s.play(f)

	s.Equal([]string{"Bust!\n", "You lost!\n"}, f.presenter.messages)
	s.Equal([][]entities.Action{hitStandDouble, hitStand}, f.presenter.offered)
	s.Equal(int64(90), f.bankroll.Balance())
	s.Equal(2, f.round.Dealer.Len(), "dealer does not draw against bust hands")
	s.True(result.HandResults[0].Busted)
	s.Equal(entities.OutcomeLoss, result.HandResults[0].Outcome)
}

func (s *RoundTestSuite) TestSplitBothHandsWin() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Ten),
		card(entities.Spades, entities.Five), card(entities.Spades, entities.Nine),
		card(entities.Hearts, entities.Seven), card(entities.Hearts, entities.Nine),
		card(entities.Clubs, entities.Seven), card(entities.Clubs, entities.Nine),
	}, entities.ActionSplit, entities.ActionHit, entities.ActionHit)

	result := s.play(f)

	s.Len(f.round.Hands, 2)
	s.Equal([][]entities.Action{hitStandSplitDouble, hitStand, hitStand}, f.presenter.offered)
	s.Equal([]string{"You won!\n", "You won!\n"}, f.presenter.messages)
	s.Equal([]int64{90, 80, 100, 120}, f.presenter.balances)
	s.Equal(int64(120), f.bankroll.Balance())

	s.Require().Len(result.HandResults, 2)
	for _, hr := range result.HandResults {
		s.Equal(entities.OutcomeWin, hr.Outcome)
		s.Equal(21, hr.Score)
		s.Equal(int64(10), hr.Bet)
	}
}

func (s *RoundTestSuite) TestSplitNotOfferedWithoutFunds() {
	f := newRoundFixture(s.T(), 15, 10, []entities.Card{
		card(entities.Hearts, entities.Eight), card(entities.Spades, entities.Ten),
		card(entities.Spades, entities.Eight), card(entities.Spades, entities.Seven),
	}, entities.ActionStand)

	s.play(f)

	s.Equal([][]entities.Action{hitStand}, f.presenter.offered)
	s.Equal([]string{"You lost!\n"}, f.presenter.messages)
	s.Equal(int64(5), f.bankroll.Balance())
}

func (s *RoundTestSuite) TestAceSplitStandsAfterOneCard() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Ten),
		card(entities.Spades, entities.Ace), card(entities.Spades, entities.Seven),
		card(entities.Hearts, entities.Five), card(entities.Hearts, entities.Nine),
	}, entities.ActionSplit)

	s.play(f)

	s.Len(f.presenter.offered, 1, "ace split hands are never prompted")
	s.Require().Len(f.round.Hands, 2)
	for _, h := range f.round.Hands {
		s.Equal(2, h.Len())
		s.True(h.IsSplitFromAce())
	}
	s.Equal([]string{"You won!\n", "You lost!\n"}, f.presenter.messages, "last split hand settles first")
	s.Equal(int64(100), f.bankroll.Balance())
}

func (s *RoundTestSuite) TestSplitUpToFourHands() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Eight), card(entities.Spades, entities.Ten),
		card(entities.Spades, entities.Eight), card(entities.Diamonds, entities.Eight),
		card(entities.Hearts, entities.Ten), card(entities.Clubs, entities.Eight),
		card(entities.Diamonds, entities.Ten), card(entities.Hearts, entities.Eight),
		card(entities.Clubs, entities.Ten), card(entities.Spades, entities.Eight),
	},
		entities.ActionSplit, entities.ActionStand,
		entities.ActionSplit, entities.ActionStand,
		entities.ActionSplit, entities.ActionStand,
		entities.ActionStand,
	)

	result := s.play(f)

	s.Len(f.round.Hands, MaxHands)
	s.Equal([][]entities.Action{
		hitStandSplitDouble, hitStand,
		hitStandSplit, hitStand,
		hitStandSplit, hitStand,
		hitStand,
	}, f.presenter.offered, "the fourth hand cannot split again")
	s.Equal([]string{"You lost!\n", "It's a tie!\n", "It's a tie!\n", "It's a tie!\n"}, f.presenter.messages)
	s.Equal(int64(90), f.bankroll.Balance())
	s.Equal(int64(40), result.Wagered())
	s.Equal(int64(30), result.Returned())
}

func (s *RoundTestSuite) TestDoubleDown() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Six), card(entities.Spades, entities.Seven),
		card(entities.Hearts, entities.Ten),
	}, entities.ActionDouble)

	result := s.play(f)

	s.Equal([][]entities.Action{hitStandDouble}, f.presenter.offered)
	s.Equal(3, f.round.Hands[0].Len(), "double draws exactly one card")
	s.Equal([]int64{90, 80, 120}, f.presenter.balances)
	s.Require().Len(result.HandResults, 1)
	s.True(result.HandResults[0].Doubled)
	s.Equal(int64(20), result.HandResults[0].Bet)
	s.Equal(int64(40), result.HandResults[0].Payout)
}

func (s *RoundTestSuite) TestDoubleDownEndsTurnBelowTwentyOne() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Two), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Three), card(entities.Spades, entities.Eight),
		card(entities.Hearts, entities.Four),
	}, entities.ActionDouble)

	s.play(f)

	s.Len(f.presenter.offered, 1)
	s.Equal([]string{"You lost!\n"}, f.presenter.messages)
	s.Equal(int64(80), f.bankroll.Balance())
}

func (s *RoundTestSuite) TestDealerBust() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Eight), card(entities.Spades, entities.Six),
		card(entities.Diamonds, entities.Ten),
	}, entities.ActionStand)

	result := s.play(f)

	s.Equal([]string{"Dealer bust! You won!\n"}, f.presenter.messages)
	s.Equal(int64(110), f.bankroll.Balance())
	s.True(result.DealerBust)
	s.Equal(entities.OutcomeWin, result.HandResults[0].Outcome)
}

func (s *RoundTestSuite) TestDealerStandsOnSoftSeventeen() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ace),
		card(entities.Hearts, entities.Eight), card(entities.Spades, entities.Six),
	}, entities.ActionStand)

	result := s.play(f)

	s.Equal(2, f.round.Dealer.Len())
	s.Equal(17, result.DealerScore)
	s.Equal([]string{"You won!\n"}, f.presenter.messages)
}

func (s *RoundTestSuite) TestTwentyOneEndsTurnWithoutPrompt() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Seven),
		card(entities.Diamonds, entities.Six),
	}, entities.ActionHit)

	s.play(f)

	s.Len(f.presenter.offered, 1)
	s.Equal([]string{"You won!\n"}, f.presenter.messages)
}

func (s *RoundTestSuite) TestClosedPresenterAbortsRound() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Seven),
	})
	f.presenter.alive = false

	result, err := f.round.Play(s.ctx)

	s.Nil(result)
	s.True(types.IsGameError(err, types.ErrPresenterClosed))
	s.Equal(entities.StateAborted, f.round.State)
	s.Empty(f.presenter.offered)
	s.Equal(int64(90), f.bankroll.Balance(), "the stake stays on the table")
}

func (s *RoundTestSuite) TestActionErrorAbortsRound() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Seven),
	})
	cause := errors.New("window closed")
	f.presenter.actionErr = cause

	_, err := f.round.Play(s.ctx)

	s.True(types.IsGameError(err, types.ErrPresenterClosed))
	s.ErrorIs(err, cause)
	s.Equal(entities.StateAborted, f.round.State)
}

func (s *RoundTestSuite) TestActionNotOffered() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Ten),
		card(entities.Hearts, entities.Five), card(entities.Spades, entities.Seven),
	}, entities.ActionSplit)

	_, err := f.round.Play(s.ctx)

	s.True(types.IsGameError(err, types.ErrInvalidAction))
	s.Equal(entities.StateAborted, f.round.State)
}

func (s *RoundTestSuite) TestOpeningBetNotCovered() {
	f := newRoundFixture(s.T(), 5, 10, nil)

	_, err := f.round.Play(s.ctx)

	s.True(types.IsGameError(err, types.ErrInsufficientFunds))
}

func (s *RoundTestSuite) TestPlayTwice() {
	f := newRoundFixture(s.T(), 100, 10, []entities.Card{
		card(entities.Hearts, entities.Ten), card(entities.Spades, entities.Nine),
		card(entities.Hearts, entities.Ace), card(entities.Spades, entities.Seven),
	})
	s.play(f)

	_, err := f.round.Play(s.ctx)
	s.True(types.IsGameError(err, types.ErrInvalidState))
}
