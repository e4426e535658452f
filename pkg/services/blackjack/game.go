package blackjack

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// CardDrawer produces the next card of the shoe
type CardDrawer interface {
	Draw() entities.Card
}

// DrawFunc adapts a plain function to CardDrawer
type DrawFunc func() entities.Card

// Draw calls f
func (f DrawFunc) Draw() entities.Card {
	return f()
}

// Bankroll is the money side of a round. Wagers are index-aligned with the
// player's hands.
type Bankroll interface {
	Balance() int64
	Bet() int64
	HandBet(i int) int64
	CanCover(amount int64) bool
	SetBet(amount int64) error
	PlaceBet(ctx context.Context, i int) error
	AddHandBet(ctx context.Context) (int, error)
	DoubleBet(ctx context.Context, i int) error
	AdjustBalance(ctx context.Context, outcome entities.Outcome, i int) (int64, error)
}

// RoundConfig wires a round to its collaborators
type RoundConfig struct {
	SessionID string
	Presenter Presenter
	Bankroll  Bankroll
	Drawer    CardDrawer
	Logger    *logging.Logger
}

// Round plays a single round of blackjack from the deal to settlement
type Round struct {
	ID     string
	State  entities.RoundState
	Dealer *Hand
	Hands  []*Hand

	sessionID string
	presenter Presenter
	bankroll  Bankroll
	drawer    CardDrawer
	logger    *logging.Logger

	busted  map[int]bool
	doubled map[int]bool
	results map[int]*entities.HandResult
}

// NewRound creates a round with an empty dealer hand and one empty player hand
func NewRound(cfg RoundConfig) *Round {
	id := uuid.New().String()
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default
	}
	return &Round{
		ID:        id,
		Dealer:    NewDealerHand(),
		Hands:     []*Hand{NewHand()},
		sessionID: cfg.SessionID,
		presenter: cfg.Presenter,
		bankroll:  cfg.Bankroll,
		drawer:    cfg.Drawer,
		logger:    logger.WithPrefix("round").With("round", id),
		busted:    make(map[int]bool),
		doubled:   make(map[int]bool),
		results:   make(map[int]*entities.HandResult),
	}
}

// Play runs the round to completion. The bet for the first hand must already
// be selected on the bankroll. If the presenter goes away mid-round the round
// is aborted without settlement and a PRESENTER_CLOSED error is returned.
func (r *Round) Play(ctx context.Context) (*entities.RoundResult, error) {
	if r.State != "" {
		return nil, types.NewGameError(types.ErrInvalidState, "round already played")
	}

	if err := r.deal(ctx); err != nil {
		return nil, r.fail(err)
	}

	r.transition(entities.StateNaturalCheck)
	if settled, err := r.checkNaturals(ctx); err != nil {
		return nil, r.fail(err)
	} else if settled {
		return r.finish(true), nil
	}

	r.transition(entities.StatePlayerHands)
	if err := r.playPlayerHands(ctx); err != nil {
		return nil, r.fail(err)
	}

	r.transition(entities.StateDealerPlay)
	anyStanding := r.playDealer()

	r.transition(entities.StateSettlement)
	if err := r.settle(ctx, anyStanding); err != nil {
		return nil, r.fail(err)
	}

	return r.finish(false), nil
}

func (r *Round) deal(ctx context.Context) error {
	r.transition(entities.StateDealt)

	if err := r.bankroll.PlaceBet(ctx, 0); err != nil {
		return types.WrapError(types.ErrInsufficientFunds, "could not place the opening bet", err)
	}
	r.presenter.UpdateBalanceDisplay(r.bankroll.Balance())

	for i := 0; i < 2; i++ {
		r.Hands[0].AddCard(r.drawer.Draw())
		r.Dealer.AddCard(r.drawer.Draw())
	}
	r.Dealer.HideCard(HoleCardIndex)

	r.presenter.UpdateCardView(r.Hands[0], false)
	r.presenter.UpdateCardView(r.Dealer, true)
	return nil
}

// checkNaturals settles two card 21s. It returns true when the round is over.
func (r *Round) checkNaturals(ctx context.Context) (bool, error) {
	player := r.Hands[0]

	if player.HasBlackjack() {
		r.revealDealer()
		outcome := entities.OutcomeBlackjack
		if r.Dealer.HasBlackjack() {
			outcome = entities.OutcomeTie
		}
		r.presenter.ShowOutcomeMessage(OutcomeMessage(outcome))
		return true, r.pay(ctx, 0, outcome)
	}

	if r.Dealer.HasBlackjack() {
		r.revealDealer()
		r.presenter.ShowOutcomeMessage(MsgDealerBlackjack)
		return true, r.pay(ctx, 0, entities.OutcomeLoss)
	}

	return false, nil
}

func (r *Round) playPlayerHands(ctx context.Context) error {
	for i := 0; i < MaxHands; i++ {
		if err := r.playHand(ctx, i); err != nil {
			return err
		}

		hand := r.Hands[i]
		if !IsSuccessful(hand) {
			r.busted[i] = true
			r.presenter.ShowOutcomeMessage(MsgBust)
		}
		r.logger.Debug("Hand finished", "hand", i, "score", hand.Score().String(), "busted", r.busted[i])

		if len(r.Hands) == i+1 {
			break
		}
	}
	return nil
}

// playHand runs the player's turn on hand i
func (r *Round) playHand(ctx context.Context, i int) error {
	hand := r.Hands[i]
	if hand.Len() < 2 {
		r.hit(i)
	}

	firstAction := true
	for PlayerCanPlay(hand) {
		available := r.availableActions(i, firstAction)
		action, err := r.askAction(ctx, available)
		if err != nil {
			return err
		}
		r.logger.Debug("Player action", "hand", i, "action", action)

		switch action {
		case entities.ActionStand:
			return nil
		case entities.ActionDouble:
			return r.doubleDown(ctx, i)
		case entities.ActionSplit:
			if err := r.split(ctx, i); err != nil {
				return err
			}
			r.hit(i)
		case entities.ActionHit:
			r.hit(i)
		}
		firstAction = false
	}
	return nil
}

// availableActions returns the actions offered for hand i, in display order
func (r *Round) availableActions(i int, firstAction bool) []entities.Action {
	actions := []entities.Action{entities.ActionHit, entities.ActionStand}
	if !firstAction {
		return actions
	}
	if r.canSplit(i) {
		actions = append(actions, entities.ActionSplit)
	}
	if r.canDouble(i) {
		actions = append(actions, entities.ActionDouble)
	}
	return actions
}

func (r *Round) askAction(ctx context.Context, available []entities.Action) (entities.Action, error) {
	if !r.presenter.IsAlive() {
		return "", types.NewGameError(types.ErrPresenterClosed, "presenter closed before action prompt")
	}

	action, err := r.presenter.Action(ctx, available)
	if err != nil {
		return "", types.WrapError(types.ErrPresenterClosed, "action prompt failed", err)
	}
	if !entities.ContainsAction(available, action) {
		return "", types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("action %q was not offered", action))
	}
	return action, nil
}

func (r *Round) hit(i int) {
	r.Hands[i].AddCard(r.drawer.Draw())
	r.presenter.UpdateCardView(r.Hands[i], false)
}

func (r *Round) revealDealer() {
	r.Dealer.RevealCard(HoleCardIndex)
	r.presenter.UpdateCardView(r.Dealer, true)
}

// playDealer reveals the hole card and draws for the dealer. It returns false
// when every player hand is bust, in which case the dealer does not draw.
func (r *Round) playDealer() bool {
	r.revealDealer()

	if len(r.busted) == len(r.Hands) {
		return false
	}

	for DealerCanPlay(r.Dealer) {
		r.Dealer.AddCard(r.drawer.Draw())
		r.presenter.UpdateCardView(r.Dealer, true)
	}
	r.logger.Debug("Dealer stands", "score", r.Dealer.Score().String())
	return true
}

// settle pays every standing hand, last split hand first
func (r *Round) settle(ctx context.Context, anyStanding bool) error {
	for i := range r.Hands {
		if r.busted[i] {
			r.recordLoss(i)
		}
	}

	if !anyStanding {
		r.presenter.ShowOutcomeMessage(MsgLoss)
		return nil
	}

	dealerBust := !IsSuccessful(r.Dealer)
	if dealerBust {
		r.presenter.ShowOutcomeMessage(MsgDealerBust)
	}
	dealerScore := EffectiveScore(r.Dealer)

	for i := len(r.Hands) - 1; i >= 0; i-- {
		if r.busted[i] {
			continue
		}
		outcome := CompareScores(EffectiveScore(r.Hands[i]), dealerScore, dealerBust)
		if !dealerBust {
			r.presenter.ShowOutcomeMessage(OutcomeMessage(outcome))
		}
		if err := r.pay(ctx, i, outcome); err != nil {
			return err
		}
	}
	return nil
}

// pay credits hand i and records its result
func (r *Round) pay(ctx context.Context, i int, outcome entities.Outcome) error {
	payout, err := r.bankroll.AdjustBalance(ctx, outcome, i)
	if err != nil {
		return types.WrapError(types.ErrInternalError, "could not settle hand", err)
	}
	if payout > 0 {
		r.presenter.UpdateBalanceDisplay(r.bankroll.Balance())
	}

	r.results[i] = &entities.HandResult{
		Index:   i,
		Bet:     r.bankroll.HandBet(i),
		Payout:  payout,
		Outcome: outcome,
		Score:   EffectiveScore(r.Hands[i]),
		Busted:  r.busted[i],
		Doubled: r.doubled[i],
	}
	r.logger.Debug("Hand settled", "hand", i, "outcome", outcome, "payout", payout)
	return nil
}

func (r *Round) recordLoss(i int) {
	r.results[i] = &entities.HandResult{
		Index:   i,
		Bet:     r.bankroll.HandBet(i),
		Outcome: entities.OutcomeLoss,
		Score:   EffectiveScore(r.Hands[i]),
		Busted:  true,
		Doubled: r.doubled[i],
	}
}

func (r *Round) finish(natural bool) *entities.RoundResult {
	r.transition(entities.StateDone)

	result := &entities.RoundResult{
		RoundID:      r.ID,
		SessionID:    r.sessionID,
		HandResults:  make([]*entities.HandResult, 0, len(r.results)),
		DealerScore:  EffectiveScore(r.Dealer),
		DealerBust:   !IsSuccessful(r.Dealer),
		Natural:      natural,
		BalanceAfter: r.bankroll.Balance(),
		CompletedAt:  time.Now(),
	}
	for i := range r.Hands {
		if hr, ok := r.results[i]; ok {
			result.HandResults = append(result.HandResults, hr)
		}
	}

	r.logger.Info("Round complete",
		"hands", len(r.Hands),
		"wagered", result.Wagered(),
		"returned", result.Returned(),
		"balance", result.BalanceAfter)
	return result
}

func (r *Round) fail(err error) error {
	r.transition(entities.StateAborted)
	if types.IsGameError(err, types.ErrPresenterClosed) {
		r.logger.Warn("Round aborted", "err", err)
	} else {
		r.logger.LogError(err)
	}
	return err
}

func (r *Round) transition(state entities.RoundState) {
	r.logger.Debug("State transition", "from", r.State, "to", state)
	r.State = state
}
