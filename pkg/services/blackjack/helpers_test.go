package blackjack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	walletRepo "github.com/fadedpez/blackjack/pkg/repositories/wallet"
	"github.com/fadedpez/blackjack/pkg/services/wallet"
)

func card(suit entities.Suit, rank entities.Rank) entities.Card {
	return entities.NewCard(suit, rank)
}

func handOf(cards ...entities.Card) *Hand {
	h := NewHand()
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// scriptedDrawer deals a fixed sequence of cards
type scriptedDrawer struct {
	cards []entities.Card
}

func (d *scriptedDrawer) Draw() entities.Card {
	if len(d.cards) == 0 {
		panic("scripted drawer exhausted")
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

// recordingPresenter answers action prompts from a script and records
// everything the engine shows
type recordingPresenter struct {
	actions   []entities.Action
	actionErr error
	alive     bool

	offered     [][]entities.Action
	messages    []string
	balances    []int64
	dealerViews []Score
}

func newRecordingPresenter(actions ...entities.Action) *recordingPresenter {
	return &recordingPresenter{actions: actions, alive: true}
}

func (p *recordingPresenter) Greet()          {}
func (p *recordingPresenter) InitializeView() {}
func (p *recordingPresenter) Clear()          {}
func (p *recordingPresenter) Close()          { p.alive = false }
func (p *recordingPresenter) IsAlive() bool   { return p.alive }

func (p *recordingPresenter) UpdateCardView(hand *Hand, isDealer bool) {
	if isDealer {
		p.dealerViews = append(p.dealerViews, hand.Score())
	}
}

func (p *recordingPresenter) UpdateBalanceDisplay(balance int64) {
	p.balances = append(p.balances, balance)
}

func (p *recordingPresenter) ShowOutcomeMessage(text string) {
	p.messages = append(p.messages, text)
}

func (p *recordingPresenter) Action(ctx context.Context, available []entities.Action) (entities.Action, error) {
	p.offered = append(p.offered, available)
	if p.actionErr != nil {
		return "", p.actionErr
	}
	if len(p.actions) == 0 {
		return "", errors.New("no scripted action left")
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *recordingPresenter) Bet(ctx context.Context, balance int64) (int64, error) {
	return 0, errors.New("not scripted")
}

func (p *recordingPresenter) WantsToPlay(ctx context.Context) (bool, error) {
	return false, nil
}

type roundFixture struct {
	round     *Round
	presenter *recordingPresenter
	bankroll  *wallet.Service
	drawer    *scriptedDrawer
}

func newRoundFixture(t *testing.T, balance, bet int64, cards []entities.Card, actions ...entities.Action) *roundFixture {
	t.Helper()

	bankroll, err := wallet.NewService(context.Background(), walletRepo.NewMemoryRepository(), "test", balance, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, bankroll.SetBet(bet))

	presenter := newRecordingPresenter(actions...)
	drawer := &scriptedDrawer{cards: cards}
	round := NewRound(RoundConfig{
		SessionID: "session",
		Presenter: presenter,
		Bankroll:  bankroll,
		Drawer:    drawer,
		Logger:    logging.Discard(),
	})

	return &roundFixture{
		round:     round,
		presenter: presenter,
		bankroll:  bankroll,
		drawer:    drawer,
	}
}
