package tui

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/presenters/view"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// fakeProgram records messages, types the next scripted answer whenever a
// prompt is shown and exits like a real program on closeMsg
type fakeProgram struct {
	mu      sync.Mutex
	msgs    []tea.Msg
	inputs  chan<- string
	answers []string
	onQuit  func()
}

func (f *fakeProgram) Send(msg tea.Msg) {
	f.mu.Lock()
	f.msgs = append(f.msgs, msg)
	var answer string
	pm, isPrompt := msg.(promptMsg)
	typed := isPrompt && pm.text != "" && len(f.answers) > 0
	if typed {
		answer, f.answers = f.answers[0], f.answers[1:]
	}
	f.mu.Unlock()

	if typed {
		f.inputs <- answer
	}
	if _, ok := msg.(closeMsg); ok && f.onQuit != nil {
		f.onQuit()
	}
}

func (f *fakeProgram) script(answers ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, answers...)
}

func (f *fakeProgram) messages() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]tea.Msg, len(f.msgs))
	copy(out, f.msgs)
	return out
}

type PresenterTestSuite struct {
	suite.Suite
	program   *fakeProgram
	inputs    chan string
	out       *bytes.Buffer
	presenter *Presenter
	ctx       context.Context
}

func TestPresenterSuite(t *testing.T) {
	suite.Run(t, new(PresenterTestSuite))
}

func (s *PresenterTestSuite) SetupTest() {
	s.inputs = make(chan string, 1)
	s.program = &fakeProgram{inputs: s.inputs}
	s.out = &bytes.Buffer{}
	s.presenter = newPresenter(s.program, s.inputs, s.out, logging.Discard())
	s.program.onQuit = func() { close(s.presenter.done) }
	s.ctx = context.Background()
}

func (s *PresenterTestSuite) TestWantsToPlayRepromptsUntilValid() {
	s.program.script("maybe", "start")

	play, err := s.presenter.WantsToPlay(s.ctx)
	s.Require().NoError(err)
	s.True(play)

	prompts := 0
	for _, msg := range s.program.messages() {
		if pm, ok := msg.(promptMsg); ok && pm.text == view.IntentPrompt {
			prompts++
		}
	}
	s.Equal(2, prompts)
}

func (s *PresenterTestSuite) TestAction() {
	s.program.script("stand")

	action, err := s.presenter.Action(s.ctx, []entities.Action{entities.ActionHit, entities.ActionStand})
	s.Require().NoError(err)
	s.Equal(entities.ActionStand, action)
}

func (s *PresenterTestSuite) TestLineTypedBeforePromptIsIgnored() {
	s.inputs <- "hit"
	s.program.script("stand")

	action, err := s.presenter.Action(s.ctx, []entities.Action{entities.ActionHit, entities.ActionStand})
	s.Require().NoError(err)
	s.Equal(entities.ActionStand, action)
	s.Empty(s.inputs)
}

func (s *PresenterTestSuite) TestBet() {
	s.program.script("25")

	bet, err := s.presenter.Bet(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal(int64(25), bet)
}

func (s *PresenterTestSuite) TestHandSlots() {
	first := blackjack.NewHand()
	second := blackjack.NewHand()
	dealer := blackjack.NewDealerHand()

	s.presenter.UpdateCardView(first, false)
	s.presenter.UpdateCardView(dealer, true)
	s.presenter.UpdateCardView(second, false)
	s.presenter.UpdateCardView(first, false)

	var slots []int
	for _, msg := range s.program.messages() {
		if hm, ok := msg.(handMsg); ok && !hm.dealer {
			slots = append(slots, hm.slot)
		}
	}
	s.Equal([]int{0, 1, 0}, slots)

	s.presenter.InitializeView()
	s.presenter.UpdateCardView(second, false)
	msgs := s.program.messages()
	s.IsType(resetMsg{}, msgs[len(msgs)-2])
	s.Equal(0, msgs[len(msgs)-1].(handMsg).slot)
}

func (s *PresenterTestSuite) TestCloseStopsTheProgram() {
	s.True(s.presenter.IsAlive())

	s.presenter.Close()
	s.presenter.Close()

	s.False(s.presenter.IsAlive())
	s.Equal(view.Farewell, s.out.String())

	_, err := s.presenter.WantsToPlay(s.ctx)
	s.ErrorIs(err, ErrClosed)
}

func (s *PresenterTestSuite) TestProgramExitUnblocksPrompt() {
	errs := make(chan error, 1)
	go func() {
		_, err := s.presenter.Action(s.ctx, []entities.Action{entities.ActionHit})
		errs <- err
	}()

	close(s.presenter.done)

	select {
	case err := <-errs:
		s.ErrorIs(err, ErrClosed)
	case <-time.After(time.Second):
		s.Fail("Action did not return")
	}
	s.False(s.presenter.IsAlive())

	before := len(s.program.messages())
	s.presenter.UpdateBalanceDisplay(10)
	s.Len(s.program.messages(), before)
}

func (s *PresenterTestSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.presenter.Bet(ctx, 100)
	s.ErrorIs(err, context.Canceled)
}
