// Package tui implements a full screen Presenter on top of bubbletea
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/presenters/view"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// ErrClosed is returned by blocking calls once the UI has gone away
var ErrClosed = errors.New("tui closed")

// sender is the part of *tea.Program the presenter talks to
type sender interface {
	Send(msg tea.Msg)
}

// Presenter drives a bubbletea program from the game goroutine. The program
// owns the terminal; the presenter only sends it messages and waits for
// lines typed into its input.
type Presenter struct {
	program sender
	out     io.Writer
	logger  *logging.Logger

	inputs chan string
	done   chan struct{}

	mu     sync.Mutex
	slots  map[*blackjack.Hand]int
	closed bool
}

// NewPresenter starts the terminal UI on in/out and returns its presenter
func NewPresenter(in io.Reader, out io.Writer, logger *logging.Logger) *Presenter {
	if logger == nil {
		logger = logging.Default
	}
	inputs := make(chan string, 1)
	program := tea.NewProgram(NewModel(inputs, logger),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	p := newPresenter(program, inputs, out, logger)
	go func() {
		defer close(p.done)
		if _, err := program.Run(); err != nil {
			p.logger.Error("Terminal UI stopped", "err", err)
		}
	}()
	return p
}

func newPresenter(program sender, inputs chan string, out io.Writer, logger *logging.Logger) *Presenter {
	return &Presenter{
		program: program,
		out:     out,
		logger:  logger.WithPrefix("tui"),
		inputs:  inputs,
		done:    make(chan struct{}),
		slots:   make(map[*blackjack.Hand]int),
	}
}

func (p *Presenter) Greet() {
	p.send(logMsg{text: SuccessStyle.Render(view.Greeting[:len(view.Greeting)-1])})
}

// InitializeView clears the table for a new round
func (p *Presenter) InitializeView() {
	p.mu.Lock()
	p.slots = make(map[*blackjack.Hand]int)
	p.mu.Unlock()
	p.send(resetMsg{})
}

// Clear leaves the last round on the table until the next one starts
func (p *Presenter) Clear() {
	p.send(logMsg{text: InfoStyle.Render("────────")})
}

// Close stops the UI and prints the farewell once the terminal is restored
func (p *Presenter) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.send(closeMsg{})
	<-p.done
	fmt.Fprint(p.out, view.Farewell)
}

func (p *Presenter) IsAlive() bool {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// UpdateCardView shows the hand. Player hands keep the slot they were first
// shown in for the rest of the round.
func (p *Presenter) UpdateCardView(hand *blackjack.Hand, isDealer bool) {
	msg := handMsg{dealer: isDealer, hand: snapshot(hand)}
	if !isDealer {
		p.mu.Lock()
		slot, ok := p.slots[hand]
		if !ok {
			slot = len(p.slots)
			p.slots[hand] = slot
		}
		p.mu.Unlock()
		msg.slot = slot
	}
	p.send(msg)
}

func (p *Presenter) UpdateBalanceDisplay(balance int64) {
	p.send(balanceMsg{balance: balance})
}

func (p *Presenter) ShowOutcomeMessage(text string) {
	p.send(outcomeMsg{text: text})
}

func (p *Presenter) Action(ctx context.Context, available []entities.Action) (entities.Action, error) {
	for {
		line, err := p.ask(ctx, view.ActionPrompt(available))
		if err != nil {
			return "", err
		}
		action, err := view.ParseAction(line, available)
		if err != nil {
			p.send(logMsg{text: WarningStyle.Render(err.Error())})
			continue
		}
		return action, nil
	}
}

func (p *Presenter) Bet(ctx context.Context, balance int64) (int64, error) {
	for {
		line, err := p.ask(ctx, view.BetPrompt(balance))
		if err != nil {
			return 0, err
		}
		bet, err := view.ParseBet(line, balance)
		if err != nil {
			p.send(logMsg{text: WarningStyle.Render(err.Error())})
			continue
		}
		return bet, nil
	}
}

func (p *Presenter) WantsToPlay(ctx context.Context) (bool, error) {
	for {
		line, err := p.ask(ctx, view.IntentPrompt)
		if err != nil {
			return false, err
		}
		play, err := view.ParseIntent(line)
		if err != nil {
			p.send(logMsg{text: WarningStyle.Render(err.Error())})
			continue
		}
		return play, nil
	}
}

// ask shows prompt and waits for the next submitted line
func (p *Presenter) ask(ctx context.Context, prompt string) (string, error) {
	if !p.IsAlive() {
		return "", ErrClosed
	}
	p.drainInputs()
	p.send(promptMsg{text: prompt})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrClosed
	case line := <-p.inputs:
		p.send(promptMsg{})
		p.send(logMsg{text: InfoStyle.Render("> " + line)})
		return line, nil
	}
}

// drainInputs discards lines that arrived while no prompt was shown
func (p *Presenter) drainInputs() {
	for {
		select {
		case line := <-p.inputs:
			p.logger.Debug("Discarded stale input", "input", line)
		default:
			return
		}
	}
}

// send drops messages once the program has exited so the game never blocks
// on a dead UI
func (p *Presenter) send(msg tea.Msg) {
	select {
	case <-p.done:
		p.logger.Debug("Dropped message after exit", "msg", fmt.Sprintf("%T", msg))
	default:
		p.program.Send(msg)
	}
}
