// Package console implements a line oriented Presenter for plain terminals
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/presenters/view"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

const (
	boxWidth     = 25 // Hand box width including borders
	dividerWidth = 54 // Width of the line drawn at the start of a round
)

var handBorder = lipgloss.Border{
	Top:         "=",
	Bottom:      "=",
	Left:        "|",
	Right:       "|",
	TopLeft:     "=",
	TopRight:    "=",
	BottomLeft:  "=",
	BottomRight: "=",
}

// Option configures a Presenter
type Option func(*Presenter)

// WithColorProfile forces the colour profile used for output. termenv.Ascii
// disables styling entirely.
func WithColorProfile(profile termenv.Profile) Option {
	return func(p *Presenter) {
		p.renderer.SetColorProfile(profile)
	}
}

// Presenter reads answers one line at a time from in and writes to out
type Presenter struct {
	out      io.Writer
	scanner  *bufio.Scanner
	renderer *lipgloss.Renderer
	logger   *logging.Logger

	lines    chan string
	done     chan struct{}
	readOnce sync.Once

	mu     sync.Mutex
	alive  bool
	closed bool

	boxStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	balanceStyle lipgloss.Style
	winStyle     lipgloss.Style
	lossStyle    lipgloss.Style
	promptStyle  lipgloss.Style
}

// NewPresenter creates a console presenter
func NewPresenter(in io.Reader, out io.Writer, logger *logging.Logger, opts ...Option) *Presenter {
	if logger == nil {
		logger = logging.Default
	}
	p := &Presenter{
		out:      out,
		scanner:  bufio.NewScanner(in),
		renderer: lipgloss.NewRenderer(out),
		logger:   logger.WithPrefix("console"),
		lines:    make(chan string),
		done:     make(chan struct{}),
		alive:    true,
	}
	for _, opt := range opts {
		opt(p)
	}

	r := p.renderer
	p.boxStyle = r.NewStyle().
		Border(handBorder).
		Padding(0, 1).
		Width(boxWidth - 2).
		Align(lipgloss.Center)
	p.titleStyle = r.NewStyle().Bold(true)
	p.balanceStyle = r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	p.winStyle = r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	p.lossStyle = r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	p.promptStyle = r.NewStyle().Foreground(lipgloss.Color("#04B575"))
	return p
}

func (p *Presenter) Greet() {
	p.print(view.Greeting)
}

func (p *Presenter) InitializeView() {
	p.print(strings.Repeat("=", dividerWidth) + "\n")
}

func (p *Presenter) Clear() {
	p.print("\n")
}

// Close marks the presenter dead and says goodbye. Calling it twice is safe.
func (p *Presenter) Close() {
	p.mu.Lock()
	closed := p.closed
	p.alive = false
	p.closed = true
	p.mu.Unlock()

	if !closed {
		close(p.done)
		p.print(view.Farewell)
	}
}

func (p *Presenter) IsAlive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

// UpdateCardView prints the hand inside a bordered box
func (p *Presenter) UpdateCardView(hand *blackjack.Hand, isDealer bool) {
	p.print(p.renderHand(hand, isDealer) + "\n\n")
}

func (p *Presenter) renderHand(hand *blackjack.Hand, isDealer bool) string {
	inner := boxWidth - 4
	lines := []string{
		p.titleStyle.Render(view.HandTitle(isDealer)),
		"",
	}
	for _, card := range hand.Cards() {
		lines = append(lines, view.CardLabel(card))
	}
	lines = append(lines,
		strings.Repeat("- ", inner/2+1)[:inner],
		view.ScoreLine(hand),
	)
	return p.boxStyle.Render(strings.Join(lines, "\n"))
}

func (p *Presenter) UpdateBalanceDisplay(balance int64) {
	p.print(p.balanceStyle.Render(view.BalanceLine(balance)) + "\n")
}

func (p *Presenter) ShowOutcomeMessage(text string) {
	style := p.lossStyle
	if strings.Contains(text, blackjack.MsgWin) || text == blackjack.MsgTie {
		style = p.winStyle
	}
	p.print(style.Render(strings.TrimRight(text, "\n")) + "\n")
}

// Action keeps asking until the player types one of the available actions
func (p *Presenter) Action(ctx context.Context, available []entities.Action) (entities.Action, error) {
	for {
		line, err := p.ask(ctx, view.ActionPrompt(available))
		if err != nil {
			return "", err
		}
		action, err := view.ParseAction(line, available)
		if err != nil {
			p.logger.Debug("Rejected action", "input", line, "err", err)
			continue
		}
		return action, nil
	}
}

// Bet keeps asking until the player types an accepted, affordable bet
func (p *Presenter) Bet(ctx context.Context, balance int64) (int64, error) {
	for {
		line, err := p.ask(ctx, view.BetPrompt(balance))
		if err != nil {
			return 0, err
		}
		bet, err := view.ParseBet(line, balance)
		if err != nil {
			p.logger.Debug("Rejected bet", "input", line, "err", err)
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
			continue
		}
		return play, nil
	}
}

// ask prints prompt and waits for the next line. End of input closes the
// presenter.
func (p *Presenter) ask(ctx context.Context, prompt string) (string, error) {
	if !p.IsAlive() {
		return "", io.ErrClosedPipe
	}
	p.print(p.promptStyle.Render(prompt))

	p.readOnce.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.ErrClosedPipe
	case line, ok := <-p.lines:
		if !ok {
			p.mu.Lock()
			p.alive = false
			p.mu.Unlock()
			return "", io.EOF
		}
		return line, nil
	}
}

// readLines feeds lines to ask until input ends or the presenter is closed
func (p *Presenter) readLines() {
	defer close(p.lines)
	for p.scanner.Scan() {
		select {
		case p.lines <- p.scanner.Text():
		case <-p.done:
			return
		}
	}
	if err := p.scanner.Err(); err != nil {
		p.logger.Warn("Error reading input", "err", err)
	}
}

func (p *Presenter) print(s string) {
	if _, err := fmt.Fprint(p.out, s); err != nil {
		p.logger.Debug("Error writing output", "err", err)
	}
}
