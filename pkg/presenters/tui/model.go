package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/presenters/view"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// handView is a snapshot of a hand taken on the game goroutine
type handView struct {
	cards []entities.Card
	score string
}

func snapshot(hand *blackjack.Hand) handView {
	return handView{
		cards: hand.Cards(),
		score: view.ScoreLine(hand),
	}
}

type (
	handMsg struct {
		slot   int
		dealer bool
		hand   handView
	}
	balanceMsg struct{ balance int64 }
	outcomeMsg struct{ text string }
	promptMsg  struct{ text string }
	logMsg     struct{ text string }
	resetMsg   struct{}
	closeMsg   struct{}
)

// Model is the bubbletea model behind the terminal presenter. Lines typed by
// the player are forwarded to inputs.
type Model struct {
	logger *logging.Logger
	inputs chan<- string

	logViewport viewport.Model
	input       textinput.Model

	gameLog []string
	dealer  *handView
	hands   []handView
	balance int64
	prompt  string

	width    int
	height   int
	quitting bool
}

// NewModel creates the model. inputs should be buffered so a keypress never
// blocks the UI.
func NewModel(inputs chan<- string, logger *logging.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "start, exit, hit, stand, split, double or a bet"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		inputs:      inputs,
		logViewport: vp,
		input:       ti,
		gameLog:     []string{},
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case closeMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		}

	case handMsg:
		hv := msg.hand
		if msg.dealer {
			m.dealer = &hv
			break
		}
		for len(m.hands) <= msg.slot {
			m.hands = append(m.hands, handView{})
		}
		m.hands[msg.slot] = hv

	case balanceMsg:
		m.balance = msg.balance

	case outcomeMsg:
		m.AddLogEntry(styleOutcome(msg.text))

	case promptMsg:
		m.prompt = strings.TrimSpace(msg.text)

	case logMsg:
		m.AddLogEntry(msg.text)

	case resetMsg:
		m.dealer = nil
		m.hands = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands a typed line to the game without ever blocking the UI. Only
// the first line typed after a prompt answers it.
func (m *Model) submit(line string) {
	if m.prompt == "" {
		m.logger.Debug("Dropped input, no prompt pending", "input", line)
		return
	}
	select {
	case m.inputs <- line:
		m.prompt = ""
	default:
		m.logger.Debug("Dropped input, game is not waiting", "input", line)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	table := m.renderTable()
	tableWidth := lipgloss.Width(table)

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	logWidth := max(m.width-tableWidth-4, 1)
	logHeight := max(m.height-actionHeight-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	tablePane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Height(logHeight).
		Render(table)

	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Render(actionContent)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, logPane)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, actionPane)
}

// renderTable draws the dealer above the player's hands and the balance
func (m *Model) renderTable() string {
	var rows []string
	rows = append(rows, HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))

	if m.dealer != nil {
		rows = append(rows, renderHand(view.DealerTitle, *m.dealer))
	}
	if len(m.hands) > 0 {
		boxes := make([]string, 0, len(m.hands))
		for i, hv := range m.hands {
			title := view.PlayerTitle
			if len(m.hands) > 1 {
				title = fmt.Sprintf("Hand %d:", i+1)
			}
			boxes = append(boxes, renderHand(title, hv))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	rows = append(rows, BalanceStyle.Render(view.BalanceLine(m.balance)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderActionPane() string {
	var content strings.Builder
	if m.prompt != "" {
		content.WriteString(PromptStyle.Render(m.prompt))
		content.WriteString("\n")
	}
	content.WriteString(m.input.View())
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Enter to submit • Esc or Ctrl+C to quit"))
	return content.String()
}

func renderHand(title string, hv handView) string {
	lines := []string{HandTitleStyle.Render(title)}
	for _, card := range hv.cards {
		lines = append(lines, formatCard(card))
	}
	lines = append(lines, InfoStyle.Render(hv.score))
	return handBoxStyle.Render(strings.Join(lines, "\n"))
}

func formatCard(card entities.Card) string {
	if card.IsHidden() {
		return HiddenCardStyle.Render(view.HiddenCard)
	}
	label := card.Short() + "  " + card.String()
	if card.IsRed() {
		return RedCardStyle.Render(label)
	}
	return BlackCardStyle.Render(label)
}

func styleOutcome(text string) string {
	text = strings.TrimRight(text, "\n")
	switch {
	case strings.Contains(text, "won"):
		return SuccessStyle.Render(text)
	case strings.Contains(text, "tie"):
		return WarningStyle.Render(text)
	default:
		return ErrorStyle.Render(text)
	}
}

// AddLogEntry appends an entry to the game log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// GameLog returns a copy of the log entries
func (m *Model) GameLog() []string {
	result := make([]string, len(m.gameLog))
	copy(result, m.gameLog)
	return result
}
