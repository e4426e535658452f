package blackjack

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

// Recorder keeps settled rounds and summarises them per session
type Recorder interface {
	RecordRound(ctx context.Context, result *entities.RoundResult) error
	Summary(ctx context.Context, sessionID string) (*entities.SessionStatistics, error)
}

// SessionConfig wires a session to its collaborators. Recorder and Logger
// are optional.
type SessionConfig struct {
	ID        string
	Presenter Presenter
	Bankroll  Bankroll
	Drawer    CardDrawer
	Recorder  Recorder
	Logger    *logging.Logger
}

// Session runs rounds until the player leaves or can no longer cover the
// minimum bet
type Session struct {
	ID string

	presenter Presenter
	bankroll  Bankroll
	drawer    CardDrawer
	recorder  Recorder
	logger    *logging.Logger
}

// NewSession creates a new session
func NewSession(cfg SessionConfig) *Session {
	id := cfg.ID
	if id == "" {
		id = uuid.New().String()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = statistics.NewService(game.NewMemoryRepository(), logger)
	}

	return &Session{
		ID:        id,
		presenter: cfg.Presenter,
		bankroll:  cfg.Bankroll,
		drawer:    cfg.Drawer,
		recorder:  recorder,
		logger:    logger.With("session", id),
	}
}

// Run plays rounds until the session ends and returns its statistics.
// The presenter is closed on the way out.
func (s *Session) Run(ctx context.Context) (*entities.SessionStatistics, error) {
	defer s.presenter.Close()

	s.presenter.Greet()
	s.presenter.UpdateBalanceDisplay(s.bankroll.Balance())
	s.logger.Info("Session started", "balance", s.bankroll.Balance())

	for s.bankroll.Balance() >= MinBet {
		more, err := s.playRound(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	stats, err := s.recorder.Summary(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("error summarising session: %w", err)
	}
	s.logger.Info("Session finished",
		"balance", s.bankroll.Balance(),
		"rounds", stats.RoundsPlayed,
		"net", stats.NetProfit())
	return stats, nil
}

// playRound asks for a bet and plays one round. It returns false once the
// player wants to stop.
func (s *Session) playRound(ctx context.Context) (bool, error) {
	if !s.presenter.IsAlive() {
		return false, nil
	}

	play, err := s.presenter.WantsToPlay(ctx)
	if err != nil {
		s.logger.Warn("Start prompt failed", "err", err)
		return false, nil
	}
	if !play {
		return false, nil
	}

	balance := s.bankroll.Balance()
	bet, err := s.presenter.Bet(ctx, balance)
	if err != nil {
		s.logger.Warn("Bet prompt failed", "err", err)
		return false, nil
	}
	if !IsAcceptedBet(bet) || bet > balance {
		return false, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("presenter returned bet %d with balance %d", bet, balance))
	}
	if err := s.bankroll.SetBet(bet); err != nil {
		return false, types.WrapError(types.ErrInvalidArgument, "could not set bet", err)
	}

	s.presenter.InitializeView()
	round := NewRound(RoundConfig{
		SessionID: s.ID,
		Presenter: s.presenter,
		Bankroll:  s.bankroll,
		Drawer:    s.drawer,
		Logger:    s.logger,
	})

	result, err := round.Play(ctx)
	if err != nil {
		if types.IsGameError(err, types.ErrPresenterClosed) {
			return false, nil
		}
		return false, err
	}

	if err := s.recorder.RecordRound(ctx, result); err != nil {
		s.logger.LogError(err)
	}

	s.presenter.Clear()
	s.presenter.UpdateBalanceDisplay(s.bankroll.Balance())
	return true, nil
}
