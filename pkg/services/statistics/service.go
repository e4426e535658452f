package statistics

import (
	"context"
	"errors"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

var ErrInvalidResult = errors.New("round result must carry a session id")

// Service records settled rounds and reports per-session statistics
type Service struct {
	repository game.Repository
	logger     *logging.Logger
}

// NewService creates a new statistics service
func NewService(repository game.Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// RecordRound stores a settled round
func (s *Service) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	if result == nil || result.SessionID == "" {
		return ErrInvalidResult
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	if err := s.repository.SaveRoundResult(ctx, result); err != nil {
		s.logger.Error("Error saving round result", "round", result.RoundID, "err", err)
		return err
	}

	s.logger.Debug("Recorded round",
		"round", result.RoundID,
		"hands", len(result.HandResults),
		"wagered", result.Wagered(),
		"returned", result.Returned())
	return nil
}

// Summary returns the aggregated statistics for a session
func (s *Service) Summary(ctx context.Context, sessionID string) (*entities.SessionStatistics, error) {
	return s.repository.GetSessionStatistics(ctx, sessionID)
}

// RecentRounds returns up to limit rounds of a session, newest first
func (s *Service) RecentRounds(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error) {
	if limit < 1 {
		limit = 10
	}
	return s.repository.GetRoundResults(ctx, sessionID, limit)
}
