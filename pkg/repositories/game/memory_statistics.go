package game

import (
	"context"
	"time"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// GetSessionStatistics derives statistics for a session from its stored rounds
func (r *MemoryRepository) GetSessionStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.SessionStatistics{
		SessionID:   sessionID,
		LastUpdated: time.Now(),
	}

	for _, result := range r.sessionResults[sessionID] {
		stats.RoundsPlayed++
		if n := len(result.HandResults); n > 1 {
			stats.Splits += n - 1
		}

		for _, hr := range result.HandResults {
			stats.HandsPlayed++
			stats.TotalBet += hr.Bet
			stats.TotalReturned += hr.Payout

			switch hr.Outcome {
			case entities.OutcomeWin:
				stats.Wins++
			case entities.OutcomeLoss:
				stats.Losses++
			case entities.OutcomeTie:
				stats.Ties++
			case entities.OutcomeBlackjack:
				stats.Blackjacks++
			}

			if hr.Busted {
				stats.Busts++
			}
			if hr.Doubled {
				stats.DoubleDowns++
			}
		}
	}

	return stats, nil
}
