package game

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Repository defines storage operations for round results
type Repository interface {
	// Round results
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
	GetRoundResults(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error)

	// Statistics derived from the stored rounds
	GetSessionStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
