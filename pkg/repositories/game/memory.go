package game

import (
	"context"
	"errors"
	"sync"

	"github.com/fadedpez/blackjack/pkg/entities"
)

var ErrRepositoryClosed = errors.New("repository closed")

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of sessionID to round results, in completion order
	sessionResults map[string][]*entities.RoundResult
	closed         bool
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessionResults: make(map[string][]*entities.RoundResult),
	}
}

// SaveRoundResult appends a round result to its session history
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRepositoryClosed
	}

	r.sessionResults[result.SessionID] = append(r.sessionResults[result.SessionID], result)
	return nil
}

// GetRoundResults retrieves the most recent round results for a session, newest first
func (r *MemoryRepository) GetRoundResults(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.sessionResults[sessionID]
	out := make([]*entities.RoundResult, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, results[i])
	}
	return out, nil
}

// Close releases the stored history
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.sessionResults = make(map[string][]*entities.RoundResult)
	return nil
}
