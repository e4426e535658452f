package blackjack

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// Presenter is everything the engine needs from a user interface. Blocking
// calls return only valid answers; re-prompting on bad input is the
// presenter's job. An error from a blocking call means the player is gone.
type Presenter interface {
	Greet()
	InitializeView()
	Clear()
	Close()
	IsAlive() bool

	UpdateCardView(hand *Hand, isDealer bool)
	UpdateBalanceDisplay(balance int64)
	ShowOutcomeMessage(text string)

	// Action blocks until the player picks one of available
	Action(ctx context.Context, available []entities.Action) (entities.Action, error)
	// Bet blocks until the player picks an accepted bet not above balance
	Bet(ctx context.Context, balance int64) (int64, error)
	// WantsToPlay blocks until the player chooses to start a round or leave
	WantsToPlay(ctx context.Context) (bool, error)
}
