package entities

import (
	"fmt"
	"strings"
	"time"
)

// Action is a decision the player can make on a hand
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionSplit  Action = "split"
	ActionDouble Action = "double"
)

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// ParseAction converts user input into an Action
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionHit:
		return ActionHit, nil
	case ActionStand:
		return ActionStand, nil
	case ActionSplit:
		return ActionSplit, nil
	case ActionDouble:
		return ActionDouble, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// ContainsAction reports whether action is one of actions
func ContainsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// Outcome represents the result of a settled hand
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLoss      Outcome = "LOSS"
	OutcomeTie       Outcome = "TIE"
	OutcomeBlackjack Outcome = "BLACKJACK"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome pays more than the stake
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// PayoutMultiplier returns how many times the hand's bet is credited back.
// Bets are deducted when placed, so the multiplier includes the stake.
func (o Outcome) PayoutMultiplier() int64 {
	switch o {
	case OutcomeBlackjack:
		return 3
	case OutcomeWin:
		return 2
	case OutcomeTie:
		return 1
	case OutcomeLoss:
		return 0
	}
	return 0
}

// RoundState is a step of the round state machine
type RoundState string

const (
	StateDealt        RoundState = "DEALT"
	StateNaturalCheck RoundState = "NATURAL_CHECK"
	StatePlayerHands  RoundState = "PLAYER_HANDS"
	StateDealerPlay   RoundState = "DEALER_PLAY"
	StateSettlement   RoundState = "SETTLEMENT"
	StateDone         RoundState = "DONE"
	StateAborted      RoundState = "ABORTED"
)

// HandResult stores the result of one player hand
type HandResult struct {
	Index   int
	Bet     int64
	Payout  int64
	Outcome Outcome
	Score   int
	Busted  bool
	Doubled bool
}

// RoundResult represents the outcome of a completed round
type RoundResult struct {
	RoundID      string
	SessionID    string
	HandResults  []*HandResult
	DealerScore  int
	DealerBust   bool
	Natural      bool
	BalanceAfter int64
	CompletedAt  time.Time
}

// Wagered returns the total amount staked across all hands
func (r *RoundResult) Wagered() int64 {
	var total int64
	for _, hr := range r.HandResults {
		total += hr.Bet
	}
	return total
}

// Returned returns the total amount credited back across all hands
func (r *RoundResult) Returned() int64 {
	var total int64
	for _, hr := range r.HandResults {
		total += hr.Payout
	}
	return total
}
