// Package view holds the text and input handling shared by every presenter
package view

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

const (
	Greeting     = "Welcome to the game of Blackjack!\n"
	Farewell     = "Game closed. Thank you for playing!\n"
	IntentPrompt = "Please type 'start' to begin or 'exit' to leave: "
	HiddenCard   = "**Card Hidden**"
	DealerTitle  = "Dealer's cards:"
	PlayerTitle  = "Your cards:"
)

var (
	ErrUnknownIntent  = errors.New("type 'start' or 'exit'")
	ErrActionNotValid = errors.New("action is not available")
	ErrBetNotValid    = errors.New("bet is not available")
)

// ActionPrompt builds the prompt for the given actions. Hit and stand are
// always listed last.
func ActionPrompt(available []entities.Action) string {
	var b strings.Builder
	if entities.ContainsAction(available, entities.ActionSplit) {
		b.WriteString("\nType 'split' if you'd like to split cards. ")
	}
	if entities.ContainsAction(available, entities.ActionDouble) {
		b.WriteString("\nType 'double' to double the bet. ")
	}
	b.WriteString("\nType 'hit' or 'stand' to proceed. ")
	return b.String()
}

// BetPrompt lists the bets the balance can cover, e.g. "Bets available {10, 25}"
func BetPrompt(balance int64) string {
	return fmt.Sprintf("Bets available %s\nType in bet amount: ", FormatBets(blackjack.AvailableBets(balance)))
}

// FormatBets renders bets as a set literal
func FormatBets(bets []int64) string {
	parts := make([]string, 0, len(bets))
	for _, b := range bets {
		parts = append(parts, strconv.FormatInt(b, 10))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ParseIntent reads the answer to IntentPrompt
func ParseIntent(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "start":
		return true, nil
	case "exit":
		return false, nil
	}
	return false, ErrUnknownIntent
}

// ParseAction reads an action and checks it was offered
func ParseAction(input string, available []entities.Action) (entities.Action, error) {
	action, err := entities.ParseAction(input)
	if err != nil {
		return "", err
	}
	if !entities.ContainsAction(available, action) {
		return "", fmt.Errorf("%w: %s", ErrActionNotValid, action)
	}
	return action, nil
}

// ParseBet reads a bet amount. Whole numbers written as decimals ("25.0")
// are accepted; the amount must be an accepted bet the balance covers.
func ParseBet(input string, balance int64) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing bet: %w", err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrBetNotValid, f)
	}

	amount := int64(f)
	for _, b := range blackjack.AvailableBets(balance) {
		if b == amount {
			return amount, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrBetNotValid, amount)
}

// CardLabel names a card, or masks it when face down
func CardLabel(card entities.Card) string {
	if card.IsHidden() {
		return HiddenCard
	}
	return card.String()
}

// HandTitle is the heading shown above a hand
func HandTitle(isDealer bool) string {
	if isDealer {
		return DealerTitle
	}
	return PlayerTitle
}

// ScoreLine renders the visible total of a hand
func ScoreLine(hand *blackjack.Hand) string {
	return "Total value: " + hand.Score().String()
}

// BalanceLine renders the player's balance
func BalanceLine(balance int64) string {
	return fmt.Sprintf("Your balance: %d", balance)
}

// SummaryLines describes a finished session
func SummaryLines(stats *entities.SessionStatistics) []string {
	if stats == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Rounds played: %d", stats.RoundsPlayed),
		fmt.Sprintf("Hands played: %d (splits %d, doubles %d)", stats.HandsPlayed, stats.Splits, stats.DoubleDowns),
		fmt.Sprintf("Wins: %d  Blackjacks: %d  Ties: %d  Losses: %d  Busts: %d",
			stats.Wins, stats.Blackjacks, stats.Ties, stats.Losses, stats.Busts),
		fmt.Sprintf("Wagered: %d  Returned: %d  Net: %+d", stats.TotalBet, stats.TotalReturned, stats.NetProfit()),
		fmt.Sprintf("Win rate: %.1f%%", stats.WinRate()),
	}
}
