package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	walletRepo "github.com/fadedpez/blackjack/pkg/repositories/wallet"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must be positive")
	ErrNoSuchHand        = errors.New("no bet recorded for hand")
)

// Service is the bankroll for one session. It owns the balance, the
// selected base bet and the per-hand wagers of the round in progress.
// Money leaves the balance when a bet is placed and comes back through
// AdjustBalance, so a losing hand needs no further movement.
type Service struct {
	repo     walletRepo.Repository
	logger   *logging.Logger
	walletID string

	balance int64
	bet     int64
	bets    []int64
}

// NewService loads the wallet identified by walletID, creating it with
// startBalance if it does not exist yet.
func NewService(ctx context.Context, repo walletRepo.Repository, walletID string, startBalance int64, logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.Default
	}
	s := &Service{
		repo:     repo,
		logger:   logger.With("wallet", walletID),
		walletID: walletID,
	}

	wallet, err := repo.GetWallet(ctx, walletID)
	switch {
	case err == nil:
		s.balance = wallet.Balance
	case errors.Is(err, walletRepo.ErrWalletNotFound):
		if startBalance < 0 {
			return nil, ErrNegativeAmount
		}
		wallet = &entities.Wallet{ID: walletID, Balance: startBalance}
		if err := repo.SaveWallet(ctx, wallet); err != nil {
			return nil, fmt.Errorf("error creating wallet: %w", err)
		}
		s.balance = startBalance
	default:
		return nil, fmt.Errorf("error getting wallet: %w", err)
	}

	s.logger.Debug("Bankroll ready", "balance", s.balance)
	return s, nil
}

// Balance returns the current balance
func (s *Service) Balance() int64 {
	return s.balance
}

// Bet returns the selected base bet
func (s *Service) Bet() int64 {
	return s.bet
}

// HandBet returns the wager recorded for hand i, or 0 if there is none
func (s *Service) HandBet(i int) int64 {
	if i < 0 || i >= len(s.bets) {
		return 0
	}
	return s.bets[i]
}

// Bets returns a copy of the per-hand wagers
func (s *Service) Bets() []int64 {
	out := make([]int64, len(s.bets))
	copy(out, s.bets)
	return out
}

// CanCover reports whether the balance can fund amount
func (s *Service) CanCover(amount int64) bool {
	return amount >= 0 && s.balance >= amount
}

// SetBet selects the base bet and resets the per-hand wagers to [amount]
func (s *Service) SetBet(amount int64) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}
	s.bet = amount
	s.bets = []int64{amount}
	return nil
}

// PlaceBet deducts the wager of hand i from the balance
func (s *Service) PlaceBet(ctx context.Context, i int) error {
	if i < 0 || i >= len(s.bets) {
		return fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	return s.debit(ctx, i, s.bets[i], fmt.Sprintf("Bet on hand %d", i+1))
}

// AddHandBet records a new hand wagered at the base bet and deducts it.
// It returns the index of the new hand.
func (s *Service) AddHandBet(ctx context.Context) (int, error) {
	if !s.CanCover(s.bet) {
		return 0, ErrInsufficientFunds
	}
	s.bets = append(s.bets, s.bet)
	i := len(s.bets) - 1
	if err := s.PlaceBet(ctx, i); err != nil {
		s.bets = s.bets[:i]
		return 0, err
	}
	return i, nil
}

// DoubleBet deducts another stake equal to hand i's wager and doubles it
func (s *Service) DoubleBet(ctx context.Context, i int) error {
	if i < 0 || i >= len(s.bets) {
		return fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	extra := s.bets[i]
	if err := s.debit(ctx, i, extra, fmt.Sprintf("Double down on hand %d", i+1)); err != nil {
		return err
	}
	s.bets[i] += extra
	return nil
}

// AdjustBalance credits hand i according to outcome and returns the amount paid
func (s *Service) AdjustBalance(ctx context.Context, outcome entities.Outcome, i int) (int64, error) {
	if i < 0 || i >= len(s.bets) {
		return 0, fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	payout := s.bets[i] * outcome.PayoutMultiplier()
	if payout == 0 {
		s.logger.Debug("Hand lost", "hand", i, "bet", s.bets[i])
		return 0, nil
	}

	s.balance += payout
	if err := s.record(ctx, i, payout, entities.TransactionTypePayout, fmt.Sprintf("%s on hand %d", outcome, i+1)); err != nil {
		return payout, err
	}
	s.logger.Debug("Paid hand", "hand", i, "outcome", outcome, "payout", payout, "balance", s.balance)
	return payout, nil
}

// Transactions returns the most recent ledger entries, oldest first
func (s *Service) Transactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactions(ctx, s.walletID, limit)
}

// TransactionsByType returns the most recent ledger entries of one type, newest first
func (s *Service) TransactionsByType(ctx context.Context, txType entities.TransactionType, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactionsByType(ctx, s.walletID, txType, limit)
}

func (s *Service) debit(ctx context.Context, hand int, amount int64, description string) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}
	if s.balance < amount {
		return ErrInsufficientFunds
	}

	s.balance -= amount
	if err := s.record(ctx, hand, -amount, entities.TransactionTypeBet, description); err != nil {
		return err
	}
	s.logger.Debug("Placed bet", "hand", hand, "amount", amount, "balance", s.balance)
	return nil
}

func (s *Service) record(ctx context.Context, hand int, amount int64, txType entities.TransactionType, description string) error {
	wallet := &entities.Wallet{ID: s.walletID, Balance: s.balance}
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		s.logger.Error("Error saving wallet", "err", err)
		return err
	}

	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		WalletID:     s.walletID,
		Amount:       amount,
		Type:         txType,
		HandIndex:    hand,
		Description:  description,
		Timestamp:    time.Now(),
		BalanceAfter: s.balance,
	}
	if err := s.repo.AddTransaction(ctx, transaction); err != nil {
		s.logger.Error("Error adding transaction", "err", err)
		return err
	}
	return nil
}
