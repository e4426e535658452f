package wallet

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Repository defines the interface for bankroll data operations
type Repository interface {
	// GetWallet retrieves a wallet by ID
	GetWallet(ctx context.Context, walletID string) (*entities.Wallet, error)

	// SaveWallet creates or updates a wallet
	SaveWallet(ctx context.Context, wallet *entities.Wallet) error

	// AddTransaction records a new ledger entry
	AddTransaction(ctx context.Context, transaction *entities.Transaction) error

	// GetTransactions retrieves the most recent transactions for a wallet, oldest first
	GetTransactions(ctx context.Context, walletID string, limit int) ([]*entities.Transaction, error)

	// GetTransactionsByType retrieves transactions of a specific type, newest first
	GetTransactionsByType(ctx context.Context, walletID string, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error)
}
