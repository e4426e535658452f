package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	wallets      map[string]*entities.Wallet
	transactions map[string][]*entities.Transaction
	mu           sync.RWMutex
}

// NewMemoryRepository creates a new in-memory wallet repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		wallets:      make(map[string]*entities.Wallet),
		transactions: make(map[string][]*entities.Transaction),
	}
}

// GetWallet retrieves a wallet by ID
func (r *MemoryRepository) GetWallet(ctx context.Context, walletID string) (*entities.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, exists := r.wallets[walletID]
	if !exists {
		return nil, ErrWalletNotFound
	}

	walletCopy := *wallet
	return &walletCopy, nil
}

// SaveWallet creates or updates a wallet
func (r *MemoryRepository) SaveWallet(ctx context.Context, wallet *entities.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet.LastUpdated = time.Now()

	walletCopy := *wallet
	r.wallets[wallet.ID] = &walletCopy

	return nil
}

// AddTransaction records a new ledger entry
func (r *MemoryRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}

	txCopy := *transaction
	r.transactions[transaction.WalletID] = append(r.transactions[transaction.WalletID], &txCopy)

	return nil
}

// GetTransactions retrieves the most recent transactions for a wallet, oldest first
func (r *MemoryRepository) GetTransactions(ctx context.Context, walletID string, limit int) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[walletID]

	start := 0
	if limit > 0 && len(transactions) > limit {
		start = len(transactions) - limit
	}

	result := make([]*entities.Transaction, 0, len(transactions)-start)
	for _, tx := range transactions[start:] {
		txCopy := *tx
		result = append(result, &txCopy)
	}

	return result, nil
}

// GetTransactionsByType retrieves transactions of a specific type, newest first
func (r *MemoryRepository) GetTransactionsByType(ctx context.Context, walletID string, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[walletID]

	filtered := make([]*entities.Transaction, 0)
	for i := len(transactions) - 1; i >= 0; i-- {
		if limit > 0 && len(filtered) >= limit {
			break
		}
		if transactions[i].Type == transactionType {
			txCopy := *transactions[i]
			filtered = append(filtered, &txCopy)
		}
	}

	return filtered, nil
}
