package entities

import (
	"time"
)

// Wallet represents the player's bankroll
type Wallet struct {
	ID          string    // Session the bankroll belongs to
	Balance     int64     // Current balance in chips
	LastUpdated time.Time // When the wallet was last updated
}

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeBet    TransactionType = "BET"
	TransactionTypePayout TransactionType = "PAYOUT"
)

// Transaction represents a single wallet transaction
type Transaction struct {
	ID           string          // Unique identifier
	WalletID     string          // Wallet associated with the transaction
	Amount       int64           // Amount (positive for additions, negative for subtractions)
	Type         TransactionType // Type of transaction
	HandIndex    int             // Player hand the money moved for
	Description  string          // Human-readable description
	Timestamp    time.Time       // When the transaction occurred
	BalanceAfter int64           // Balance after this transaction
}
