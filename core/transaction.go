package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Action ledger operation kind
type Action string

const (
	// ActionBorrow borrow
	ActionBorrow Action = "borrow"
	// ActionRepay repay
	ActionRepay Action = "repay"
	// ActionSupply supply
	ActionSupply Action = "supply"
	// ActionWithdraw withdraw
	ActionWithdraw Action = "withdraw"
	// ActionLiquidate liquidate
	ActionLiquidate Action = "liquidate"
)

// Transaction one committed journal row per mutating ledger operation,
// kept for off-chain health monitoring and accrual audits.
type Transaction struct {
	TraceID string          `json:"trace_id"`
	Action  Action          `json:"action"`
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
	// Shares minted or burned for supply/withdraw, collateral value
	// seized for liquidate, zero otherwise
	Extra     decimal.Decimal `json:"extra"`
	CreatedAt time.Time       `json:"created_at"`
}

// ITransactionStore transaction journal interface
type ITransactionStore interface {
	Create(ctx context.Context, transaction *Transaction) error
	List(ctx context.Context, limit int) ([]*Transaction, error)
	FindByUser(ctx context.Context, userID string) ([]*Transaction, error)
}
