package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IAccountCustody is the source of truth for account balances. The ledger
// never custodies collateral itself; it observes balances on demand and
// settles borrows, repayments and liquidations through Transfer.
type IAccountCustody interface {
	BalanceOf(ctx context.Context, userID, assetID string) (decimal.Decimal, error)
	Transfer(ctx context.Context, from, to, assetID string, amount decimal.Decimal) error
}

// IOrchestrator hooks back into the upstream orchestration layer. The
// ledger only needs it to cancel an account's pending withdrawal request
// when a liquidation starts; cancelling a nonexistent request is a no-op.
type IOrchestrator interface {
	CancelPendingWithdrawals(ctx context.Context, userID string) error
}

// IAuthorizer gates registry mutations. The ledger performs no
// authentication of its own, it only propagates the authorizer's verdict.
type IAuthorizer interface {
	CheckAuthorized(ctx context.Context, caller string) error
}
