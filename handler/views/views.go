package views

import (
	"credit/core"

	"github.com/shopspring/decimal"
)

// Market market view
type Market struct {
	core.Market
	CurrentIndex  decimal.Decimal `json:"current_index"`
	TotalOwed     decimal.Decimal `json:"total_owed"`
	FreeLiquidity decimal.Decimal `json:"free_liquidity"`
	Suppliers     int64           `json:"suppliers"`
	Borrowers     int64           `json:"borrowers"`
}

// BorrowPosition one account borrow position with its live owed amount
type BorrowPosition struct {
	core.Borrow
	ActualOwed decimal.Decimal `json:"actual_owed"`
}

// SupplyPosition one account supply position with its underlying amount
type SupplyPosition struct {
	core.Supply
	Amount decimal.Decimal `json:"amount"`
}

// Account full account view for off-chain health monitoring
type Account struct {
	UserID       string            `json:"user_id"`
	Borrows      []*BorrowPosition `json:"borrows"`
	Supplies     []*SupplyPosition `json:"supplies"`
	Liquidatable bool              `json:"liquidatable"`
}
