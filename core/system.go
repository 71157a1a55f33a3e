package core

import "time"

// System stores system information.
type System struct {
	// LedgerAccountID custody account holding the pool's free liquidity
	LedgerAccountID string
	// ExcludedSuppliers accounts that may never hold a supply position;
	// the ledger account itself is always excluded
	ExcludedSuppliers []string
	Version           string
}

// IsSupplierExcluded reports whether userID may not hold a supply position.
func (s *System) IsSupplierExcluded(userID string) bool {
	if userID == s.LedgerAccountID {
		return true
	}
	for _, id := range s.ExcludedSuppliers {
		if id == userID {
			return true
		}
	}
	return false
}

// Clock source of ledger time. Interest accrual reads whole seconds from
// it, so a frozen test clock yields exact, reproducible indexes.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// NewWallClock system wall clock
func NewWallClock() Clock { return wallClock{} }
