package custody

import (
	"context"
	"sync"

	"credit/core"

	"github.com/shopspring/decimal"
)

type custodyService struct {
	mu       sync.RWMutex
	balances map[string]map[string]decimal.Decimal
}

// New new in-memory account custody. Stands in for the external custody
// collaborator: the source of truth for every account balance the ledger
// observes or settles against.
func New() core.IAccountCustody {
	return &custodyService{
		balances: make(map[string]map[string]decimal.Decimal),
	}
}

// NewWithBalances custody seeded with initial balances keyed by account
// then asset.
func NewWithBalances(initial map[string]map[string]decimal.Decimal) core.IAccountCustody {
	s := &custodyService{
		balances: make(map[string]map[string]decimal.Decimal),
	}
	for userID, assets := range initial {
		for assetID, amount := range assets {
			s.credit(userID, assetID, amount)
		}
	}

	return s
}

func (s *custodyService) BalanceOf(ctx context.Context, userID, assetID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets, ok := s.balances[userID]
	if !ok {
		return decimal.Zero, nil
	}

	return assets[assetID], nil
}

func (s *custodyService) Transfer(ctx context.Context, from, to, assetID string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balances[from][assetID]
	if balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	s.balances[from][assetID] = balance.Sub(amount)
	s.credit(to, assetID, amount)
	return nil
}

func (s *custodyService) credit(userID, assetID string, amount decimal.Decimal) {
	assets, ok := s.balances[userID]
	if !ok {
		assets = make(map[string]decimal.Decimal)
		s.balances[userID] = assets
	}

	assets[assetID] = assets[assetID].Add(amount)
}
