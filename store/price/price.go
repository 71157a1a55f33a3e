package price

import (
	"context"
	"sync"

	"credit/core"
)

type priceStore struct {
	mu     sync.RWMutex
	prices map[string]*core.Price
}

// New new in-memory price store
func New() core.IPriceStore {
	return &priceStore{
		prices: make(map[string]*core.Price),
	}
}

func (s *priceStore) Save(ctx context.Context, price *core.Price) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *price
	s.prices[price.AssetID] = &p
	return nil
}

func (s *priceStore) Find(ctx context.Context, assetID string) (*core.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.prices[assetID]
	if !ok {
		return nil, core.ErrPriceNotFound
	}

	p := *price
	return &p, nil
}

func (s *priceStore) All(ctx context.Context) ([]*core.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make([]*core.Price, 0, len(s.prices))
	for _, price := range s.prices {
		p := *price
		prices = append(prices, &p)
	}

	return prices, nil
}
