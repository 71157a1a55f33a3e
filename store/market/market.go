package market

import (
	"context"
	"sync"

	"credit/core"
)

type marketStore struct {
	mu      sync.RWMutex
	markets map[string]*core.Market
}

// New new in-memory market store
func New() core.IMarketStore {
	return &marketStore{
		markets: make(map[string]*core.Market),
	}
}

func (s *marketStore) Save(ctx context.Context, market *core.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[market.AssetID]; ok {
		return core.ErrAlreadyConfigured
	}

	m := *market
	s.markets[market.AssetID] = &m
	return nil
}

func (s *marketStore) Find(ctx context.Context, assetID string) (*core.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	market, ok := s.markets[assetID]
	if !ok {
		return nil, core.ErrUnsupportedBorrowAsset
	}

	m := *market
	return &m, nil
}

func (s *marketStore) All(ctx context.Context) ([]*core.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	markets := make([]*core.Market, 0, len(s.markets))
	for _, market := range s.markets {
		m := *market
		markets = append(markets, &m)
	}

	return markets, nil
}

func (s *marketStore) AllAsMap(ctx context.Context) (map[string]*core.Market, error) {
	markets, e := s.All(ctx)
	if e != nil {
		return nil, e
	}

	maps := make(map[string]*core.Market)
	for _, m := range markets {
		maps[m.AssetID] = m
	}

	return maps, nil
}

func (s *marketStore) Update(ctx context.Context, market *core.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[market.AssetID]; !ok {
		return core.ErrUnsupportedBorrowAsset
	}

	market.Version++
	m := *market
	s.markets[market.AssetID] = &m
	return nil
}

func (s *marketStore) Delete(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[assetID]; !ok {
		return core.ErrUnsupportedBorrowAsset
	}

	delete(s.markets, assetID)
	return nil
}

func (s *marketStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.markets)), nil
}
