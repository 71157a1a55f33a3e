package collateral

import (
	"context"
	"sync"

	"credit/core"
)

type collateralStore struct {
	mu          sync.RWMutex
	collaterals map[string]*core.Collateral
}

// New new in-memory collateral store
func New() core.ICollateralStore {
	return &collateralStore{
		collaterals: make(map[string]*core.Collateral),
	}
}

func (s *collateralStore) Save(ctx context.Context, collateral *core.Collateral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collaterals[collateral.AssetID]; ok {
		return core.ErrAlreadyConfigured
	}

	c := *collateral
	s.collaterals[collateral.AssetID] = &c
	return nil
}

func (s *collateralStore) Find(ctx context.Context, assetID string) (*core.Collateral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collateral, ok := s.collaterals[assetID]
	if !ok {
		return nil, core.ErrNotACollateralToken
	}

	c := *collateral
	return &c, nil
}

func (s *collateralStore) All(ctx context.Context) ([]*core.Collateral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collaterals := make([]*core.Collateral, 0, len(s.collaterals))
	for _, collateral := range s.collaterals {
		c := *collateral
		collaterals = append(collaterals, &c)
	}

	return collaterals, nil
}

func (s *collateralStore) Update(ctx context.Context, collateral *core.Collateral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collaterals[collateral.AssetID]; !ok {
		return core.ErrNotACollateralToken
	}

	collateral.Version++
	c := *collateral
	s.collaterals[collateral.AssetID] = &c
	return nil
}

func (s *collateralStore) Delete(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collaterals[assetID]; !ok {
		return core.ErrNotACollateralToken
	}

	delete(s.collaterals, assetID)
	return nil
}
