package supply

import (
	"context"
	"sort"
	"sync"

	"credit/core"
)

type key struct {
	userID  string
	assetID string
}

type supplyStore struct {
	mu       sync.RWMutex
	supplies map[key]*core.Supply
}

// New new in-memory supply store
func New() core.ISupplyStore {
	return &supplyStore{
		supplies: make(map[key]*core.Supply),
	}
}

func (s *supplyStore) Save(ctx context.Context, supply *core.Supply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID: supply.UserID, assetID: supply.AssetID}
	if old, ok := s.supplies[k]; ok {
		supply.Version = old.Version + 1
	}

	sp := *supply
	s.supplies[k] = &sp
	return nil
}

func (s *supplyStore) Find(ctx context.Context, userID, assetID string) (*core.Supply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supply, ok := s.supplies[key{userID: userID, assetID: assetID}]
	if !ok {
		return nil, core.ErrInsufficientBorrowShares
	}

	sp := *supply
	return &sp, nil
}

func (s *supplyStore) FindByUser(ctx context.Context, userID string) ([]*core.Supply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplies := make([]*core.Supply, 0)
	for k, supply := range s.supplies {
		if k.userID != userID {
			continue
		}
		sp := *supply
		supplies = append(supplies, &sp)
	}

	sortSupplies(supplies)
	return supplies, nil
}

func (s *supplyStore) FindByAsset(ctx context.Context, assetID string) ([]*core.Supply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplies := make([]*core.Supply, 0)
	for k, supply := range s.supplies {
		if k.assetID != assetID {
			continue
		}
		sp := *supply
		supplies = append(supplies, &sp)
	}

	sortSupplies(supplies)
	return supplies, nil
}

func (s *supplyStore) CountOfSuppliers(ctx context.Context, assetID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for k := range s.supplies {
		if k.assetID == assetID {
			count++
		}
	}

	return count, nil
}

func (s *supplyStore) All(ctx context.Context) ([]*core.Supply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplies := make([]*core.Supply, 0, len(s.supplies))
	for _, supply := range s.supplies {
		sp := *supply
		supplies = append(supplies, &sp)
	}

	sortSupplies(supplies)
	return supplies, nil
}

func (s *supplyStore) Delete(ctx context.Context, userID, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.supplies, key{userID: userID, assetID: assetID})
	return nil
}

func sortSupplies(supplies []*core.Supply) {
	sort.Slice(supplies, func(i, j int) bool {
		if supplies[i].UserID != supplies[j].UserID {
			return supplies[i].UserID < supplies[j].UserID
		}
		return supplies[i].AssetID < supplies[j].AssetID
	})
}
