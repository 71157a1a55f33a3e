package borrow

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

type borrowStore struct {
	mu      sync.RWMutex
	borrows map[key]*core.Borrow
}

// New new in-memory borrow store
func New() core.IBorrowStore {
	return &borrowStore{
		borrows: make(map[key]*core.Borrow),
	}
}

func (s *borrowStore) Save(ctx context.Context, borrow *core.Borrow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID: borrow.UserID, assetID: borrow.AssetID}
	if old, ok := s.borrows[k]; ok {
		borrow.Version = old.Version + 1
	}

	b := *borrow
	s.borrows[k] = &b
	return nil
}

func (s *borrowStore) Find(ctx context.Context, userID, assetID string) (*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	borrow, ok := s.borrows[key{userID: userID, assetID: assetID}]
	if !ok {
		return nil, core.ErrBorrowNotFound
	}

	b := *borrow
	return &b, nil
}

func (s *borrowStore) FindByUser(ctx context.Context, userID string) ([]*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	borrows := make([]*core.Borrow, 0)
	for k, borrow := range s.borrows {
		if k.userID != userID {
			continue
		}
		b := *borrow
		borrows = append(borrows, &b)
	}

	sortBorrows(borrows)
	return borrows, nil
}

func (s *borrowStore) FindByAsset(ctx context.Context, assetID string) ([]*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	borrows := make([]*core.Borrow, 0)
	for k, borrow := range s.borrows {
		if k.assetID != assetID {
			continue
		}
		b := *borrow
		borrows = append(borrows, &b)
	}

	sortBorrows(borrows)
	return borrows, nil
}

func (s *borrowStore) CountOfBorrowers(ctx context.Context, assetID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for k := range s.borrows {
		if k.assetID == assetID {
			count++
		}
	}

	return count, nil
}

func (s *borrowStore) All(ctx context.Context) ([]*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	borrows := make([]*core.Borrow, 0, len(s.borrows))
	for _, borrow := range s.borrows {
		b := *borrow
		borrows = append(borrows, &b)
	}

	sortBorrows(borrows)
	return borrows, nil
}

func (s *borrowStore) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	users := make([]string, 0)
	for k := range s.borrows {
		if seen[k.userID] {
			continue
		}
		seen[k.userID] = true
		users = append(users, k.userID)
	}

	sort.Strings(users)
	return users, nil
}

func (s *borrowStore) Delete(ctx context.Context, userID, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.borrows, key{userID: userID, assetID: assetID})
	return nil
}

func sortBorrows(borrows []*core.Borrow) {
	sort.Slice(borrows, func(i, j int) bool {
		if borrows[i].UserID != borrows[j].UserID {
			return borrows[i].UserID < borrows[j].UserID
		}
		return borrows[i].AssetID < borrows[j].AssetID
	})
}
