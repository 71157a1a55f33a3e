package transaction

import (
	"context"
	"sync"

	"credit/core"
)

type transactionStore struct {
	mu           sync.RWMutex
	transactions []*core.Transaction
}

// New new in-memory transaction journal
func New() core.ITransactionStore {
	return &transactionStore{}
}

func (s *transactionStore) Create(ctx context.Context, transaction *core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := *transaction
	s.transactions = append(s.transactions, &t)
	return nil
}

func (s *transactionStore) List(ctx context.Context, limit int) ([]*core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.transactions) {
		limit = len(s.transactions)
	}

	// newest first
	transactions := make([]*core.Transaction, 0, limit)
	for i := len(s.transactions) - 1; i >= len(s.transactions)-limit; i-- {
		t := *s.transactions[i]
		transactions = append(transactions, &t)
	}

	return transactions, nil
}

func (s *transactionStore) FindByUser(ctx context.Context, userID string) ([]*core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]*core.Transaction, 0)
	for _, transaction := range s.transactions {
		if transaction.UserID != userID {
			continue
		}
		t := *transaction
		transactions = append(transactions, &t)
	}

	return transactions, nil
}
