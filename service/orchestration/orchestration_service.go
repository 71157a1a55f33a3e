package orchestration

import (
	"context"
	"sync"

	"credit/core"

	"github.com/fox-one/pkg/logger"
)

type orchestrationService struct {
	mu      sync.Mutex
	pending map[string]int
}

// New new orchestration hook. Tracks pending withdrawal requests per
// account so a liquidation can cancel them; cancelling when nothing is
// pending is a no-op.
func New() core.IOrchestrator {
	return &orchestrationService{
		pending: make(map[string]int),
	}
}

// QueueWithdrawal records a pending withdrawal request for userID.
func QueueWithdrawal(orchestrator core.IOrchestrator, userID string) {
	if s, ok := orchestrator.(*orchestrationService); ok {
		s.mu.Lock()
		s.pending[userID]++
		s.mu.Unlock()
	}
}

func (s *orchestrationService) CancelPendingWithdrawals(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.pending[userID]
	if !ok {
		return nil
	}

	delete(s.pending, userID)
	logger.FromContext(ctx).WithField("user", userID).Infof("cancelled %d pending withdrawals", count)
	return nil
}
