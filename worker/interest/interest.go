package interest

import (
	"context"

	"credit/core"
	"credit/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker periodically snapshots every market's interest index. Views
// extrapolate from the snapshot anyway, so this only keeps the queryable
// state fresh for off-chain monitors.
type Worker struct {
	worker.BaseJob
	MarketStore core.IMarketStore
	Ledger      core.ILedger
}

// New new interest worker
func New(marketStore core.IMarketStore, ledger core.ILedger) *Worker {
	job := Worker{
		MarketStore: marketStore,
		Ledger:      ledger,
	}

	job.Cron = cron.New()
	job.Cron.AddFunc("@every 10s", job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "interest")

	markets, e := w.MarketStore.All(ctx)
	if e != nil {
		log.Errorln(e)
		return e
	}

	for _, market := range markets {
		if e := w.Ledger.MaterializeIndex(ctx, market.AssetID); e != nil {
			log.WithField("asset", market.AssetID).Errorln("materialize:", e)
		}
	}

	return nil
}
