package cmd

import (
	"credit/core"
	"credit/worker"
	"credit/worker/interest"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "credit job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)
		ctx = signal.WithContext(ctx)

		system := provideSystem()
		clock := core.NewWallClock()

		marketStore := provideMarketStore()
		collateralStore := provideCollateralStore()
		borrowStore := provideBorrowStore()
		supplyStore := provideSupplyStore()
		transactionStore := provideTransactionStore()
		priceStore := providePriceStore()

		seedGenesis(ctx, marketStore, collateralStore, priceStore, clock)

		ledger := provideLedger(system, marketStore, collateralStore, borrowStore, supplyStore, transactionStore, priceStore, clock)

		jobs := []worker.IJob{
			interest.New(marketStore, ledger),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				if err := job.Start(); err != nil {
					return err
				}

				<-ctx.Done()
				return job.Stop()
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("worker aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
