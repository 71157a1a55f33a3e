package rest

import (
	"errors"
	"net/http"

	"credit/core"
	"credit/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	marketStore core.IMarketStore,
	collateralStore core.ICollateralStore,
	borrowStore core.IBorrowStore,
	supplyStore core.ISupplyStore,
	transactionStore core.ITransactionStore,
	priceStore core.IPriceStore,
	ledger core.ILedger,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/markets/all", allMarketsHandler(marketStore, borrowStore, supplyStore, ledger))
	router.Get("/collaterals/all", allCollateralsHandler(collateralStore))
	router.Get("/accounts/{user}", accountHandler(borrowStore, supplyStore, ledger))
	router.Get("/transactions", transactionsHandler(transactionStore))
	router.Get("/prices", pricesHandler(priceStore))

	return router
}
