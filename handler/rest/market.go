package rest

import (
	"net/http"

	"credit/core"
	"credit/handler/render"
	"credit/handler/views"

	"github.com/shopspring/decimal"
)

func allMarketsHandler(marketStore core.IMarketStore, borrowStore core.IBorrowStore, supplyStore core.ISupplyStore, ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		markets, e := marketStore.All(ctx)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		marketViews := make([]*views.Market, 0, len(markets))
		for _, m := range markets {
			view := &views.Market{Market: *m}

			if index, e := ledger.CurrentIndex(ctx, m.AssetID); e == nil {
				view.CurrentIndex = index
			}
			if owed, e := ledger.TotalOwed(ctx, m.AssetID); e == nil {
				view.TotalOwed = owed
			}
			if liquidity, e := ledger.FreeLiquidity(ctx, m.AssetID); e == nil {
				view.FreeLiquidity = liquidity
			} else {
				view.FreeLiquidity = decimal.Zero
			}
			if borrowers, e := borrowStore.CountOfBorrowers(ctx, m.AssetID); e == nil {
				view.Borrowers = borrowers
			}
			if suppliers, e := supplyStore.CountOfSuppliers(ctx, m.AssetID); e == nil {
				view.Suppliers = suppliers
			}

			marketViews = append(marketViews, view)
		}

		render.JSON(w, marketViews)
	}
}

func allCollateralsHandler(collateralStore core.ICollateralStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaterals, e := collateralStore.All(r.Context())
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, collaterals)
	}
}
