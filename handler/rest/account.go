package rest

import (
	"errors"
	"net/http"

	"credit/core"
	"credit/handler/render"
	"credit/handler/views"

	"github.com/go-chi/chi"
)

func accountHandler(borrowStore core.IBorrowStore, supplyStore core.ISupplyStore, ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := chi.URLParam(r, "user")
		if userID == "" {
			render.BadRequest(w, errors.New("user required"))
			return
		}

		borrows, e := borrowStore.FindByUser(ctx, userID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		supplies, e := supplyStore.FindByUser(ctx, userID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		account := &views.Account{
			UserID:   userID,
			Borrows:  make([]*views.BorrowPosition, 0, len(borrows)),
			Supplies: make([]*views.SupplyPosition, 0, len(supplies)),
		}

		for _, borrow := range borrows {
			position := &views.BorrowPosition{Borrow: *borrow}
			if owed, e := ledger.ActualOwed(ctx, userID, borrow.AssetID); e == nil {
				position.ActualOwed = owed
			}
			account.Borrows = append(account.Borrows, position)
		}

		for _, supply := range supplies {
			position := &views.SupplyPosition{Supply: *supply}
			if amount, e := ledger.SuppliedAmount(ctx, userID, supply.AssetID); e == nil {
				position.Amount = amount
			}
			account.Supplies = append(account.Supplies, position)
		}

		liquidatable, e := ledger.Liquidatable(ctx, userID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}
		account.Liquidatable = liquidatable

		render.JSON(w, account)
	}
}
