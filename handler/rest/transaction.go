package rest

import (
	"net/http"
	"strconv"

	"credit/core"
	"credit/handler/render"
)

const defaultTransactionLimit = 100

func transactionsHandler(transactionStore core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if user := r.URL.Query().Get("user"); user != "" {
			transactions, e := transactionStore.FindByUser(ctx, user)
			if e != nil {
				render.BadRequest(w, e)
				return
			}

			render.JSON(w, transactions)
			return
		}

		limit := defaultTransactionLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		transactions, e := transactionStore.List(ctx, limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, transactions)
	}
}

func pricesHandler(priceStore core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, e := priceStore.All(r.Context())
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, prices)
	}
}
