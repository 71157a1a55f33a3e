package borrow

import (
	"context"
	"testing"

	"credit/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowStore(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Find(ctx, "alice", "usdt")
	assert.Equal(t, core.ErrBorrowNotFound, err)

	for _, b := range []*core.Borrow{
		{UserID: "alice", AssetID: "usdt", Principal: decimal.New(10, 0)},
		{UserID: "alice", AssetID: "eth", Principal: decimal.New(1, 0)},
		{UserID: "bob", AssetID: "usdt", Principal: decimal.New(5, 0)},
	} {
		require.NoError(t, store.Save(ctx, b))
	}

	borrow, err := store.Find(ctx, "alice", "usdt")
	require.NoError(t, err)
	assert.Equal(t, "10", borrow.Principal.String())

	// stored copies are isolated from the caller's pointer
	borrow.Principal = decimal.New(99, 0)
	again, err := store.Find(ctx, "alice", "usdt")
	require.NoError(t, err)
	assert.Equal(t, "10", again.Principal.String())

	byUser, err := store.FindByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "eth", byUser[0].AssetID)
	assert.Equal(t, "usdt", byUser[1].AssetID)

	count, err := store.CountOfBorrowers(ctx, "usdt")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	users, err := store.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)

	// save bumps the version
	require.NoError(t, store.Save(ctx, &core.Borrow{UserID: "bob", AssetID: "usdt", Principal: decimal.New(6, 0)}))
	borrow, err = store.Find(ctx, "bob", "usdt")
	require.NoError(t, err)
	assert.Equal(t, int64(1), borrow.Version)

	require.NoError(t, store.Delete(ctx, "bob", "usdt"))
	_, err = store.Find(ctx, "bob", "usdt")
	assert.Equal(t, core.ErrBorrowNotFound, err)
}
