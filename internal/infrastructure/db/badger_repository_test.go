package db

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/fixtures"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	dir, err := os.MkdirTemp("", "badger-test")
	require.NoError(t, err)

	db, err := OpenBadger(dir)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(dir)
	})
	return db
}

func TestBadgerCurrencyRepository(t *testing.T) {
	repo := NewBadgerCurrencyRepository(openTestDB(t))
	ctx := context.Background()

	t.Run("Store and find", func(t *testing.T) {
		c := entity.NewCurrency(1, "Euro", "EUR")

		require.NoError(t, repo.Store(ctx, &c))

		found, err := repo.FindByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, c, *found)
	})

	t.Run("Not found", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 42)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("List in ID order", func(t *testing.T) {
		for _, c := range []entity.Currency{
			entity.NewCurrency(12, "Yen", "JPY"),
			entity.NewCurrency(2, "Dollar US", "USD"),
		} {
			c := c
			require.NoError(t, repo.Store(ctx, &c))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []int{1, 2, 12}, []int{list[0].ID, list[1].ID, list[2].ID})
	})
}

func TestBadgerRateRepository(t *testing.T) {
	repo := NewBadgerRateRepository(openTestDB(t))
	ctx := context.Background()

	t.Run("Resolved currencies are not stored", func(t *testing.T) {
		r := entity.NewRate(1, 1, 2, 1.10).
			WithBaseCurrency(entity.NewCurrency(1, "Euro", "EUR")).
			WithQuoteCurrency(entity.NewCurrency(2, "Dollar US", "USD"))

		require.NoError(t, repo.Store(ctx, &r))

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.NewRate(1, 1, 2, 1.10), *found)
		assert.False(t, found.BaseCurrency.IsSet())
	})

	t.Run("Not found", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		for _, r := range fixtures.Rates() {
			r := r
			require.NoError(t, repo.Store(ctx, &r))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, fixtures.Rates(), list)
	})
}

func TestSeedBadger(t *testing.T) {
	db := openTestDB(t)
	currencyRepo := NewBadgerCurrencyRepository(db)
	rateRepo := NewBadgerRateRepository(db)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, currencyRepo, rateRepo, fixtures.Currencies(), fixtures.Rates()))

	currencies, err := currencyRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Currencies(), currencies)

	rates, err := rateRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Rates(), rates)
}

func TestBadgerListOrdersSignedIDs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	t.Run("Currencies", func(t *testing.T) {
		repo := NewBadgerCurrencyRepository(db)
		for _, id := range []int{3, -1, 1 << 40, -2, 0} {
			c := entity.NewCurrency(id, "c", "CCC")
			require.NoError(t, repo.Store(ctx, &c))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)

		ids := make([]int, 0, len(list))
		for _, c := range list {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []int{-2, -1, 0, 3, 1 << 40}, ids)

		found, err := repo.FindByID(ctx, -2)
		require.NoError(t, err)
		assert.Equal(t, -2, found.ID)
	})

	t.Run("Rates", func(t *testing.T) {
		repo := NewBadgerRateRepository(db)
		for _, id := range []int{5, -10, -3} {
			r := entity.NewRate(id, 1, 2, 1.0)
			require.NoError(t, repo.Store(ctx, &r))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []int{-10, -3, 5}, []int{list[0].ID, list[1].ID, list[2].ID})
	})
}

func TestRecordKeyOrder(t *testing.T) {
	ids := []int{-1 << 40, -2, -1, 0, 1, 2, 1 << 40}
	for i := 1; i < len(ids); i++ {
		prev := recordKey(ratePrefix, ids[i-1])
		next := recordKey(ratePrefix, ids[i])
		assert.Negative(t, bytes.Compare(prev, next), "%d should sort before %d", ids[i-1], ids[i])
	}
}
