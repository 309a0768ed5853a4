//go:build integration

package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/testutil"
)

func TestIntegrationInsertBlacklistEntry_DuplicateKey(t *testing.T) {
	q := db.New(testutil.SetupDB(t), db.SQLite)
	ctx := context.Background()

	_, err := q.InsertBlacklistEntry(ctx, db.InsertBlacklistEntryParams{
		Name:      "GELATIN",
		NameKey:   "gelatin",
		Position:  3,
		CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	entries, err := q.ListBlacklist(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestIntegrationHistory_RoundTrip(t *testing.T) {
	q := db.New(testutil.SetupDB(t), db.SQLite)
	ctx := context.Background()

	scannedAt := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	id := uuid.New()
	inserted, err := q.InsertHistoryRecord(ctx, db.InsertHistoryRecordParams{
		ID:                     id,
		Barcode:                "737628064502",
		ProductName:            "Rice noodles",
		HadBlacklisted:         true,
		BlacklistedIngredients: []string{"Peanuts", "Palm Oil"},
		ScannedAt:              scannedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, id, inserted.ID)
	assert.Positive(t, inserted.Seq)

	got, err := q.GetHistoryRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Peanuts", "Palm Oil"}, got.BlacklistedIngredients)
	assert.True(t, got.ScannedAt.Equal(scannedAt))

	_, err = q.GetHistoryRecord(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestIntegrationTrimHistory(t *testing.T) {
	q := db.New(testutil.SetupDB(t), db.SQLite)
	ctx := context.Background()

	for _, code := range []string{"1", "2", "3", "4"} {
		_, err := q.InsertHistoryRecord(ctx, db.InsertHistoryRecordParams{
			ID:          uuid.New(),
			Barcode:     code,
			ProductName: "P" + code,
			ScannedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	n, err := q.TrimHistory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := q.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "4", records[0].Barcode)
	assert.Equal(t, "3", records[1].Barcode)
	assert.Equal(t, []string{}, records[1].BlacklistedIngredients)
}

func TestIntegrationStore_InTxRollsBack(t *testing.T) {
	store := testutil.SetupStore(t)
	ctx := context.Background()

	err := store.InTx(ctx, func(q db.Querier) error {
		if err := q.ClearHistory(ctx); err != nil {
			return err
		}
		_, err := q.InsertHistoryRecord(ctx, db.InsertHistoryRecordParams{
			ID:          uuid.New(),
			Barcode:     "9",
			ProductName: "Rolled back",
			ScannedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	records, err := store.ListHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
