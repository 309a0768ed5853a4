package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const historyColumns = `seq, id, barcode, product_name, had_blacklisted, blacklisted_ingredients, scanned_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanHistoryRecord decodes one history row. Rows written before the
// blacklisted_ingredients column existed hold NULL and decode to an empty list.
func scanHistoryRecord(row rowScanner) (HistoryRecord, error) {
	var (
		i       HistoryRecord
		matched sql.NullString
	)
	if err := row.Scan(
		&i.Seq,
		&i.ID,
		&i.Barcode,
		&i.ProductName,
		&i.HadBlacklisted,
		&matched,
		&i.ScannedAt,
	); err != nil {
		return HistoryRecord{}, err
	}
	i.BlacklistedIngredients = []string{}
	if matched.Valid && matched.String != "" {
		if err := json.Unmarshal([]byte(matched.String), &i.BlacklistedIngredients); err != nil {
			return HistoryRecord{}, fmt.Errorf("decode blacklisted_ingredients for %s: %w", i.ID, err)
		}
		if i.BlacklistedIngredients == nil {
			i.BlacklistedIngredients = []string{}
		}
	}
	return i, nil
}

const clearHistory = `
DELETE FROM history
`

func (q *Queries) ClearHistory(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, q.rebind(clearHistory))
	return err
}

const deleteHistoryRecord = `
DELETE FROM history WHERE id = ?
`

func (q *Queries) DeleteHistoryRecord(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, q.rebind(deleteHistoryRecord), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getHistoryRecord = `
SELECT ` + historyColumns + `
FROM history
WHERE id = ?
`

func (q *Queries) GetHistoryRecord(ctx context.Context, id uuid.UUID) (HistoryRecord, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(getHistoryRecord), id)
	return scanHistoryRecord(row)
}

const insertHistoryRecord = `
INSERT INTO history (id, barcode, product_name, had_blacklisted, blacklisted_ingredients, scanned_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING ` + historyColumns

type InsertHistoryRecordParams struct {
	ID                     uuid.UUID
	Barcode                string
	ProductName            string
	HadBlacklisted         bool
	BlacklistedIngredients []string
	ScannedAt              time.Time
}

func (q *Queries) InsertHistoryRecord(ctx context.Context, arg InsertHistoryRecordParams) (HistoryRecord, error) {
	matched := arg.BlacklistedIngredients
	if matched == nil {
		matched = []string{}
	}
	encoded, err := json.Marshal(matched)
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("encode blacklisted_ingredients: %w", err)
	}
	row := q.db.QueryRowContext(ctx, q.rebind(insertHistoryRecord),
		arg.ID,
		arg.Barcode,
		arg.ProductName,
		arg.HadBlacklisted,
		string(encoded),
		arg.ScannedAt,
	)
	return scanHistoryRecord(row)
}

const listHistory = `
SELECT ` + historyColumns + `
FROM history
ORDER BY seq DESC
`

func (q *Queries) ListHistory(ctx context.Context) ([]HistoryRecord, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listHistory))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HistoryRecord
	for rows.Next() {
		i, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const trimHistory = `
DELETE FROM history
WHERE seq NOT IN (
    SELECT seq FROM history ORDER BY seq DESC LIMIT ?
)
`

// TrimHistory deletes everything but the keep newest records and reports how
// many rows were evicted.
func (q *Queries) TrimHistory(ctx context.Context, keep int) (int64, error) {
	result, err := q.db.ExecContext(ctx, q.rebind(trimHistory), keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
