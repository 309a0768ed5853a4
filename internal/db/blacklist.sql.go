package db

import (
	"context"
	"time"
)

const deleteBlacklistEntry = `
DELETE FROM blacklist WHERE id = ?
`

func (q *Queries) DeleteBlacklistEntry(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, q.rebind(deleteBlacklistEntry), id)
	return err
}

const insertBlacklistEntry = `
INSERT INTO blacklist (name, name_key, position, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (name_key) DO NOTHING
RETURNING id, name, name_key, position, created_at
`

type InsertBlacklistEntryParams struct {
	Name      string
	NameKey   string
	Position  int
	CreatedAt time.Time
}

// InsertBlacklistEntry returns sql.ErrNoRows when an entry with the same
// NameKey already exists.
func (q *Queries) InsertBlacklistEntry(ctx context.Context, arg InsertBlacklistEntryParams) (BlacklistEntry, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(insertBlacklistEntry),
		arg.Name,
		arg.NameKey,
		arg.Position,
		arg.CreatedAt,
	)
	var i BlacklistEntry
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.NameKey,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const listBlacklist = `
SELECT id, name, name_key, position, created_at
FROM blacklist
ORDER BY position, id
`

func (q *Queries) ListBlacklist(ctx context.Context) ([]BlacklistEntry, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listBlacklist))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlacklistEntry
	for rows.Next() {
		var i BlacklistEntry
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.NameKey,
			&i.Position,
			&i.CreatedAt,
		); err != nil {
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

const updateBlacklistPosition = `
UPDATE blacklist SET position = ? WHERE id = ?
`

type UpdateBlacklistPositionParams struct {
	ID       int64
	Position int
}

func (q *Queries) UpdateBlacklistPosition(ctx context.Context, arg UpdateBlacklistPositionParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(updateBlacklistPosition), arg.Position, arg.ID)
	return err
}
