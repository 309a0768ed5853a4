package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	ClearHistory(ctx context.Context) error
	DeleteBlacklistEntry(ctx context.Context, id int64) error
	DeleteHistoryRecord(ctx context.Context, id uuid.UUID) (int64, error)
	GetHistoryRecord(ctx context.Context, id uuid.UUID) (HistoryRecord, error)
	InsertBlacklistEntry(ctx context.Context, arg InsertBlacklistEntryParams) (BlacklistEntry, error)
	InsertHistoryRecord(ctx context.Context, arg InsertHistoryRecordParams) (HistoryRecord, error)
	ListBlacklist(ctx context.Context) ([]BlacklistEntry, error)
	ListHistory(ctx context.Context) ([]HistoryRecord, error)
	TrimHistory(ctx context.Context, keep int) (int64, error)
	UpdateBlacklistPosition(ctx context.Context, arg UpdateBlacklistPositionParams) error
}

var _ Querier = (*Queries)(nil)
