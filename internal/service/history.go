package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

const (
	// HistoryLimit is the number of most recent records kept.
	HistoryLimit = 100

	// UnknownProductName stands in for products without a name.
	UnknownProductName = "Unknown"
)

// RecordScan stores a new history record for a completed lookup at the front
// of the history and evicts the oldest records beyond HistoryLimit.
func (s *Service) RecordScan(ctx context.Context, barcode string, productName *string, matches []openfoodfacts.Ingredient) (db.HistoryRecord, error) {
	name := UnknownProductName
	if productName != nil && strings.TrimSpace(*productName) != "" {
		name = *productName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var record db.HistoryRecord
	err := s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		record, err = q.InsertHistoryRecord(ctx, db.InsertHistoryRecordParams{
			ID:                     s.newID(),
			Barcode:                barcode,
			ProductName:            name,
			HadBlacklisted:         len(matches) > 0,
			BlacklistedIngredients: MatchedNames(matches),
			ScannedAt:              s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert history record: %w", err)
		}
		if _, err := q.TrimHistory(ctx, HistoryLimit); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		return nil
	})
	if err != nil {
		return db.HistoryRecord{}, err
	}
	s.publisher.Publish(events.HistoryChanged)
	return record, nil
}

// ListHistory returns the history newest first.
func (s *Service) ListHistory(ctx context.Context) ([]db.HistoryRecord, error) {
	records, err := s.store.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if records == nil {
		records = []db.HistoryRecord{}
	}
	return records, nil
}

// RemoveHistory deletes the record with id.
func (s *Service) RemoveHistory(ctx context.Context, id uuid.UUID) error {
	n, err := s.store.DeleteHistoryRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("history record %s: %w", id, ErrNotFound)
	}
	s.publisher.Publish(events.HistoryChanged)
	return nil
}

// RemoveHistoryAt deletes the record at index of the newest-first listing.
// The lookup and the delete share a transaction so a concurrent scan cannot
// shift the index in between.
func (s *Service) RemoveHistoryAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.InTx(ctx, func(q db.Querier) error {
		records, err := q.ListHistory(ctx)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if index < 0 || index >= len(records) {
			return fmt.Errorf("remove history record %d of %d: %w", index, len(records), ErrIndexOutOfRange)
		}
		id := records[index].ID
		n, err := q.DeleteHistoryRecord(ctx, id)
		if err != nil {
			return fmt.Errorf("delete history record: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("history record %s: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(events.HistoryChanged)
	return nil
}

// ClearHistory deletes every record.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.store.ClearHistory(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.publisher.Publish(events.HistoryChanged)
	return nil
}
