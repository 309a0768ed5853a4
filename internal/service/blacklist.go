package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
)

// ListBlacklist returns the blacklist in user order.
func (s *Service) ListBlacklist(ctx context.Context) ([]db.BlacklistEntry, error) {
	entries, err := s.store.ListBlacklist(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blacklist: %w", err)
	}
	if entries == nil {
		entries = []db.BlacklistEntry{}
	}
	return entries, nil
}

// BlacklistNames returns just the names of the blacklist, in user order.
func (s *Service) BlacklistNames(ctx context.Context) ([]string, error) {
	entries, err := s.ListBlacklist(ctx)
	if err != nil {
		return nil, err
	}
	return entryNames(entries), nil
}

func entryNames(entries []db.BlacklistEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// AddBlacklist appends name (trimmed) to the end of the blacklist. Blank names
// and names already present under case-insensitive comparison are ignored;
// added reports whether a new entry was stored.
func (s *Service) AddBlacklist(ctx context.Context, name string) (db.BlacklistEntry, bool, error) {
	added, err := s.AddBlacklistMany(ctx, []string{name})
	if err != nil {
		return db.BlacklistEntry{}, false, err
	}
	if len(added) == 0 {
		return db.BlacklistEntry{}, false, nil
	}
	return added[0], true, nil
}

// AddBlacklistMany adds every name in order with the same rules as
// AddBlacklist, in one transaction, and returns the entries actually added.
func (s *Service) AddBlacklistMany(ctx context.Context, names []string) ([]db.BlacklistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := []db.BlacklistEntry{}
	err := s.store.InTx(ctx, func(q db.Querier) error {
		entries, err := q.ListBlacklist(ctx)
		if err != nil {
			return fmt.Errorf("list blacklist: %w", err)
		}
		seen := make(map[string]struct{}, len(entries)+len(names))
		for _, e := range entries {
			seen[Normalize(e.Name)] = struct{}{}
		}
		next := len(entries)

		for _, raw := range names {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			key := Normalize(name)
			if _, ok := seen[key]; ok {
				continue
			}
			entry, err := q.InsertBlacklistEntry(ctx, db.InsertBlacklistEntryParams{
				Name:      name,
				NameKey:   key,
				Position:  next,
				CreatedAt: s.now().UTC(),
			})
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// Same key stored by another process since we listed.
					seen[key] = struct{}{}
					continue
				}
				return fmt.Errorf("insert blacklist entry %q: %w", name, err)
			}
			seen[key] = struct{}{}
			added = append(added, entry)
			next++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		s.publisher.Publish(events.BlacklistChanged)
	}
	return added, nil
}

// RemoveBlacklistAt deletes the entry at index and closes the gap.
func (s *Service) RemoveBlacklistAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.InTx(ctx, func(q db.Querier) error {
		entries, err := q.ListBlacklist(ctx)
		if err != nil {
			return fmt.Errorf("list blacklist: %w", err)
		}
		if index < 0 || index >= len(entries) {
			return fmt.Errorf("remove blacklist entry %d of %d: %w", index, len(entries), ErrIndexOutOfRange)
		}
		if err := q.DeleteBlacklistEntry(ctx, entries[index].ID); err != nil {
			return fmt.Errorf("delete blacklist entry: %w", err)
		}
		remaining := append(entries[:index:index], entries[index+1:]...)
		return renumber(ctx, q, remaining)
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(events.BlacklistChanged)
	return nil
}

// MoveBlacklist moves the entry at from so that it ends up at index to,
// shifting the entries in between. to is the final index, not an insertion
// point counted before removal: moving 0 to 2 in [a b c] gives [b c a].
func (s *Service) MoveBlacklist(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := false
	err := s.store.InTx(ctx, func(q db.Querier) error {
		entries, err := q.ListBlacklist(ctx)
		if err != nil {
			return fmt.Errorf("list blacklist: %w", err)
		}
		n := len(entries)
		if from < 0 || from >= n || to < 0 || to >= n {
			return fmt.Errorf("move blacklist entry %d to %d of %d: %w", from, to, n, ErrIndexOutOfRange)
		}
		if from == to {
			return nil
		}
		moved = true
		return renumber(ctx, q, moveEntry(entries, from, to))
	})
	if err != nil {
		return err
	}
	if moved {
		s.publisher.Publish(events.BlacklistChanged)
	}
	return nil
}

// moveEntry returns a new slice with entries[from] relocated to index to.
func moveEntry(entries []db.BlacklistEntry, from, to int) []db.BlacklistEntry {
	out := make([]db.BlacklistEntry, 0, len(entries))
	item := entries[from]
	for i, e := range entries {
		if i == from {
			continue
		}
		out = append(out, e)
	}
	out = append(out, db.BlacklistEntry{})
	copy(out[to+1:], out[to:])
	out[to] = item
	return out
}

// renumber writes dense positions 0..n-1, skipping rows already in place.
func renumber(ctx context.Context, q db.Querier, entries []db.BlacklistEntry) error {
	for i, e := range entries {
		if e.Position == i {
			continue
		}
		if err := q.UpdateBlacklistPosition(ctx, db.UpdateBlacklistPositionParams{ID: e.ID, Position: i}); err != nil {
			return fmt.Errorf("update position of %q: %w", e.Name, err)
		}
	}
	return nil
}
