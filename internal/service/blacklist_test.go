package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
)

func TestListBlacklist_NilBecomesEmpty(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return(nil, nil)

	got, err := f.svc.ListBlacklist(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAddBlacklist_AppendsAtEnd(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0)}, nil)
	created := entry(2, "Soy", 1)
	f.store.EXPECT().InsertBlacklistEntry(mock.Anything, db.InsertBlacklistEntryParams{
		Name:      "Soy",
		NameKey:   "soy",
		Position:  1,
		CreatedAt: fixedNow,
	}).Return(created, nil)

	got, added, err := f.svc.AddBlacklist(context.Background(), "  Soy ")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, created, got)
	assert.Equal(t, []events.Kind{events.BlacklistChanged}, f.pub.Kinds())
}

func TestAddBlacklist_CaseInsensitiveDuplicateIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0)}, nil)

	_, added, err := f.svc.AddBlacklist(context.Background(), "gelatin ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, f.pub.Kinds())
}

func TestAddBlacklist_BlankIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return(nil, nil)

	_, added, err := f.svc.AddBlacklist(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, f.pub.Kinds())
}

func TestAddBlacklist_ConcurrentInsertConflict(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return(nil, nil)
	f.store.EXPECT().InsertBlacklistEntry(mock.Anything, mock.Anything).Return(db.BlacklistEntry{}, sql.ErrNoRows)

	_, added, err := f.svc.AddBlacklist(context.Background(), "Soy")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, f.pub.Kinds())
}

func TestAddBlacklist_InsertErrorPropagates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	boom := errors.New("disk full")
	f.store.EXPECT().ListBlacklist(mock.Anything).Return(nil, nil)
	f.store.EXPECT().InsertBlacklistEntry(mock.Anything, mock.Anything).Return(db.BlacklistEntry{}, boom)

	_, _, err := f.svc.AddBlacklist(context.Background(), "Soy")
	require.ErrorIs(t, err, boom)
	assert.Empty(t, f.pub.Kinds())
}

func TestAddBlacklistMany_SkipsDuplicatesWithinBatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0)}, nil)
	f.store.EXPECT().InsertBlacklistEntry(mock.Anything, mock.MatchedBy(func(p db.InsertBlacklistEntryParams) bool {
		return p.Name == "Soy" && p.Position == 1
	})).Return(entry(2, "Soy", 1), nil).Once()
	f.store.EXPECT().InsertBlacklistEntry(mock.Anything, mock.MatchedBy(func(p db.InsertBlacklistEntryParams) bool {
		return p.Name == "Milk" && p.Position == 2
	})).Return(entry(3, "Milk", 2), nil).Once()

	added, err := f.svc.AddBlacklistMany(context.Background(), []string{"Soy", "GELATIN", "soy", "Milk", " "})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "Soy", added[0].Name)
	assert.Equal(t, "Milk", added[1].Name)
	assert.Equal(t, []events.Kind{events.BlacklistChanged}, f.pub.Kinds())
}

func TestRemoveBlacklistAt_ClosesGap(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{
		entry(1, "Gelatin", 0),
		entry(2, "Peanuts", 1),
		entry(3, "Palm Oil", 2),
	}, nil)
	f.store.EXPECT().DeleteBlacklistEntry(mock.Anything, int64(2)).Return(nil)
	f.store.EXPECT().UpdateBlacklistPosition(mock.Anything, db.UpdateBlacklistPositionParams{ID: 3, Position: 1}).Return(nil)

	require.NoError(t, f.svc.RemoveBlacklistAt(context.Background(), 1))
	assert.Equal(t, []events.Kind{events.BlacklistChanged}, f.pub.Kinds())
}

func TestRemoveBlacklistAt_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, index := range []int{-1, 1, 5} {
		f := newFixture(t)
		f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0)}, nil)

		err := f.svc.RemoveBlacklistAt(context.Background(), index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
		assert.Empty(t, f.pub.Kinds())
	}
}

func TestMoveBlacklist_RewritesPositions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{
		entry(1, "Gelatin", 0),
		entry(2, "Peanuts", 1),
		entry(3, "Palm Oil", 2),
	}, nil)
	f.store.EXPECT().UpdateBlacklistPosition(mock.Anything, db.UpdateBlacklistPositionParams{ID: 2, Position: 0}).Return(nil)
	f.store.EXPECT().UpdateBlacklistPosition(mock.Anything, db.UpdateBlacklistPositionParams{ID: 3, Position: 1}).Return(nil)
	f.store.EXPECT().UpdateBlacklistPosition(mock.Anything, db.UpdateBlacklistPositionParams{ID: 1, Position: 2}).Return(nil)

	require.NoError(t, f.svc.MoveBlacklist(context.Background(), 0, 2))
	assert.Equal(t, []events.Kind{events.BlacklistChanged}, f.pub.Kinds())
}

func TestMoveBlacklist_SameIndexIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0), entry(2, "Soy", 1)}, nil)

	require.NoError(t, f.svc.MoveBlacklist(context.Background(), 1, 1))
	assert.Empty(t, f.pub.Kinds())
}

func TestMoveBlacklist_OutOfRange(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ListBlacklist(mock.Anything).Return([]db.BlacklistEntry{entry(1, "Gelatin", 0), entry(2, "Soy", 1)}, nil)

	err := f.svc.MoveBlacklist(context.Background(), 0, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMoveEntry(t *testing.T) {
	t.Parallel()

	names := func(entries []db.BlacklistEntry) []string { return entryNames(entries) }
	list := []db.BlacklistEntry{entry(1, "a", 0), entry(2, "b", 1), entry(3, "c", 2), entry(4, "d", 3)}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "first to last", from: 0, to: 3, want: []string{"b", "c", "d", "a"}},
		{name: "last to first", from: 3, to: 0, want: []string{"d", "a", "b", "c"}},
		{name: "forward by one", from: 1, to: 2, want: []string{"a", "c", "b", "d"}},
		{name: "backward by one", from: 2, to: 1, want: []string{"a", "c", "b", "d"}},
		{name: "same place", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "to is the final index", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, names(moveEntry(list, tc.from, tc.to)))
			// The input is left untouched.
			assert.Equal(t, []string{"a", "b", "c", "d"}, names(list))
		})
	}
}
