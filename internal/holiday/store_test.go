package holiday

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestStoredFetcher_PersistsAndServesFromStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	remote := &stubFetcher{entries: map[int][]Entry{
		2025: {{Date: "2025-10-03", LocalName: "개천절", Name: "National Foundation Day"}},
	}}
	f := NewStoredFetcher(remote, "KR", database, testutil.NewTestUoW(database), nil)
	ctx := context.Background()

	first, err := f.PublicHolidays(ctx, 2025)
	require.NoError(t, err)
	second, err := f.PublicHolidays(ctx, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.calls[2025])

	// A fresh session reads from the database without touching the remote.
	other := NewStoredFetcher(&stubFetcher{err: errors.New("offline")}, "KR", database, testutil.NewTestUoW(database), nil)
	c := NewCache(other, nil)
	require.NoError(t, c.Ensure(ctx, 2025))
	assert.Equal(t, "개천절", c.Label("2025-10-03"))
}

func TestStoredFetcher_RemoteFailureNotStored(t *testing.T) {
	database := testutil.NewTestDB(t)
	remote := &stubFetcher{err: errors.New("offline")}
	f := NewStoredFetcher(remote, "KR", database, testutil.NewTestUoW(database), nil)

	_, err := f.PublicHolidays(context.Background(), 2025)
	assert.Error(t, err)

	remote.err = nil
	remote.entries = map[int][]Entry{2025: {{Date: "2025-12-25", Name: "Christmas Day"}}}
	got, err := f.PublicHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, remote.calls[2025])
}

func TestStoredFetcher_Refresh(t *testing.T) {
	database := testutil.NewTestDB(t)
	remote := &stubFetcher{entries: map[int][]Entry{2025: {{Date: "2025-01-01", Name: "New Year"}}}}
	f := NewStoredFetcher(remote, "KR", database, testutil.NewTestUoW(database), nil)

	_, err := f.PublicHolidays(context.Background(), 2025)
	require.NoError(t, err)

	remote.entries[2025] = append(remote.entries[2025], Entry{Date: "2025-06-06", Name: "Memorial Day"})
	got, err := f.Refresh(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	stored, err := f.PublicHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, 2, remote.calls[2025])
}

func TestCache_RefreshBypassesStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	remote := &stubFetcher{entries: map[int][]Entry{2025: {{Date: "2025-01-01", Name: "New Year"}}}}
	c := NewCache(NewStoredFetcher(remote, "KR", database, testutil.NewTestUoW(database), nil), nil)
	ctx := context.Background()
	require.NoError(t, c.Ensure(ctx, 2025))

	remote.entries[2025] = append(remote.entries[2025], Entry{Date: "2025-06-06", Name: "Memorial Day"})
	require.NoError(t, c.Refresh(ctx, 2025))
	assert.Equal(t, "Memorial Day", c.Label("2025-06-06"))
	assert.Equal(t, 2, remote.calls[2025])

	// A later session sees the refreshed copy from the database.
	later := NewCache(NewStoredFetcher(&stubFetcher{err: errors.New("offline")}, "KR", database, testutil.NewTestUoW(database), nil), nil)
	require.NoError(t, later.Ensure(ctx, 2025))
	assert.Equal(t, []string{"2025-01-01", "2025-06-06"}, later.Dates(2025))
}
