package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/settings"
	"github.com/alexanderramin/histcal/internal/testutil"
)

// 2025-01-08 is a Wednesday.
var testNow = time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func testToday() domain.Date { return domain.DateOf(testNow) }

func newSource(events ...domain.Event) *testutil.FakeSource {
	return &testutil.FakeSource{
		Options: testutil.TestFilterOptions(),
		Events:  events,
		Projects: domain.ProjectPage{
			Items: []domain.ProjectOption{
				{PipelineID: "P-9", ProjectName: "Nine"},
				{PipelineID: "P-10", ProjectName: "Ten"},
			},
			TotalPages: 3,
		},
		Summary: domain.ActivitySummary{"2025-01-08": {"MEETING": 2}},
	}
}

func newController(t *testing.T, src *testutil.FakeSource, store *settings.MemoryStore, cfg Config) *Controller {
	t.Helper()
	if store == nil {
		store = &settings.MemoryStore{}
	}
	c := New(Deps{Source: src, Store: store, Now: fixedNow}, cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func startedController(t *testing.T, src *testutil.FakeSource) *Controller {
	t.Helper()
	c := newController(t, src, nil, Config{})
	require.NoError(t, c.Start(context.Background()))
	return c
}

func seedSnapshot(t *testing.T, store *settings.MemoryStore, snap settings.Snapshot) {
	t.Helper()
	raw, err := snap.Encode()
	require.NoError(t, err)
	store.Raw = raw
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}
