package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
)

func sampleEvents() []domain.Event {
	return []domain.Event{
		ev("1", "2025-01-08", "2025-01-01T10:00:00"),
		ev("2", "2025-01-08", "2025-01-01T12:00:00"),
		ev("3", "2025-01-10", "2025-01-02T10:00:00"),
		ev("4", "", "2025-01-02T10:00:00"),
		ev("5", "2025-01-15", ""),
	}
}

func TestBuildIndex_KeysAreDistinctBaseDates(t *testing.T) {
	idx := BuildIndex(sampleEvents(), domain.SortChronological)

	assert.Equal(t, []string{"2025-01-08", "2025-01-10", "2025-01-15"}, idx.Keys())
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 2, idx.Count("2025-01-08"))
	assert.False(t, idx.Has("2025-01-09"))
	assert.Equal(t, []string{"1", "2"}, ids(idx.Events("2025-01-08")))
	for _, key := range idx.Keys() {
		assert.NotEmpty(t, idx.Events(key))
	}
}

func TestIndexResort_RoundTrip(t *testing.T) {
	idx := BuildIndex(sampleEvents(), domain.SortChronological)
	before := ids(idx.Events("2025-01-08"))

	idx.Resort(domain.SortRecent)
	assert.Equal(t, []string{"2", "1"}, ids(idx.Events("2025-01-08")))
	assert.Equal(t, domain.SortRecent, idx.Order())

	idx.Resort(domain.SortChronological)
	assert.Equal(t, before, ids(idx.Events("2025-01-08")))
}

func TestIndexAll_FollowsOrder(t *testing.T) {
	idx := BuildIndex(sampleEvents(), domain.SortRecent)
	assert.Equal(t, []string{"5", "3", "2", "1"}, ids(idx.All()))
}

func TestIndexAdjacent(t *testing.T) {
	idx := BuildIndex(sampleEvents(), domain.SortChronological)

	next, ok := idx.Adjacent("2025-01-08", 1)
	require.True(t, ok)
	assert.Equal(t, "2025-01-10", next)

	prev, ok := idx.Adjacent("2025-01-12", -1)
	require.True(t, ok)
	assert.Equal(t, "2025-01-10", prev)

	next, ok = idx.Adjacent("2025-01-12", 1)
	require.True(t, ok)
	assert.Equal(t, "2025-01-15", next)

	_, ok = idx.Adjacent("2025-01-15", 1)
	assert.False(t, ok)
	_, ok = idx.Adjacent("2025-01-01", -1)
	assert.False(t, ok)

	first, _ := idx.First()
	last, _ := idx.Last()
	assert.Equal(t, "2025-01-08", first)
	assert.Equal(t, "2025-01-15", last)
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	assert.Zero(t, idx.Len())
	assert.False(t, idx.Has("2025-01-01"))
	_, ok := idx.Adjacent("2025-01-01", 1)
	assert.False(t, ok)
}

func TestIndexSorted_LeavesReceiverUntouched(t *testing.T) {
	idx := BuildIndex(sampleEvents(), domain.SortChronological)

	recent := idx.Sorted(domain.SortRecent)
	assert.Equal(t, domain.SortRecent, recent.Order())
	assert.Equal(t, []string{"2", "1"}, ids(recent.Events("2025-01-08")))
	assert.Equal(t, []string{"1", "2"}, ids(idx.Events("2025-01-08")))
	assert.Equal(t, idx.Keys(), recent.Keys())
}
