package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestEncodeICS_AllDayEvents(t *testing.T) {
	first := testutil.NewTestEvent("2025-05-01", testutil.WithProject("P-1", "Alpha"))
	second := testutil.NewTestEvent("2025-05-02", testutil.WithActivity("", ""))
	undated := testutil.NewTestEvent("")
	stamp := time.Date(2025, 5, 3, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := EncodeICS(&buf, []domain.Event{first, second, undated}, testutil.TestFilterOptions(), stamp)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	uid, err := events[0].Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "history-"+first.ID()+"@histcal", uid)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Alpha · Meeting", summary)

	start := events[0].Props.Get(ical.PropDateTimeStart)
	require.NotNil(t, start)
	assert.Equal(t, "20250501", start.Value)
	end := events[0].Props.Get(ical.PropDateTimeEnd)
	require.NotNil(t, end)
	assert.Equal(t, "20250502", end.Value)

	desc, err := events[1].Props.Text(ical.PropDescription)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(desc, "Stage: Lead"))
}
