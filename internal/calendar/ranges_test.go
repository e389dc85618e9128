package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
)

func TestYearMonths_Normal(t *testing.T) {
	months := YearMonths(2025, MonthOrder{Mode: domain.MonthOrderNormal}, domain.NewDate(2025, 6, 15))
	require.Len(t, months, 12)
	for i, m := range months {
		assert.Equal(t, 2025, m.Year)
		assert.Equal(t, time.Month(i+1), m.Month)
		assert.Zero(t, m.Offset)
	}
}

func TestYearMonths_CurrentLast(t *testing.T) {
	today := domain.NewDate(2025, 6, 15)
	months := YearMonths(2025, MonthOrder{Mode: domain.MonthOrderCurrentLast}, today)
	require.Len(t, months, 12)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.July, Offset: -1}, months[0])
	assert.Equal(t, YearMonth{Year: 2025, Month: time.June}, months[11])
}

func TestYearMonths_CurrentSlot(t *testing.T) {
	today := domain.NewDate(2025, 6, 15)
	months := YearMonths(2025, MonthOrder{Mode: domain.MonthOrderCurrentSlot, Slot: 5}, today)
	assert.Equal(t, time.June, months[4].Month)
	assert.Equal(t, time.February, months[0].Month)
	assert.Equal(t, YearMonth{Year: 2026, Month: time.January, Offset: 1}, months[11])

	clamped := YearMonths(2025, MonthOrder{Mode: domain.MonthOrderCurrentSlot, Slot: 40}, today)
	assert.Equal(t, time.June, clamped[11].Month)
	low := YearMonths(2025, MonthOrder{Mode: domain.MonthOrderCurrentSlot, Slot: -3}, today)
	assert.Equal(t, time.June, low[0].Month)
}

func TestYearRange(t *testing.T) {
	today := domain.NewDate(2025, 6, 15)
	r := YearRange(2025, MonthOrder{Mode: domain.MonthOrderCurrentLast}, today)
	assert.Equal(t, "2024-07-01", r.Start.String())
	assert.Equal(t, "2025-06-30", r.End.String())
	assert.Equal(t, []int{2024, 2025}, r.Years())
}

func TestResolveWeek(t *testing.T) {
	anchor := domain.NewDate(2025, 1, 8)

	monday := ResolveWeek(anchor, 1, CustomRange{})
	assert.Equal(t, "2025-01-06", monday.Start.String())
	assert.Equal(t, "2025-01-12", monday.End.String())
	assert.False(t, monday.Custom)
	assert.Equal(t, "Mon start", monday.Hint(1))

	sunday := ResolveWeek(anchor, 0, CustomRange{})
	assert.Equal(t, "2025-01-05", sunday.Start.String())
	assert.Equal(t, "2025-01-11", sunday.End.String())
}

func TestResolveWeek_Custom(t *testing.T) {
	w := ResolveWeek(domain.NewDate(2025, 1, 8), 1, CustomRange{From: "2025-02-01", To: "2025-02-10"})
	assert.True(t, w.Custom)
	assert.Equal(t, 10, w.Days())
	assert.Len(t, w.Dates(), 10)
	assert.Equal(t, "custom range", w.Hint(1))

	reversed := ResolveWeek(domain.NewDate(2025, 1, 8), 1, CustomRange{From: "2025-02-10", To: "2025-02-01"})
	assert.False(t, reversed.Custom)
	assert.Equal(t, 7, reversed.Days())
}

func TestCustomRangeResolve_Errors(t *testing.T) {
	_, err := CustomRange{From: "2025-02-01"}.Resolve()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = CustomRange{From: "2025-02-10", To: "2025-02-01"}.Resolve()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = CustomRange{From: "2025-02-30", To: "2025-03-01"}.Resolve()
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := CustomRange{From: "2025-02-01", To: "2025-02-01"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Days())
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, Layout{Cols: 6, Rows: 2}, ParseLayout("6x2"))
	assert.Equal(t, Layout{Cols: 3, Rows: 4}, ParseLayout("3X4"))
	assert.Equal(t, DefaultLayout, ParseLayout("2x2"))
	assert.Equal(t, DefaultLayout, ParseLayout("abc"))
	assert.Equal(t, "4x3", DefaultLayout.String())
}
