package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestComboIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"F1|S1|kim|10", 9},
		{"F2|S2|lee|20", 5},
		{"default", 5},
		{"", 5},
		{"|||", 2},
		{"a", 7},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ComboIndex(tt.key))
		})
	}
}

func TestComboColor_StableAcrossEvents(t *testing.T) {
	a := testutil.NewTestEvent("2025-01-08")
	b := testutil.NewTestEvent("2025-03-01", testutil.WithProject("P-77", "Other"))

	assert.Equal(t, "F1|S1|kim|10", ComboKey(a))
	assert.Equal(t, lipgloss.Color("#06b6d4"), ComboColor(a))
	assert.Equal(t, ComboColor(a), ComboColor(b), "same combination, same color")

	c := testutil.NewTestEvent("2025-01-08", testutil.WithCombo("F2", "S2", "lee", "20"))
	assert.Equal(t, lipgloss.Color("#e11d48"), ComboColor(c))
}

func TestActivityAndStageColors(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#2563eb"), ActivityColor("MEETING"))
	assert.Equal(t, lipgloss.Color("#cbd5f5"), ActivityColor("NOPE"))
	assert.Equal(t, lipgloss.Color("#cbd5f5"), ActivityColor(domain.UnknownActivity))

	assert.Equal(t, lipgloss.Color("#e74c3c"), StageColor("S05"))
	assert.Equal(t, DefaultStageColor, StageColor("LEAD"))
}

func TestActivityCodes_ReturnsCopy(t *testing.T) {
	codes := ActivityCodes()
	codes[0] = "CHANGED"
	assert.Equal(t, "MEETING", ActivityCodes()[0])
	assert.Len(t, ActivityCodes(), len(ActivityColors))
}
