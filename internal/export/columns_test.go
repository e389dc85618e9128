package export

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestRow_ColumnsFollowHeaders(t *testing.T) {
	e := testutil.NewTestEvent("2025-03-04",
		testutil.WithContent("line\u0002one"),
		testutil.WithCreatedAt("2025-03-04T10:11:12Z"))
	e.ManagerName = ""

	row := Row(e, testutil.TestFilterOptions())
	require.Len(t, row, len(Headers))
	assert.Equal(t, e.PipelineID, row[0])
	assert.Equal(t, "F1", row[1])
	assert.Equal(t, "S1", row[2])
	assert.Equal(t, "kim", row[5], "manager falls back to id")
	assert.Equal(t, "Sales 1", row[6])
	assert.Equal(t, "2025-03-04", row[7])
	assert.Equal(t, "Meeting", row[8])
	assert.Equal(t, "lineone", row[9])
	assert.Equal(t, "2025-03-04 10:11:12", row[10])
}

func TestSheetName_Truncated(t *testing.T) {
	name := SheetName("2025-01-01", "2025-12-31")
	assert.Equal(t, 31, utf8.RuneCountInString(name))
	assert.Equal(t, "History Report(from 2025-01-01 ", name)

	assert.Equal(t, "history_report_2025-01-01_2025-01-31.xlsx",
		FileName("2025-01-01", "2025-01-31", domain.ExportXLSX))
}
