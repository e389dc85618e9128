package export

import (
	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
)

// Headers are the fixed report columns.
var Headers = []string{
	"Pipeline ID", "Field", "Service", "Project", "Customer",
	"Manager", "Org", "Base Date", "Activity Type", "Content",
	"Created At", "Updated At", "Created By", "Updated By",
}

// Row renders one event as sanitized report cells, in Headers order.
func Row(e domain.Event, opts domain.FilterOptions) []string {
	cells := []string{
		e.PipelineID,
		e.FieldCode,
		e.ServiceCode,
		e.ProjectName,
		e.CustomerName,
		domain.CoalesceStr(e.ManagerName, e.ManagerID),
		domain.CoalesceStr(e.OrgName, string(e.OrgID)),
		e.BaseDate,
		e.ActivityLabel(opts),
		e.Content,
		calendar.FormatTimestamp(e.CreatedAt),
		calendar.FormatTimestamp(e.UpdatedAt),
		e.CreatedBy,
		e.UpdatedBy,
	}
	for i, c := range cells {
		cells[i] = Sanitize(c)
	}
	return cells
}

// maxSheetName is the spreadsheet limit on sheet name length.
const maxSheetName = 31

// SheetName returns "History Report(from <start> to <end>)" cut to 31 characters.
func SheetName(start, end string) string {
	return truncateRunes("History Report(from "+start+" to "+end+")", maxSheetName)
}

// FileName returns the report file name for the selected date span.
func FileName(start, end string, format domain.ExportFormat) string {
	return "history_report_" + start + "_" + end + "." + string(format)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
