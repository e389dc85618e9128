package settings

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/alexanderramin/histcal/internal/calendar"
)

// StateKey is the storage key of the persisted view snapshot.
const StateKey = "psms_history_calendar_state"

// Snapshot is the persisted view configuration. Field names and value
// shapes are kept stable so previously saved state keeps loading.
type Snapshot struct {
	View         string               `json:"view"`
	Year         string               `json:"year"`
	YearLayout   string               `json:"yearLayout"`
	MonthOrder   string               `json:"monthOrder"`
	MonthSlot    string               `json:"monthSlot"`
	Tooltip      *bool                `json:"tooltip,omitempty"`
	Filters      Filters              `json:"filters"`
	Project      Project              `json:"project"`
	SortOrder    string               `json:"sortOrder"`
	WeekStartDay *int                 `json:"weekStartDay,omitempty"`
	WeekRange    calendar.CustomRange `json:"weekRange"`
	Anchors      Anchors              `json:"anchors"`
}

// Filters holds the five saved multi-select value lists.
type Filters struct {
	Field    []string `json:"field"`
	Service  []string `json:"service"`
	Activity []string `json:"activity"`
	Manager  []string `json:"manager"`
	Org      []string `json:"org"`
}

// Project holds the saved project search keyword and selection.
type Project struct {
	Keyword  string `json:"keyword"`
	Selected string `json:"selected"`
}

// Anchors holds the per-view anchor dates as YYYY-MM-DD strings.
type Anchors struct {
	Month string `json:"month"`
	Week  string `json:"week"`
	Daily string `json:"daily"`
}

// FiltersFrom copies the multi-select part of c.
func FiltersFrom(c calendar.Criteria) Filters {
	return Filters{
		Field:    c.Fields,
		Service:  c.Services,
		Activity: c.ActivityTypes,
		Manager:  c.Managers,
		Org:      c.Orgs,
	}
}

// Criteria converts the saved filters and project back into criteria.
func (s Snapshot) Criteria() calendar.Criteria {
	return calendar.Criteria{
		Fields:         s.Filters.Field,
		Services:       s.Filters.Service,
		ActivityTypes:  s.Filters.Activity,
		Managers:       s.Filters.Manager,
		Orgs:           s.Filters.Org,
		ProjectID:      s.Project.Selected,
		ProjectKeyword: s.Project.Keyword,
	}.Normalize()
}

// YearValue parses the saved year, reporting false when absent or invalid.
func (s Snapshot) YearValue() (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(s.Year))
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

// SlotValue parses the saved month slot, reporting false when absent.
func (s Snapshot) SlotValue() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s.MonthSlot))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Encode returns the snapshot as JSON.
func (s Snapshot) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored snapshot. Anything that is not a JSON object is
// reported as absent.
func Decode(raw string) (Snapshot, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "{") {
		return Snapshot{}, false
	}
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Snapshot{}, false
	}
	return s, true
}
