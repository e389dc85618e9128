package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexID accepts a JSON string or number; history ids arrive as integers
// while pipeline ids are strings.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// Event is one sales-activity history record. Read-only; owned by the
// remote API.
type Event struct {
	HistoryID        FlexID `json:"history_id"`
	PipelineID       string `json:"pipeline_id"`
	BaseDate         string `json:"base_date"`
	ActivityType     string `json:"activity_type"`
	ActivityTypeName string `json:"activity_type_name"`
	ProgressStage    string `json:"progress_stage"`
	StageName        string `json:"stage_name"`
	ProjectName      string `json:"project_name"`
	CustomerName     string `json:"customer_name"`
	ManagerID        string `json:"manager_id"`
	ManagerName      string `json:"manager_name"`
	OrgID            FlexID `json:"org_id"`
	OrgName          string `json:"org_name"`
	FieldCode        string `json:"field_code"`
	FieldName        string `json:"field_name"`
	ServiceCode      string `json:"service_code"`
	ServiceName      string `json:"service_name"`
	Content          string `json:"strategy_content"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
	CreatedBy        string `json:"created_by"`
	UpdatedBy        string `json:"updated_by"`
}

// ID is the record's stable identity: history id, else pipeline id.
func (e Event) ID() string {
	if e.HistoryID != "" {
		return string(e.HistoryID)
	}
	return e.PipelineID
}

// DateKey returns the event's base date as a YYYY-MM-DD key. Timestamps
// are truncated to their date part; unparseable values yield ok=false.
func (e Event) DateKey() (string, bool) {
	s := strings.TrimSpace(e.BaseDate)
	if len(s) > 10 {
		s = s[:10]
	}
	d, err := ParseDate(s)
	if err != nil {
		return "", false
	}
	return d.String(), true
}

// Label helpers fall back from display name to code to "-".

func (e Event) ProjectLabel() string  { return CoalesceDash(e.ProjectName) }
func (e Event) FieldLabel() string    { return CoalesceDash(e.FieldName, e.FieldCode) }
func (e Event) ServiceLabel() string  { return CoalesceDash(e.ServiceName, e.ServiceCode) }
func (e Event) ManagerLabel() string  { return CoalesceDash(e.ManagerName, e.ManagerID) }
func (e Event) OrgLabel() string      { return CoalesceDash(e.OrgName, string(e.OrgID)) }
func (e Event) StageLabel() string    { return CoalesceDash(e.StageName, e.ProgressStage) }
func (e Event) CustomerLabel() string { return CoalesceDash(e.CustomerName) }
