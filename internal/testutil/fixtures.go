package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/histcal/internal/domain"
)

var testHistoryIDCounter atomic.Int64

// EventOption customizes a fixture event.
type EventOption func(*domain.Event)

func WithCreatedAt(ts string) EventOption {
	return func(e *domain.Event) { e.CreatedAt = ts }
}

func WithActivity(code, name string) EventOption {
	return func(e *domain.Event) {
		e.ActivityType = code
		e.ActivityTypeName = name
	}
}

func WithStage(code, name string) EventOption {
	return func(e *domain.Event) {
		e.ProgressStage = code
		e.StageName = name
	}
}

func WithProject(pipelineID, name string) EventOption {
	return func(e *domain.Event) {
		e.PipelineID = pipelineID
		e.ProjectName = name
	}
}

func WithCombo(field, service, manager, org string) EventOption {
	return func(e *domain.Event) {
		e.FieldCode = field
		e.ServiceCode = service
		e.ManagerID = manager
		e.OrgID = domain.FlexID(org)
	}
}

func WithContent(text string) EventOption {
	return func(e *domain.Event) { e.Content = text }
}

// NewTestEvent builds an event on baseDate with a fresh numeric history id.
func NewTestEvent(baseDate string, opts ...EventOption) domain.Event {
	n := testHistoryIDCounter.Add(1)
	e := domain.Event{
		HistoryID:        domain.FlexID(fmt.Sprintf("%d", n)),
		PipelineID:       fmt.Sprintf("P-%03d", n),
		BaseDate:         baseDate,
		ActivityType:     "MEETING",
		ActivityTypeName: "Meeting",
		ProgressStage:    "LEAD",
		StageName:        "Lead",
		ProjectName:      fmt.Sprintf("Project %d", n),
		CustomerName:     "ACME",
		ManagerID:        "kim",
		ManagerName:      "Kim",
		OrgID:            "10",
		OrgName:          "Sales 1",
		FieldCode:        "F1",
		FieldName:        "Finance",
		ServiceCode:      "S1",
		ServiceName:      "Cloud",
		Content:          "Kickoff",
		CreatedAt:        baseDate + "T09:00:00",
		UpdatedAt:        baseDate + "T09:00:00",
		CreatedBy:        "kim",
		UpdatedBy:        "kim",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// TestFilterOptions returns a small option set matching NewTestEvent defaults.
func TestFilterOptions() domain.FilterOptions {
	return domain.FilterOptions{
		Fields:        []domain.Option{{Value: "F1", Label: "Finance"}, {Value: "F2", Label: "Public"}},
		Services:      []domain.Option{{Value: "S1", Label: "Cloud"}, {Value: "S2", Label: "SI"}},
		ActivityTypes: []domain.Option{{Value: "MEETING", Label: "Meeting"}, {Value: "PROPOSAL", Label: "Proposal"}},
		Managers:      []domain.Option{{Value: "kim", Label: "Kim"}, {Value: "lee", Label: "Lee"}},
		Orgs:          []domain.Option{{Value: "10", Label: "Sales 1"}, {Value: "20", Label: "Sales 2"}},
	}
}
