package domain

// Option is one selectable value of a filter dropdown.
type Option struct {
	Value string
	Label string
}

// FilterOptions holds the five multi-select option lists.
type FilterOptions struct {
	Fields        []Option
	Services      []Option
	ActivityTypes []Option
	Managers      []Option
	Orgs          []Option
}

// ActivityTypeName resolves an activity-type code to its label, or the code
// itself when no option matches.
func (o FilterOptions) ActivityTypeName(code string) string {
	if code == "" {
		return ""
	}
	for _, opt := range o.ActivityTypes {
		if opt.Value == code {
			return opt.Label
		}
	}
	return code
}

// ActivitySummary maps date -> activity-type code -> count.
type ActivitySummary map[string]map[string]int

// ActivityLabel picks the event's activity display name.
func (e Event) ActivityLabel(opts FilterOptions) string {
	return CoalesceStr(e.ActivityTypeName, opts.ActivityTypeName(e.ActivityType))
}

// UnknownActivity is the bucket for summary rows without an activity type.
const UnknownActivity = "UNKNOWN"

// Set records the count for an activity type on date.
func (s ActivitySummary) Set(date, activityType string, count int) {
	if activityType == "" {
		activityType = UnknownActivity
	}
	if s[date] == nil {
		s[date] = map[string]int{}
	}
	s[date][activityType] = count
}

// Total returns the sum of all counts on date.
func (s ActivitySummary) Total(date string) int {
	total := 0
	for _, n := range s[date] {
		total += n
	}
	return total
}

// ProjectOption is one row of the project search.
type ProjectOption struct {
	PipelineID        FlexID `json:"pipeline_id"`
	ProjectName       string `json:"project_name"`
	CustomerName      string `json:"customer_name"`
	OrderingPartyName string `json:"ordering_party_name"`
}

// Label renders "project | customer | ordering party | id".
func (p ProjectOption) Label() string {
	return CoalesceDash(p.ProjectName) + " | " + CoalesceDash(p.CustomerName) + " | " +
		CoalesceDash(p.OrderingPartyName) + " | " + CoalesceDash(string(p.PipelineID))
}

// ProjectPage is one page of project search results.
type ProjectPage struct {
	Items      []ProjectOption
	Page       int
	TotalPages int
}

// Find returns the project with the given pipeline id on this page.
func (p ProjectPage) Find(id string) (ProjectOption, bool) {
	for _, item := range p.Items {
		if string(item.PipelineID) == id {
			return item, true
		}
	}
	return ProjectOption{}, false
}
