package calendar

import (
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/alexanderramin/histcal/internal/domain"
)

// AllProjects is the sentinel project selection meaning "no project filter".
const AllProjects = "__ALL__"

// Criteria composes the multi-select filters with the project selection.
// An empty list is a wildcard. A concrete ProjectID wins over ProjectKeyword.
type Criteria struct {
	Fields         []string `json:"field"`
	Services       []string `json:"service"`
	ActivityTypes  []string `json:"activity"`
	Managers       []string `json:"manager"`
	Orgs           []string `json:"org"`
	ProjectID      string   `json:"-"`
	ProjectKeyword string   `json:"-"`
}

// HasProject reports whether a concrete project is selected.
func (c Criteria) HasProject() bool {
	return c.ProjectID != "" && c.ProjectID != AllProjects
}

// Normalize trims values, drops blanks and the all-sentinel, and removes
// duplicates while keeping first-seen order.
func (c Criteria) Normalize() Criteria {
	clean := func(values []string) []string {
		out := lo.FilterMap(values, func(v string, _ int) (string, bool) {
			v = strings.TrimSpace(v)
			return v, v != "" && v != AllProjects
		})
		return lo.Uniq(out)
	}
	c.Fields = clean(c.Fields)
	c.Services = clean(c.Services)
	c.ActivityTypes = clean(c.ActivityTypes)
	c.Managers = clean(c.Managers)
	c.Orgs = clean(c.Orgs)
	c.ProjectKeyword = strings.TrimSpace(c.ProjectKeyword)
	if strings.TrimSpace(c.ProjectID) == "" {
		c.ProjectID = AllProjects
	}
	return c
}

// Restrict drops saved values that are not present in the loaded options.
// A filter whose values all vanished becomes a wildcard.
func (c Criteria) Restrict(opts domain.FilterOptions) Criteria {
	keep := func(values []string, options []domain.Option) []string {
		known := optionSet(options)
		return lo.Filter(values, func(v string, _ int) bool {
			_, ok := known[v]
			return ok
		})
	}
	c.Fields = keep(c.Fields, opts.Fields)
	c.Services = keep(c.Services, opts.Services)
	c.ActivityTypes = keep(c.ActivityTypes, opts.ActivityTypes)
	c.Managers = keep(c.Managers, opts.Managers)
	c.Orgs = keep(c.Orgs, opts.Orgs)
	return c
}

// Unknown lists the values the loaded options do not offer, each prefixed
// with its filter name, e.g. "field=F9".
func (c Criteria) Unknown(opts domain.FilterOptions) []string {
	var out []string
	collect := func(name string, values []string, options []domain.Option) {
		known := optionSet(options)
		for _, v := range values {
			if _, ok := known[v]; !ok {
				out = append(out, name+"="+v)
			}
		}
	}
	collect("field", c.Fields, opts.Fields)
	collect("service", c.Services, opts.Services)
	collect("activity", c.ActivityTypes, opts.ActivityTypes)
	collect("manager", c.Managers, opts.Managers)
	collect("org", c.Orgs, opts.Orgs)
	return out
}

func optionSet(options []domain.Option) map[string]struct{} {
	return lo.SliceToMap(options, func(o domain.Option) (string, struct{}) {
		return o.Value, struct{}{}
	})
}

// IsEmpty reports whether no filter of any kind is set.
func (c Criteria) IsEmpty() bool {
	return len(c.Fields)+len(c.Services)+len(c.ActivityTypes)+len(c.Managers)+len(c.Orgs) == 0 &&
		!c.HasProject() && strings.TrimSpace(c.ProjectKeyword) == ""
}

// Params encodes the criteria and range as calendar/summary query parameters.
func (c Criteria) Params(r Range) url.Values {
	c = c.Normalize()
	p := url.Values{}
	p.Set("date_from", r.Start.String())
	p.Set("date_to", r.End.String())
	setList := func(key string, values []string) {
		if len(values) > 0 {
			p.Set(key, strings.Join(values, ","))
		}
	}
	setList("field_code", c.Fields)
	setList("service_code", c.Services)
	setList("activity_type", c.ActivityTypes)
	setList("manager_id", c.Managers)
	setList("org_id", c.Orgs)
	if c.HasProject() {
		p.Set("pipeline_id", c.ProjectID)
	} else if c.ProjectKeyword != "" {
		p.Set("project_keyword", c.ProjectKeyword)
	}
	return p
}
