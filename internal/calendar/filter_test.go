package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/histcal/internal/domain"
)

func TestCriteriaParams(t *testing.T) {
	r := Range{Start: domain.NewDate(2025, 1, 1), End: domain.NewDate(2025, 1, 31)}
	c := Criteria{
		Fields:         []string{"F1", " F2 ", "", "F1"},
		Managers:       []string{AllProjects},
		Orgs:           []string{"10"},
		ProjectKeyword: "alpha",
	}

	p := c.Params(r)

	assert.Equal(t, "2025-01-01", p.Get("date_from"))
	assert.Equal(t, "2025-01-31", p.Get("date_to"))
	assert.Equal(t, "F1,F2", p.Get("field_code"))
	assert.Equal(t, "10", p.Get("org_id"))
	assert.False(t, p.Has("manager_id"))
	assert.False(t, p.Has("service_code"))
	assert.Equal(t, "alpha", p.Get("project_keyword"))
	assert.False(t, p.Has("pipeline_id"))
}

func TestCriteriaParams_ProjectIDWinsOverKeyword(t *testing.T) {
	r := Range{Start: domain.NewDate(2025, 1, 1), End: domain.NewDate(2025, 1, 1)}
	p := Criteria{ProjectID: "P-7", ProjectKeyword: "alpha"}.Params(r)
	assert.Equal(t, "P-7", p.Get("pipeline_id"))
	assert.False(t, p.Has("project_keyword"))
}

func TestCriteriaRestrict_DropsUnknownValues(t *testing.T) {
	opts := domain.FilterOptions{
		Fields:   []domain.Option{{Value: "F1"}, {Value: "F2"}},
		Services: []domain.Option{{Value: "S1"}},
	}
	c := Criteria{
		Fields:   []string{"F1", "F9"},
		Services: []string{"S9"},
		Orgs:     []string{"1"},
	}.Restrict(opts)

	assert.Equal(t, []string{"F1"}, c.Fields)
	assert.Empty(t, c.Services)
	assert.Empty(t, c.Orgs)
}

func TestCriteriaUnknown(t *testing.T) {
	opts := domain.FilterOptions{
		Fields:   []domain.Option{{Value: "F1"}},
		Managers: []domain.Option{{Value: "kim"}},
	}
	c := Criteria{
		Fields:   []string{"F1", "F9"},
		Managers: []string{"kim"},
		Orgs:     []string{"1"},
	}

	assert.Equal(t, []string{"field=F9", "org=1"}, c.Unknown(opts))
	assert.Empty(t, Criteria{Fields: []string{"F1"}}.Unknown(opts))
}

func TestCriteriaIsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{ProjectID: AllProjects}.IsEmpty())
	assert.False(t, Criteria{ProjectKeyword: "x"}.IsEmpty())
	assert.False(t, Criteria{Orgs: []string{"1"}}.IsEmpty())
}
