package filtering

import (
	"strconv"
	"strings"

	"github.com/talent-pool/talent-pool/internal/candidate"
)

type areaFilter struct {
	area string
}

func (f *areaFilter) Name() string { return "area" }

func (f *areaFilter) IsEnabled() bool { return f.area != "" }

func (f *areaFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	return keep(in, func(c *candidate.Candidate) bool { return c.Area == f.area })
}

func (f *areaFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: map[string]string{"area": f.area}}
}

type seniorityFilter struct {
	seniority string
}

func (f *seniorityFilter) Name() string { return "seniority" }

func (f *seniorityFilter) IsEnabled() bool { return f.seniority != "" }

func (f *seniorityFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	return keep(in, func(c *candidate.Candidate) bool { return string(c.Seniority) == f.seniority })
}

func (f *seniorityFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: map[string]string{"seniority": f.seniority}}
}

type availabilityFilter struct {
	availability string
}

func (f *availabilityFilter) Name() string { return "availability" }

func (f *availabilityFilter) IsEnabled() bool { return f.availability != "" }

func (f *availabilityFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	return keep(in, func(c *candidate.Candidate) bool { return c.Availability == f.availability })
}

func (f *availabilityFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: map[string]string{"availability": f.availability}}
}

// minScoreFilter always runs; a zero threshold keeps every candidate.
type minScoreFilter struct {
	min int
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	return keep(in, func(c *candidate.Candidate) bool { return c.Score >= f.min })
}

func (f *minScoreFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{"min_score": strconv.Itoa(f.min)}}
}

// skillsFilter keeps candidates where every required term is a case
// insensitive substring of at least one of their skills.
type skillsFilter struct {
	skills []string
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) IsEnabled() bool { return len(f.skills) > 0 }

func (f *skillsFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	required := make([]string, 0, len(f.skills))
	for _, s := range f.skills {
		required = append(required, strings.ToLower(s))
	}

	return keep(in, func(c *candidate.Candidate) bool {
		owned := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			owned = append(owned, strings.ToLower(s))
		}

		for _, term := range required {
			if !containedInAny(owned, term) {
				return false
			}
		}
		return true
	})
}

func (f *skillsFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: map[string]string{"skills": strings.Join(f.skills, ",")}}
}

type searchFilter struct {
	search string
}

func (f *searchFilter) Name() string { return "search" }

func (f *searchFilter) IsEnabled() bool { return f.search != "" }

func (f *searchFilter) Apply(in []*candidate.Candidate) []*candidate.Candidate {
	return keep(in, func(c *candidate.Candidate) bool {
		return strings.Contains(c.SearchText(), f.search)
	})
}

func (f *searchFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: map[string]string{"search": f.search}}
}

func containedInAny(list []string, term string) bool {
	for _, item := range list {
		if strings.Contains(item, term) {
			return true
		}
	}
	return false
}
