package filtering

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/candidate"
)

// Filter represents a single filtering step applied to candidates.
// Apply must not modify its input.
type Filter interface {
	Name() string
	IsEnabled() bool

	Apply(in []*candidate.Candidate) []*candidate.Candidate
}

// Step describes the result of executing a filtering step.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Steps builds the filtering steps for the criteria, in evaluation order.
func Steps(c Criteria) []Filter {
	c = c.Normalize()
	return []Filter{
		&areaFilter{area: c.Area},
		&seniorityFilter{seniority: c.Seniority},
		&availabilityFilter{availability: c.Availability},
		&minScoreFilter{min: c.MinScore},
		&skillsFilter{skills: c.Skills},
		&searchFilter{search: c.Search},
	}
}

// Run executes the supplied filters sequentially, returning the remaining candidates
// in their original order together with per-step statistics.
func Run(steps []Filter, candidates []*candidate.Candidate, logger *zap.Logger) ([]*candidate.Candidate, []Step) {
	v := slices.Clone(candidates)
	info := make([]Step, 0, len(steps))

	for _, step := range steps {
		if !step.IsEnabled() {
			if logger != nil {
				logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		initial := len(v)
		v = step.Apply(v)
		s := Step{Name: step.Name(), Initial: initial, Dropped: initial - len(v), Left: len(v)}
		info = append(info, s)

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", s.Name),
				zap.Int("initial", s.Initial),
				zap.Int("dropped", s.Dropped),
				zap.Int("left", s.Left),
			)
		}
	}

	return v, info
}

// Query returns the candidates matching every criterion, sorted by score
// descending. Candidates with equal scores keep their roster order.
func Query(candidates []*candidate.Candidate, criteria Criteria, logger *zap.Logger) []*candidate.Candidate {
	result, _ := Run(Steps(criteria), candidates, logger)
	SortByScore(result)
	return result
}

// SortByScore sorts in place by score descending, keeping the order of ties.
func SortByScore(candidates []*candidate.Candidate) {
	slices.SortStableFunc(candidates, func(a, b *candidate.Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// keep returns the candidates for which match is true.
func keep(in []*candidate.Candidate, match func(*candidate.Candidate) bool) []*candidate.Candidate {
	out := make([]*candidate.Candidate, 0, len(in))
	for _, c := range in {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}
