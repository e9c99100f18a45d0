package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/scoring"
)

func roster() []*candidate.Candidate {
	return []*candidate.Candidate{
		{ID: "ana", Name: "Ana", Area: "Data", Seniority: scoring.Mid, Availability: "Immediate", Score: 60, Skills: []string{"Python", "SQL"}, History: "Built pipelines"},
		{ID: "bruno", Name: "Bruno", Area: "Design", Seniority: scoring.Junior, Availability: "Freelance", Score: 30, Skills: []string{"Figma", "UX Research"}},
		{ID: "carla", Name: "Carla", Area: "Data", Seniority: scoring.Senior, Availability: "Unavailable", Score: 60, Skills: []string{"PostgreSQL"}, ExtractedSummary: "Team leadership at Acme"},
		{ID: "dora", Name: "Dora", Area: "Technology", Seniority: scoring.Senior, Availability: "Immediate", Score: 85, Skills: []string{"React", "Node.js"}},
	}
}

func ids(candidates []*candidate.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}
	return out
}

func TestQueryEmptyCriteriaReturnsAllSortedStable(t *testing.T) {
	got := Query(roster(), Criteria{}, nil)
	assert.Equal(t, []string{"dora", "ana", "carla", "bruno"}, ids(got))
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expect   []string
	}{
		{name: "area exact match", criteria: Criteria{Area: "Data"}, expect: []string{"ana", "carla"}},
		{name: "area is case sensitive", criteria: Criteria{Area: "data"}, expect: []string{}},
		{name: "seniority", criteria: Criteria{Seniority: "Senior"}, expect: []string{"dora", "carla"}},
		{name: "availability", criteria: Criteria{Availability: "Immediate"}, expect: []string{"dora", "ana"}},
		{name: "min score is inclusive", criteria: Criteria{MinScore: 60}, expect: []string{"dora", "ana", "carla"}},
		{name: "skill substring case insensitive", criteria: Criteria{Skills: []string{"sql"}}, expect: []string{"ana", "carla"}},
		{name: "every skill must match", criteria: Criteria{Skills: []string{"python", "sql"}}, expect: []string{"ana"}},
		{name: "short skill terms match broadly", criteria: Criteria{Skills: []string{"r"}}, expect: []string{"dora", "carla", "bruno"}},
		{name: "search covers extracted summary", criteria: Criteria{Search: "LEADERSHIP"}, expect: []string{"carla"}},
		{name: "search covers seniority", criteria: Criteria{Search: "junior"}, expect: []string{"bruno"}},
		{name: "search covers history", criteria: Criteria{Search: " pipelines "}, expect: []string{"ana"}},
		{name: "combined", criteria: Criteria{Area: "Data", MinScore: 50, Skills: []string{"post"}}, expect: []string{"carla"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ids(Query(roster(), tt.criteria, nil)))
		})
	}
}

func TestQueryIsIdempotentAndPure(t *testing.T) {
	input := roster()
	criteria := Criteria{MinScore: 40}

	first := Query(input, criteria, nil)
	second := Query(input, criteria, nil)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"ana", "bruno", "carla", "dora"}, ids(input), "input order must be untouched")
}

func TestRunLogsSteps(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	left, info := Run(Steps(Criteria{Area: "Data", MinScore: 61}), roster(), logger)

	assert.Empty(t, left)
	require.Len(t, info, 2)
	assert.Equal(t, Step{Name: "area", Initial: 4, Dropped: 2, Left: 2}, info[0])
	assert.Equal(t, Step{Name: "min_score", Initial: 2, Dropped: 2, Left: 0}, info[1])

	assert.Equal(t, 4, observed.FilterMessage("filter disabled").Len())
	steps := observed.FilterMessage("filter step").All()
	require.Len(t, steps, 2)
	assert.Equal(t, "area", steps[0].ContextMap()["name"])
}

func TestDescribe(t *testing.T) {
	statuses := Describe(Steps(Criteria{Skills: []string{"go", "sql"}, MinScore: 150}))

	require.Len(t, statuses, 6)
	assert.Equal(t, "area", statuses[0].Name)
	assert.False(t, statuses[0].Enabled)
	assert.Equal(t, "100", statuses[3].Details["min_score"])
	assert.True(t, statuses[4].Enabled)
	assert.Equal(t, "go,sql", statuses[4].Details["skills"])
}

func TestDecodeCriteria(t *testing.T) {
	c, err := DecodeCriteria(map[string]any{
		"search":       "  Python ",
		"area":         "Data",
		"skills":       "sql, , python",
		"min-score":    "40",
		"availability": "",
	})
	require.NoError(t, err)
	assert.Equal(t, Criteria{
		Search:   "python",
		Area:     "Data",
		Skills:   []string{"sql", "python"},
		MinScore: 40,
	}, c)

	c, err = DecodeCriteria(map[string]any{"skills": []any{"go", "k8s"}, "min-score": -5})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "k8s"}, c.Skills)
	assert.Equal(t, 0, c.MinScore)

	_, err = DecodeCriteria(map[string]any{"min-score": "lots"})
	assert.Error(t, err)
}
