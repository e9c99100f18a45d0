package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/scoring"
)

func TestCountBy(t *testing.T) {
	roster := []*candidate.Candidate{
		{Area: "Data", Seniority: scoring.Mid},
		{Area: "", Seniority: scoring.Senior},
		{Area: "Design", Seniority: scoring.Mid},
		{Area: "Data", Seniority: scoring.Junior},
	}

	byArea := CountBy(roster, candidate.AreaField)
	assert.Equal(t, []Entry{
		{Key: "Data", Count: 2},
		{Key: candidate.NotInformed, Count: 1},
		{Key: "Design", Count: 1},
	}, byArea.Entries())

	bySeniority := CountBy(roster, candidate.SeniorityField)
	assert.Equal(t, []string{"Mid", "Senior", "Junior"}, bySeniority.Keys())
	assert.Equal(t, 2, bySeniority.Get("Mid"))
	assert.Equal(t, 0, bySeniority.Get("Principal"))

	assert.Equal(t, 0, CountBy(nil, candidate.AreaField).Len())
}

func TestCountSkillsIsCaseSensitive(t *testing.T) {
	roster := []*candidate.Candidate{
		{Skills: []string{"SQL", "sql", "Python"}},
		{Skills: []string{"Python"}},
	}

	assert.Equal(t, SkillCounts{
		{Skill: "Python", Count: 2},
		{Skill: "SQL", Count: 1},
		{Skill: "sql", Count: 1},
	}, CountSkills(roster))
}

func TestCountSkillsTrimsAndSkipsEmpty(t *testing.T) {
	roster := []*candidate.Candidate{
		{Skills: []string{" Go ", "", "   "}},
		{Skills: []string{"Go", "Rust"}},
		{Skills: []string{"Rust", "Zig", "Go"}},
	}

	ranking := CountSkills(roster)
	assert.Equal(t, SkillCounts{
		{Skill: "Go", Count: 3},
		{Skill: "Rust", Count: 2},
		{Skill: "Zig", Count: 1},
	}, ranking)
	assert.Equal(t, SkillCounts{{Skill: "Go", Count: 3}}, ranking.Top(1))
	assert.Len(t, ranking.Top(ChartSkills), 3)
}

func TestCountsMarshalJSONKeepsOrder(t *testing.T) {
	counts := &Counts{}
	for _, key := range []string{"Zeta", "Alpha", "Zeta", `Quote "q"`} {
		counts.Inc(key)
	}

	data, err := json.Marshal(counts)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":2,"Alpha":1,"Quote \"q\"":1}`, string(data))

	empty, err := json.Marshal(&Counts{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestSummarize(t *testing.T) {
	roster := []*candidate.Candidate{
		{Availability: "Immediate", Skills: []string{"SQL", "Python"}},
		{Availability: "Freelance", Skills: []string{"sql"}},
		{Availability: "Unavailable", Skills: []string{"Figma"}},
	}

	assert.Equal(t, Metrics{Total: 3, AvailableNow: 2, UniqueSkills: 3}, Summarize(roster))
}

func TestBuildCharts(t *testing.T) {
	roster := []*candidate.Candidate{
		{Area: "Data", Seniority: scoring.Mid, Skills: []string{"a", "b", "c"}},
		{Area: "Sales", Seniority: scoring.Mid, Skills: []string{"c"}},
	}

	charts := BuildCharts(roster, 2)
	assert.Equal(t, []string{"Data", "Sales"}, charts.Area.Keys())
	assert.Equal(t, 2, charts.Seniority.Get("Mid"))
	assert.Equal(t, []Entry{{Key: "c", Count: 2}, {Key: "a", Count: 1}}, charts.Skills.Entries())
}
