package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years  int
		expect int
	}{
		{years: -3, expect: 0},
		{years: 0, expect: 0},
		{years: 1, expect: 10},
		{years: 3, expect: 30},
		{years: 4, expect: 40},
		{years: 10, expect: 40},
		{years: math.MaxInt, expect: 40},
	}

	prev := 0
	for _, tt := range tests {
		got := ExperienceTerm(tt.years)
		assert.Equal(t, tt.expect, got, "years=%d", tt.years)
		assert.GreaterOrEqual(t, got, prev, "term must not decrease, years=%d", tt.years)
		prev = got
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score  int
		expect Label
	}{
		{score: 100, expect: HighPriority},
		{score: 80, expect: HighPriority},
		{score: 75, expect: HighPriority},
		{score: 74, expect: Recommend},
		{score: 60, expect: Recommend},
		{score: 55, expect: Recommend},
		{score: 54, expect: Potential},
		{score: 45, expect: Potential},
		{score: 40, expect: Potential},
		{score: 39, expect: Monitor},
		{score: 10, expect: Monitor},
		{score: 0, expect: Monitor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, Classify(tt.score), "score=%d", tt.score)
	}
}

func TestInferSeniority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		experience int
		history    string
		skills     []string
		expect     Seniority
	}{
		{name: "keyword beats low experience", experience: 2, history: "was team coordination lead", expect: Senior},
		{name: "seven years", experience: 7, expect: Senior},
		{name: "five years", experience: 5, expect: Mid},
		{name: "three years", experience: 3, expect: Mid},
		{name: "one year", experience: 1, expect: Junior},
		{name: "keyword in skills", experience: 0, skills: []string{"Project Management"}, expect: Senior},
		{name: "keyword is case insensitive", experience: 1, history: "LEADERSHIP program", expect: Senior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, InferSeniority(tt.experience, tt.history, tt.skills))
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  Input
		expect Result
	}{
		{
			name:  "empty junior",
			input: Input{Seniority: Junior},
			expect: Result{
				Score: 0,
				Label: Monitor,
			},
		},
		{
			name: "full marks",
			input: Input{
				Experience:      9,
				Skills:          []string{"Python", "React", "Node.js", "AWS", "SQL"},
				ExtractedSkills: []string{"python", "react", "aws", "sql"},
				Availability:    AvailabilityImmediate,
				Seniority:       Senior,
			},
			expect: Result{
				Score: 100,
				Label: HighPriority,
				Breakdown: Breakdown{
					Experience:   40,
					Skills:       32,
					Extracted:    12,
					Availability: 10,
					Seniority:    6,
				},
			},
		},
		{
			name: "mid freelancer",
			input: Input{
				Experience:   3,
				Skills:       []string{"Figma", "UX research", "Go"},
				Availability: AvailabilityFreelance,
				Seniority:    Mid,
			},
			expect: Result{
				Score: 47,
				Label: Potential,
				Breakdown: Breakdown{
					Experience:   30,
					Skills:       8,
					Availability: 6,
					Seniority:    3,
				},
			},
		},
		{
			name: "unknown availability adds nothing",
			input: Input{
				Experience:   4,
				Skills:       []string{"Data engineering", "SQL"},
				Availability: "Within 30 days",
				Seniority:    Mid,
			},
			expect: Result{
				Score: 59,
				Label: Recommend,
				Breakdown: Breakdown{
					Experience: 40,
					Skills:     16,
					Seniority:  3,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Score(tt.input))
		})
	}
}

func TestScoreAlwaysClamped(t *testing.T) {
	t.Parallel()

	many := make([]string, 1000)
	for i := range many {
		many[i] = "python"
	}

	for _, experience := range []int{math.MinInt, -1, 0, 3, 50, math.MaxInt} {
		for _, availability := range []string{"", AvailabilityImmediate, AvailabilityFreelance} {
			for _, seniority := range []Seniority{Junior, Mid, Senior, "unknown"} {
				res := Score(Input{
					Experience:      experience,
					Skills:          many,
					ExtractedSkills: many,
					Availability:    availability,
					Seniority:       seniority,
				})
				assert.GreaterOrEqual(t, res.Score, MinScore)
				assert.LessOrEqual(t, res.Score, MaxScore)
				assert.Equal(t, Classify(res.Score), res.Label)
			}
		}
	}
}
