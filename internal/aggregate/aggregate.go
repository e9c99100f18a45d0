// Package aggregate computes group counts and skill frequencies over a roster.
package aggregate

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/scoring"
)

const (
	// ChartSkills is how many skills a chart shows.
	ChartSkills = 8
	// ReportSkills is how many skills reports and the webhook payload carry.
	ReportSkills = 10
)

// Entry is a single key with its count.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts maps keys to counts, keeping the order in which keys were first seen.
type Counts struct {
	entries []Entry
	index   map[string]int
}

// Inc adds one to key, appending it when seen for the first time.
func (c *Counts) Inc(key string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Count: 1})
}

// Get returns the count for key.
func (c *Counts) Get(key string) int {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Entries returns the entries in first-seen order.
func (c *Counts) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Keys returns the keys in first-seen order.
func (c *Counts) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func (c *Counts) Len() int { return len(c.entries) }

// MarshalJSON encodes the counts as a JSON object preserving key order.
func (c *Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CountBy groups candidates by a field, empty values under candidate.NotInformed.
func CountBy(candidates []*candidate.Candidate, field string) *Counts {
	counts := &Counts{}
	for _, c := range candidates {
		key := c.Field(field)
		if key == "" {
			key = candidate.NotInformed
		}
		counts.Inc(key)
	}
	return counts
}

// SkillCount is the number of candidates declaring a skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillCounts is sorted by count descending.
type SkillCounts []SkillCount

// Top returns at most n entries.
func (s SkillCounts) Top(n int) SkillCounts {
	if n < 0 || n >= len(s) {
		return s
	}
	return s[:n]
}

// Counts converts the ranking into ordered counts for charts.
func (s SkillCounts) Counts() *Counts {
	counts := &Counts{}
	for _, sc := range s {
		counts.entries = append(counts.entries, Entry{Key: sc.Skill, Count: sc.Count})
	}
	counts.index = make(map[string]int, len(counts.entries))
	for i, e := range counts.entries {
		counts.index[e.Key] = i
	}
	return counts
}

// CountSkills counts trimmed, non-empty skills case sensitively and ranks them by
// count descending. Ties keep first-seen order.
func CountSkills(candidates []*candidate.Candidate) SkillCounts {
	counts := &Counts{}
	for _, c := range candidates {
		for _, skill := range c.Skills {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			counts.Inc(skill)
		}
	}

	ranking := make(SkillCounts, 0, counts.Len())
	for _, e := range counts.entries {
		ranking = append(ranking, SkillCount{Skill: e.Key, Count: e.Count})
	}
	slices.SortStableFunc(ranking, func(a, b SkillCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranking
}

// Metrics are the headline numbers of the roster.
type Metrics struct {
	Total        int `json:"total"`
	AvailableNow int `json:"availableNow"`
	UniqueSkills int `json:"uniqueSkills"`
}

// Summarize computes the headline metrics. Unique skills are counted case insensitively.
func Summarize(candidates []*candidate.Candidate) Metrics {
	m := Metrics{Total: len(candidates)}
	unique := mapset.NewThreadUnsafeSet[string]()
	for _, c := range candidates {
		if c.Availability == scoring.AvailabilityImmediate || c.Availability == scoring.AvailabilityFreelance {
			m.AvailableNow++
		}
		for _, skill := range c.Skills {
			unique.Add(strings.ToLower(skill))
		}
	}
	m.UniqueSkills = unique.Cardinality()
	return m
}

// Charts holds the distributions rendered next to the roster.
type Charts struct {
	Area      *Counts `json:"area"`
	Seniority *Counts `json:"seniority"`
	Skills    *Counts `json:"skills"`
}

// BuildCharts computes the area, seniority and top skill distributions.
func BuildCharts(candidates []*candidate.Candidate, topSkills int) Charts {
	return Charts{
		Area:      CountBy(candidates, candidate.AreaField),
		Seniority: CountBy(candidates, candidate.SeniorityField),
		Skills:    CountSkills(candidates).Top(topSkills).Counts(),
	}
}
