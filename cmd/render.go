package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/talent-pool/talent-pool/internal/aggregate"
	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/filtering"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func renderCandidates(w io.Writer, candidates []*candidate.Candidate) {
	table := newTable(w, "Name", "Area", "Seniority", "Availability", "Score", "Classification", "Skills")
	for _, c := range candidates {
		table.Append([]string{
			c.Name,
			c.Area,
			string(c.Seniority),
			c.Availability,
			strconv.Itoa(c.Score),
			string(c.ClassificationLabel),
			strings.Join(c.Skills, ", "),
		})
	}
	table.Render()
}

func renderCounts(w io.Writer, title string, counts *aggregate.Counts) {
	table := newTable(w, title, "Candidates")
	for _, e := range counts.Entries() {
		table.Append([]string{e.Key, strconv.Itoa(e.Count)})
	}
	table.Render()
}

func renderMetrics(w io.Writer, m aggregate.Metrics) {
	table := newTable(w, "Total", "Available now", "Unique skills")
	table.Append([]string{strconv.Itoa(m.Total), strconv.Itoa(m.AvailableNow), strconv.Itoa(m.UniqueSkills)})
	table.Render()
}

func renderSteps(w io.Writer, steps []filtering.Step, statuses []filtering.Status) {
	table := newTable(w, "Filter", "Enabled", "Details", "Initial", "Dropped", "Left")
	ran := make(map[string]filtering.Step, len(steps))
	for _, s := range steps {
		ran[s.Name] = s
	}
	for _, st := range statuses {
		row := []string{st.Name, strconv.FormatBool(st.Enabled), formatDetails(st.Details), "-", "-", "-"}
		if s, ok := ran[st.Name]; ok {
			row[3], row[4], row[5] = strconv.Itoa(s.Initial), strconv.Itoa(s.Dropped), strconv.Itoa(s.Left)
		}
		table.Append(row)
	}
	table.Render()
}

func renderRegistered(w io.Writer, c *candidate.Candidate) {
	fmt.Fprintf(w, "Registered %s (%s)\n", c.Name, c.ID)

	b := c.Breakdown()
	table := newTable(w, "Term", "Points")
	table.Append([]string{"Experience", strconv.Itoa(b.Experience)})
	table.Append([]string{"High value skills", strconv.Itoa(b.Skills)})
	table.Append([]string{"Resume keywords", strconv.Itoa(b.Extracted)})
	table.Append([]string{"Availability", strconv.Itoa(b.Availability)})
	table.Append([]string{"Seniority", strconv.Itoa(b.Seniority)})
	table.SetFooter([]string{"Score", strconv.Itoa(c.Score)})
	table.Render()

	fmt.Fprintf(w, "Seniority: %s\nClassification: %s\n", c.Seniority, c.ClassificationLabel)
	if len(c.ExtractedSkills) > 0 {
		fmt.Fprintf(w, "Resume keywords: %s\n", strings.Join(c.ExtractedSkills, ", "))
	}
}

func formatDetails(details map[string]string) string {
	keys := slices.Sorted(maps.Keys(details))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+details[k])
	}
	return strings.Join(parts, ", ")
}
