// Package report renders the roster exports: the CSV sheet and the weekly text summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/talent-pool/talent-pool/internal/aggregate"
	"github.com/talent-pool/talent-pool/internal/candidate"
)

// Options control the locale dependent parts of the summary.
type Options struct {
	// Locale is a BCP 47 tag such as "en-US" or "pt-BR".
	Locale string
	// Location is the time zone of the generation timestamp. UTC when nil.
	Location *time.Location
	// Now returns the generation time. time.Now when nil.
	Now func() time.Time
}

var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.BrazilianPortuguese,
		language.EuropeanPortuguese,
		language.German,
		language.French,
		language.Spanish,
	}
	localeMatcher = language.NewMatcher(supportedLocales)

	// layouts mirror the short date-time style of each locale.
	layouts = map[language.Tag]string{
		language.AmericanEnglish:     "1/2/2006, 3:04:05 PM",
		language.BritishEnglish:      "02/01/2006, 15:04:05",
		language.BrazilianPortuguese: "02/01/2006, 15:04:05",
		language.EuropeanPortuguese:  "02/01/2006, 15:04:05",
		language.German:              "2.1.2006, 15:04:05",
		language.French:              "02/01/2006 15:04:05",
		language.Spanish:             "2/1/2006, 15:04:05",
	}
)

// FormatTimestamp formats t in the short date-time style of the closest supported locale.
// Unknown or empty locales fall back to American English.
func FormatTimestamp(t time.Time, locale string) string {
	tag := language.AmericanEnglish
	if parsed, err := language.Parse(locale); err == nil {
		_, index, confidence := localeMatcher.Match(parsed)
		if confidence != language.No {
			tag = supportedLocales[index]
		}
	}
	return t.Format(layouts[tag])
}

// Summary renders the weekly text report.
func Summary(candidates []*candidate.Candidate, opts Options) []byte {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	byArea := aggregate.CountBy(candidates, candidate.AreaField)
	bySeniority := aggregate.CountBy(candidates, candidate.SeniorityField)
	topSkills := aggregate.CountSkills(candidates).Top(aggregate.ReportSkills)

	skills := make([]string, 0, len(topSkills))
	for _, s := range topSkills {
		skills = append(skills, fmt.Sprintf("- %s: %d", s.Skill, s.Count))
	}

	var b strings.Builder
	b.WriteString("Weekly report - Talent Pool\n\n")
	fmt.Fprintf(&b, "Total candidates: %d\n\n", len(candidates))
	fmt.Fprintf(&b, "Distribution by area:\n%s\n\n", formatCounts(byArea))
	fmt.Fprintf(&b, "Distribution by seniority:\n%s\n\n", formatCounts(bySeniority))
	fmt.Fprintf(&b, "Most common skills:\n%s\n\n", strings.Join(skills, "\n"))
	fmt.Fprintf(&b, "Generated at %s.", FormatTimestamp(now().In(loc), opts.Locale))

	return []byte(b.String())
}

func formatCounts(counts *aggregate.Counts) string {
	lines := make([]string, 0, counts.Len())
	for _, e := range counts.Entries() {
		lines = append(lines, fmt.Sprintf("- %s: %d", e.Key, e.Count))
	}
	return strings.Join(lines, "\n")
}

// StatusLine describes how many candidates the current filters show.
func StatusLine(found, total int) string {
	switch {
	case total == 0:
		return "No candidates registered yet."
	case found == 0:
		return "No candidate matches the current filters."
	default:
		return fmt.Sprintf("%d candidates found (of %d).", found, total)
	}
}
