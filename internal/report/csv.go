package report

import (
	"strconv"
	"strings"

	"github.com/talent-pool/talent-pool/internal/candidate"
)

const (
	csvSeparator    = ";"
	skillsSeparator = " | "
)

// CSVHeader is the fixed header row of the roster export.
var CSVHeader = []string{
	"Name",
	"E-mail",
	"Phone",
	"Area",
	"Experience (years)",
	"Availability",
	"Seniority",
	"Skills",
	"Classification",
	"Score",
}

// CSV renders the roster in repository order. Every cell is quoted with inner
// quotes doubled, columns are separated by semicolons and rows by newlines.
func CSV(candidates []*candidate.Candidate) []byte {
	var b strings.Builder
	writeRow(&b, CSVHeader)

	for _, c := range candidates {
		b.WriteByte('\n')
		writeRow(&b, []string{
			c.Name,
			c.Email,
			c.Phone,
			c.Area,
			strconv.Itoa(c.Experience),
			c.Availability,
			string(c.Seniority),
			strings.Join(c.Skills, skillsSeparator),
			string(c.ClassificationLabel),
			strconv.Itoa(c.Score),
		})
	}

	return []byte(b.String())
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(csvSeparator)
		}
		b.WriteString(QuoteCell(cell))
	}
}

// QuoteCell wraps a value in double quotes, doubling the quotes it contains.
func QuoteCell(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
