package candidate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/talent-pool/talent-pool/internal/scoring"
)

const (
	// CreatedAtLayout matches the ISO-8601 form with millisecond precision.
	CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"
	// SummaryLimit is the maximum number of runes kept from resume text.
	SummaryLimit = 1800
	// NotInformed groups records with an empty value.
	NotInformed = "Not informed"

	AreaField           = "area"
	SeniorityField      = "seniority"
	AvailabilityField   = "availability"
	ClassificationField = "classification"
)

// Areas is the fixed list of area options.
var Areas = []string{
	"Technology",
	"Data",
	"Design",
	"Product",
	"Marketing",
	"Sales",
	"Operations",
	"People",
}

// Availabilities is the fixed list of availability options.
var Availabilities = []string{
	scoring.AvailabilityImmediate,
	scoring.AvailabilityFreelance,
	"Within 30 days",
	"Unavailable",
}

// Candidate is one person tracked for hiring. Records are never modified after creation.
type Candidate struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	Phone               string            `json:"phone"`
	Area                string            `json:"area"`
	Experience          int               `json:"experience"`
	Availability        string            `json:"availability"`
	Skills              []string          `json:"skills"`
	History             string            `json:"history"`
	CreatedAt           string            `json:"createdAt"`
	ExtractedSkills     []string          `json:"extractedSkills"`
	ExtractedSummary    string            `json:"extractedSummary"`
	Seniority           scoring.Seniority `json:"seniority"`
	Score               int               `json:"score"`
	ClassificationLabel scoring.Label     `json:"classificationLabel"`
}

// Input is the raw registration form.
type Input struct {
	Name         string
	Email        string
	Phone        string
	Area         string
	Experience   int
	Availability string
	// Skills is the comma separated list of declared skills.
	Skills  string
	History string
}

// Enrichment is the outcome of reading a resume document. A failed or skipped
// read has Ok set to false and leaves the extracted fields of the candidate empty.
type Enrichment struct {
	Ok       bool
	Text     string
	Keywords []string
	Err      error
}

// Enriched returns a successful enrichment.
func Enriched(text string, keywords []string) Enrichment {
	return Enrichment{Ok: true, Text: text, Keywords: keywords}
}

// NotEnriched returns a failed enrichment. A nil error means no document was supplied.
func NotEnriched(err error) Enrichment {
	return Enrichment{Err: err}
}

var (
	ErrNameRequired        = errors.New("name is required")
	ErrNegativeExperience  = errors.New("experience must not be negative")
	ErrUnknownArea         = errors.New("unknown area")
	ErrUnknownAvailability = errors.New("unknown availability")
)

// Validate checks the form level constraints.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if in.Experience < 0 {
		return ErrNegativeExperience
	}
	if in.Area != "" && !slices.Contains(Areas, in.Area) {
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownArea, in.Area, strings.Join(Areas, ", "))
	}
	if !slices.Contains(Availabilities, in.Availability) {
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownAvailability, in.Availability, strings.Join(Availabilities, ", "))
	}
	return nil
}

// New builds a candidate from the form and the enrichment outcome. Derived
// fields are computed here once and never recomputed.
func New(in Input, e Enrichment, now time.Time) *Candidate {
	c := &Candidate{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Area:             in.Area,
		Experience:       in.Experience,
		Availability:     in.Availability,
		Skills:           SplitItems(in.Skills),
		History:          strings.TrimSpace(in.History),
		CreatedAt:        now.UTC().Format(CreatedAtLayout),
		ExtractedSkills:  []string{},
		ExtractedSummary: "",
	}

	if e.Ok {
		c.ExtractedSummary = truncate(strings.TrimSpace(e.Text), SummaryLimit)
		c.ExtractedSkills = append(c.ExtractedSkills, e.Keywords...)
		c.Skills = append(c.Skills, e.Keywords...)
	}
	c.Skills = Deduplicate(c.Skills)

	c.Seniority = scoring.InferSeniority(c.Experience, c.History, c.Skills)
	res := scoring.Score(scoring.Input{
		Experience:      c.Experience,
		Skills:          c.Skills,
		ExtractedSkills: c.ExtractedSkills,
		Availability:    c.Availability,
		Seniority:       c.Seniority,
	})
	c.Score = res.Score
	c.ClassificationLabel = res.Label

	return c
}

// Field returns the value of a groupable field.
func (c *Candidate) Field(name string) string {
	switch name {
	case AreaField:
		return c.Area
	case SeniorityField:
		return string(c.Seniority)
	case AvailabilityField:
		return c.Availability
	case ClassificationField:
		return string(c.ClassificationLabel)
	default:
		return ""
	}
}

// Breakdown recomputes the score terms for display. It does not change the record.
func (c *Candidate) Breakdown() scoring.Breakdown {
	return scoring.Score(scoring.Input{
		Experience:      c.Experience,
		Skills:          c.Skills,
		ExtractedSkills: c.ExtractedSkills,
		Availability:    c.Availability,
		Seniority:       c.Seniority,
	}).Breakdown
}

// SearchText is the lowercased text the free text search runs against.
func (c *Candidate) SearchText() string {
	parts := []string{c.Name, c.Area, string(c.Seniority), strings.Join(c.Skills, " "), c.History, c.ExtractedSummary}
	return strings.ToLower(strings.Join(parts, " "))
}

// SplitItems splits a comma separated list, trimming items and dropping empty ones.
func SplitItems(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Deduplicate keeps the first occurrence of every entry. Comparison is case sensitive.
func Deduplicate(list []string) []string {
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(list))
	out := make([]string, 0, len(list))
	for _, item := range list {
		if seen.Add(item) {
			out = append(out, item)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
