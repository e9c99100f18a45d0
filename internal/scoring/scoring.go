// Package scoring infers the seniority tier of a candidate and computes the
// heuristic fit score and classification label.
package scoring

import (
	"strings"

	"github.com/talent-pool/talent-pool/internal/keywords"
)

// Seniority is one of the three fixed tiers.
type Seniority string

const (
	Junior Seniority = "Junior"
	Mid    Seniority = "Mid"
	Senior Seniority = "Senior"
)

// Label is the human-facing bucket derived from a score.
type Label string

const (
	HighPriority Label = "High priority"
	Recommend    Label = "Recommend"
	Potential    Label = "Potential"
	Monitor      Label = "Monitor"
)

// Availability labels that contribute to the score.
const (
	AvailabilityImmediate = "Immediate"
	AvailabilityFreelance = "Freelance"
)

const (
	MinScore = 0
	MaxScore = 100

	seniorExperience = 7
	midExperience    = 3

	experienceWeight = 10
	experienceCap    = 40
	skillWeight      = 8
	skillCap         = 32
	extractedWeight  = 4
	extractedCap     = 12

	immediateBonus = 10
	freelanceBonus = 6
	seniorBonus    = 6
	midBonus       = 3
)

// Input holds the candidate attributes the score depends on.
// Seniority must already be inferred.
type Input struct {
	Experience      int
	Skills          []string
	ExtractedSkills []string
	Availability    string
	Seniority       Seniority
}

// Breakdown lists the contribution of each term.
type Breakdown struct {
	Experience   int `json:"experience"`
	Skills       int `json:"skills"`
	Extracted    int `json:"extracted"`
	Availability int `json:"availability"`
	Seniority    int `json:"seniority"`
}

// Result is the outcome of scoring a candidate.
type Result struct {
	Score     int       `json:"score"`
	Label     Label     `json:"label"`
	Breakdown Breakdown `json:"breakdown"`
}

// InferSeniority returns Senior for 7+ years or when the history or skills mention
// a leadership keyword, Mid for 3+ years and Junior otherwise.
func InferSeniority(experience int, history string, skills []string) Seniority {
	text := strings.ToLower(history + " " + strings.Join(skills, " "))

	if experience >= seniorExperience || keywords.ContainsAny(text, keywords.Leadership) {
		return Senior
	}
	if experience >= midExperience {
		return Mid
	}
	return Junior
}

// Score computes the fit score in [0, 100] and its classification label.
func Score(in Input) Result {
	b := Breakdown{
		Experience:   ExperienceTerm(in.Experience),
		Skills:       capped(countHighValue(in.Skills), skillWeight, skillCap),
		Extracted:    capped(len(in.ExtractedSkills), extractedWeight, extractedCap),
		Availability: availabilityTerm(in.Availability),
		Seniority:    seniorityTerm(in.Seniority),
	}

	total := clamp(b.Experience+b.Skills+b.Extracted+b.Availability+b.Seniority, MinScore, MaxScore)

	return Result{
		Score:     total,
		Label:     Classify(total),
		Breakdown: b,
	}
}

// ExperienceTerm is min(years*10, 40). Negative experience counts as zero.
func ExperienceTerm(years int) int {
	return capped(years, experienceWeight, experienceCap)
}

// Classify maps a score to its label.
func Classify(score int) Label {
	switch {
	case score >= 75:
		return HighPriority
	case score >= 55:
		return Recommend
	case score >= 40:
		return Potential
	default:
		return Monitor
	}
}

func countHighValue(skills []string) int {
	matches := 0
	for _, skill := range skills {
		if keywords.ContainsAny(strings.ToLower(skill), keywords.HighValue) {
			matches++
		}
	}
	return matches
}

func availabilityTerm(availability string) int {
	switch availability {
	case AvailabilityImmediate:
		return immediateBonus
	case AvailabilityFreelance:
		return freelanceBonus
	default:
		return 0
	}
}

func seniorityTerm(s Seniority) int {
	switch s {
	case Senior:
		return seniorBonus
	case Mid:
		return midBonus
	default:
		return 0
	}
}

// capped returns min(n*weight, limit) without overflowing on large n.
func capped(n, weight, limit int) int {
	if n <= 0 {
		return 0
	}
	if n >= (limit+weight-1)/weight {
		return limit
	}
	return n * weight
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
