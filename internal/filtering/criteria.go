package filtering

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/scoring"
)

// Criteria is the current filter state. It is replaced as a whole on every change.
type Criteria struct {
	Search       string   `mapstructure:"search"`
	Area         string   `mapstructure:"area"`
	Seniority    string   `mapstructure:"seniority"`
	Availability string   `mapstructure:"availability"`
	Skills       []string `mapstructure:"skills"`
	MinScore     int      `mapstructure:"min-score"`
}

// Normalize trims the criteria, lowercases the search string, drops empty skills
// and clamps the minimum score into the score range.
func (c Criteria) Normalize() Criteria {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, candidate.SplitItems(s)...)
	}

	return Criteria{
		Search:       strings.ToLower(strings.TrimSpace(c.Search)),
		Area:         strings.TrimSpace(c.Area),
		Seniority:    strings.TrimSpace(c.Seniority),
		Availability: strings.TrimSpace(c.Availability),
		Skills:       skills,
		MinScore:     max(scoring.MinScore, min(c.MinScore, scoring.MaxScore)),
	}
}

// DecodeCriteria builds criteria from loosely typed values such as flags,
// config sections or environment variables. Skills may be a list or a comma
// separated string and numbers may be strings.
func DecodeCriteria(raw map[string]any) (Criteria, error) {
	var c Criteria

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &c,
		DecodeHook:       mapstructure.DecodeHookFuncType(commaSeparatedHook),
	})
	if err != nil {
		return Criteria{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Criteria{}, fmt.Errorf("decoding filter criteria: %w", err)
	}

	return c.Normalize(), nil
}

func commaSeparatedHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	return candidate.SplitItems(data.(string)), nil
}
