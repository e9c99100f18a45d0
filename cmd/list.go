package cmd

import (
	"context"
	"fmt"
	"maps"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/filtering"
)

var criteriaFlags = []string{"search", "area", "seniority", "availability", "skills", "min-score"}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates matching the filters, best score first",
	Run: func(cmd *cobra.Command, _ []string) {
		list(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	addCriteriaFlags(listCmd.Flags())
	listCmd.Flags().Bool("explain", false, "print how many candidates every filter dropped")
}

func addCriteriaFlags(flags *pflag.FlagSet) {
	flags.StringP("search", "q", "", "free text search over name, skills, history and resume summary")
	flags.StringP("area", "a", "", "exact area")
	flags.String("seniority", "", "exact seniority: Junior, Mid or Senior")
	flags.String("availability", "", "exact availability")
	flags.String("skills", "", "comma separated skills, all must match")
	flags.Int("min-score", 0, "minimum score, 0-100")
}

// criteriaFromFlags starts from the configured filters and overrides them with
// the flags set on the command line.
func criteriaFromFlags(flags *pflag.FlagSet) (filtering.Criteria, error) {
	raw := maps.Clone(viper.GetStringMap("filters"))
	if raw == nil {
		raw = map[string]any{}
	}
	for _, name := range criteriaFlags {
		if f := flags.Lookup(name); f != nil && f.Changed {
			raw[name] = f.Value.String()
		}
	}
	return filtering.DecodeCriteria(raw)
}

func list(cmd *cobra.Command) {
	ctx := context.Background()
	s := openSession(ctx)
	defer s.Close()

	criteria, err := criteriaFromFlags(cmd.Flags())
	if err != nil {
		s.logger.Fatal("parsing filters", zap.Error(err))
	}
	s.state.SetCriteria(criteria)

	out := cmd.OutOrStdout()
	renderCandidates(out, s.state.Visible())
	fmt.Fprintln(out, s.state.Status())

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		steps, statuses := s.state.Explain()
		renderSteps(out, steps, statuses)
	}
}
