package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/talent-pool/talent-pool/internal/aggregate"
	"github.com/talent-pool/talent-pool/internal/candidate"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print roster metrics and distributions",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		s := openSession(ctx)
		defer s.Close()

		stats(cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func stats(w io.Writer, s *session) {
	charts := s.state.Charts()

	renderMetrics(w, s.state.Metrics())
	renderCounts(w, "Area", charts.Area)
	renderCounts(w, "Seniority", charts.Seniority)
	renderCounts(w, "Classification", aggregate.CountBy(s.state.Candidates(), candidate.ClassificationField))
	renderCounts(w, "Skill", charts.Skills)
}
