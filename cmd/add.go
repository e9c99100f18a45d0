package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/resume"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a candidate and print its score",
	Run: func(cmd *cobra.Command, _ []string) {
		add(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("name", "n", "", "full name (required)")
	addCmd.Flags().String("email", "", "e-mail")
	addCmd.Flags().String("phone", "", "phone")
	addCmd.Flags().StringP("area", "a", "", "area: "+strings.Join(candidate.Areas, ", "))
	addCmd.Flags().IntP("experience", "e", 0, "years of experience")
	addCmd.Flags().String("availability", candidate.Availabilities[0], "availability: "+strings.Join(candidate.Availabilities, ", "))
	addCmd.Flags().String("skills", "", "comma separated skills")
	addCmd.Flags().String("history", "", "professional history")
	addCmd.Flags().StringP("resume", "r", "", "resume file (txt, pdf, doc, docx, rtf, odt)")

	addCmd.MarkFlagRequired("name")
}

func add(cmd *cobra.Command) {
	ctx := context.Background()
	s := openSession(ctx)
	defer s.Close()

	flags := cmd.Flags()
	in := candidate.Input{}
	in.Name, _ = flags.GetString("name")
	in.Email, _ = flags.GetString("email")
	in.Phone, _ = flags.GetString("phone")
	in.Area, _ = flags.GetString("area")
	in.Experience, _ = flags.GetInt("experience")
	in.Availability, _ = flags.GetString("availability")
	in.Skills, _ = flags.GetString("skills")
	in.History, _ = flags.GetString("history")

	var doc *resume.Document
	if path, _ := flags.GetString("resume"); path != "" {
		var err error
		doc, err = resume.ReadFile(path)
		if err != nil {
			// The candidate is still registered without resume data.
			s.logger.Warn("reading resume file", zap.String("path", path), zap.Error(err))
		}
	}

	c, err := s.state.Register(ctx, in, doc)
	if c != nil {
		renderRegistered(cmd.OutOrStdout(), c)
	}
	if err != nil {
		s.logger.Fatal("registering candidate", zap.Error(err))
	}
}
