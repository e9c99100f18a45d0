package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/filtering"
)

const (
	PromptList        = "List candidates"
	PromptFilter      = "Change filters"
	PromptStats       = "Show stats"
	PromptExportCSV   = "Export CSV"
	PromptExportTXT   = "Export weekly report"
	PromptSend        = "Send to webhook"
	PromptToggleTheme = "Toggle theme"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptList, PromptFilter, PromptStats, PromptExportCSV, PromptExportTXT, PromptSend, PromptToggleTheme, PromptExit},
	Size:  8,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the roster interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		browse(cmd)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)

	addCriteriaFlags(browseCmd.Flags())
}

func browse(cmd *cobra.Command) {
	ctx := context.Background()
	s := openSession(ctx)
	defer s.Close()

	criteria, err := criteriaFromFlags(cmd.Flags())
	if err != nil {
		s.logger.Fatal("parsing filters", zap.Error(err))
	}
	s.state.SetCriteria(criteria)

	s.logger.Info("roster loaded", zap.Int("count", len(s.state.Candidates())), zap.String("theme", s.state.Theme(ctx)))

	for {
		_, action, err := prompt.Run()
		if err != nil {
			s.logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, cmd, s, action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			s.logger.Error("action failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, cmd *cobra.Command, s *session, action string) error {
	out := cmd.OutOrStdout()

	switch action {
	case PromptList:
		renderCandidates(out, s.state.Visible())
		fmt.Fprintln(out, s.state.Status())
		return nil
	case PromptFilter:
		return editFilters(s)
	case PromptStats:
		stats(out, s)
		return nil
	case PromptExportCSV:
		return exportKind(out, s, exportCSV)
	case PromptExportTXT:
		return exportKind(out, s, exportReport)
	case PromptSend:
		return send(ctx, out, s)
	case PromptToggleTheme:
		theme, err := s.state.ToggleTheme(ctx)
		if err != nil {
			return err
		}
		s.logger.Info("theme changed", zap.String("theme", theme))
		return nil
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// editFilters asks for every criterion, keeping the current value on an empty answer.
func editFilters(s *session) error {
	current := s.state.Criteria()
	raw := map[string]any{
		"search":       current.Search,
		"area":         current.Area,
		"seniority":    current.Seniority,
		"availability": current.Availability,
		"skills":       strings.Join(current.Skills, ", "),
		"min-score":    strconv.Itoa(current.MinScore),
	}

	for _, name := range criteriaFlags {
		p := promptui.Prompt{
			Label:   name,
			Default: raw[name].(string),
		}
		value, err := p.Run()
		if err != nil {
			return err
		}
		raw[name] = value
	}

	criteria, err := filtering.DecodeCriteria(raw)
	if err != nil {
		return err
	}
	s.state.SetCriteria(criteria)
	s.logger.Info("filters changed", zap.String("status", s.state.Status()))
	return nil
}
