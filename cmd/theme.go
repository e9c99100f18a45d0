package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/storage"
)

const themeToggle = "toggle"

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the stored display theme",
	ValidArgs: []string{storage.ThemeDark, storage.ThemeLight, themeToggle},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openSession(ctx)
		defer s.Close()

		theme := s.state.Theme(ctx)
		var err error
		switch {
		case len(args) == 0:
		case args[0] == themeToggle:
			theme, err = s.state.ToggleTheme(ctx)
		default:
			theme = args[0]
			err = s.state.SetTheme(ctx, theme)
		}
		if err != nil {
			s.logger.Fatal("saving theme", zap.Error(err))
		}

		fmt.Fprintln(cmd.OutOrStdout(), theme)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
