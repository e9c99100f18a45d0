package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/app"
)

const (
	exportCSV    = "csv"
	exportReport = "report"
)

var exportCmd = &cobra.Command{
	Use:       "export csv|report",
	Short:     "Write the roster sheet or the weekly report into the export dir",
	ValidArgs: []string{exportCSV, exportReport},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := openSession(ctx)
		defer s.Close()

		if err := exportKind(cmd.OutOrStdout(), s, args[0]); err != nil {
			s.logger.Fatal("exporting", zap.String("kind", args[0]), zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "directory to write into (default is export-dir from config)")
	viper.BindPFlag("export-dir", exportCmd.Flags().Lookup("out"))
}

func exportKind(w io.Writer, s *session, kind string) error {
	var (
		path string
		err  error
	)

	switch kind {
	case exportCSV:
		path, err = s.state.ExportCSV()
		if errors.Is(err, app.ErrNothingToExport) {
			fmt.Fprintln(w, app.StatusNothingToExport)
			return nil
		}
	case exportReport:
		path, err = s.state.ExportReport()
	default:
		return fmt.Errorf("unknown export %q", kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Exported %s\n", path)
	return nil
}
