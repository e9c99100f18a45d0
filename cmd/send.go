package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/secrets"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Push the roster and its charts to a webhook or spreadsheet endpoint",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		s := openSession(ctx)
		defer s.Close()

		if err := send(ctx, cmd.OutOrStdout(), s); err != nil {
			s.logger.Fatal("sending report", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringP("url", "u", "", "webhook url")
	sendCmd.Flags().String("url-file", "", "file holding the webhook url, wins over --url")
	sendCmd.Flags().String("email", "", "address the receiver should mail the report to")

	viper.BindPFlag("webhook.url", sendCmd.Flags().Lookup("url"))
	viper.BindPFlag("webhook.url-file", sendCmd.Flags().Lookup("url-file"))
	viper.BindPFlag("webhook.email", sendCmd.Flags().Lookup("email"))
}

func send(ctx context.Context, w io.Writer, s *session) error {
	cfg := s.config.Webhook
	status, err := s.state.Send(ctx, secrets.Source{
		Name:  "webhook url",
		Value: cfg.URL,
		File:  cfg.URLFile,
	}, cfg.Email)

	fmt.Fprintln(w, status)
	return err
}
