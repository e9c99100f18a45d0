package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/app"
	"github.com/talent-pool/talent-pool/internal/export"
	"github.com/talent-pool/talent-pool/internal/logger"
	"github.com/talent-pool/talent-pool/internal/report"
	"github.com/talent-pool/talent-pool/internal/resume"
	"github.com/talent-pool/talent-pool/internal/storage"
	"github.com/talent-pool/talent-pool/internal/webhook"
)

// session is everything a command needs: config, logger and the restored state.
type session struct {
	config *Config
	logger *zap.Logger
	store  storage.Store
	state  *app.State
}

func openSession(ctx context.Context) *session {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the talent-pool", zap.String("version", version), zap.String("store", config.Store))

	loc, err := time.LoadLocation(config.Report.Timezone)
	if err != nil {
		logger.Fatal("loading report timezone", zap.String("timezone", config.Report.Timezone), zap.Error(err))
	}

	store, err := storage.Open(ctx, config.Store)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}

	state := app.New(app.Options{
		Store:      store,
		Enricher:   resume.NewEnricher(resume.NewExtractor(), nil, logger),
		Downloader: export.NewDir(config.ExportDir, logger),
		Sender:     webhook.New(logger, config.Webhook.Timeout),
		Report:     report.Options{Locale: config.Report.Locale, Location: loc},
		Logger:     logger,
	})

	count := state.Restore(ctx)
	logger.Debug("roster restored", zap.Int("count", count))

	return &session{config: config, logger: logger, store: store, state: state}
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing store", zap.Error(err))
	}
	_ = s.logger.Sync()
}
