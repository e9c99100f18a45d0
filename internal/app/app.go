// Package app holds the session state of the talent pool and wires the
// engines to their collaborators.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/aggregate"
	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/export"
	"github.com/talent-pool/talent-pool/internal/filtering"
	"github.com/talent-pool/talent-pool/internal/logger"
	"github.com/talent-pool/talent-pool/internal/report"
	"github.com/talent-pool/talent-pool/internal/resume"
	"github.com/talent-pool/talent-pool/internal/secrets"
	"github.com/talent-pool/talent-pool/internal/storage"
	"github.com/talent-pool/talent-pool/internal/webhook"
)

// StatusNothingToExport is shown when a CSV export is requested on an empty roster.
const StatusNothingToExport = "Register candidates before exporting."

// ErrNothingToExport is returned by ExportCSV when the roster is empty.
var ErrNothingToExport = errors.New("no candidates to export")

// Enricher turns an optional resume document into an enrichment outcome.
type Enricher interface {
	Enrich(ctx context.Context, doc *resume.Document) candidate.Enrichment
}

// Sender delivers a payload to a webhook URL.
type Sender interface {
	Send(ctx context.Context, url string, payload *webhook.Payload) error
}

// Options are the collaborators of a State. Nil collaborators get in-process defaults.
type Options struct {
	Store      storage.Store
	Enricher   Enricher
	Downloader export.Downloader
	Sender     Sender
	Report     report.Options
	Logger     *zap.Logger
	Now        func() time.Time
}

// State is one session over the roster.
type State struct {
	repo     *candidate.Repository
	criteria filtering.Criteria

	store      storage.Store
	enricher   Enricher
	downloader export.Downloader
	sender     Sender
	report     report.Options
	logger     *zap.Logger
	now        func() time.Time
}

func New(opts Options) *State {
	s := &State{
		repo:       candidate.NewRepository(nil),
		criteria:   filtering.Criteria{}.Normalize(),
		store:      opts.Store,
		enricher:   opts.Enricher,
		downloader: opts.Downloader,
		sender:     opts.Sender,
		report:     opts.Report,
		logger:     logger.WithFields(opts.Logger),
		now:        opts.Now,
	}

	if s.store == nil {
		s.store = storage.NewMemory()
	}
	if s.enricher == nil {
		s.enricher = resume.NewEnricher(resume.NewExtractor(), nil, s.logger)
	}
	if s.downloader == nil {
		s.downloader = &export.Memory{}
	}
	if s.sender == nil {
		s.sender = webhook.New(s.logger, 0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.report.Now == nil {
		s.report.Now = s.now
	}

	return s
}

// Restore loads the roster snapshot and returns how many candidates it holds.
func (s *State) Restore(ctx context.Context) int {
	s.repo.Replace(storage.LoadCandidates(ctx, s.store, s.logger))
	return s.repo.Len()
}

// Register validates the form, enriches it from the optional resume, appends
// the new candidate and persists the roster. A persistence error is returned
// together with the candidate, which stays registered for the session.
func (s *State) Register(ctx context.Context, in candidate.Input, doc *resume.Document) (*candidate.Candidate, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate: %w", err)
	}

	enrichment := s.enricher.Enrich(ctx, doc)
	c := candidate.New(in, enrichment, s.now())
	s.repo.Append(c)

	s.logger.Info("candidate registered",
		logger.CandidateFields(c.ID, c.Area, string(c.ClassificationLabel), c.Score)...,
	)

	if err := storage.SaveCandidates(ctx, s.store, s.repo.Snapshot()); err != nil {
		return c, fmt.Errorf("saving candidates: %w", err)
	}
	return c, nil
}

// Candidates returns the roster in registration order.
func (s *State) Candidates() []*candidate.Candidate {
	return s.repo.Snapshot()
}

// SetCriteria replaces the current filter criteria.
func (s *State) SetCriteria(c filtering.Criteria) {
	s.criteria = c.Normalize()
}

func (s *State) Criteria() filtering.Criteria {
	return s.criteria
}

// Visible returns the candidates matching the current criteria, best score first.
func (s *State) Visible() []*candidate.Candidate {
	return filtering.Query(s.repo.Snapshot(), s.criteria, s.logger)
}

// Explain runs the current criteria and returns the per step statistics and statuses.
func (s *State) Explain() ([]filtering.Step, []filtering.Status) {
	steps := filtering.Steps(s.criteria)
	_, info := filtering.Run(steps, s.repo.Snapshot(), s.logger)
	return info, filtering.Describe(steps)
}

// Status describes the visible roster.
func (s *State) Status() string {
	return report.StatusLine(len(s.Visible()), s.repo.Len())
}

// Charts computes the distributions over the whole roster.
func (s *State) Charts() aggregate.Charts {
	return aggregate.BuildCharts(s.repo.Snapshot(), aggregate.ChartSkills)
}

func (s *State) Metrics() aggregate.Metrics {
	return aggregate.Summarize(s.repo.Snapshot())
}

// ExportCSV exports the whole roster. An empty roster exports nothing and
// returns ErrNothingToExport.
func (s *State) ExportCSV() (string, error) {
	candidates := s.repo.Snapshot()
	if len(candidates) == 0 {
		return "", ErrNothingToExport
	}

	return s.download(export.Blob{
		Filename: export.CSVFilename,
		MIMEType: export.CSVMIMEType,
		Data:     report.CSV(candidates),
	})
}

// ExportReport exports the weekly text summary.
func (s *State) ExportReport() (string, error) {
	return s.download(export.Blob{
		Filename: export.ReportFilename,
		MIMEType: export.ReportMIMEType,
		Data:     report.Summary(s.repo.Snapshot(), s.report),
	})
}

func (s *State) download(b export.Blob) (string, error) {
	path, err := s.downloader.Download(b)
	if err != nil {
		return "", fmt.Errorf("exporting %s: %w", b.Filename, err)
	}
	s.logger.Info("file exported", zap.String("path", path))
	return path, nil
}

// Send pushes the roster to the webhook and returns the status to show.
// Nothing local changes whatever the outcome.
func (s *State) Send(ctx context.Context, url secrets.Source, reportEmail string) (string, error) {
	if url.Name == "" {
		url.Name = "webhook url"
	}

	target, err := secrets.Load(url)
	if errors.Is(err, secrets.ErrNotConfigured) {
		return webhook.Status(webhook.ErrMissingURL), webhook.ErrMissingURL
	}
	if err != nil {
		return webhook.Status(err), err
	}

	s.logger.Info(webhook.StatusSending, zap.Int("candidates", s.repo.Len()))
	payload := webhook.BuildPayload(s.repo.Snapshot(), reportEmail, s.now())
	err = s.sender.Send(ctx, target, payload)
	if err != nil {
		s.logger.Warn("sending report failed", zap.Error(err))
	}
	return webhook.Status(err), err
}

// Theme returns the stored theme.
func (s *State) Theme(ctx context.Context) string {
	return storage.LoadTheme(ctx, s.store, s.logger)
}

// SetTheme stores theme, which must be dark or light.
func (s *State) SetTheme(ctx context.Context, theme string) error {
	return storage.SaveTheme(ctx, s.store, theme)
}

// ToggleTheme flips the stored theme and returns the new one.
func (s *State) ToggleTheme(ctx context.Context) (string, error) {
	next := storage.ThemeDark
	if s.Theme(ctx) == storage.ThemeDark {
		next = storage.ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
