// Package webhook pushes the roster summary to an external HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/aggregate"
	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/logger"
)

const (
	contentType    = "application/json"
	userAgent      = "talent-pool"
	defaultTimeout = 15 * time.Second

	StatusMissingURL = "Provide the webhook or spreadsheet URL."
	StatusSending    = "Sending data..."
	StatusSent       = "Report sent successfully!"
	StatusFailed     = "Failed to send data. Check the URL."
)

// ErrMissingURL is returned when no destination is configured.
var ErrMissingURL = errors.New("webhook url is not configured")

// Charts are the aggregates attached to the payload.
type Charts struct {
	Area      *aggregate.Counts     `json:"area"`
	Seniority *aggregate.Counts     `json:"seniority"`
	Skills    aggregate.SkillCounts `json:"skills"`
}

// Payload is the JSON document posted to the webhook.
type Payload struct {
	TotalCandidates int                    `json:"totalCandidates"`
	GeneratedAt     string                 `json:"generatedAt"`
	Candidates      []*candidate.Candidate `json:"candidates"`
	Charts          Charts                 `json:"charts"`
	ReportEmail     string                 `json:"reportEmail"`
}

// BuildPayload assembles the payload for the full roster.
func BuildPayload(candidates []*candidate.Candidate, reportEmail string, now time.Time) *Payload {
	if candidates == nil {
		candidates = []*candidate.Candidate{}
	}
	return &Payload{
		TotalCandidates: len(candidates),
		GeneratedAt:     now.UTC().Format(candidate.CreatedAtLayout),
		Candidates:      candidates,
		Charts: Charts{
			Area:      aggregate.CountBy(candidates, candidate.AreaField),
			Seniority: aggregate.CountBy(candidates, candidate.SeniorityField),
			Skills:    aggregate.CountSkills(candidates).Top(aggregate.ReportSkills),
		},
		ReportEmail: strings.TrimSpace(reportEmail),
	}
}

// Client posts payloads once, without retries.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
}

// New returns a client with the given request timeout.
func New(l *zap.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		logger: logger.WithFields(l, zap.String("component", "webhook")),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: userAgent,
	}
}

// Send posts the payload to url. Any non-2xx response is an error.
func (c *Client) Send(ctx context.Context, url string, payload *Payload) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrMissingURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug("make request", zap.String("url", req.URL.Redacted()), zap.Int("bytes", len(body)))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	return nil
}

// Status maps the outcome of Send to the message shown to the user.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusSent
	case errors.Is(err, ErrMissingURL):
		return StatusMissingURL
	default:
		return StatusFailed
	}
}
