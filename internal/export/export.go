// Package export hands generated files to the user.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	CSVFilename    = "talent-pool.csv"
	CSVMIMEType    = "text/csv;charset=utf-8"
	ReportFilename = "weekly-report.txt"
	ReportMIMEType = "text/plain;charset=utf-8"
)

// Blob is a generated file.
type Blob struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Downloader delivers a blob and returns where it ended up.
type Downloader interface {
	Download(b Blob) (string, error)
}

// Dir writes blobs into a directory, creating it when missing.
type Dir struct {
	Path   string
	logger *zap.Logger
}

func NewDir(path string, logger *zap.Logger) *Dir {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	return &Dir{Path: path, logger: logger}
}

func (d *Dir) Download(b Blob) (string, error) {
	name := filepath.Base(strings.TrimSpace(b.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errors.New("blob filename is empty")
	}

	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(d.Path, name)
	if err := os.WriteFile(path, b.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	d.logger.Debug("file exported", zap.String("path", path), zap.String("mime", b.MIMEType), zap.Int("bytes", len(b.Data)))
	return path, nil
}

// Memory keeps blobs in process. It is used for dry runs and tests.
type Memory struct {
	Blobs []Blob
}

func (m *Memory) Download(b Blob) (string, error) {
	m.Blobs = append(m.Blobs, b)
	return b.Filename, nil
}
