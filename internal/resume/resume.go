// Package resume extracts plain text from uploaded resume documents and
// turns it into candidate enrichment.
package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"code.sajari.com/docconv"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/talent-pool/talent-pool/internal/candidate"
	"github.com/talent-pool/talent-pool/internal/keywords"
	"github.com/talent-pool/talent-pool/internal/utils"
)

// ErrUnsupportedType is returned for documents docconv cannot read.
var ErrUnsupportedType = errors.New("unsupported document type")

const snippetLimit = 80

var documentTypes = []string{".pdf", ".doc", ".docx", ".rtf", ".odt"}

// Extractor turns document bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

// DocconvExtractor reads office documents and PDFs through docconv and plain
// text files directly.
type DocconvExtractor struct{}

// NewExtractor returns the default document extractor.
func NewExtractor() *DocconvExtractor {
	return &DocconvExtractor{}
}

func (DocconvExtractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".txt":
		return string(data), nil
	case slices.Contains(documentTypes, ext):
		res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(filename), false)
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", filename, err)
		}
		return res.Body, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

// Document is an uploaded resume.
type Document struct {
	Filename string
	Data     []byte
}

// ReadFile loads a resume document from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume %q: %w", path, err)
	}
	return &Document{Filename: filepath.Base(path), Data: data}, nil
}

// Enricher extracts text from a document and matches it against a vocabulary.
type Enricher struct {
	extractor  Extractor
	vocabulary []string
	logger     *zap.Logger
}

// NewEnricher returns an enricher using the given extractor and the default
// extraction vocabulary when vocabulary is empty.
func NewEnricher(extractor Extractor, vocabulary []string, logger *zap.Logger) *Enricher {
	if len(vocabulary) == 0 {
		vocabulary = keywords.Extraction
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{extractor: extractor, vocabulary: vocabulary, logger: logger}
}

// Enrich reads the document and returns the extracted text and keywords.
// Failures are returned as a failed enrichment, never as an error: the
// candidate is still created with empty extracted fields.
func (e *Enricher) Enrich(ctx context.Context, doc *Document) candidate.Enrichment {
	if doc == nil || len(doc.Data) == 0 {
		return candidate.NotEnriched(nil)
	}

	text, err := e.extractor.Extract(ctx, doc.Filename, doc.Data)
	if err != nil {
		e.logger.Warn("reading resume failed", zap.String("filename", doc.Filename), zap.Error(err))
		return candidate.NotEnriched(err)
	}

	found := Keywords(text, e.vocabulary)
	e.logger.Debug("resume read",
		zap.String("filename", doc.Filename),
		zap.Int("text_length", len(text)),
		zap.String("snippet", utils.TruncateForLog(text, snippetLimit)),
		zap.Strings("keywords", found),
	)

	return candidate.Enriched(strings.TrimSpace(text), found)
}

// Keywords normalizes text and returns the vocabulary entries it contains.
func Keywords(text string, vocabulary []string) []string {
	return keywords.Match(strings.ToLower(norm.NFKC.String(text)), vocabulary)
}
