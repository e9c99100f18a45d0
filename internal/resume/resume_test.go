package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubExtractor struct {
	text string
	err  error
	got  string
}

func (s *stubExtractor) Extract(_ context.Context, filename string, _ []byte) (string, error) {
	s.got = filename
	return s.text, s.err
}

func TestEnrich(t *testing.T) {
	stub := &stubExtractor{text: "  Senior engineer.\nReact, Node and AWS; some Power BI dashboards  "}
	e := NewEnricher(stub, nil, nil)

	res := e.Enrich(context.Background(), &Document{Filename: "cv.pdf", Data: []byte("%PDF")})

	require.True(t, res.Ok)
	assert.NoError(t, res.Err)
	assert.Equal(t, "cv.pdf", stub.got)
	assert.Equal(t, "Senior engineer.\nReact, Node and AWS; some Power BI dashboards", res.Text)
	assert.Equal(t, []string{"react", "node", "aws", "power bi"}, res.Keywords)
}

func TestEnrichFailureIsNotFatal(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	e := NewEnricher(&stubExtractor{err: errors.New("corrupt xref table")}, nil, zap.New(core))

	res := e.Enrich(context.Background(), &Document{Filename: "cv.pdf", Data: []byte("junk")})

	assert.False(t, res.Ok)
	assert.EqualError(t, res.Err, "corrupt xref table")
	assert.Empty(t, res.Text)
	assert.Empty(t, res.Keywords)
	assert.Equal(t, 1, observed.FilterMessage("reading resume failed").Len())
}

func TestEnrichWithoutDocument(t *testing.T) {
	e := NewEnricher(&stubExtractor{text: "python"}, nil, nil)

	assert.False(t, e.Enrich(context.Background(), nil).Ok)
	assert.False(t, e.Enrich(context.Background(), &Document{Filename: "empty.pdf"}).Ok)
}

func TestKeywordsNormalizesText(t *testing.T) {
	// U+FB01 is the "fi" ligature common in PDF output.
	assert.Equal(t, []string{"figma"}, Keywords("ﬁgma prototypes", []string{"figma"}))
	assert.Equal(t, []string{"kubernetes"}, Keywords("KUBERNETES", []string{"kubernetes"}))
}

func TestExtractPlainText(t *testing.T) {
	text, err := NewExtractor().Extract(context.Background(), "notes.TXT", []byte("Scrum master"))
	require.NoError(t, err)
	assert.Equal(t, "Scrum master", text)
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), "photo.png", []byte{0x89})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor().Extract(ctx, "notes.txt", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("python"), 0o600))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, []byte("python"), doc.Data)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
