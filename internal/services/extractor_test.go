package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewTextExtractorService()

	for _, ext := range []string{"txt", ".TXT", "doc", "rtf", "", "  "} {
		t.Run("ext "+ext, func(t *testing.T) {
			_, err := extractor.ExtractText([]byte("irrelevant"), ext)
			assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
		})
	}
}

func TestExtractTextExtensionSpelling(t *testing.T) {
	extractor := NewTextExtractorService()

	// Dot and case variants resolve to the handler, so garbage bytes fail
	// with an extraction error, not a format error.
	for _, ext := range []string{"pdf", ".pdf", "PDF", ".Docx", "docx"} {
		t.Run("ext "+ext, func(t *testing.T) {
			_, err := extractor.ExtractText([]byte("not a real document"), ext)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrExtractionFailed)
			assert.NotErrorIs(t, err, models.ErrUnsupportedFormat)
		})
	}
}

func TestExtractTextEmptyDocument(t *testing.T) {
	extractor := NewTextExtractorService()

	t.Run("empty pdf bytes", func(t *testing.T) {
		_, err := extractor.ExtractText(nil, "pdf")
		assert.ErrorIs(t, err, models.ErrExtractionFailed)
	})

	t.Run("empty docx bytes", func(t *testing.T) {
		_, err := extractor.ExtractText(nil, "docx")
		assert.ErrorIs(t, err, models.ErrExtractionFailed)
	})
}

func TestDocxParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "paragraphs in order with blanks kept",
			content: `<w:document xmlns:w="ns"><w:body>` +
				`<w:p><w:r><w:t>Hello</w:t></w:r></w:p>` +
				`<w:p></w:p>` +
				`<w:p><w:r><w:t>World</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			want: []string{"Hello", "", "World"},
		},
		{
			name: "runs within one paragraph are concatenated",
			content: `<w:document xmlns:w="ns"><w:body>` +
				`<w:p><w:r><w:t>Hel</w:t></w:r><w:r><w:t>lo</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			want: []string{"Hello"},
		},
		{
			name: "text outside w:t is ignored",
			content: `<w:document xmlns:w="ns"><w:body>` +
				`<w:p><w:pPr>style noise</w:pPr><w:r><w:t>Kept</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			want: []string{"Kept"},
		},
		{
			name:    "no paragraphs",
			content: `<w:document xmlns:w="ns"><w:body></w:body></w:document>`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := docxParagraphs(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocxParagraphsNormalization(t *testing.T) {
	content := `<w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>Hello</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>World</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	paragraphs, err := docxParagraphs(content)
	require.NoError(t, err)

	joined := strings.Join(paragraphs, "\n")
	assert.Equal(t, "Hello\n\nWorld", joined)
	assert.Equal(t, "Hello World", NormalizeText(joined))
}
