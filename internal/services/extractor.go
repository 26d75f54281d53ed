package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-matcher/internal/models"
)

type TextExtractorService interface {
	ExtractText(data []byte, extension string) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText converts a resume document into plain text. The extension is
// the declared format ("pdf" or "docx", leading dot and case ignored).
// Anything else fails with models.ErrUnsupportedFormat before extraction;
// documents without a usable text layer fail with models.ErrExtractionFailed.
func (t *textExtractorService) ExtractText(data []byte, extension string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))

	switch ext {
	case "pdf":
		return t.extractPDF(data)
	case "docx":
		return t.extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %q (expected pdf or docx)", models.ErrUnsupportedFormat, extension)
	}
}

func (t *textExtractorService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read PDF: %v", models.ErrExtractionFailed, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, the rest may still carry text
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		// Pure image scans have pages but no text layer
		return "", fmt.Errorf("%w: no text content found in PDF", models.ErrExtractionFailed)
	}

	return text, nil
}

func (t *textExtractorService) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read DOCX: %v", models.ErrExtractionFailed, err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse DOCX content: %v", models.ErrExtractionFailed, err)
	}

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in DOCX", models.ErrExtractionFailed)
	}

	return text, nil
}

// docxParagraphs walks the word/document.xml markup and returns the text of
// every <w:p> paragraph in document order. Empty paragraphs are kept so the
// joined output preserves blank lines between sections.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}

	return paragraphs, nil
}
