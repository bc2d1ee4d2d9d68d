package extract

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	domainerrors "termbank/contexts/glossary/ingestion-service/domain/errors"
	"termbank/contexts/glossary/ingestion-service/ports"
)

// PDFExtractor pulls plain text out of PDF uploads. Image-only PDFs yield
// no text and fail with ErrNoUsableText rather than producing an empty
// candidate.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Extract(_ context.Context, filename string, content []byte) (ports.ExtractionResult, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ports.ExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages fail to parse in otherwise readable documents;
			// keep whatever the rest yields.
			continue
		}
		if text == "" {
			continue
		}
		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n\n")
		}
		textBuilder.WriteString(text)
	}

	extracted := strings.TrimSpace(textBuilder.String())
	if extracted == "" {
		return ports.ExtractionResult{}, domainerrors.ErrNoUsableText
	}
	return ports.ExtractionResult{
		Text:        extracted,
		SourceLabel: fmt.Sprintf("PDF upload: %s", filepath.Base(filename)),
	}, nil
}

func (e *PDFExtractor) MIMEType() string {
	return "application/pdf"
}

func (e *PDFExtractor) CanExtract(mimeType string) bool {
	return mimeType == "application/pdf" || mimeType == "application/x-pdf"
}
