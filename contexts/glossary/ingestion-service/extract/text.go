package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	domainerrors "termbank/contexts/glossary/ingestion-service/domain/errors"
	"termbank/contexts/glossary/ingestion-service/ports"
)

// TextExtractor passes plain-text uploads through after trimming.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Extract(_ context.Context, filename string, content []byte) (ports.ExtractionResult, error) {
	text := strings.TrimSpace(string(content))
	if text == "" {
		return ports.ExtractionResult{}, domainerrors.ErrNoUsableText
	}
	return ports.ExtractionResult{
		Text:        text,
		SourceLabel: fmt.Sprintf("Text upload: %s", filepath.Base(filename)),
	}, nil
}

func (e *TextExtractor) MIMEType() string {
	return "text/plain"
}

func (e *TextExtractor) CanExtract(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/")
}
