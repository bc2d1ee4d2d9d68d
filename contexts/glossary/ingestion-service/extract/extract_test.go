package extract

import (
	"context"
	"errors"
	"testing"

	domainerrors "termbank/contexts/glossary/ingestion-service/domain/errors"
)

func TestRegistryDispatchesByPrimaryType(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.ForMIMEType("text/plain"); !ok {
		t.Fatal("expected text/plain extractor")
	}
	if _, ok := registry.ForMIMEType("application/pdf"); !ok {
		t.Fatal("expected application/pdf extractor")
	}
	if _, ok := registry.ForMIMEType("image/png"); ok {
		t.Fatal("expected no extractor for image/png")
	}
}

func TestRegistryNormalizesParametersAndCase(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.ForMIMEType("text/plain; charset=utf-8"); !ok {
		t.Fatal("expected parameterized media type to match")
	}
	if _, ok := registry.ForMIMEType("Application/PDF"); !ok {
		t.Fatal("expected case-insensitive match")
	}
}

func TestRegistryFallsBackToCanExtract(t *testing.T) {
	registry := NewRegistry()

	extractor, ok := registry.ForMIMEType("text/markdown")
	if !ok {
		t.Fatal("expected text/* fallback to the text extractor")
	}
	if extractor.MIMEType() != "text/plain" {
		t.Fatalf("expected text extractor, got %s", extractor.MIMEType())
	}
}

func TestTextExtractorTrims(t *testing.T) {
	extractor := NewTextExtractor()

	result, err := extractor.Extract(context.Background(), "notes.txt", []byte("  a definition with whitespace  \n"))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if result.Text != "a definition with whitespace" {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	if result.SourceLabel != "Text upload: notes.txt" {
		t.Fatalf("unexpected source label: %q", result.SourceLabel)
	}
}

func TestTextExtractorEmptyContent(t *testing.T) {
	extractor := NewTextExtractor()
	if _, err := extractor.Extract(context.Background(), "notes.txt", []byte("   \n\t")); !errors.Is(err, domainerrors.ErrNoUsableText) {
		t.Fatalf("expected ErrNoUsableText, got %v", err)
	}
}

func TestPDFExtractorRejectsGarbage(t *testing.T) {
	extractor := NewPDFExtractor()
	if _, err := extractor.Extract(context.Background(), "paper.pdf", []byte("not a pdf at all")); err == nil {
		t.Fatal("expected garbage bytes to fail")
	}
}
