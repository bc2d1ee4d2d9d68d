package ports

import (
	"context"
	"time"

	"termbank/contexts/glossary/term-catalog/domain/entities"
)

// MinDefinitionLength is the floor below which a definition is rejected.
const MinDefinitionLength = 10

// DefaultSource labels typed submissions that carry no provenance.
const DefaultSource = "User submission"

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ExtractionResult is the normalized output of a file extractor.
// Confidence, when present, is on a 0-100 scale and seeds the candidate's
// initial weight as confidence/100.
type ExtractionResult struct {
	Text        string
	SourceLabel string
	Confidence  *float64
}

// Extractor turns raw file bytes of one media type into text.
type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) (ExtractionResult, error)
	MIMEType() string
	CanExtract(mimeType string) bool
}

// ExtractorRegistry dispatches an upload to the extractor for its declared
// media type.
type ExtractorRegistry interface {
	ForMIMEType(mimeType string) (Extractor, bool)
}

// CandidateWriter is the write path into the term catalog. The upsert and
// the first candidate land atomically from the caller's perspective.
type CandidateWriter interface {
	UpsertTermWithCandidate(ctx context.Context, displayName string, slug string, candidate entities.Candidate, now time.Time) (entities.Term, entities.Candidate, error)
}

// UploadReceipt identifies the accepted candidate.
type UploadReceipt struct {
	Slug        string
	TermName    string
	CandidateID string
	Weight      float64
	Status      entities.Status
}
