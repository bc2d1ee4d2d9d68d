package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "termbank/contexts/glossary/ingestion-service/domain/errors"
	"termbank/contexts/glossary/ingestion-service/ports"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

// UploadCommand carries a typed-text definition submission.
type UploadCommand struct {
	Term       string
	Definition string
	Source     string
	UserID     string
}

// UploadFileCommand carries a file submission with its declared media type.
type UploadFileCommand struct {
	Term     string
	Filename string
	MIMEType string
	Content  []byte
	Source   string
	UserID   string
}

// Service normalizes uploads into new definition candidates and writes
// them through the term catalog.
type Service struct {
	Writer     ports.CandidateWriter
	Extractors ports.ExtractorRegistry
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Upload accepts a typed definition. The definition must clear the length
// floor; the candidate starts pending with weight 0.5.
func (s Service) Upload(ctx context.Context, cmd UploadCommand) (ports.UploadReceipt, error) {
	source := strings.TrimSpace(cmd.Source)
	if source == "" {
		source = ports.DefaultSource
	}
	return s.accept(ctx, cmd.Term, cmd.Definition, source, cmd.UserID, nil)
}

// UploadFile extracts text from the file before accepting it. Extraction
// completes or fails before any store call; a failed extraction surfaces
// the extractor's diagnostic and creates nothing.
func (s Service) UploadFile(ctx context.Context, cmd UploadFileCommand) (ports.UploadReceipt, error) {
	logger := ResolveLogger(s.Logger)
	if len(cmd.Content) == 0 {
		return ports.UploadReceipt{}, domainerrors.ErrEmptyFile
	}
	extractor, ok := s.Extractors.ForMIMEType(cmd.MIMEType)
	if !ok {
		return ports.UploadReceipt{}, fmt.Errorf("%w: %s", domainerrors.ErrUnsupportedMediaType, cmd.MIMEType)
	}

	result, err := extractor.Extract(ctx, cmd.Filename, cmd.Content)
	if err != nil {
		logger.Warn("file extraction failed",
			"event", "ingestion_extraction_failed",
			"module", "glossary/ingestion-service",
			"layer", "application",
			"filename", cmd.Filename,
			"mime_type", cmd.MIMEType,
			"error", err.Error(),
		)
		if errors.Is(err, domainerrors.ErrNoUsableText) {
			return ports.UploadReceipt{}, err
		}
		return ports.UploadReceipt{}, fmt.Errorf("%w: %s", domainerrors.ErrExtractionFailed, err.Error())
	}

	source := strings.TrimSpace(cmd.Source)
	if source == "" {
		source = result.SourceLabel
	}
	return s.accept(ctx, cmd.Term, result.Text, source, cmd.UserID, result.Confidence)
}

func (s Service) accept(
	ctx context.Context,
	term string,
	definition string,
	source string,
	userID string,
	confidence *float64,
) (ports.UploadReceipt, error) {
	logger := ResolveLogger(s.Logger)

	term = strings.TrimSpace(term)
	if term == "" {
		return ports.UploadReceipt{}, domainerrors.ErrTermRequired
	}
	definition = strings.TrimSpace(definition)
	if utf8.RuneCountInString(definition) < ports.MinDefinitionLength {
		return ports.UploadReceipt{}, domainerrors.ErrDefinitionTooShort
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = entities.AnonymousUserID
	}

	weight := 0.5
	if confidence != nil {
		weight = *confidence / 100
	}

	candidateID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.UploadReceipt{}, err
	}

	now := s.now()
	slug := entities.Slugify(term)
	candidate := entities.Candidate{
		CandidateID: candidateID,
		TermSlug:    slug,
		Text:        definition,
		Source:      source,
		Weight:      weight,
		UserID:      userID,
		Status:      entities.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	createdTerm, accepted, err := s.Writer.UpsertTermWithCandidate(ctx, term, slug, candidate, now)
	if err != nil {
		logger.Error("candidate write failed",
			"event", "ingestion_candidate_write_failed",
			"module", "glossary/ingestion-service",
			"layer", "application",
			"slug", slug,
			"error", err.Error(),
		)
		return ports.UploadReceipt{}, err
	}

	logger.Info("candidate accepted",
		"event", "ingestion_candidate_accepted",
		"module", "glossary/ingestion-service",
		"layer", "application",
		"slug", slug,
		"candidate_id", accepted.CandidateID,
		"weight", accepted.Weight,
		"user_id", userID,
	)
	return ports.UploadReceipt{
		Slug:        createdTerm.Slug,
		TermName:    createdTerm.DisplayName,
		CandidateID: accepted.CandidateID,
		Weight:      accepted.Weight,
		Status:      accepted.Status,
	}, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
