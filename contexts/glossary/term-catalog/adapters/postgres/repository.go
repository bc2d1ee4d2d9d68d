package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contriberrors "termbank/contexts/glossary/contribution-service/domain/errors"
	contribports "termbank/contexts/glossary/contribution-service/ports"
	reviewerrors "termbank/contexts/glossary/review-queue/domain/errors"
	reviewports "termbank/contexts/glossary/review-queue/ports"
	"termbank/contexts/glossary/term-catalog/domain/entities"
	domainerrors "termbank/contexts/glossary/term-catalog/domain/errors"
	"termbank/contexts/glossary/term-catalog/ports"
)

const uniqueViolationCode = "23505"

type termModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	Term      string    `gorm:"column:term"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (termModel) TableName() string { return "terms" }

type definitionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TermID    string    `gorm:"column:term_id;index"`
	Text      string    `gorm:"column:text"`
	Source    string    `gorm:"column:source"`
	Weight    float64   `gorm:"column:weight"`
	Status    string    `gorm:"column:status"`
	UserID    *string   `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (definitionModel) TableName() string { return "definitions" }

type flagSignalModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	CandidateID string     `gorm:"column:candidate_id;index"`
	TermSlug    string     `gorm:"column:term_slug"`
	ReporterID  string     `gorm:"column:reporter_id"`
	Reason      string     `gorm:"column:reason"`
	HoldMS      int64      `gorm:"column:hold_ms"`
	Relayed     bool       `gorm:"column:relayed;index"`
	RelayedAt   *time.Time `gorm:"column:relayed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (flagSignalModel) TableName() string { return "flag_signals" }

// cardRow is the scan target for definition-with-term joins.
type cardRow struct {
	ID        string    `gorm:"column:id"`
	TermID    string    `gorm:"column:term_id"`
	Text      string    `gorm:"column:text"`
	Source    string    `gorm:"column:source"`
	Weight    float64   `gorm:"column:weight"`
	Status    string    `gorm:"column:status"`
	UserID    *string   `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	TermSlug  string    `gorm:"column:term_slug"`
	TermName  string    `gorm:"column:term_name"`
}

// Repository is the relational system of record for the glossary. Weight
// ordering backs best-candidate queries; the unique slug constraint backs
// the atomic upsert, with one lookup retry when a concurrent insert wins
// the race.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the glossary tables. The seed tool and sqlite local
// runs use it; production postgres schemas are managed externally.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&termModel{}, &definitionModel{}, &flagSignalModel{})
}

func (r *Repository) UpsertTerm(ctx context.Context, displayName string, slug string, now time.Time) (entities.Term, bool, error) {
	if term, err := r.loadTermBySlug(ctx, slug); err == nil {
		return term, false, nil
	} else if !errors.Is(err, domainerrors.ErrTermNotFound) {
		return entities.Term{}, false, err
	}

	row := termModel{
		Slug:      slug,
		Term:      displayName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	row.ID = newUUID()
	create := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
		Create(&row)
	if create.Error != nil && !isUniqueViolation(create.Error) {
		return entities.Term{}, false, fmt.Errorf("upsert term: %w", create.Error)
	}
	if create.Error == nil && create.RowsAffected > 0 {
		return entities.Term{
			TermID:      row.ID,
			Slug:        row.Slug,
			DisplayName: row.Term,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}, true, nil
	}

	// A concurrent upsert won the race; retry the lookup path once.
	r.logger.Debug("term upsert lost race, retrying lookup",
		"event", "catalog_upsert_retry",
		"module", "glossary/term-catalog",
		"layer", "adapter",
		"slug", slug,
	)
	term, err := r.loadTermBySlug(ctx, slug)
	if err != nil {
		return entities.Term{}, false, fmt.Errorf("upsert term retry lookup: %w", err)
	}
	return term, false, nil
}

func (r *Repository) UpsertTermWithCandidate(
	ctx context.Context,
	displayName string,
	slug string,
	candidate entities.Candidate,
	now time.Time,
) (entities.Term, entities.Candidate, error) {
	var out entities.Term
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var termRow termModel
		err := tx.Where("slug = ?", slug).Take(&termRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			termRow = termModel{
				ID:        newUUID(),
				Slug:      slug,
				Term:      displayName,
				CreatedAt: now,
				UpdatedAt: now,
			}
			create := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
				Create(&termRow)
			if create.Error != nil && !isUniqueViolation(create.Error) {
				return fmt.Errorf("create term: %w", create.Error)
			}
			if create.RowsAffected == 0 {
				if err := tx.Where("slug = ?", slug).Take(&termRow).Error; err != nil {
					return fmt.Errorf("term retry lookup: %w", err)
				}
			}
		} else if err != nil {
			return fmt.Errorf("load term: %w", err)
		}

		defRow := definitionRowFromEntity(candidate, termRow.ID)
		if err := tx.Create(&defRow).Error; err != nil {
			return fmt.Errorf("create definition: %w", err)
		}
		if err := tx.Model(&termModel{}).Where("id = ?", termRow.ID).
			UpdateColumn("updated_at", now).Error; err != nil {
			return fmt.Errorf("touch term: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Term{}, entities.Candidate{}, err
	}

	out, err = r.loadTermBySlug(ctx, slug)
	if err != nil {
		return entities.Term{}, entities.Candidate{}, err
	}
	for _, created := range out.Candidates {
		if created.CandidateID == candidate.CandidateID {
			return out, created, nil
		}
	}
	return out, entities.Candidate{}, domainerrors.ErrCandidateNotFound
}

func (r *Repository) GetTermBySlug(ctx context.Context, slug string) (entities.Term, error) {
	return r.loadTermBySlug(ctx, slug)
}

func (r *Repository) SearchTerms(ctx context.Context, query string) (ports.SearchResult, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&termModel{}).Count(&total).Error; err != nil {
		return ports.SearchResult{}, fmt.Errorf("count terms: %w", err)
	}
	result := ports.SearchResult{TotalTerms: int(total)}

	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}

	var rows []termModel
	needle := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(term) LIKE ?", needle).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return ports.SearchResult{}, fmt.Errorf("search terms: %w", err)
	}
	for _, row := range rows {
		result.Matches = append(result.Matches, ports.TermMatch{Slug: row.Slug, DisplayName: row.Term})
	}
	return result, nil
}

func (r *Repository) CountTerms(ctx context.Context) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&termModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return int(total), nil
}

func (r *Repository) AdjustCandidateWeight(ctx context.Context, candidateID string, delta float64, now time.Time) (entities.Candidate, error) {
	if err := r.applyWeightDelta(ctx, candidateID, delta, now); err != nil {
		return entities.Candidate{}, err
	}
	row, err := r.loadCardRow(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	return candidateFromRow(row), nil
}

func (r *Repository) DrawRandomCard(ctx context.Context) (reviewports.ReviewCard, bool, error) {
	var row cardRow
	err := r.cardQuery(ctx).
		Order("random()"). // uniform over the flattened pool, both postgres and sqlite
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reviewports.ReviewCard{}, false, nil
	}
	if err != nil {
		return reviewports.ReviewCard{}, false, fmt.Errorf("draw card: %w", err)
	}
	return cardFromRow(row), true, nil
}

func (r *Repository) GetCard(ctx context.Context, candidateID string) (reviewports.ReviewCard, error) {
	row, err := r.loadCardRow(ctx, candidateID)
	if errors.Is(err, domainerrors.ErrCandidateNotFound) {
		return reviewports.ReviewCard{}, reviewerrors.ErrCandidateNotFound
	}
	if err != nil {
		return reviewports.ReviewCard{}, err
	}
	return cardFromRow(row), nil
}

func (r *Repository) ApplyVoteDelta(ctx context.Context, candidateID string, delta float64, now time.Time) (reviewports.ReviewCard, error) {
	if err := r.applyWeightDelta(ctx, candidateID, delta, now); err != nil {
		if errors.Is(err, domainerrors.ErrCandidateNotFound) {
			return reviewports.ReviewCard{}, reviewerrors.ErrCandidateNotFound
		}
		return reviewports.ReviewCard{}, err
	}
	row, err := r.loadCardRow(ctx, candidateID)
	if err != nil {
		return reviewports.ReviewCard{}, err
	}
	return cardFromRow(row), nil
}

func (r *Repository) RecordFlagSignal(ctx context.Context, signal reviewports.FlagSignal) error {
	row := flagSignalModel{
		ID:          signal.SignalID,
		CandidateID: signal.CandidateID,
		TermSlug:    signal.TermSlug,
		ReporterID:  signal.ReporterID,
		Reason:      signal.Reason,
		HoldMS:      signal.HoldDuration.Milliseconds(),
		Relayed:     signal.Relayed,
		CreatedAt:   signal.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record flag signal: %w", err)
	}
	return nil
}

func (r *Repository) ListPendingFlagSignals(ctx context.Context, limit int) ([]reviewports.FlagSignal, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []flagSignalModel
	if err := r.db.WithContext(ctx).
		Where("relayed = ?", false).
		Order("created_at, id").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list pending flag signals: %w", err)
	}
	out := make([]reviewports.FlagSignal, 0, len(rows))
	for _, row := range rows {
		out = append(out, reviewports.FlagSignal{
			SignalID:     row.ID,
			CandidateID:  row.CandidateID,
			TermSlug:     row.TermSlug,
			ReporterID:   row.ReporterID,
			Reason:       row.Reason,
			HoldDuration: time.Duration(row.HoldMS) * time.Millisecond,
			Relayed:      row.Relayed,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func (r *Repository) MarkFlagSignalRelayed(ctx context.Context, signalID string, now time.Time) error {
	update := r.db.WithContext(ctx).Model(&flagSignalModel{}).
		Where("id = ?", signalID).
		Updates(map[string]any{"relayed": true, "relayed_at": now})
	if update.Error != nil {
		return fmt.Errorf("mark flag signal relayed: %w", update.Error)
	}
	if update.RowsAffected == 0 {
		return reviewerrors.ErrFlagSignalNotFound
	}
	return nil
}

func (r *Repository) GetContribution(ctx context.Context, candidateID string) (contribports.Contribution, error) {
	row, err := r.loadCardRow(ctx, candidateID)
	if errors.Is(err, domainerrors.ErrCandidateNotFound) {
		return contribports.Contribution{}, contriberrors.ErrContributionNotFound
	}
	if err != nil {
		return contribports.Contribution{}, err
	}
	return contributionFromRow(row), nil
}

func (r *Repository) ListContributionsByOwner(ctx context.Context, userID string) ([]contribports.Contribution, error) {
	var rows []cardRow
	if err := r.cardQuery(ctx).
		Where("definitions.user_id = ?", userID).
		Order("definitions.created_at, definitions.id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	out := make([]contribports.Contribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, contributionFromRow(row))
	}
	return out, nil
}

func (r *Repository) TransitionContribution(
	ctx context.Context,
	candidateID string,
	next entities.Status,
	now time.Time,
) (contribports.Contribution, error) {
	if !next.IsValid() {
		return contribports.Contribution{}, contriberrors.ErrInvalidTransition
	}
	var allowedFrom []string
	switch next {
	case entities.StatusPending:
		allowedFrom = []string{string(entities.StatusDraft)}
	case entities.StatusPublished, entities.StatusRejected:
		allowedFrom = []string{string(entities.StatusPending)}
	default:
		return contribports.Contribution{}, contriberrors.ErrInvalidTransition
	}

	// Single guarded statement keeps check-and-set atomic under
	// concurrent moderation calls.
	update := r.db.WithContext(ctx).Model(&definitionModel{}).
		Where("id = ? AND status IN ?", candidateID, allowedFrom).
		Updates(map[string]any{"status": string(next), "updated_at": now})
	if update.Error != nil {
		return contribports.Contribution{}, fmt.Errorf("transition contribution: %w", update.Error)
	}
	if update.RowsAffected == 0 {
		_, err := r.loadCardRow(ctx, candidateID)
		if errors.Is(err, domainerrors.ErrCandidateNotFound) {
			return contribports.Contribution{}, contriberrors.ErrContributionNotFound
		}
		if err != nil {
			return contribports.Contribution{}, err
		}
		return contribports.Contribution{}, contriberrors.ErrInvalidTransition
	}

	row, err := r.loadCardRow(ctx, candidateID)
	if err != nil {
		return contribports.Contribution{}, err
	}
	return contributionFromRow(row), nil
}

func (r *Repository) DeleteContribution(ctx context.Context, candidateID string) error {
	del := r.db.WithContext(ctx).Where("id = ?", candidateID).Delete(&definitionModel{})
	if del.Error != nil {
		return fmt.Errorf("delete contribution: %w", del.Error)
	}
	if del.RowsAffected == 0 {
		return contriberrors.ErrContributionNotFound
	}
	return nil
}

func (r *Repository) applyWeightDelta(ctx context.Context, candidateID string, delta float64, now time.Time) error {
	update := r.db.WithContext(ctx).Model(&definitionModel{}).
		Where("id = ?", candidateID).
		Updates(map[string]any{
			"weight":     gorm.Expr("weight + ?", delta),
			"updated_at": now,
		})
	if update.Error != nil {
		return fmt.Errorf("adjust weight: %w", update.Error)
	}
	if update.RowsAffected == 0 {
		return domainerrors.ErrCandidateNotFound
	}
	return nil
}

func (r *Repository) cardQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("definitions").
		Select("definitions.*, terms.slug AS term_slug, terms.term AS term_name").
		Joins("JOIN terms ON terms.id = definitions.term_id")
}

func (r *Repository) loadCardRow(ctx context.Context, candidateID string) (cardRow, error) {
	var row cardRow
	err := r.cardQuery(ctx).Where("definitions.id = ?", candidateID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cardRow{}, domainerrors.ErrCandidateNotFound
	}
	if err != nil {
		return cardRow{}, fmt.Errorf("load definition: %w", err)
	}
	return row, nil
}

func (r *Repository) loadTermBySlug(ctx context.Context, slug string) (entities.Term, error) {
	var termRow termModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&termRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Term{}, domainerrors.ErrTermNotFound
	}
	if err != nil {
		return entities.Term{}, fmt.Errorf("load term: %w", err)
	}

	var defRows []definitionModel
	if err := r.db.WithContext(ctx).
		Where("term_id = ?", termRow.ID).
		Order("created_at, id"). // insertion order for display and tie-breaks
		Find(&defRows).Error; err != nil {
		return entities.Term{}, fmt.Errorf("load definitions: %w", err)
	}

	term := entities.Term{
		TermID:      termRow.ID,
		Slug:        termRow.Slug,
		DisplayName: termRow.Term,
		CreatedAt:   termRow.CreatedAt,
		UpdatedAt:   termRow.UpdatedAt,
	}
	for _, row := range defRows {
		term.Candidates = append(term.Candidates, definitionEntityFromRow(row, termRow.Slug))
	}
	return term, nil
}

func definitionRowFromEntity(candidate entities.Candidate, termID string) definitionModel {
	row := definitionModel{
		ID:        candidate.CandidateID,
		TermID:    termID,
		Text:      candidate.Text,
		Source:    candidate.Source,
		Weight:    candidate.Weight,
		Status:    string(candidate.Status),
		CreatedAt: candidate.CreatedAt,
		UpdatedAt: candidate.UpdatedAt,
	}
	if candidate.UserID != "" {
		userID := candidate.UserID
		row.UserID = &userID
	}
	return row
}

func definitionEntityFromRow(row definitionModel, slug string) entities.Candidate {
	candidate := entities.Candidate{
		CandidateID: row.ID,
		TermSlug:    slug,
		Text:        row.Text,
		Source:      row.Source,
		Weight:      row.Weight,
		Status:      entities.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.UserID != nil {
		candidate.UserID = *row.UserID
	}
	return candidate
}

func candidateFromRow(row cardRow) entities.Candidate {
	candidate := entities.Candidate{
		CandidateID: row.ID,
		TermSlug:    row.TermSlug,
		Text:        row.Text,
		Source:      row.Source,
		Weight:      row.Weight,
		Status:      entities.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.UserID != nil {
		candidate.UserID = *row.UserID
	}
	return candidate
}

func cardFromRow(row cardRow) reviewports.ReviewCard {
	return reviewports.ReviewCard{
		TermSlug:    row.TermSlug,
		TermName:    row.TermName,
		CandidateID: row.ID,
		Text:        row.Text,
		Source:      row.Source,
		Weight:      row.Weight,
	}
}

func contributionFromRow(row cardRow) contribports.Contribution {
	contribution := contribports.Contribution{
		CandidateID: row.ID,
		TermSlug:    row.TermSlug,
		TermName:    row.TermName,
		Text:        row.Text,
		Source:      row.Source,
		Weight:      row.Weight,
		Status:      entities.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.UserID != nil {
		contribution.UserID = *row.UserID
	}
	return contribution
}

func newUUID() string {
	return uuid.NewString()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	// sqlite reports constraint failures as plain strings.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
