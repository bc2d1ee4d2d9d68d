package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"termbank/contexts/glossary/term-catalog/domain/entities"
	"termbank/internal/platform/config"
	"termbank/internal/platform/db"
)

type SeederApp struct {
	set      storeSet
	database *db.Database
	logger   *slog.Logger
}

func BuildSeeder() (*SeederApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "seed")
	if cfg.DatabaseDriver == "memory" {
		return nil, errors.New("seeding requires DATABASE_DRIVER=postgres or sqlite; an in-memory store does not outlive the process")
	}

	set, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &SeederApp{set: set, database: set.database, logger: logger}, nil
}

// Run plants the demo glossary. Upserts are idempotent per slug, so
// reseeding an existing database only appends the demo candidates again.
func (s *SeederApp) Run(ctx context.Context) error {
	for _, term := range demoGlossary() {
		slug := entities.Slugify(term.DisplayName)
		for _, candidate := range term.Candidates {
			id, err := s.set.idGen.NewID(ctx)
			if err != nil {
				return err
			}
			now := s.set.clock.Now().UTC()
			candidate.CandidateID = id
			candidate.TermSlug = slug
			candidate.CreatedAt = now
			candidate.UpdatedAt = now
			if _, _, err := s.set.writer.UpsertTermWithCandidate(ctx, term.DisplayName, slug, candidate, now); err != nil {
				return err
			}
		}
		s.logger.Info("term seeded",
			"event", "seed_term_planted",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"slug", slug,
			"candidates", len(term.Candidates),
		)
	}
	return nil
}

func (s *SeederApp) Close() error {
	if s.database != nil {
		return s.database.Close()
	}
	return nil
}

func demoGlossary() []entities.Term {
	return []entities.Term{
		{
			DisplayName: "Social Construct",
			Candidates: []entities.Candidate{
				{
					Text:   "An idea or category that exists because people in a society collectively agree to treat it as real, rather than because of any intrinsic natural property.",
					Source: "Intro lecture notes",
					Weight: 0.72,
					UserID: "seed",
					Status: entities.StatusPublished,
				},
				{
					Text:   "A concept whose meaning is produced and maintained through social practices and shared assumptions.",
					Source: "User submission",
					Weight: 0.64,
					UserID: "seed",
					Status: entities.StatusPending,
				},
			},
		},
		{
			DisplayName: "Habitus",
			Candidates: []entities.Candidate{
				{
					Text:   "The durable set of dispositions, tastes and bodily habits that individuals acquire through their social position and carry into new situations.",
					Source: "Bourdieu reading group",
					Weight: 0.5,
					UserID: "seed",
					Status: entities.StatusPending,
				},
			},
		},
		{
			DisplayName: "Discourse",
			Candidates: []entities.Candidate{
				{
					Text:   "A historically situated way of talking and writing about a subject that shapes what can be said, known and done about it.",
					Source: "User submission",
					Weight: 0.5,
					UserID: "seed",
					Status: entities.StatusPending,
				},
			},
		},
		{
			DisplayName: "Rational Choice Theory",
			Candidates: []entities.Candidate{
				{
					Text:   "A framework that models social behavior as the outcome of individuals weighing costs and benefits to maximize their own advantage.",
					Source: "User submission",
					Weight: 0.5,
					UserID: "seed",
					Status: entities.StatusPending,
				},
			},
		},
	}
}
