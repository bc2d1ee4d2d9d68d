package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	contributionservice "termbank/contexts/glossary/contribution-service"
	contribports "termbank/contexts/glossary/contribution-service/ports"
	ingestionservice "termbank/contexts/glossary/ingestion-service"
	ingestports "termbank/contexts/glossary/ingestion-service/ports"
	reviewqueue "termbank/contexts/glossary/review-queue"
	reviewmemory "termbank/contexts/glossary/review-queue/adapters/memory"
	workerapp "termbank/contexts/glossary/review-queue/application/workers"
	reviewports "termbank/contexts/glossary/review-queue/ports"
	termcatalog "termbank/contexts/glossary/term-catalog"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
	postgresadapter "termbank/contexts/glossary/term-catalog/adapters/postgres"
	catalogports "termbank/contexts/glossary/term-catalog/ports"
	"termbank/internal/platform/config"
	"termbank/internal/platform/db"
	"termbank/internal/platform/httpserver"
	"termbank/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	database *db.Database
	logger   *slog.Logger
}

type WorkerApp struct {
	database     *db.Database
	flagRelay    workerapp.FlagSignalRelay
	flagConsumer workerapp.FlagSignalConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

type clock interface {
	Now() time.Time
}

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// storeSet binds every module port to the one shared store selected by
// DATABASE_DRIVER. All four glossary modules read and write the same
// dataset.
type storeSet struct {
	terms         catalogports.TermRepository
	cards         reviewports.CardRepository
	flags         reviewports.FlagRepository
	contributions contribports.ContributionRepository
	writer        ingestports.CandidateWriter
	clock         clock
	idGen         idGenerator
	database      *db.Database
}

func openStore(cfg config.Config, logger *slog.Logger) (storeSet, error) {
	switch cfg.DatabaseDriver {
	case "memory":
		store := memory.NewStore(nil)
		return storeSet{
			terms:         store,
			cards:         store,
			flags:         store,
			contributions: store,
			writer:        store,
			clock:         store,
			idGen:         store,
		}, nil
	case "postgres", "sqlite":
		var (
			database *db.Database
			err      error
		)
		if cfg.DatabaseDriver == "postgres" {
			database, err = db.ConnectPostgres(cfg.PostgresDSN)
		} else {
			database, err = db.ConnectSQLite(cfg.SQLitePath)
		}
		if err != nil {
			return storeSet{}, err
		}
		if err := postgresadapter.AutoMigrate(database.DB); err != nil {
			_ = database.Close()
			return storeSet{}, err
		}
		repo := postgresadapter.NewRepository(database.DB, logger)
		return storeSet{
			terms:         repo,
			cards:         repo,
			flags:         repo,
			contributions: repo,
			writer:        repo,
			clock:         postgresadapter.SystemClock{},
			idGen:         postgresadapter.UUIDGenerator{},
			database:      database,
		}, nil
	default:
		return storeSet{}, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
}

func buildModules(cfg config.Config, set storeSet, logger *slog.Logger) (
	termcatalog.Module,
	reviewqueue.Module,
	contributionservice.Module,
	ingestionservice.Module,
) {
	catalogModule := termcatalog.NewModule(termcatalog.Dependencies{
		Repo:   set.terms,
		Clock:  set.clock,
		Logger: logger,
	})
	reviewModule := reviewqueue.NewModule(reviewqueue.Dependencies{
		Cards:             set.cards,
		Flags:             set.flags,
		Clock:             set.clock,
		IDGen:             set.idGen,
		VoteDelta:         cfg.ReviewVoteDelta,
		FlagHoldThreshold: cfg.FlagHoldThreshold,
		WindowSize:        cfg.ReviewWindowSize,
		Logger:            logger,
	})
	contributionModule := contributionservice.NewModule(contributionservice.Dependencies{
		Repo:   set.contributions,
		Clock:  set.clock,
		Logger: logger,
	})
	ingestionModule := ingestionservice.NewModule(ingestionservice.Dependencies{
		Writer: set.writer,
		Clock:  set.clock,
		IDGen:  set.idGen,
		Logger: logger,
	})
	return catalogModule, reviewModule, contributionModule, ingestionModule
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	set, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	catalogModule, reviewModule, contributionModule, ingestionModule := buildModules(cfg, set, logger)
	server := httpserver.New(
		catalogModule,
		reviewModule,
		contributionModule,
		ingestionModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		database: set.database,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if cfg.DatabaseDriver == "memory" {
		return nil, errors.New("worker requires DATABASE_DRIVER=postgres or sqlite; an in-memory store is not shared across processes")
	}

	set, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(nil, logger)
	if err != nil {
		return nil, err
	}

	return &WorkerApp{
		database: set.database,
		flagRelay: workerapp.FlagSignalRelay{
			Flags:     set.flags,
			Publisher: kafka,
			Clock:     set.clock,
			IDGen:     set.idGen,
			BatchSize: cfg.WorkerFlagBatchSize,
			Logger:    logger,
		},
		flagConsumer: workerapp.FlagSignalConsumer{
			Bus:     kafka,
			Journal: reviewmemory.NewJournal(),
			Logger:  logger,
		},
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.database != nil {
		return a.database.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	if err := w.flagConsumer.Start(ctx); err != nil {
		return err
	}

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.flagRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.database != nil {
		return w.database.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
