package reviewqueue

import (
	"log/slog"
	"time"

	httpadapter "termbank/contexts/glossary/review-queue/adapters/http"
	"termbank/contexts/glossary/review-queue/application"
	"termbank/contexts/glossary/review-queue/ports"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

type Module struct {
	Handler httpadapter.Handler
	Service *application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Cards             ports.CardRepository
	Flags             ports.FlagRepository
	Clock             ports.Clock
	IDGen             ports.IDGenerator
	VoteDelta         float64
	FlagHoldThreshold time.Duration
	WindowSize        int
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := &application.Service{
		Cards:             deps.Cards,
		Flags:             deps.Flags,
		Clock:             deps.Clock,
		IDGen:             deps.IDGen,
		Logger:            deps.Logger,
		VoteDelta:         deps.VoteDelta,
		FlagHoldThreshold: deps.FlagHoldThreshold,
	}
	if deps.WindowSize > 0 && deps.WindowSize != ports.DefaultWindowSize {
		service.UseWindow(application.NewWindow(deps.WindowSize, deps.Cards))
	}
	return Module{
		Handler: httpadapter.NewHandler(service, deps.Logger),
		Service: service,
	}
}

// NewInMemoryModule wires the review queue over the shared in-memory
// glossary store; the catalog store is the system of record for cards.
func NewInMemoryModule(seed []entities.Term, logger *slog.Logger) Module {
	return NewModuleWithStore(memory.NewStore(seed), logger)
}

// NewModuleWithStore builds the module against an existing shared store so
// the API process serves catalog and review traffic from one dataset.
func NewModuleWithStore(store *memory.Store, logger *slog.Logger) Module {
	module := NewModule(Dependencies{
		Cards:  store,
		Flags:  store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
