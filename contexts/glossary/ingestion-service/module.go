package ingestionservice

import (
	"log/slog"

	httpadapter "termbank/contexts/glossary/ingestion-service/adapters/http"
	"termbank/contexts/glossary/ingestion-service/application"
	"termbank/contexts/glossary/ingestion-service/extract"
	"termbank/contexts/glossary/ingestion-service/ports"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Writer     ports.CandidateWriter
	Extractors ports.ExtractorRegistry
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Extractors == nil {
		deps.Extractors = extract.NewRegistry()
	}
	service := application.Service{
		Writer:     deps.Writer,
		Extractors: deps.Extractors,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.NewHandler(service, deps.Logger),
		Service: service,
	}
}

func NewInMemoryModule(seed []entities.Term, logger *slog.Logger) Module {
	return NewModuleWithStore(memory.NewStore(seed), logger)
}

// NewModuleWithStore builds the module against an existing shared store so
// accepted uploads surface in catalog and review reads immediately.
func NewModuleWithStore(store *memory.Store, logger *slog.Logger) Module {
	module := NewModule(Dependencies{
		Writer: store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
