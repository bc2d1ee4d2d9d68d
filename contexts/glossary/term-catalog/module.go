package termcatalog

import (
	"log/slog"

	httpadapter "termbank/contexts/glossary/term-catalog/adapters/http"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
	"termbank/contexts/glossary/term-catalog/application"
	"termbank/contexts/glossary/term-catalog/domain/entities"
	"termbank/contexts/glossary/term-catalog/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.TermRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
		Logger: deps.Logger,
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
// every glossary module in the process serves the same dataset.
func NewModuleWithStore(store *memory.Store, logger *slog.Logger) Module {
	module := NewModule(Dependencies{
		Repo:   store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
