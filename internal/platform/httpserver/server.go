package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	contributionservice "termbank/contexts/glossary/contribution-service"
	ingestionservice "termbank/contexts/glossary/ingestion-service"
	reviewqueue "termbank/contexts/glossary/review-queue"
	termcatalog "termbank/contexts/glossary/term-catalog"
	"termbank/contexts/glossary/term-catalog/domain/entities"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "termbank/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	catalog       termcatalog.Module
	reviews       reviewqueue.Module
	contributions contributionservice.Module
	ingestion     ingestionservice.Module
}

func New(
	catalog termcatalog.Module,
	reviews reviewqueue.Module,
	contributions contributionservice.Module,
	ingestion ingestionservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		catalog:       catalog,
		reviews:       reviews,
		contributions: contributions,
		ingestion:     ingestion,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.HandleFunc("GET /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/terms/{slug}", s.handleGetTerm)
	s.mux.HandleFunc("GET /api/terms/{slug}/best", s.handleBestCandidate)

	s.mux.HandleFunc("POST /api/upload", s.handleUpload)
	s.mux.HandleFunc("POST /api/upload/file", s.handleUploadFile)

	s.mux.HandleFunc("GET /api/review/next", s.handleReviewNext)
	s.mux.HandleFunc("GET /api/review/queue", s.handleReviewQueue)
	s.mux.HandleFunc("POST /api/review/votes", s.handleReviewVote)
	s.mux.HandleFunc("POST /api/review/flags", s.handleReviewFlag)

	s.mux.HandleFunc("GET /api/contributions", s.handleListContributions)
	s.mux.HandleFunc("GET /api/contributions/{id}", s.handleGetContribution)
	s.mux.HandleFunc("POST /api/contributions/{id}/submit", s.handleSubmitContribution)
	s.mux.HandleFunc("PATCH /api/contributions/{id}", s.handleModerateContribution)
	s.mux.HandleFunc("DELETE /api/contributions/{id}", s.handleDeleteContribution)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// resolveUserID reads the caller identity header, defaulting to the shared
// anonymous owner when absent.
func resolveUserID(r *http.Request) string {
	if userID := strings.TrimSpace(r.Header.Get("X-User-Id")); userID != "" {
		return userID
	}
	return entities.AnonymousUserID
}
