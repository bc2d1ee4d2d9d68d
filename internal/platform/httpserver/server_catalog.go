package httpserver

import (
	"errors"
	"net/http"

	catalogdomainerrors "termbank/contexts/glossary/term-catalog/domain/errors"
	cataloghttp "termbank/contexts/glossary/term-catalog/transport/http"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.SearchHandler(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTerm(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetTermHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBestCandidate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.BestCandidateHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{Code: code, Message: message})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogdomainerrors.ErrTermNotFound):
		writeCatalogError(w, http.StatusNotFound, "term_not_found", err.Error())
	case errors.Is(err, catalogdomainerrors.ErrCandidateNotFound):
		writeCatalogError(w, http.StatusNotFound, "candidate_not_found", err.Error())
	case errors.Is(err, catalogdomainerrors.ErrNoCandidates):
		writeCatalogError(w, http.StatusNotFound, "no_candidates", err.Error())
	case errors.Is(err, catalogdomainerrors.ErrTermRequired):
		writeCatalogError(w, http.StatusBadRequest, "term_required", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
