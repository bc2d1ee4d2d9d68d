package http

import (
	"context"
	"log/slog"

	"termbank/contexts/glossary/term-catalog/application"
	"termbank/contexts/glossary/term-catalog/domain/entities"
	transporthttp "termbank/contexts/glossary/term-catalog/transport/http"
)

// Handler adapts catalog operations for HTTP transport. Route registration
// and status mapping live in the platform HTTP server.
type Handler struct {
	Catalog application.Service
	Logger  *slog.Logger
}

func NewHandler(catalog application.Service, logger *slog.Logger) Handler {
	return Handler{Catalog: catalog, Logger: logger}
}

// SearchHandler godoc
// @Summary      Search glossary terms
// @Description  Matches the query case-insensitively against term display names. A blank query returns no matches.
// @Tags         catalog
// @Produce      json
// @Param        q  query  string  false  "Search query"
// @Success      200  {object}  transporthttp.SearchResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/search [get]
func (h Handler) SearchHandler(ctx context.Context, query string) (transporthttp.SearchResponse, error) {
	result, err := h.Catalog.Search(ctx, query)
	if err != nil {
		return transporthttp.SearchResponse{}, err
	}
	resp := transporthttp.SearchResponse{
		Results: make([]transporthttp.SearchMatch, 0, len(result.Matches)),
		Total:   result.TotalTerms,
	}
	for _, match := range result.Matches {
		resp.Results = append(resp.Results, transporthttp.SearchMatch{Term: match.DisplayName, Slug: match.Slug})
	}
	return resp, nil
}

// GetTermHandler godoc
// @Summary      Get a term by slug
// @Description  Returns the term with its candidate definitions in insertion order plus the current best candidate.
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Term slug"
// @Success      200  {object}  transporthttp.TermResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/terms/{slug} [get]
func (h Handler) GetTermHandler(ctx context.Context, slug string) (transporthttp.TermResponse, error) {
	view, err := h.Catalog.GetTerm(ctx, slug)
	if err != nil {
		return transporthttp.TermResponse{}, err
	}
	resp := transporthttp.TermResponse{
		Term:       view.Term.DisplayName,
		Slug:       view.Term.Slug,
		Candidates: make([]transporthttp.CandidateResponse, 0, len(view.Term.Candidates)),
		TotalTerms: view.TotalTerms,
	}
	for _, candidate := range view.Term.Candidates {
		resp.Candidates = append(resp.Candidates, toCandidateResponse(candidate))
	}
	if view.Best != nil {
		best := toCandidateResponse(*view.Best)
		resp.Best = &best
	}
	return resp, nil
}

// BestCandidateHandler godoc
// @Summary      Get the best candidate for a term
// @Description  Returns the highest-weight candidate definition. Ties resolve to the first-inserted candidate.
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Term slug"
// @Success      200  {object}  transporthttp.CandidateResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/terms/{slug}/best [get]
func (h Handler) BestCandidateHandler(ctx context.Context, slug string) (transporthttp.CandidateResponse, error) {
	best, err := h.Catalog.BestCandidate(ctx, slug)
	if err != nil {
		return transporthttp.CandidateResponse{}, err
	}
	return toCandidateResponse(best), nil
}

func toCandidateResponse(candidate entities.Candidate) transporthttp.CandidateResponse {
	return transporthttp.CandidateResponse{
		CandidateID: candidate.CandidateID,
		TermSlug:    candidate.TermSlug,
		Text:        candidate.Text,
		Source:      candidate.Source,
		Weight:      candidate.Weight,
		UserID:      candidate.UserID,
		Status:      string(candidate.Status),
		CreatedAt:   candidate.CreatedAt,
		UpdatedAt:   candidate.UpdatedAt,
	}
}
