package http

import (
	"context"
	"log/slog"

	"termbank/contexts/glossary/contribution-service/application"
	"termbank/contexts/glossary/contribution-service/ports"
	transporthttp "termbank/contexts/glossary/contribution-service/transport/http"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

// Handler adapts contribution lifecycle operations for HTTP transport.
type Handler struct {
	Contributions application.Service
	Logger        *slog.Logger
}

func NewHandler(contributions application.Service, logger *slog.Logger) Handler {
	return Handler{Contributions: contributions, Logger: logger}
}

// GetContributionHandler godoc
// @Summary      Get a contribution
// @Tags         contributions
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  transporthttp.ContributionResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/contributions/{id} [get]
func (h Handler) GetContributionHandler(ctx context.Context, candidateID string) (transporthttp.ContributionResponse, error) {
	contribution, err := h.Contributions.Get(ctx, candidateID)
	if err != nil {
		return transporthttp.ContributionResponse{}, err
	}
	return toContributionResponse(contribution), nil
}

// ListByOwnerHandler godoc
// @Summary      List a user's contributions
// @Description  Partitions the user's contributions across all terms into draft, pending, published and rejected buckets.
// @Tags         contributions
// @Produce      json
// @Param        X-User-Id  header  string  false  "Owner id, defaults to anonymous"
// @Success      200  {object}  transporthttp.OwnerContributionsResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/contributions [get]
func (h Handler) ListByOwnerHandler(ctx context.Context, userID string) (transporthttp.OwnerContributionsResponse, error) {
	buckets, err := h.Contributions.ListByOwner(ctx, userID)
	if err != nil {
		return transporthttp.OwnerContributionsResponse{}, err
	}
	return transporthttp.OwnerContributionsResponse{
		Drafts:    toContributionResponses(buckets.Drafts),
		Pending:   toContributionResponses(buckets.Pending),
		Published: toContributionResponses(buckets.Published),
		Rejected:  toContributionResponses(buckets.Rejected),
	}, nil
}

// SubmitHandler godoc
// @Summary      Submit a draft contribution for review
// @Description  Moves a draft contribution to pending. Any other current status is an invalid transition.
// @Tags         contributions
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  transporthttp.ContributionResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      409  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/contributions/{id}/submit [post]
func (h Handler) SubmitHandler(ctx context.Context, candidateID string) (transporthttp.ContributionResponse, error) {
	contribution, err := h.Contributions.Submit(ctx, candidateID)
	if err != nil {
		return transporthttp.ContributionResponse{}, err
	}
	return toContributionResponse(contribution), nil
}

// ModerateHandler godoc
// @Summary      Resolve a pending contribution
// @Description  Moves a pending contribution to published or rejected. Terminal states never change again.
// @Tags         contributions
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Candidate id"
// @Param        request  body  transporthttp.ModerateRequest  true  "Outcome"
// @Success      200  {object}  transporthttp.ContributionResponse
// @Failure      400  {object}  transporthttp.ErrorResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      409  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/contributions/{id} [patch]
func (h Handler) ModerateHandler(ctx context.Context, candidateID string, req transporthttp.ModerateRequest) (transporthttp.ContributionResponse, error) {
	contribution, err := h.Contributions.Moderate(ctx, candidateID, entities.Status(req.Status))
	if err != nil {
		return transporthttp.ContributionResponse{}, err
	}
	return toContributionResponse(contribution), nil
}

// RemoveHandler godoc
// @Summary      Delete a contribution
// @Description  Removes the candidate from its owning term regardless of state. The term itself is never deleted.
// @Tags         contributions
// @Param        id  path  string  true  "Candidate id"
// @Success      204  "Deleted"
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/contributions/{id} [delete]
func (h Handler) RemoveHandler(ctx context.Context, candidateID string) error {
	return h.Contributions.Remove(ctx, candidateID)
}

func toContributionResponse(contribution ports.Contribution) transporthttp.ContributionResponse {
	return transporthttp.ContributionResponse{
		CandidateID: contribution.CandidateID,
		TermSlug:    contribution.TermSlug,
		Term:        contribution.TermName,
		Text:        contribution.Text,
		Source:      contribution.Source,
		Weight:      contribution.Weight,
		UserID:      contribution.UserID,
		Status:      string(contribution.Status),
		CreatedAt:   contribution.CreatedAt,
		UpdatedAt:   contribution.UpdatedAt,
	}
}

func toContributionResponses(contributions []ports.Contribution) []transporthttp.ContributionResponse {
	out := make([]transporthttp.ContributionResponse, 0, len(contributions))
	for _, contribution := range contributions {
		out = append(out, toContributionResponse(contribution))
	}
	return out
}
