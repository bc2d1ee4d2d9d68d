package http

import (
	"context"
	"log/slog"
	"time"

	"termbank/contexts/glossary/review-queue/application"
	"termbank/contexts/glossary/review-queue/ports"
	transporthttp "termbank/contexts/glossary/review-queue/transport/http"
)

// Handler adapts the review-card stream for HTTP transport.
type Handler struct {
	Reviews *application.Service
	Logger  *slog.Logger
}

func NewHandler(reviews *application.Service, logger *slog.Logger) Handler {
	return Handler{Reviews: reviews, Logger: logger}
}

// NextCardHandler godoc
// @Summary      Draw the next review card
// @Description  Draws one card uniformly at random over all candidates. found is false only when the store holds no candidates.
// @Tags         review
// @Produce      json
// @Success      200  {object}  transporthttp.CardResponse
// @Success      204  "No candidates available"
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/review/next [get]
func (h Handler) NextCardHandler(ctx context.Context) (transporthttp.CardResponse, bool, error) {
	card, found, err := h.Reviews.NextCard(ctx)
	if err != nil || !found {
		return transporthttp.CardResponse{}, found, err
	}
	return toCardResponse(card), true, nil
}

// QueueHandler godoc
// @Summary      Get the pending review window
// @Description  Returns the current window of cards awaiting review, at most the configured window size. The window shrinks when the pool cannot fill it.
// @Tags         review
// @Produce      json
// @Success      200  {object}  transporthttp.QueueResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/review/queue [get]
func (h Handler) QueueHandler(ctx context.Context) (transporthttp.QueueResponse, error) {
	cards, err := h.Reviews.Queue(ctx)
	if err != nil {
		return transporthttp.QueueResponse{}, err
	}
	resp := transporthttp.QueueResponse{Cards: make([]transporthttp.CardResponse, 0, len(cards))}
	for _, card := range cards {
		resp.Cards = append(resp.Cards, toCardResponse(card))
	}
	return resp, nil
}

// CastVoteHandler godoc
// @Summary      Cast a vote on a review card
// @Description  Applies the direction's weight delta to the candidate and advances the pending window past it.
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        request  body  transporthttp.CastVoteRequest  true  "Vote"
// @Success      200  {object}  transporthttp.CastVoteResponse
// @Failure      400  {object}  transporthttp.ErrorResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/review/votes [post]
func (h Handler) CastVoteHandler(ctx context.Context, req transporthttp.CastVoteRequest) (transporthttp.CastVoteResponse, error) {
	card, err := h.Reviews.CastVote(ctx, application.CastVoteCommand{
		CandidateID: req.CandidateID,
		Direction:   application.VoteDirection(req.Direction),
	})
	if err != nil {
		return transporthttp.CastVoteResponse{}, err
	}
	return transporthttp.CastVoteResponse{
		CandidateID: card.CandidateID,
		TermSlug:    card.TermSlug,
		Weight:      card.Weight,
	}, nil
}

// FlagHandler godoc
// @Summary      Flag a review card
// @Description  Records a confirmed hold-to-flag gesture as an out-of-band moderation signal. Weight and status are never touched.
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        request  body  transporthttp.FlagRequest  true  "Flag"
// @Success      201  {object}  transporthttp.FlagResponse
// @Failure      400  {object}  transporthttp.ErrorResponse
// @Failure      404  {object}  transporthttp.ErrorResponse
// @Failure      412  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/review/flags [post]
func (h Handler) FlagHandler(ctx context.Context, reporterID string, req transporthttp.FlagRequest) (transporthttp.FlagResponse, error) {
	result, err := h.Reviews.FlagCandidate(ctx, application.FlagCandidateCommand{
		CandidateID:  req.CandidateID,
		ReporterID:   reporterID,
		Reason:       req.Reason,
		HoldDuration: time.Duration(req.HoldMs) * time.Millisecond,
		Confirmed:    req.Confirmed,
	})
	if err != nil {
		return transporthttp.FlagResponse{}, err
	}
	return transporthttp.FlagResponse{
		SignalID:    result.SignalID,
		CandidateID: result.CandidateID,
		TermSlug:    result.TermSlug,
		RecordedAt:  result.RecordedAt,
	}, nil
}

func toCardResponse(card ports.ReviewCard) transporthttp.CardResponse {
	return transporthttp.CardResponse{
		CandidateID: card.CandidateID,
		TermSlug:    card.TermSlug,
		Term:        card.TermName,
		Text:        card.Text,
		Source:      card.Source,
		Weight:      card.Weight,
	}
}
