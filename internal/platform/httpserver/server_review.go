package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	reviewdomainerrors "termbank/contexts/glossary/review-queue/domain/errors"
	reviewhttp "termbank/contexts/glossary/review-queue/transport/http"
)

func (s *Server) handleReviewNext(w http.ResponseWriter, r *http.Request) {
	resp, found, err := s.reviews.Handler.NextCardHandler(r.Context())
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewQueue(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reviews.Handler.QueueHandler(r.Context())
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewVote(w http.ResponseWriter, r *http.Request) {
	var req reviewhttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reviews.Handler.CastVoteHandler(r.Context(), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewFlag(w http.ResponseWriter, r *http.Request) {
	var req reviewhttp.FlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reviews.Handler.FlagHandler(r.Context(), resolveUserID(r), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writeReviewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{Code: code, Message: message})
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewdomainerrors.ErrInvalidVoteInput):
		writeReviewError(w, http.StatusBadRequest, "invalid_vote_input", err.Error())
	case errors.Is(err, reviewdomainerrors.ErrFlagHoldTooShort):
		writeReviewError(w, http.StatusBadRequest, "flag_hold_too_short", err.Error())
	case errors.Is(err, reviewdomainerrors.ErrFlagNotConfirmed):
		writeReviewError(w, http.StatusPreconditionFailed, "flag_not_confirmed", err.Error())
	case errors.Is(err, reviewdomainerrors.ErrCandidateNotFound):
		writeReviewError(w, http.StatusNotFound, "candidate_not_found", err.Error())
	default:
		writeReviewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
