package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	contributiondomainerrors "termbank/contexts/glossary/contribution-service/domain/errors"
	contributionhttp "termbank/contexts/glossary/contribution-service/transport/http"
)

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.contributions.Handler.ListByOwnerHandler(r.Context(), resolveUserID(r))
	if err != nil {
		writeContributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	resp, err := s.contributions.Handler.GetContributionHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeContributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitContribution(w http.ResponseWriter, r *http.Request) {
	resp, err := s.contributions.Handler.SubmitHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeContributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleModerateContribution(w http.ResponseWriter, r *http.Request) {
	var req contributionhttp.ModerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContributionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.contributions.Handler.ModerateHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeContributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := s.contributions.Handler.RemoveHandler(r.Context(), r.PathValue("id")); err != nil {
		writeContributionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeContributionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contributionhttp.ErrorResponse{Code: code, Message: message})
}

func writeContributionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contributiondomainerrors.ErrContributionNotFound):
		writeContributionError(w, http.StatusNotFound, "contribution_not_found", err.Error())
	case errors.Is(err, contributiondomainerrors.ErrInvalidTransition):
		writeContributionError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, contributiondomainerrors.ErrInvalidOutcome):
		writeContributionError(w, http.StatusBadRequest, "invalid_outcome", err.Error())
	case errors.Is(err, contributiondomainerrors.ErrOwnerRequired):
		writeContributionError(w, http.StatusBadRequest, "owner_required", err.Error())
	default:
		writeContributionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
