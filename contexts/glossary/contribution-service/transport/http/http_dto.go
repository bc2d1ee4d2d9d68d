package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ContributionResponse struct {
	CandidateID string    `json:"candidate_id"`
	TermSlug    string    `json:"term_slug"`
	Term        string    `json:"term"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	Weight      float64   `json:"weight"`
	UserID      string    `json:"user_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OwnerContributionsResponse struct {
	Drafts    []ContributionResponse `json:"drafts"`
	Pending   []ContributionResponse `json:"pending"`
	Published []ContributionResponse `json:"published"`
	Rejected  []ContributionResponse `json:"rejected"`
}

type ModerateRequest struct {
	Status string `json:"status"`
}
