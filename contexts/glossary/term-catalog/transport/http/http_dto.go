package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CandidateResponse struct {
	CandidateID string    `json:"candidate_id"`
	TermSlug    string    `json:"term_slug"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	Weight      float64   `json:"weight"`
	UserID      string    `json:"user_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TermResponse struct {
	Term       string              `json:"term"`
	Slug       string              `json:"slug"`
	Candidates []CandidateResponse `json:"candidates"`
	Best       *CandidateResponse  `json:"best,omitempty"`
	TotalTerms int                 `json:"total_terms"`
}

type SearchMatch struct {
	Term string `json:"term"`
	Slug string `json:"slug"`
}

type SearchResponse struct {
	Results []SearchMatch `json:"results"`
	Total   int           `json:"total"`
}
