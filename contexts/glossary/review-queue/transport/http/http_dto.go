package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CardResponse struct {
	CandidateID string  `json:"candidate_id"`
	TermSlug    string  `json:"term_slug"`
	Term        string  `json:"term"`
	Text        string  `json:"text"`
	Source      string  `json:"source"`
	Weight      float64 `json:"weight"`
}

type QueueResponse struct {
	Cards []CardResponse `json:"cards"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
	Direction   string `json:"direction"`
}

type CastVoteResponse struct {
	CandidateID string  `json:"candidate_id"`
	TermSlug    string  `json:"term_slug"`
	Weight      float64 `json:"weight"`
}

type FlagRequest struct {
	CandidateID string `json:"candidate_id"`
	Reason      string `json:"reason,omitempty"`
	HoldMs      int64  `json:"hold_ms"`
	Confirmed   bool   `json:"confirmed"`
}

type FlagResponse struct {
	SignalID    string    `json:"signal_id"`
	CandidateID string    `json:"candidate_id"`
	TermSlug    string    `json:"term_slug"`
	RecordedAt  time.Time `json:"recorded_at"`
}
