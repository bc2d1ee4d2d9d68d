package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UploadRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source,omitempty"`
}

type UploadResponse struct {
	Slug        string  `json:"slug"`
	Term        string  `json:"term"`
	CandidateID string  `json:"candidate_id"`
	Weight      float64 `json:"weight"`
	Status      string  `json:"status"`
}
