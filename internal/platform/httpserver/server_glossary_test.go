package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	contributionservice "termbank/contexts/glossary/contribution-service"
	ingestionservice "termbank/contexts/glossary/ingestion-service"
	reviewqueue "termbank/contexts/glossary/review-queue"
	termcatalog "termbank/contexts/glossary/term-catalog"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
)

func newTestServer() *Server {
	store := memory.NewStore(nil)
	return New(
		termcatalog.NewModuleWithStore(store, slog.Default()),
		reviewqueue.NewModuleWithStore(store, slog.Default()),
		contributionservice.NewModuleWithStore(store, slog.Default()),
		ingestionservice.NewModuleWithStore(store, slog.Default()),
		slog.Default(),
		":0",
	)
}

func postJSON(t *testing.T, server *Server, path string, payload string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func uploadDefinition(t *testing.T, server *Server, term string, definition string, userID string) map[string]any {
	t.Helper()
	body, err := json.Marshal(map[string]string{"term": term, "definition": definition})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	headers := map[string]string{}
	if userID != "" {
		headers["X-User-Id"] = userID
	}
	rr := postJSON(t, server, "/api/upload", string(body), headers)
	if rr.Code != http.StatusCreated {
		t.Fatalf("upload expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestUploadThenSearchAndGet(t *testing.T) {
	server := newTestServer()
	uploadDefinition(t, server, "Social Construct", "An idea accepted by the people in a society.", "")

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=social", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("search expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var search struct {
		Results []struct {
			Term string `json:"term"`
			Slug string `json:"slug"`
		} `json:"results"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &search); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(search.Results) != 1 || search.Results[0].Slug != "social-construct" {
		t.Fatalf("unexpected search results: %+v", search.Results)
	}
	if search.Results[0].Term != "Social Construct" {
		t.Fatalf("expected display name in search hit, got %q", search.Results[0].Term)
	}
	if search.Total != 1 {
		t.Fatalf("expected total 1, got %d", search.Total)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/terms/social-construct", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("get term expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSearchBlankQueryReturnsNoResults(t *testing.T) {
	server := newTestServer()
	uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "")

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var search struct {
		Results []any `json:"results"`
		Total   int   `json:"total"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &search); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(search.Results) != 0 || search.Total != 1 {
		t.Fatalf("blank query must match nothing, got %+v", search)
	}
}

func TestGetTermNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/terms/missing", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestBestCandidateRoute(t *testing.T) {
	server := newTestServer()
	uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "")
	uploadDefinition(t, server, "Habitus", "Another definition with enough characters.", "")

	req := httptest.NewRequest(http.MethodGet, "/api/terms/habitus/best", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUploadValidation(t *testing.T) {
	server := newTestServer()

	rr := postJSON(t, server, "/api/upload", `{"term":"Habitus","definition":"too short"}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("short definition expected 400, got %d", rr.Code)
	}

	rr = postJSON(t, server, "/api/upload", `{"term":"  ","definition":"a long enough definition"}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("blank term expected 400, got %d", rr.Code)
	}

	rr = postJSON(t, server, "/api/upload", `{not json`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json expected 400, got %d", rr.Code)
	}
}

func TestUploadFileMultipart(t *testing.T) {
	server := newTestServer()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("term", "Discourse"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("A historically situated way of talking about a subject.")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Slug   string `json:"slug"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Slug != "discourse" || resp.Status != "pending" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUploadFileUnsupportedType(t *testing.T) {
	server := newTestServer()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("term", "Discourse")
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="file"; filename="photo.png"`},
		"Content-Type":        {"image/png"},
	})
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte{0x89, 0x50, 0x4E, 0x47})
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReviewNextNoContentOnEmptyPool(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/review/next", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestReviewVoteFlow(t *testing.T) {
	server := newTestServer()
	uploaded := uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "")
	candidateID, _ := uploaded["candidate_id"].(string)
	if candidateID == "" {
		t.Fatalf("missing candidate id in %+v", uploaded)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/review/next", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("next expected 200, got %d", rr.Code)
	}

	rr = postJSON(t, server, "/api/review/votes", `{"candidate_id":"`+candidateID+`","direction":"raise"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("vote expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var vote struct {
		Weight float64 `json:"weight"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &vote); err != nil {
		t.Fatalf("decode vote: %v", err)
	}
	if vote.Weight != 0.55 {
		t.Fatalf("expected weight 0.55 after raise, got %f", vote.Weight)
	}

	rr = postJSON(t, server, "/api/review/votes", `{"candidate_id":"`+candidateID+`","direction":"sideways"}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad direction expected 400, got %d", rr.Code)
	}

	rr = postJSON(t, server, "/api/review/votes", `{"candidate_id":"missing","direction":"raise"}`, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown candidate expected 404, got %d", rr.Code)
	}
}

func TestReviewFlagGating(t *testing.T) {
	server := newTestServer()
	uploaded := uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "")
	candidateID, _ := uploaded["candidate_id"].(string)

	rr := postJSON(t, server, "/api/review/flags", `{"candidate_id":"`+candidateID+`","hold_ms":600,"confirmed":true}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("short hold expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = postJSON(t, server, "/api/review/flags", `{"candidate_id":"`+candidateID+`","hold_ms":1500,"confirmed":false}`, nil)
	if rr.Code != http.StatusPreconditionFailed {
		t.Fatalf("unconfirmed expected 412, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = postJSON(t, server, "/api/review/flags", `{"candidate_id":"`+candidateID+`","reason":"spam","hold_ms":1500,"confirmed":true}`, map[string]string{"X-User-Id": "user-2"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("confirmed flag expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContributionLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()
	uploaded := uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "user-1")
	candidateID, _ := uploaded["candidate_id"].(string)

	// Uploads land pending, so moderation is the next legal step.
	req := httptest.NewRequest(http.MethodPatch, "/api/contributions/"+candidateID, bytes.NewReader([]byte(`{"status":"published"}`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("moderate expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/contributions/"+candidateID, bytes.NewReader([]byte(`{"status":"rejected"}`)))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("double moderation expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/contributions", nil)
	req.Header.Set("X-User-Id", "user-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("list expected 200, got %d", rr.Code)
	}
	var buckets struct {
		Published []struct {
			CandidateID string `json:"candidate_id"`
		} `json:"published"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &buckets); err != nil {
		t.Fatalf("decode buckets: %v", err)
	}
	if len(buckets.Published) != 1 || buckets.Published[0].CandidateID != candidateID {
		t.Fatalf("expected candidate in published bucket, got %+v", buckets.Published)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/contributions/"+candidateID, nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete expected 204, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/contributions/"+candidateID, nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete expected 404, got %d", rr.Code)
	}
}

func TestModerateRejectsUnknownOutcome(t *testing.T) {
	server := newTestServer()
	uploaded := uploadDefinition(t, server, "Habitus", "A durable set of dispositions and tastes.", "user-1")
	candidateID, _ := uploaded["candidate_id"].(string)

	req := httptest.NewRequest(http.MethodPatch, "/api/contributions/"+candidateID, bytes.NewReader([]byte(`{"status":"archived"}`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unknown outcome expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
