package unit

import (
	"context"
	"testing"

	contributionservice "termbank/contexts/glossary/contribution-service"
	contributionhttp "termbank/contexts/glossary/contribution-service/transport/http"
	ingestionservice "termbank/contexts/glossary/ingestion-service"
	ingestionhttp "termbank/contexts/glossary/ingestion-service/transport/http"
	reviewqueue "termbank/contexts/glossary/review-queue"
	reviewhttp "termbank/contexts/glossary/review-queue/transport/http"
	termcatalog "termbank/contexts/glossary/term-catalog"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
)

type glossaryModules struct {
	Catalog       termcatalog.Module
	Reviews       reviewqueue.Module
	Contributions contributionservice.Module
	Ingestion     ingestionservice.Module
}

func newGlossaryModules() glossaryModules {
	store := memory.NewStore(nil)
	return glossaryModules{
		Catalog:       termcatalog.NewModuleWithStore(store, nil),
		Reviews:       reviewqueue.NewModuleWithStore(store, nil),
		Contributions: contributionservice.NewModuleWithStore(store, nil),
		Ingestion:     ingestionservice.NewModuleWithStore(store, nil),
	}
}

func TestGlossaryUploadReviewAndPublishFlow(t *testing.T) {
	modules := newGlossaryModules()
	ctx := context.Background()

	uploaded, err := modules.Ingestion.Handler.UploadHandler(ctx, "user-7", ingestionhttp.UploadRequest{
		Term:       "Cultural Capital",
		Definition: "Non-financial assets such as education and taste that confer social standing.",
		Source:     "Bourdieu seminar notes",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if uploaded.Slug != "cultural-capital" {
		t.Fatalf("expected slug cultural-capital, got %s", uploaded.Slug)
	}
	if uploaded.Weight != 0.5 {
		t.Fatalf("expected seed weight 0.5, got %f", uploaded.Weight)
	}
	if uploaded.Status != "pending" {
		t.Fatalf("expected pending candidate, got %s", uploaded.Status)
	}

	term, err := modules.Catalog.Handler.GetTermHandler(ctx, uploaded.Slug)
	if err != nil {
		t.Fatalf("get term failed: %v", err)
	}
	if term.Best == nil || term.Best.CandidateID != uploaded.CandidateID {
		t.Fatalf("expected uploaded candidate to lead the term")
	}

	voted, err := modules.Reviews.Handler.CastVoteHandler(ctx, reviewhttp.CastVoteRequest{
		CandidateID: uploaded.CandidateID,
		Direction:   "raise",
	})
	if err != nil {
		t.Fatalf("cast vote failed: %v", err)
	}
	if voted.Weight != 0.55 {
		t.Fatalf("expected weight 0.55 after raise, got %f", voted.Weight)
	}

	flagged, err := modules.Reviews.Handler.FlagHandler(ctx, "moderator-1", reviewhttp.FlagRequest{
		CandidateID: uploaded.CandidateID,
		Reason:      "source needs a citation",
		HoldMs:      1500,
		Confirmed:   true,
	})
	if err != nil {
		t.Fatalf("flag failed: %v", err)
	}
	if flagged.SignalID == "" || flagged.CandidateID != uploaded.CandidateID {
		t.Fatalf("expected recorded flag signal for candidate %s", uploaded.CandidateID)
	}

	published, err := modules.Contributions.Handler.ModerateHandler(ctx, uploaded.CandidateID, contributionhttp.ModerateRequest{
		Status: "published",
	})
	if err != nil {
		t.Fatalf("moderate failed: %v", err)
	}
	if published.Status != "published" {
		t.Fatalf("expected published candidate, got %s", published.Status)
	}

	best, err := modules.Catalog.Handler.BestCandidateHandler(ctx, uploaded.Slug)
	if err != nil {
		t.Fatalf("best candidate failed: %v", err)
	}
	if best.Weight != 0.55 || best.Status != "published" {
		t.Fatalf("expected published best at 0.55, got %s at %f", best.Status, best.Weight)
	}

	results, err := modules.Catalog.Handler.SearchHandler(ctx, "cultural")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if results.Total != 1 || results.Results[0].Slug != uploaded.Slug {
		t.Fatalf("expected one search hit for %s, got %+v", uploaded.Slug, results)
	}
}

func TestGlossaryOwnerBucketsTrackModeration(t *testing.T) {
	modules := newGlossaryModules()
	ctx := context.Background()

	kept, err := modules.Ingestion.Handler.UploadHandler(ctx, "user-3", ingestionhttp.UploadRequest{
		Term:       "Anomie",
		Definition: "A breakdown of shared norms leaving individuals without social guidance.",
	})
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	dropped, err := modules.Ingestion.Handler.UploadHandler(ctx, "user-3", ingestionhttp.UploadRequest{
		Term:       "Habitus",
		Definition: "Durable dispositions acquired through lived social conditions.",
	})
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}

	if _, err := modules.Contributions.Handler.ModerateHandler(ctx, kept.CandidateID, contributionhttp.ModerateRequest{Status: "published"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := modules.Contributions.Handler.ModerateHandler(ctx, dropped.CandidateID, contributionhttp.ModerateRequest{Status: "rejected"}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	buckets, err := modules.Contributions.Handler.ListByOwnerHandler(ctx, "user-3")
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if len(buckets.Published) != 1 || buckets.Published[0].CandidateID != kept.CandidateID {
		t.Fatalf("expected %s in published bucket, got %+v", kept.CandidateID, buckets.Published)
	}
	if len(buckets.Rejected) != 1 || buckets.Rejected[0].CandidateID != dropped.CandidateID {
		t.Fatalf("expected %s in rejected bucket, got %+v", dropped.CandidateID, buckets.Rejected)
	}
	if len(buckets.Drafts) != 0 || len(buckets.Pending) != 0 {
		t.Fatalf("expected no draft or pending contributions, got %+v", buckets)
	}
}
