package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("init event repo: %v", err)
	}
	return repo
}

func TestAppendAndQueryIngests(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendIngest(ctx, IngestEventData{
			EventID:    fmt.Sprintf("evt-%d", i),
			StudentID:  1000 + i%2,
			Kind:       "attendance",
			Detail:     "attendance 90.0 -> 60.0",
			RiskBefore: 0,
			RiskAfter:  20,
		})
		if err != nil {
			t.Fatalf("append ingest %d: %v", i, err)
		}
	}

	records, err := repo.RecentIngests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query ingests: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	// Newest first.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence > records[i-1].Sequence {
			t.Fatalf("records not ordered newest first: %d then %d",
				records[i-1].Sequence, records[i].Sequence)
		}
	}

	if records[0].EventID != "evt-4" {
		t.Errorf("expected evt-4 first, got %s", records[0].EventID)
	}
}

func TestRecentIngests_LimitAndStudentFilter(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		err := repo.AppendIngest(ctx, IngestEventData{
			EventID:   fmt.Sprintf("evt-%d", i),
			StudentID: 1000 + i%3,
			Kind:      "assignment",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	limited, err := repo.RecentIngests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit 2, got %d", len(limited))
	}

	filtered, err := repo.RecentIngests(ctx, QueryOpts{StudentID: 1001})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 events for student 1001, got %d", len(filtered))
	}
	for _, rec := range filtered {
		if rec.StudentID != 1001 {
			t.Errorf("filter leaked student %d", rec.StudentID)
		}
	}
}

func TestPredictionStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	calls := []PredictionEventData{
		{Provider: "anthropic", Model: "m", PredictedClass: "High", Confidence: 0.9, Success: true},
		{Provider: "anthropic", Model: "m", Success: false, ErrorMessage: "rate limited"},
		{Provider: "mock", Model: "mock", PredictedClass: "Low", Confidence: 0.85, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendPrediction(ctx, c); err != nil {
			t.Fatalf("append prediction %d: %v", i, err)
		}
	}

	total, failed, err := repo.PredictionStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if total != 3 || failed != 1 {
		t.Errorf("expected 3 total / 1 failed, got %d / %d", total, failed)
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// Interleave types; the global sequence must still strictly increase.
	if err := repo.AppendPrediction(ctx, PredictionEventData{Provider: "mock", Success: true}); err != nil {
		t.Fatalf("append prediction: %v", err)
	}
	if err := repo.AppendIngest(ctx, IngestEventData{EventID: "a", StudentID: 1000, Kind: "attendance"}); err != nil {
		t.Fatalf("append ingest: %v", err)
	}
	if err := repo.AppendAssessment(ctx, AssessmentEventData{StudentID: 1000, FinalScore: 20, FinalLevel: "Low"}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendIngest(ctx, IngestEventData{EventID: "b", StudentID: 1000, Kind: "assignment"}); err != nil {
		t.Fatalf("append ingest: %v", err)
	}

	records, err := repo.RecentIngests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 ingest records, got %d", len(records))
	}
	// "b" was the 4th event overall, "a" the 2nd: gaps prove the
	// counter is shared across tables.
	if records[0].Sequence-records[1].Sequence < 2 {
		t.Errorf("expected a sequence gap across interleaved types: %d then %d",
			records[1].Sequence, records[0].Sequence)
	}
}

func TestAfterCursor(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := repo.AppendIngest(ctx, IngestEventData{
			EventID: fmt.Sprintf("evt-%d", i), StudentID: 1000, Kind: "attendance",
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.RecentIngests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	cursor := all[len(all)-1].Sequence // oldest

	newer, err := repo.RecentIngests(ctx, QueryOpts{After: cursor})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(newer) != 3 {
		t.Fatalf("expected 3 events after cursor, got %d", len(newer))
	}
}
