package archive

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/pipeline"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := Record{
		ID:        "0d1f3b1c-1b9a-4b8e-9f3a-6c2d8e4f0a12",
		CreatedAt: time.Now().UTC(),
		Analysis: pipeline.Analysis{
			ProfileHash: "abc123",
			Candidates:  []string{"A", "B"},
			Winner:      "A",
		},
	}

	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Analysis.Winner != "A" || got.Analysis.ProfileHash != "abc123" {
		t.Errorf("Get() = %+v, want the stored analysis", got.Analysis)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	_, err := s.Get(ctx, "missing")
	if !errors.Is(err, errors.ErrCodeAnalysisNotFound) {
		t.Errorf("Get() error = %v, want ANALYSIS_NOT_FOUND", err)
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := Record{ID: "id-1", Analysis: pipeline.Analysis{Winner: "A"}}
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	rec.Analysis.Winner = "B"
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Analysis.Winner != "B" {
		t.Errorf("Winner = %q after replace, want B", got.Analysis.Winner)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		rec := Record{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := s.Put(ctx, rec); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	recs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(recs))
	}
	if recs[0].ID != "third" || recs[1].ID != "second" {
		t.Errorf("List() order = [%s, %s], want newest first", recs[0].ID, recs[1].ID)
	}

	// Zero limit returns everything
	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(0) returned %d records, want 3", len(all))
	}
}
