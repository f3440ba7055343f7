package audit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/slotwise/putaway/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entry, err := s.Append(ctx, AppendParams{
		ItemID: "IT-1", Product: "Industrial Solvent", Zone: "C",
		Confidence: model.ConfidenceHigh, Mandatory: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected non-empty ID")
	}
	if entry.FinalZone != "C" {
		t.Errorf("final zone = %q, want initial AI zone", entry.FinalZone)
	}

	got, err := s.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ItemID != "IT-1" || got.AIZone != "C" || !got.Mandatory {
		t.Errorf("got %+v", got)
	}
	if got.Overridden {
		t.Error("fresh entry must not be overridden")
	}
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, id := range []string{"IT-1", "IT-2", "IT-3"} {
		if _, err := s.Append(ctx, AppendParams{ItemID: id, Product: "p", Zone: "A", Confidence: model.ConfidenceMedium}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	entries, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ItemID != "IT-3" || entries[2].ItemID != "IT-1" {
		t.Errorf("entries not newest-first: %s, %s, %s",
			entries[0].ItemID, entries[1].ItemID, entries[2].ItemID)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d entries, want 2", len(limited))
	}
}

func TestOverride(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entry, err := s.Append(ctx, AppendParams{
		ItemID: "IT-1", Product: "Brake Pads", Zone: "D", Confidence: model.ConfidenceHigh,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	err = s.Override(ctx, OverrideParams{ID: entry.ID, Zone: "A", Reason: "D aisle blocked for maintenance"})
	if err != nil {
		t.Fatalf("override: %v", err)
	}

	got, err := s.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FinalZone != "A" || !got.Overridden {
		t.Errorf("final zone = %q overridden = %v, want A/true", got.FinalZone, got.Overridden)
	}
	if got.OverrideReason != "D aisle blocked for maintenance" {
		t.Errorf("reason = %q", got.OverrideReason)
	}
	// The AI's original decision stays on the record.
	if got.AIZone != "D" {
		t.Errorf("ai zone = %q, want D", got.AIZone)
	}
}

func TestOverride_UnknownID(t *testing.T) {
	s := newTestStore(t)
	err := s.Override(context.Background(), OverrideParams{ID: "nope", Zone: "A", Reason: "r"})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestGet_UnknownID(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}
