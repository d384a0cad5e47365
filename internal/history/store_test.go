package history

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Record(RecordParams{
		Element:      "Button",
		Category:     "ui/components",
		Modules:      []string{"architecture", "props"},
		AutoFillRate: 80,
		ReviewCount:  2,
		WorkorderID:  "WO-1",
	})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if id == "" {
		t.Fatal("Record() returned empty id")
	}

	runs, err := s.Recent("", 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id {
		t.Errorf("ID = %q, want %q", r.ID, id)
	}
	if r.Element != "Button" || r.Category != "ui/components" {
		t.Errorf("unexpected run: %+v", r)
	}
	if len(r.Modules) != 2 || r.Modules[0] != "architecture" {
		t.Errorf("Modules = %v, want [architecture props]", r.Modules)
	}
	if r.AutoFillRate != 80 || r.ReviewCount != 2 {
		t.Errorf("rate/count = %d/%d, want 80/2", r.AutoFillRate, r.ReviewCount)
	}
	if r.WorkorderID != "WO-1" {
		t.Errorf("WorkorderID = %q, want WO-1", r.WorkorderID)
	}
	if r.FeatureID != "" {
		t.Errorf("FeatureID = %q, want empty", r.FeatureID)
	}
	if r.CreatedAt == "" {
		t.Error("CreatedAt is empty")
	}
}

func TestRecent_FilterByElement(t *testing.T) {
	s := newTestStore(t)

	for _, el := range []string{"Button", "Button", "useAuth"} {
		if _, err := s.Record(RecordParams{Element: el, Category: "general"}); err != nil {
			t.Fatalf("Record(%s) error: %v", el, err)
		}
	}

	runs, err := s.Recent("Button", 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 Button runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Element != "Button" {
			t.Errorf("filter leaked element %q", r.Element)
		}
	}
}

func TestRecent_Limit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.Record(RecordParams{Element: "X", Category: "general"}); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	runs, err := s.Recent("", 3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestRecord_NilModules(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Record(RecordParams{Element: "X", Category: "general", Modules: nil}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	runs, err := s.Recent("", 1)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if runs[0].Modules == nil || len(runs[0].Modules) != 0 {
		t.Errorf("Modules = %v, want empty slice", runs[0].Modules)
	}
}
