package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"catalog-service/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "db.json"))
}

func clearProducts(t *testing.T, s *Store) {
	t.Helper()
	if _, err := s.Update(func(doc *Document) error {
		doc.Products = nil
		return nil
	}); err != nil {
		t.Fatalf("clear products: %v", err)
	}
}

func TestLoadSeedsMissingDocument(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Products) != 19 {
		t.Fatalf("expected 19 seed products, got %d", len(doc.Products))
	}
	if doc.Settings.StoreName != "élite space" {
		t.Fatalf("unexpected seed store name %q", doc.Settings.StoreName)
	}
	if _, err := os.Stat(s.path); err != nil {
		t.Fatalf("expected seeded document on disk: %v", err)
	}
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestNextIDNeverReusesDeletedIDs(t *testing.T) {
	s := newTestStore(t)
	clearProducts(t, s)

	create := func() int {
		var id int
		_, err := s.Update(func(doc *Document) error {
			id = NextID(doc.Products)
			doc.Products = append(doc.Products, model.Product{ID: id, Brand: "Acme", Name: "Widget"})
			return nil
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return id
	}

	if got := create(); got != 1 {
		t.Fatalf("first id: expected 1, got %d", got)
	}
	if got := create(); got != 2 {
		t.Fatalf("second id: expected 2, got %d", got)
	}

	if _, err := s.Update(func(doc *Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != 1 {
				kept = append(kept, p)
			}
		}
		doc.Products = kept
		return nil
	}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// max of remaining {2} is 2, so the gap at 1 is never refilled
	if got := create(); got != 3 {
		t.Fatalf("third id: expected 3, got %d", got)
	}
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	if _, err := s.Update(func(doc *Document) error {
		doc.Products = nil
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Products) != 19 {
		t.Fatalf("document changed despite fn error: %d products", len(doc.Products))
	}
}

func TestUpdateSerializesConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	clearProducts(t, s)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(func(doc *Document) error {
				id := NextID(doc.Products)
				doc.Products = append(doc.Products, model.Product{ID: id, Brand: "Acme", Name: "Widget"})
				return nil
			})
			if err != nil {
				t.Errorf("concurrent create: %v", err)
			}
		}()
	}
	wg.Wait()

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Products) != n {
		t.Fatalf("lost writes: expected %d products, got %d", n, len(doc.Products))
	}
	seen := make(map[int]bool)
	for _, p := range doc.Products {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Update(func(doc *Document) error {
		doc.Settings.Whatsapp = "77700000000"
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Settings.Whatsapp != "77700000000" {
		t.Fatalf("expected persisted whatsapp, got %q", doc.Settings.Whatsapp)
	}
}
