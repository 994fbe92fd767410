package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
)

func TestPutAssignsID(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	id, err := s.Put(ctx, store.Doc{Text: "hello", Date: "2020-01-01"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if id == "" {
		t.Fatal("Put should assign an ID")
	}

	doc, found, err := s.Get(ctx, id)
	if err != nil || !found {
		t.Fatalf("Get: err=%v found=%v", err, found)
	}
	if doc.Text != "hello" || doc.Date != "2020-01-01" {
		t.Errorf("stored doc mismatch: %+v", doc)
	}
	if doc.AddedAt.IsZero() {
		t.Error("Put should stamp AddedAt")
	}
}

func TestPutExistingIDReplaces(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	id, err := s.Put(ctx, store.Doc{Text: "first", Date: "2020-01-01"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := s.Put(ctx, store.Doc{ID: id, Text: "second", Date: "2020-02-01"}); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	doc, _, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc.Text != "second" || doc.Date != "2020-02-01" {
		t.Errorf("replace did not take: %+v", doc)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("replace should not grow the archive: count=%d", n)
	}
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	_, found, err := s.Get(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("missing doc should report found=false")
	}
}

func TestListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.Put(ctx, store.Doc{
			Text: fmt.Sprintf("doc %d", i),
			Date: "2020-01-01",
		})
		if err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 5 {
		t.Fatalf("expected 5 docs, got %d", len(docs))
	}
	for i, doc := range docs {
		if doc.ID != ids[i] {
			t.Errorf("position %d: got %s, want %s (ULIDs should sort by insertion)", i, doc.ID, ids[i])
		}
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("empty store count = %d", n)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Put(ctx, store.Doc{Text: "x", Date: "2020-01-01"}); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	if n, _ := s.Count(ctx); n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			_, err := s.Put(ctx, store.Doc{
				Text:    fmt.Sprintf("doc %d", i),
				Date:    "2020-01-01",
				AddedAt: time.Now(),
			})
			done <- err
		}(i)
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent Put: %v", err)
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 20 {
		t.Errorf("count = %d, want 20", n)
	}
}
