package store

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	doc := Document{ID: "doc-1", Filename: "a.txt", Text: "hello"}
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "hello" {
		t.Errorf("expected text %q, got %q", "hello", got.Text)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_ = s.Put(ctx, Document{ID: "doc-1", Text: "first"})
	_ = s.Put(ctx, Document{ID: "doc-1", Text: "second"})

	got, err := s.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "second" {
		t.Errorf("expected last write to win, got %q", got.Text)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemory()
	_, err := s.Get(context.Background(), "never-written")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Put(ctx, Document{ID: "shared", Text: "text"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "text" {
		t.Errorf("expected %q, got %q", "text", got.Text)
	}
}
