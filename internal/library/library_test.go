package library

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	})
	return st
}

func TestAddAndGetBook(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddBook(ctx, "Moby Dick", "/books/moby.txt", 120, 40)
	if err != nil {
		t.Fatalf("failed to add book: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}

	byID, err := st.GetBook(ctx, added.ID)
	if err != nil {
		t.Fatalf("failed to get by id: %v", err)
	}
	if byID.Title != "Moby Dick" || byID.TotalPages != 120 || byID.LinesPerPage != 40 {
		t.Fatalf("unexpected book: %+v", byID)
	}

	byPrefix, err := st.GetBook(ctx, "moby")
	if err != nil {
		t.Fatalf("failed to get by title prefix: %v", err)
	}
	if byPrefix.ID != added.ID {
		t.Fatalf("prefix lookup found wrong book: %+v", byPrefix)
	}

	if _, err := st.GetBook(ctx, "nope"); err == nil {
		t.Fatal("expected error for unknown book")
	}
}

func TestUpsertProgressCompletesExactlyOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddBook(ctx, "Short Story", "/books/story.txt", 10, 40)
	if err != nil {
		t.Fatalf("failed to add book: %v", err)
	}

	completedNow, err := st.UpsertProgress(ctx, added.ID, 5, 10)
	if err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}
	if completedNow {
		t.Fatal("page 5 of 10 must not complete the book")
	}

	completedNow, err = st.UpsertProgress(ctx, added.ID, 10, 10)
	if err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}
	if !completedNow {
		t.Fatal("expected first completion to report completedNow")
	}

	progress, err := st.GetProgress(ctx, added.ID)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if progress == nil || progress.CompletedAt == nil {
		t.Fatalf("expected completedAt to be set: %+v", progress)
	}
	firstCompletion := *progress.CompletedAt

	// Re-opening the finished book must not retrigger completion.
	completedNow, err = st.UpsertProgress(ctx, added.ID, 10, 10)
	if err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}
	if completedNow {
		t.Fatal("second completion must not report completedNow")
	}
	progress, err = st.GetProgress(ctx, added.ID)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if progress.CompletedAt == nil || !progress.CompletedAt.Equal(firstCompletion) {
		t.Fatalf("completedAt changed on revisit: %+v", progress)
	}
}

func TestGetProgressMissingReturnsNil(t *testing.T) {
	st := newTestStore(t)
	progress, err := st.GetProgress(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress != nil {
		t.Fatalf("expected nil progress, got %+v", progress)
	}
}

func TestListAndDeleteBooks(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.AddBook(ctx, "First", "/books/first.txt", 10, 40)
	if err != nil {
		t.Fatalf("failed to add book: %v", err)
	}
	if _, err := st.AddBook(ctx, "Second", "/books/second.txt", 20, 40); err != nil {
		t.Fatalf("failed to add book: %v", err)
	}
	if _, err := st.UpsertProgress(ctx, first.ID, 3, 10); err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}

	books, err := st.ListBooks(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	var withProgress int
	for _, item := range books {
		if item.Progress != nil {
			withProgress++
			if item.Progress.CurrentPage != 3 {
				t.Fatalf("unexpected progress: %+v", item.Progress)
			}
		}
	}
	if withProgress != 1 {
		t.Fatalf("expected 1 book with progress, got %d", withProgress)
	}

	if err := st.DeleteBook(ctx, first.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	books, err = st.ListBooks(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(books) != 1 || books[0].Book.Title != "Second" {
		t.Fatalf("unexpected books after delete: %+v", books)
	}
	progress, err := st.GetProgress(ctx, first.ID)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if progress != nil {
		t.Fatal("expected progress to be deleted with the book")
	}
}
