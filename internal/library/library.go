// Package library handles SQLite persistence for books and progress.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/readquest/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the book library and per-book progress.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			path TEXT NOT NULL,
			total_pages INTEGER NOT NULL,
			lines_per_page INTEGER NOT NULL,
			added_at TEXT NOT NULL,
			last_read_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS reading_progress (
			book_id TEXT PRIMARY KEY,
			current_page INTEGER NOT NULL,
			total_pages INTEGER NOT NULL,
			completed_at TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_books_last_read_at ON books(last_read_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddBook inserts a new book and returns it with a generated id.
func (s *Store) AddBook(ctx context.Context, title, path string, totalPages, linesPerPage int) (model.Book, error) {
	book := model.Book{
		ID:           uuid.NewString(),
		Title:        title,
		Path:         path,
		TotalPages:   totalPages,
		LinesPerPage: linesPerPage,
		AddedAt:      time.Now(),
		LastReadAt:   time.Now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (id, title, path, total_pages, lines_per_page, added_at, last_read_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		book.ID,
		book.Title,
		book.Path,
		book.TotalPages,
		book.LinesPerPage,
		book.AddedAt.Format(time.RFC3339Nano),
		book.LastReadAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// GetBook finds a book by id, exact title, or title prefix, in that order.
func (s *Store) GetBook(ctx context.Context, idOrTitle string) (model.Book, error) {
	book, err := s.queryBook(ctx,
		`SELECT id, title, path, total_pages, lines_per_page, added_at, last_read_at FROM books
		 WHERE id = ?1 OR title = ?1 COLLATE NOCASE
		 ORDER BY last_read_at DESC LIMIT 1`, idOrTitle)
	if err == nil {
		return book, nil
	}
	if err != sql.ErrNoRows {
		return model.Book{}, err
	}
	book, err = s.queryBook(ctx,
		`SELECT id, title, path, total_pages, lines_per_page, added_at, last_read_at FROM books
		 WHERE title LIKE ?1 || '%' COLLATE NOCASE
		 ORDER BY last_read_at DESC LIMIT 1`, idOrTitle)
	if err == sql.ErrNoRows {
		return model.Book{}, fmt.Errorf("book not found: %s", idOrTitle)
	}
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Store) queryBook(ctx context.Context, query string, args ...any) (model.Book, error) {
	var book model.Book
	var addedAt, lastReadAt string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&book.ID, &book.Title, &book.Path, &book.TotalPages, &book.LinesPerPage, &addedAt, &lastReadAt)
	if err != nil {
		return model.Book{}, err
	}
	if book.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt); err != nil {
		return model.Book{}, err
	}
	if book.LastReadAt, err = time.Parse(time.RFC3339Nano, lastReadAt); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// ListBooks returns all books with their progress, most recently read first.
func (s *Store) ListBooks(ctx context.Context) ([]model.BookWithProgress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.id, b.title, b.path, b.total_pages, b.lines_per_page, b.added_at, b.last_read_at,
			p.current_page, p.total_pages, p.completed_at
		 FROM books b
		 LEFT JOIN reading_progress p ON p.book_id = b.id
		 ORDER BY b.last_read_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.BookWithProgress
	for rows.Next() {
		var item model.BookWithProgress
		var addedAt, lastReadAt string
		var currentPage, totalPages sql.NullInt64
		var completedAt sql.NullString
		if err := rows.Scan(
			&item.Book.ID, &item.Book.Title, &item.Book.Path, &item.Book.TotalPages,
			&item.Book.LinesPerPage, &addedAt, &lastReadAt, &currentPage, &totalPages, &completedAt); err != nil {
			return nil, err
		}
		if item.Book.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt); err != nil {
			return nil, err
		}
		if item.Book.LastReadAt, err = time.Parse(time.RFC3339Nano, lastReadAt); err != nil {
			return nil, err
		}
		if currentPage.Valid {
			progress := &model.ReadingProgress{
				BookID:      item.Book.ID,
				CurrentPage: int(currentPage.Int64),
				TotalPages:  int(totalPages.Int64),
			}
			if completedAt.Valid {
				parsed, err := time.Parse(time.RFC3339Nano, completedAt.String)
				if err != nil {
					return nil, err
				}
				progress.CompletedAt = &parsed
			}
			item.Progress = progress
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteBook removes a book and its progress record.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM reading_progress WHERE book_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// TouchLastRead updates a book's last-read timestamp.
func (s *Store) TouchLastRead(ctx context.Context, id string, t time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE books SET last_read_at = ? WHERE id = ?`, t.Format(time.RFC3339Nano), id)
	return err
}

// GetProgress returns the progress record for a book, or nil when none exists.
func (s *Store) GetProgress(ctx context.Context, bookID string) (*model.ReadingProgress, error) {
	var progress model.ReadingProgress
	var completedAt sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT book_id, current_page, total_pages, completed_at
		 FROM reading_progress WHERE book_id = ?`, bookID).
		Scan(&progress.BookID, &progress.CurrentPage, &progress.TotalPages, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		parsed, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return nil, err
		}
		progress.CompletedAt = &parsed
	}
	return &progress, nil
}

// UpsertProgress updates the bookmark for a book. completedAt is set exactly
// once, on the first update where currentPage reaches totalPages; the
// returned completedNow is true only on that update, so the caller can grant
// book-completion effects once per book.
func (s *Store) UpsertProgress(ctx context.Context, bookID string, currentPage, totalPages int) (completedNow bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	var existing sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT completed_at FROM reading_progress WHERE book_id = ?`, bookID).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	err = nil

	completedAt := existing
	if currentPage >= totalPages && totalPages > 0 && !existing.Valid {
		completedAt = sql.NullString{String: time.Now().Format(time.RFC3339Nano), Valid: true}
		completedNow = true
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO reading_progress (book_id, current_page, total_pages, completed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(book_id) DO UPDATE SET
			current_page = excluded.current_page,
			total_pages = excluded.total_pages,
			completed_at = excluded.completed_at`,
		bookID, currentPage, totalPages, completedAt); err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return completedNow, nil
}
