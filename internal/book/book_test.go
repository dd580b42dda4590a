package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		lineCount    int
		linesPerPage int
		want         int
	}{
		{0, 40, 0},
		{1, 40, 1},
		{40, 40, 1},
		{41, 40, 2},
		{80, 40, 2},
		{100, 0, 3}, // falls back to the default unit
	}
	for _, tt := range tests {
		if got := PageCount(tt.lineCount, tt.linesPerPage); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.lineCount, tt.linesPerPage, got, tt.want)
		}
	}
}

func TestPageLines(t *testing.T) {
	lines := make([]string, 0, 95)
	for i := 0; i < 95; i++ {
		lines = append(lines, strings.Repeat("x", i%10))
	}
	if got := PageLines(lines, 1, 40); len(got) != 40 || got[0] != lines[0] {
		t.Fatalf("unexpected first page: %d lines", len(got))
	}
	if got := PageLines(lines, 3, 40); len(got) != 15 {
		t.Fatalf("expected 15 lines on the last page, got %d", len(got))
	}
	if got := PageLines(lines, 4, 40); got != nil {
		t.Fatalf("expected nil past the end, got %d lines", len(got))
	}
	if got := PageLines(lines, 0, 40); got != nil {
		t.Fatalf("expected nil for page 0, got %d lines", len(got))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{0, 10, 1},
		{-3, 10, 1},
		{5, 10, 5},
		{11, 10, 10},
		{3, 0, 3}, // unknown total leaves the upper bound open
	}
	for _, tt := range tests {
		if got := Clamp(tt.page, tt.total); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	content := "first line\n\nthird line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (blank kept), got %d", len(lines))
	}
	if lines[1] != "" {
		t.Fatalf("expected blank line preserved, got %q", lines[1])
	}
}

func TestLoadLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadLines(path); err == nil {
		t.Fatal("expected error for empty document")
	}
}
