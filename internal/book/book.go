// Package book loads document text and paginates it.
package book

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultLinesPerPage is the pagination unit fixed at import time, so a
// book's page count stays stable across terminal sizes.
const DefaultLinesPerPage = 40

// LoadLines reads the document line by line, keeping blank lines so that
// paragraph breaks survive pagination.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only document.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	return lines, nil
}

// PageCount returns the number of pages for the given pagination unit.
func PageCount(lineCount, linesPerPage int) int {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}
	if lineCount <= 0 {
		return 0
	}
	return (lineCount + linesPerPage - 1) / linesPerPage
}

// PageLines returns the lines of the 1-based page index.
func PageLines(lines []string, page, linesPerPage int) []string {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}
	start := (page - 1) * linesPerPage
	if start < 0 || start >= len(lines) {
		return nil
	}
	end := start + linesPerPage
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// Clamp bounds a 1-based page index to [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}
