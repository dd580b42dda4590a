package reader

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWords breaks a line into display rows no wider than width, splitting at
// word boundaries. A single word wider than the line is broken mid-word.
func wrapWords(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var rows []string
	var row strings.Builder
	rowWidth := 0
	for _, word := range strings.Fields(line) {
		wordWidth := runewidth.StringWidth(word)
		if rowWidth > 0 && rowWidth+1+wordWidth > width {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		if wordWidth > width {
			if rowWidth > 0 {
				rows = append(rows, row.String())
				row.Reset()
				rowWidth = 0
			}
			parts := breakWord(word, width)
			for _, part := range parts[:len(parts)-1] {
				rows = append(rows, part)
			}
			last := parts[len(parts)-1]
			row.WriteString(last)
			rowWidth = runewidth.StringWidth(last)
			continue
		}
		if rowWidth > 0 {
			row.WriteByte(' ')
			rowWidth++
		}
		row.WriteString(word)
		rowWidth += wordWidth
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	if len(rows) == 0 {
		return []string{""}
	}
	return rows
}

// breakWord splits an overlong word into chunks no wider than width.
func breakWord(word string, width int) []string {
	var parts []string
	var part strings.Builder
	partWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if partWidth+rw > width && part.Len() > 0 {
			parts = append(parts, part.String())
			part.Reset()
			partWidth = 0
		}
		part.WriteRune(r)
		partWidth += rw
	}
	if part.Len() > 0 {
		parts = append(parts, part.String())
	}
	return parts
}
