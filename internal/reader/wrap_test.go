package reader

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapWordsShortLineUntouched(t *testing.T) {
	rows := wrapWords("short line", 40)
	if len(rows) != 1 || rows[0] != "short line" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestWrapWordsBreaksAtWordBoundaries(t *testing.T) {
	rows := wrapWords("the quick brown fox jumps over the lazy dog", 15)
	if len(rows) < 3 {
		t.Fatalf("expected multiple rows, got %v", rows)
	}
	for _, row := range rows {
		if runewidth.StringWidth(row) > 15 {
			t.Fatalf("row too wide: %q", row)
		}
		if strings.HasPrefix(row, " ") || strings.HasSuffix(row, " ") {
			t.Fatalf("row has stray spaces: %q", row)
		}
	}
	if strings.Join(strings.Fields(strings.Join(rows, " ")), " ") !=
		"the quick brown fox jumps over the lazy dog" {
		t.Fatalf("words lost in wrapping: %v", rows)
	}
}

func TestWrapWordsBreaksOverlongWord(t *testing.T) {
	word := strings.Repeat("a", 25)
	rows := wrapWords(word, 10)
	var joined strings.Builder
	for _, row := range rows {
		if runewidth.StringWidth(row) > 10 {
			t.Fatalf("row too wide: %q", row)
		}
		joined.WriteString(row)
	}
	if joined.String() != word {
		t.Fatalf("characters lost breaking word: %v", rows)
	}
}

func TestWrapWordsBlankLine(t *testing.T) {
	rows := wrapWords("", 10)
	if len(rows) != 1 || rows[0] != "" {
		t.Fatalf("expected one empty row, got %v", rows)
	}
}
