package parser

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

func TestHighlightSQL_PreservesText(t *testing.T) {
	tests := []string{
		"SELECT id, name FROM users WHERE name = 'O''Brien' ORDER BY id",
		"insert into t(a) values (1)",
		"UPDATE t SET note = 'select from where' WHERE id = 3",
		"SELECT 'unterminated",
		"",
	}

	for _, sql := range tests {
		if got := ansi.Strip(HighlightSQL(sql)); got != sql {
			t.Errorf("HighlightSQL(%q) stripped = %q, want the input unchanged", sql, got)
		}
	}
}

func TestHighlightSQL_Keywords(t *testing.T) {
	got := HighlightSQL("select 1")
	want := styles.SQLKeyword.Render("select") + " 1"
	if got != want {
		t.Errorf("HighlightSQL() = %q, want %q", got, want)
	}
}

func TestHighlightSQL_CompoundKeywordIsOneUnit(t *testing.T) {
	got := HighlightSQL("ORDER  BY")
	want := styles.SQLKeyword.Render("ORDER  BY")
	if got != want {
		t.Errorf("HighlightSQL() = %q, want %q", got, want)
	}
}

func TestHighlightSQL_KeywordsInsideLiteralsAreNotKeywords(t *testing.T) {
	got := HighlightSQL("x = 'from'")
	want := "x = " + styles.SQLString.Render("'from'")
	if got != want {
		t.Errorf("HighlightSQL() = %q, want %q", got, want)
	}
}

func TestHighlightSQL_IdentifiersContainingKeywords(t *testing.T) {
	got := HighlightSQL("fromage")
	if got != "fromage" {
		t.Errorf("HighlightSQL() = %q, want identifier untouched", got)
	}
}
