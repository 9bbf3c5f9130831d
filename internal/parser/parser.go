// Package parser highlights SQL text for terminal display. It never changes
// what is sent to the backend.
package parser

import (
	"regexp"
	"strings"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

var compoundKeywords = []string{
	"FULL OUTER JOIN", "LEFT OUTER JOIN", "RIGHT OUTER JOIN",
	"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "FULL JOIN", "CROSS JOIN",
	"INSERT INTO", "DELETE FROM", "GROUP BY", "ORDER BY",
	"UNION ALL", "FETCH FIRST", "ROWS ONLY",
}

var highlightKeywords = []string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "FULL", "CROSS", "OUTER",
	"ON", "GROUP", "BY", "HAVING", "ORDER", "LIMIT", "OFFSET", "UNION", "ALL",
	"INSERT", "INTO", "UPDATE", "DELETE", "VALUES", "SET", "AND", "OR", "NOT",
	"IN", "EXISTS", "BETWEEN", "LIKE", "IS", "NULL", "DISTINCT", "AS",
	"CASE", "WHEN", "THEN", "ELSE", "END", "FETCH", "FIRST", "ROWS", "ONLY",
	"CREATE", "DROP", "ALTER", "TABLE", "TRUNCATE", "SHOW", "DESCRIBE",
}

// keywordPattern matches compound keywords first so "ORDER BY" is styled
// as one unit.
var keywordPattern = buildPattern(append(append([]string{}, compoundKeywords...), highlightKeywords...))

func buildPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(kw), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// HighlightSQL styles keywords outside of single-quoted literals and the
// literals themselves.
func HighlightSQL(sql string) string {
	var result strings.Builder
	inString := false
	start := 0

	flushCode := func(end int) {
		if start < end {
			result.WriteString(keywordPattern.ReplaceAllStringFunc(sql[start:end], func(s string) string { return styles.SQLKeyword.Render(s) }))
		}
	}

	for i := 0; i < len(sql); i++ {
		if sql[i] != '\'' {
			continue
		}
		if inString {
			result.WriteString(styles.SQLString.Render(sql[start : i+1]))
			start = i + 1
			inString = false
		} else {
			flushCode(i)
			start = i
			inString = true
		}
	}

	if inString {
		result.WriteString(styles.SQLString.Render(sql[start:]))
	} else {
		flushCode(len(sql))
	}
	return result.String()
}
