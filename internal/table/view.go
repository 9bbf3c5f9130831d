package table

import "strings"

// getTypeIcon picks a one-glyph hint for a database column type name.
func getTypeIcon(typeName string) string {
	upper := strings.ToUpper(typeName)

	// String/Text types
	if strings.Contains(upper, "CHAR") || strings.Contains(upper, "TEXT") ||
		strings.Contains(upper, "STRING") || strings.Contains(upper, "CLOB") {
		return "α"
	}

	// Integer types
	if strings.Contains(upper, "INT") || strings.Contains(upper, "SERIAL") ||
		upper == "YEAR" {
		return "№"
	}

	// Decimal/Float types
	if strings.Contains(upper, "DECIMAL") || strings.Contains(upper, "NUMERIC") ||
		strings.Contains(upper, "FLOAT") || strings.Contains(upper, "DOUBLE") ||
		strings.Contains(upper, "REAL") || strings.Contains(upper, "MONEY") {
		return "≈"
	}

	// Date types
	if strings.Contains(upper, "DATE") && !strings.Contains(upper, "TIME") {
		return "⊞"
	}

	// Time/Timestamp types
	if strings.Contains(upper, "TIME") {
		return "◷"
	}

	// Boolean types
	if strings.Contains(upper, "BOOL") || upper == "BIT" {
		return "✓"
	}

	// Binary/Blob types
	if strings.Contains(upper, "BLOB") || strings.Contains(upper, "BINARY") ||
		strings.Contains(upper, "BYTEA") {
		return "◆"
	}

	if strings.Contains(upper, "JSON") {
		return "{ }"
	}

	if strings.Contains(upper, "UUID") {
		return "I"
	}

	if strings.Contains(upper, "ENUM") || upper == "SET" {
		return "⋮"
	}

	if strings.Contains(upper, "GEOMETRY") || strings.Contains(upper, "POINT") ||
		strings.Contains(upper, "POLYGON") {
		return "◉"
	}

	return "•"
}
