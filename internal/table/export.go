package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
)

type ExportFormat string

const (
	ExportTable    ExportFormat = "table"
	ExportCSV      ExportFormat = "csv"
	ExportJSON     ExportFormat = "json"
	ExportTSV      ExportFormat = "tsv"
	ExportMarkdown ExportFormat = "markdown"
)

// ParseExportFormat accepts the long names and their one-letter shortcuts.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return ExportTable, nil
	case "c", "csv":
		return ExportCSV, nil
	case "j", "json":
		return ExportJSON, nil
	case "t", "tsv":
		return ExportTSV, nil
	case "m", "markdown", "md":
		return ExportMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Export writes a read result in a plain text format. NULL cells are empty
// in csv and tsv and null in json.
func Export(result *db.Result, format ExportFormat) (string, error) {
	switch format {
	case ExportCSV:
		return formatCSV(result)
	case ExportJSON:
		return formatJSON(result)
	case ExportTSV:
		return formatTSV(result), nil
	case ExportMarkdown:
		return formatMarkdown(result), nil
	}
	return "", fmt.Errorf("format %q is not an export format", format)
}

func cellText(v db.Value) string {
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func formatCSV(result *db.Result) (string, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	if err := writer.Write(result.Columns); err != nil {
		return "", err
	}

	record := make([]string, len(result.Columns))
	for _, row := range result.Rows {
		for i, v := range row {
			record[i] = cellText(v)
		}
		if err := writer.Write(record[:len(row)]); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// formatJSON emits one object per row. Duplicate column names keep the
// last value, so the gateway's headers/results shape is the lossless one.
func formatJSON(result *db.Result) (string, error) {
	objects := make([]map[string]db.Value, 0, len(result.Rows))

	for _, row := range result.Rows {
		obj := make(map[string]db.Value, len(result.Columns))
		for i, header := range result.Columns {
			if i < len(row) {
				obj[header] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	data, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func formatTSV(result *db.Result) string {
	var buf strings.Builder
	flatten := strings.NewReplacer("\t", " ", "\n", " ")

	buf.WriteString(strings.Join(result.Columns, "\t") + "\n")
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = flatten.Replace(cellText(v))
		}
		buf.WriteString(strings.Join(cells, "\t") + "\n")
	}

	return buf.String()
}

func formatMarkdown(result *db.Result) string {
	var buf strings.Builder
	escape := strings.NewReplacer("|", `\|`, "\n", " ")

	buf.WriteString("|")
	for _, header := range result.Columns {
		buf.WriteString(" " + escape.Replace(header) + " |")
	}
	buf.WriteString("\n")

	buf.WriteString("|")
	for range result.Columns {
		buf.WriteString(" --- |")
	}
	buf.WriteString("\n")

	for _, row := range result.Rows {
		buf.WriteString("|")
		for _, v := range row {
			buf.WriteString(" " + escape.Replace(v.String()) + " |")
		}
		buf.WriteString("\n")
	}

	return buf.String()
}
