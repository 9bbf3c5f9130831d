package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

const DefaultCellWidth = 20

// Render draws a read result as a fixed-width table followed by a footer
// with the result size and elapsed time.
func Render(result *db.Result, elapsed time.Duration, cellWidth int) string {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}

	var b strings.Builder
	b.WriteString(renderHeader(result.Columns, result.ColumnTypes, cellWidth))
	b.WriteString("\n")
	b.WriteString(renderSeparator(len(result.Columns), cellWidth))
	b.WriteString("\n")

	for _, row := range result.Rows {
		b.WriteString(renderDataRow(row, cellWidth))
		b.WriteString("\n")
	}
	if len(result.Rows) < 1 {
		b.WriteString(styles.Faint.Render("Nothing to show here..."))
		b.WriteString("\n")
	}

	b.WriteString(renderFooter(len(result.Rows), len(result.Columns), elapsed))
	return b.String()
}

func renderHeader(columns, columnTypes []string, width int) string {
	cells := make([]string, len(columns))
	for j, name := range columns {
		typeIcon := ""
		if j < len(columnTypes) && columnTypes[j] != "" {
			typeIcon = getTypeIcon(columnTypes[j]) + " "
		}
		cells[j] = styles.TableHeader.Render(formatCell(typeIcon+name, width))
	}
	return strings.Join(cells, styles.TableBorder.Render("│"))
}

func renderSeparator(numCols, width int) string {
	parts := make([]string, numCols)
	for i := range parts {
		parts[i] = strings.Repeat("─", width)
	}
	return styles.TableBorder.Render(strings.Join(parts, "┼"))
}

func renderDataRow(row []db.Value, width int) string {
	cells := make([]string, len(row))
	for j, v := range row {
		style := styles.TableCell
		if v.IsNull() {
			style = styles.Faint
		}
		cells[j] = style.Render(formatCell(v.String(), width))
	}
	return strings.Join(cells, styles.TableBorder.Render("│"))
}

func renderFooter(numRows, numCols int, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s",
		styles.Faint.Render(fmt.Sprintf("%dx%d", numRows, numCols)),
		styles.Faint.Render(fmt.Sprintf("In %.2fs", elapsed.Seconds())),
	)
}

// formatCell pads or truncates content to exactly width terminal columns.
func formatCell(content string, width int) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if runewidth.StringWidth(content) > width {
		return runewidth.Truncate(content, width, "…")
	}
	return runewidth.FillRight(content, width)
}
