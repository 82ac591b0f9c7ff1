// Package table renders API responses as terminal or Markdown tables.
// Data sources implement the TableData interface, and ModelTable
// provides one for model listings.
package table

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i, which are converted to
	// strings with FormatCell.
	Row(i int) []any
}

// ModelTable renders models with their owner and creation time
type ModelTable []schema.Model

var _ TableData = ModelTable(nil)

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table for a terminal. Columns are narrowed to the
// terminal width when stdout is a terminal which is too narrow.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i := range data.Len() {
		t.Row(cells(data.Row(i), len(data.Header()))...)
	}

	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		if lipgloss.Width(result) > w {
			t.Width(w)
			result = t.Render()
		}
	}
	return result
}

// RenderMarkdown renders the table as Markdown
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("| " + strings.Join(header, " | ") + " |\n")
	buf.WriteString("|" + strings.Repeat("---|", len(header)))
	for i := range data.Len() {
		row := cells(data.Row(i), len(header))
		for j := range row {
			row[j] = strings.ReplaceAll(row[j], "|", `\|`)
		}
		buf.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return buf.String()
}

// FormatCell converts a value to a display string for a table cell.
// Missing and zero values are shown as "-".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case time.Time:
		if val.IsZero() {
			return "-"
		}
		return val.Format("2006-01-02 15:04")
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

///////////////////////////////////////////////////////////////////////////////
// MODEL TABLE

func (ModelTable) Header() []string {
	return []string{"Model", "Owner", "Created"}
}

func (t ModelTable) Len() int {
	return len(t)
}

func (t ModelTable) Row(i int) []any {
	return []any{t[i].Id, t[i].OwnedBy, t[i].CreatedAt()}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// cells formats a row, padding or truncating it to n cells
func cells(row []any, n int) []string {
	result := make([]string, n)
	for i := range result {
		if i < len(row) {
			result[i] = FormatCell(row[i])
		} else {
			result[i] = FormatCell(nil)
		}
	}
	return result
}
