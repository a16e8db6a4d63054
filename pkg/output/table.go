package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

// Column maps a record field to a table column.
type Column struct {
	Header string
	Field  string
}

// TableFormatter renders records as a column table using pterm.
type TableFormatter struct {
	colors bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(colors bool) *TableFormatter {
	return &TableFormatter{colors: colors}
}

// Format renders the records under the given column layout. Fields
// missing from a record render as empty cells. An empty record list
// prints a short message instead of a bare header.
func (f *TableFormatter) Format(w io.Writer, columns []Column, records []map[string]interface{}) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No results found")
		return err
	}

	tableData := make([][]string, 0, len(records)+1)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	tableData = append(tableData, headers)

	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = formatValue(record[col.Field])
		}
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.WithHasHeader(true).WithData(tableData)
	if f.colors {
		table = table.WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold))
	} else {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}

	rendered, err := table.Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}

// formatValue stringifies a decoded JSON value for a table cell. JSON
// numbers arrive as float64; integral values print without a decimal
// point.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
