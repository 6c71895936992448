// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// WriteCSV writes the row set with its header row. A zero-row set still
// produces the header, keeping the schema visible to downstream tooling.
func WriteCSV(w io.Writer, columns []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented array of column-keyed objects.
func WriteJSON(w io.Writer, columns []string, rows [][]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(keyedRows(columns, rows))
}

// WriteYAML writes rows as a YAML sequence of column-keyed mappings.
func WriteYAML(w io.Writer, columns []string, rows [][]string) error {
	data, err := yaml.Marshal(keyedRows(columns, rows))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func keyedRows(columns []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		m := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// FormatTable writes rows as a human-readable table. Cell contents are
// truncated to keep the table on screen.
func FormatTable(w io.Writer, columns []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No rows.")
		return
	}

	const maxWidth = 40
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				if n := len(truncate(row[i], maxWidth)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(columns))
		for i := range columns {
			cell := ""
			if i < len(cells) {
				cell = truncate(cells[i], maxWidth)
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(columns)
	total := 0
	for _, n := range widths {
		total += n + 2
	}
	fmt.Fprintln(w, strings.Repeat("-", total-2))
	for _, row := range rows {
		printRow(row)
	}
	fmt.Fprintf(w, "\n%d rows\n", len(rows))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on rune boundaries so multi-byte cell values stay valid UTF-8.
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Write renders rows in the named format: table, csv, json, or yaml.
func Write(w io.Writer, format string, columns []string, rows [][]string) error {
	switch format {
	case "", "table":
		FormatTable(w, columns, rows)
		return nil
	case "csv":
		return WriteCSV(w, columns, rows)
	case "json":
		return WriteJSON(w, columns, rows)
	case "yaml":
		return WriteYAML(w, columns, rows)
	default:
		return fmt.Errorf("unknown output format %q (supported: table, csv, json, yaml)", format)
	}
}
