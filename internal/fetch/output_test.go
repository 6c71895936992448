package fetch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

var (
	testColumns = []string{"orcid", "title", "doi"}
	testRows    = [][]string{
		{"0000-0002-1825-0097", "A Study, of Things", "10.1000/xyz"},
		{"0000-0002-1694-233X", "", ""},
	}
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testColumns, testRows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "orcid,title,doi" {
		t.Errorf("header = %q", lines[0])
	}
	// The comma in the title forces quoting.
	if !strings.Contains(lines[1], `"A Study, of Things"`) {
		t.Errorf("row = %q, want quoted cell", lines[1])
	}
}

func TestWriteCSVZeroRowsKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testColumns, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "orcid,title,doi" {
		t.Errorf("output = %q, want header only", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testColumns, testRows); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len = %d, want 2", len(decoded))
	}
	if decoded[0]["doi"] != "10.1000/xyz" {
		t.Errorf("decoded[0] = %v", decoded[0])
	}
}

func TestWriteJSONZeroRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testColumns, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want empty array, not null", got)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, testColumns, testRows); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var decoded []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 2 || decoded[0]["orcid"] != "0000-0002-1825-0097" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&buf, testColumns, testRows)

	out := buf.String()
	if !strings.Contains(out, "orcid") || !strings.Contains(out, "10.1000/xyz") {
		t.Errorf("table output = %q", out)
	}
	if !strings.Contains(out, "2 rows") {
		t.Errorf("table output missing row count: %q", out)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(&buf, testColumns, nil)
	if !strings.Contains(buf.String(), "No rows.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTruncateMultibyte(t *testing.T) {
	long := strings.Repeat("é", 50)
	got := truncate(long, 40)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", 37) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}

	// A value whose byte length exceeds max but whose rune count does not
	// is left alone.
	short := strings.Repeat("é", 30)
	if got := truncate(short, 40); got != short {
		t.Errorf("truncate = %q, want input unchanged", got)
	}
}

func TestWriteDispatch(t *testing.T) {
	for _, format := range []string{"", "table", "csv", "json", "yaml"} {
		var buf bytes.Buffer
		if err := Write(&buf, format, testColumns, testRows); err != nil {
			t.Errorf("Write(%q): %v", format, err)
		}
	}
	if err := Write(&bytes.Buffer{}, "xml", testColumns, testRows); err == nil {
		t.Error("Write should reject an unknown format")
	}
}
