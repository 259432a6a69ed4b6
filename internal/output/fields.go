// Package output renders scan results in the machine-readable formats
// (csv, ndjson, markdown) shared by the CLI and the web API.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyama/commentx/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

// FieldSelection is a validated, ordered list of output columns.
type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"file":     "FILE",
	"line":     "LINE",
	"col":      "COL",
	"location": "LOCATION",
	"style":    "STYLE",
	"text":     "TEXT",
}

var defaultFieldKeys = []string{"location", "style", "text"}

// ResolveFields parses a comma-separated field list. An empty string
// selects the default columns.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	sel := FieldSelection{}
	if raw == "" {
		sel.Fields = make([]Field, 0, len(defaultFieldKeys))
		for _, key := range defaultFieldKeys {
			sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
		}
		return sel, nil
	}

	parts := strings.Split(raw, ",")
	sel.Fields = make([]Field, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		key := strings.ToLower(name)
		header, ok := fieldRegistry[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header})
	}
	return sel, nil
}

// Headers returns the column headers for the selection, in order.
func Headers(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Header)
	}
	return out
}

// RowValues formats one item into the selected columns.
func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, FormatFieldValue(it, f.Key))
	}
	return out
}

func FormatFieldValue(it engine.Item, key string) string {
	switch key {
	case "file":
		return it.File
	case "line":
		return strconv.Itoa(it.Line)
	case "col":
		return strconv.Itoa(it.Col)
	case "location":
		return fmt.Sprintf("%s:%d:%d", it.File, it.Line, it.Col)
	case "style":
		return string(it.Style)
	case "text":
		return it.Text
	default:
		return ""
	}
}
