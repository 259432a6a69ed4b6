package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tyama/commentx/internal/engine"
)

type SortKey struct {
	Name string
	Desc bool
}

type SortSpec struct {
	Keys []SortKey
}

// ParseSortSpec parses a comma-separated sort expression. Each key may
// carry a +/- prefix; "location" expands to file,line,col.
func ParseSortSpec(raw string) (SortSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortSpec{}, nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: empty segment")
		}
		desc := false
		switch token[0] {
		case '+':
			token = token[1:]
		case '-':
			desc = true
			token = token[1:]
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: sign without name")
		}
		name := strings.ToLower(token)
		switch name {
		case "location":
			keys = append(keys,
				SortKey{Name: "file", Desc: desc},
				SortKey{Name: "line", Desc: desc},
				SortKey{Name: "col", Desc: desc},
			)
			continue
		case "file", "line", "col", "style", "text":
			// accepted as is
		default:
			return SortSpec{}, fmt.Errorf("invalid sort key: %s", token)
		}
		keys = append(keys, SortKey{Name: name, Desc: desc})
	}
	return SortSpec{Keys: keys}, nil
}

// ApplySort sorts items by the parsed keys; file, line and col are always
// appended as tiebreakers so the order stays deterministic.
func ApplySort(items []engine.Item, spec SortSpec) {
	keys := append(append([]SortKey{}, spec.Keys...),
		SortKey{Name: "file"}, SortKey{Name: "line"}, SortKey{Name: "col"})
	sort.SliceStable(items, func(i, j int) bool {
		a := &items[i]
		b := &items[j]
		for _, key := range keys {
			switch key.Name {
			case "file":
				if a.File != b.File {
					if key.Desc {
						return a.File > b.File
					}
					return a.File < b.File
				}
			case "line":
				if a.Line != b.Line {
					if key.Desc {
						return a.Line > b.Line
					}
					return a.Line < b.Line
				}
			case "col":
				if a.Col != b.Col {
					if key.Desc {
						return a.Col > b.Col
					}
					return a.Col < b.Col
				}
			case "style":
				if a.Style != b.Style {
					if key.Desc {
						return a.Style > b.Style
					}
					return a.Style < b.Style
				}
			case "text":
				if a.Text != b.Text {
					if key.Desc {
						return a.Text > b.Text
					}
					return a.Text < b.Text
				}
			}
		}
		return false
	})
}
