package main

import (
	"testing"

	"github.com/tyama/commentx/internal/engine"
	"github.com/tyama/commentx/internal/model"
)

func TestParseSortSpecNormalizesKeys(t *testing.T) {
	spec, err := ParseSortSpec("style,-location,+text")
	if err != nil {
		t.Fatalf("ParseSortSpec failed: %v", err)
	}
	want := []SortKey{
		{Name: "style", Desc: false},
		{Name: "file", Desc: true},
		{Name: "line", Desc: true},
		{Name: "col", Desc: true},
		{Name: "text", Desc: false},
	}
	if len(spec.Keys) != len(want) {
		t.Fatalf("unexpected key count: got=%v want=%v", spec.Keys, want)
	}
	for i, got := range spec.Keys {
		if got != want[i] {
			t.Fatalf("key %d mismatch: got=%+v want=%+v", i, got, want[i])
		}
	}
}

func TestParseSortSpecUnknownKey(t *testing.T) {
	if _, err := ParseSortSpec("unknown"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestParseSortSpecEmptyEntry(t *testing.T) {
	if _, err := ParseSortSpec("file,,line"); err == nil {
		t.Fatal("expected error for empty sort key")
	}
}

func TestParseSortSpecEmptyIsNoop(t *testing.T) {
	spec, err := ParseSortSpec("  ")
	if err != nil {
		t.Fatalf("ParseSortSpec failed: %v", err)
	}
	if len(spec.Keys) != 0 {
		t.Fatalf("expected no keys, got %v", spec.Keys)
	}
}

func TestApplySortDescendingLine(t *testing.T) {
	items := []engine.Item{
		{File: "a.go", Line: 1, Style: model.StyleC},
		{File: "a.go", Line: 9, Style: model.StyleC},
		{File: "b.go", Line: 5, Style: model.StyleC},
	}
	spec, err := ParseSortSpec("-line")
	if err != nil {
		t.Fatalf("ParseSortSpec failed: %v", err)
	}
	ApplySort(items, spec)
	if items[0].Line != 9 || items[1].Line != 5 || items[2].Line != 1 {
		t.Fatalf("descending line sort failed: %+v", items)
	}
}

func TestApplySortStyleWithTiebreak(t *testing.T) {
	items := []engine.Item{
		{File: "b.py", Line: 2, Style: model.StylePy},
		{File: "a.c", Line: 7, Style: model.StyleC},
		{File: "a.c", Line: 3, Style: model.StyleC},
	}
	spec, err := ParseSortSpec("style")
	if err != nil {
		t.Fatalf("ParseSortSpec failed: %v", err)
	}
	ApplySort(items, spec)
	if items[0].File != "a.c" || items[0].Line != 3 {
		t.Fatalf("tiebreak by file/line missing: %+v", items)
	}
	if items[2].Style != model.StylePy {
		t.Fatalf("style ordering failed: %+v", items)
	}
}
