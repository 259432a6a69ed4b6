package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tyama/commentx/internal/engine"
	"github.com/tyama/commentx/internal/output"
	"github.com/tyama/commentx/internal/termcolor"
	"github.com/tyama/commentx/internal/textutil"
)

type renderContext struct {
	enabled  bool
	scheme   termcolor.Scheme
	profile  termcolor.Profile
	truncate int
}

// printTable renders an aligned, optionally colored table. Alignment is
// done by display width rather than tabwriter because ANSI sequences and
// wide runes would throw byte-based column counts off.
func printTable(w io.Writer, items []engine.Item, sel output.FieldSelection, rc renderContext) {
	headers := output.Headers(sel.Fields)
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, renderRow(it, sel, rc.truncate))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := textutil.VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		styled := termcolor.Apply(termcolor.HeaderStyle(), h, rc.enabled)
		cells[i] = textutil.PadRight(styled, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))

	for r, row := range rows {
		for i, cell := range row {
			styled := termcolor.Apply(cellStyle(sel.Fields[i].Key, items[r], rc), cell, rc.enabled)
			cells[i] = textutil.PadRight(styled, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// printTSV writes tab-separated rows for piping into cut/awk; cell text
// is escaped so every record stays on one line.
func printTSV(w io.Writer, items []engine.Item, sel output.FieldSelection, truncate int) {
	tw := tabwriter.NewWriter(w, 0, 8, 0, '\t', 0)
	fmt.Fprintln(tw, strings.Join(output.Headers(sel.Fields), "\t"))
	for _, it := range items {
		fmt.Fprintln(tw, strings.Join(renderRow(it, sel, truncate), "\t"))
	}
	_ = tw.Flush()
}

func renderRow(it engine.Item, sel output.FieldSelection, truncate int) []string {
	row := output.RowValues(it, sel.Fields)
	for i, f := range sel.Fields {
		cell := textutil.OneLine(row[i])
		if f.Key == "text" && truncate > 0 {
			cell = textutil.TruncateByWidth(cell, truncate, "…")
		}
		row[i] = cell
	}
	return row
}

func cellStyle(key string, it engine.Item, rc renderContext) termcolor.Style {
	switch key {
	case "style", "text":
		return termcolor.StyleFor(it.Style, rc.scheme, rc.profile)
	case "file", "location":
		return termcolor.LocationStyle()
	default:
		return termcolor.Style{}
	}
}
