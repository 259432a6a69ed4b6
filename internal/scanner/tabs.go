package scanner

import "strings"

// DefaultTabWidth is the tab expansion width used when Options leaves
// TabWidth unset.
const DefaultTabWidth = 4

// ExpandTabs replaces every tab in line with spaces up to the next
// multiple of width (standard tab stops). Columns are counted in runes.
func ExpandTabs(line string, width int) string {
	if width < 1 {
		width = 1
	}
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + 8)
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// ExpandedCol translates a byte index in the raw line into the column
// that position lands on after tab expansion.
func ExpandedCol(line string, idx, width int) int {
	if width < 1 {
		width = 1
	}
	col := 0
	for i, r := range line {
		if i >= idx {
			break
		}
		if r == '\t' {
			col += width - col%width
		} else {
			col++
		}
	}
	return col
}
