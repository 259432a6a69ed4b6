package scanner

import (
	"strings"

	"github.com/tyama/commentx/internal/model"
)

// xmlScanner finds <!-- --> comments, which may span lines. A comment
// spanning several lines is reported once, at the opening marker.
type xmlScanner struct {
	tabWidth  int
	inBlock   bool
	block     strings.Builder
	blockLine int
	blockCol  int
}

func (x *xmlScanner) scanLine(line string, num int, out []model.Comment) []model.Comment {
	i := 0
	if x.inBlock {
		pos := strings.Index(line, "-->")
		if pos < 0 {
			x.block.WriteString(line)
			x.block.WriteByte('\n')
			return out
		}
		x.block.WriteString(line[:pos+3])
		out = append(out, x.takeBlock())
		i = pos + 3
	}
	for i < len(line) {
		idx := strings.Index(line[i:], "<!--")
		if idx < 0 {
			return out
		}
		start := i + idx
		pos := strings.Index(line[start+4:], "-->")
		if pos < 0 {
			x.inBlock = true
			x.blockLine = num
			x.blockCol = ExpandedCol(line, start, x.tabWidth)
			x.block.WriteString(line[start:])
			x.block.WriteByte('\n')
			return out
		}
		end := start + 4 + pos + 3
		out = append(out, model.Comment{
			Text:  line[start:end],
			Line:  num,
			Col:   ExpandedCol(line, start, x.tabWidth),
			Style: model.StyleXML,
		})
		i = end
	}
	return out
}

// flush emits an unterminated comment as a partial record at EOF.
func (x *xmlScanner) flush(out []model.Comment) []model.Comment {
	if !x.inBlock {
		return out
	}
	cm := x.takeBlock()
	cm.Text = strings.TrimSuffix(cm.Text, "\n")
	return append(out, cm)
}

func (x *xmlScanner) takeBlock() model.Comment {
	cm := model.Comment{
		Text:  x.block.String(),
		Line:  x.blockLine,
		Col:   x.blockCol,
		Style: model.StyleXML,
	}
	x.inBlock = false
	x.block.Reset()
	x.blockLine = 0
	x.blockCol = 0
	return cm
}
