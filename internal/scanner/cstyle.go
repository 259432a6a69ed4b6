package scanner

import (
	"strings"

	"github.com/tyama/commentx/internal/model"
)

// cScanner finds // and /* */ comments. A simple quote tracker skips
// markers inside single-line "..." and '...' literals; the quote state
// resets at every line end, so markers inside multi-line strings are
// still misdetected. That imprecision is part of the contract.
type cScanner struct {
	tabWidth  int
	inBlock   bool
	block     strings.Builder
	blockLine int
	blockCol  int
}

func (c *cScanner) scanLine(line string, num int, out []model.Comment) []model.Comment {
	i := 0
	if c.inBlock {
		pos := strings.Index(line, "*/")
		if pos < 0 {
			c.block.WriteString(line)
			c.block.WriteByte('\n')
			return out
		}
		c.block.WriteString(line[:pos+2])
		out = append(out, c.takeBlock())
		i = pos + 2
	}
	var quote byte
	for i < len(line) {
		ch := line[i]
		if quote != 0 {
			if ch == quote && !escaped(line, i) {
				quote = 0
			}
			i++
			continue
		}
		switch {
		case ch == '"' || ch == '\'':
			quote = ch
			i++
		case strings.HasPrefix(line[i:], "//"):
			out = append(out, model.Comment{
				Text:  line[i:],
				Line:  num,
				Col:   ExpandedCol(line, i, c.tabWidth),
				Style: model.StyleC,
			})
			return out
		case strings.HasPrefix(line[i:], "/*"):
			pos := strings.Index(line[i+2:], "*/")
			if pos < 0 {
				c.inBlock = true
				c.blockLine = num
				c.blockCol = ExpandedCol(line, i, c.tabWidth)
				c.block.WriteString(line[i:])
				c.block.WriteByte('\n')
				return out
			}
			end := i + 2 + pos + 2
			out = append(out, model.Comment{
				Text:  line[i:end],
				Line:  num,
				Col:   ExpandedCol(line, i, c.tabWidth),
				Style: model.StyleC,
			})
			i = end
		default:
			i++
		}
	}
	return out
}

// flush emits an unterminated block as a partial comment at EOF.
func (c *cScanner) flush(out []model.Comment) []model.Comment {
	if !c.inBlock {
		return out
	}
	cm := c.takeBlock()
	cm.Text = strings.TrimSuffix(cm.Text, "\n")
	return append(out, cm)
}

func (c *cScanner) takeBlock() model.Comment {
	cm := model.Comment{
		Text:  c.block.String(),
		Line:  c.blockLine,
		Col:   c.blockCol,
		Style: model.StyleC,
	}
	c.inBlock = false
	c.block.Reset()
	c.blockLine = 0
	c.blockCol = 0
	return cm
}

// escaped reports whether the character at pos is preceded by an odd
// number of backslashes.
func escaped(line string, pos int) bool {
	count := 0
	for i := pos - 1; i >= 0 && line[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}
