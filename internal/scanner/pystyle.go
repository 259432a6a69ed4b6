package scanner

import "github.com/tyama/commentx/internal/model"

// pyScanner finds # comments. Quote tracking suppresses # inside
// '...' and "..." literals; triple-quoted strings get no special
// treatment, so a # inside one is still reported.
type pyScanner struct {
	tabWidth int
}

func (p *pyScanner) scanLine(line string, num int, out []model.Comment) []model.Comment {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if quote != 0 {
			if ch == quote && !escaped(line, i) {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '#':
			// the rest of the line is the comment
			return append(out, model.Comment{
				Text:  line[i:],
				Line:  num,
				Col:   ExpandedCol(line, i, p.tabWidth),
				Style: model.StylePy,
			})
		}
	}
	return out
}

func (p *pyScanner) flush(out []model.Comment) []model.Comment {
	return out
}
