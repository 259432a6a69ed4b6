package model

import (
	"fmt"
	"strings"
)

// Style identifies the comment grammar used to scan a file.
type Style string

const (
	StyleC   Style = "c"
	StylePy  Style = "py"
	StyleXML Style = "xml"
)

// ParseStyle resolves a user-supplied style name to its canonical tag.
// The historical names (c_style, py_style, xml_style) are accepted as
// aliases alongside common language names.
func ParseStyle(raw string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "c", "cstyle", "c_style", "c-style":
		return StyleC, nil
	case "py", "python", "pystyle", "py_style", "py-style":
		return StylePy, nil
	case "xml", "html", "xmlstyle", "xml_style", "xml-style":
		return StyleXML, nil
	}
	return "", fmt.Errorf("unknown comment style: %s", raw)
}

// Comment is one extracted comment.
//
// Text keeps the delimiters; for a block spanning several lines it is the
// concatenation of every spanned line, opening marker through closing
// marker, joined with "\n". Line is 1-based and names the line the
// comment opens on. Col is the 0-based column of the opening marker in
// the tab-expanded line, so for a single-line comment slicing the
// expanded line at [Col : Col+len(Text)] recovers Text verbatim.
type Comment struct {
	Text  string `json:"text"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Style Style  `json:"style,omitempty"`
}
