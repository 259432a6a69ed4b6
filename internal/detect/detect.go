package detect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/tyama/commentx/internal/model"
)

// styleExtensions is the fixed extension table. Callers depending on the
// historical mapping get exactly this set; anything else is unsupported
// and scans to an empty result rather than an error.
var styleExtensions = map[string]model.Style{
	".c":    model.StyleC,
	".cpp":  model.StyleC,
	".h":    model.StyleC,
	".hpp":  model.StyleC,
	".java": model.StyleC,
	".js":   model.StyleC,
	".cs":   model.StyleC,
	".py":   model.StylePy,
	".xml":  model.StyleXML,
	".html": model.StyleXML,
	".htm":  model.StyleXML,
}

var shebangStyles = map[string]model.Style{
	"python":  model.StylePy,
	"python2": model.StylePy,
	"python3": model.StylePy,
	"pypy":    model.StylePy,
}

// StyleForPath maps a file path to its comment style by extension.
// Matching is case-insensitive.
func StyleForPath(p string) (model.Style, bool) {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == "" {
		return "", false
	}
	style, ok := styleExtensions[ext]
	return style, ok
}

// StyleForContent resolves the style for a path, falling back to the
// shebang line for extensionless scripts. The extension table always
// wins when it matches.
func StyleForContent(p string, data []byte) (model.Style, bool) {
	if style, ok := StyleForPath(p); ok {
		return style, true
	}
	if style := styleForShebang(data); style != "" {
		return style, true
	}
	return "", false
}

func styleForShebang(data []byte) model.Style {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	for _, f := range strings.Fields(strings.ToLower(string(data[2:end]))) {
		if style, ok := shebangStyles[filepath.Base(f)]; ok {
			return style
		}
	}
	return ""
}

// Styles lists the canonical style tags in a stable order.
func Styles() []model.Style {
	return []model.Style{model.StyleC, model.StylePy, model.StyleXML}
}
