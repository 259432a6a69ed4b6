// Package scanner extracts comments from source text line by line.
//
// It is a lexical scan, not a parse: the scanners know nothing about the
// host language beyond its comment delimiters, and comment markers inside
// multi-line string literals may be misdetected. Each entry point opens
// the file fresh and returns a lazy, single-pass Stream.
package scanner

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tyama/commentx/internal/detect"
	"github.com/tyama/commentx/internal/model"
)

// Options configures a single scan. The zero value scans with
// DefaultTabWidth.
type Options struct {
	// TabWidth is the number of columns a tab advances to when computing
	// comment start columns. 0 means DefaultTabWidth; values below 1 are
	// clamped to 1.
	TabWidth int
}

func (o Options) tabWidth() int {
	switch {
	case o.TabWidth == 0:
		return DefaultTabWidth
	case o.TabWidth < 1:
		return 1
	}
	return o.TabWidth
}

// CStyle scans path for // and /* */ comments.
func CStyle(path string, o Options) (*Stream, error) {
	return open(path, &cScanner{tabWidth: o.tabWidth()})
}

// PyStyle scans path for # comments.
func PyStyle(path string, o Options) (*Stream, error) {
	return open(path, &pyScanner{tabWidth: o.tabWidth()})
}

// XMLStyle scans path for <!-- --> comments.
func XMLStyle(path string, o Options) (*Stream, error) {
	return open(path, &xmlScanner{tabWidth: o.tabWidth()})
}

// ScanFile picks the scanner from the file extension and returns its
// stream. An unrecognized extension yields an empty stream, not an
// error; an unreadable file fails at open.
func ScanFile(path string, o Options) (*Stream, error) {
	style, ok := detect.StyleForPath(path)
	if !ok {
		return emptyStream(), nil
	}
	return ScanStyle(path, style, o)
}

// ScanStyle scans path with an explicit style.
func ScanStyle(path string, style model.Style, o Options) (*Stream, error) {
	switch style {
	case model.StyleC:
		return CStyle(path, o)
	case model.StylePy:
		return PyStyle(path, o)
	case model.StyleXML:
		return XMLStyle(path, o)
	}
	return emptyStream(), nil
}

// ScanBytes scans in-memory content with an explicit style.
func ScanBytes(data []byte, style model.Style, o Options) *Stream {
	ls := lineScannerFor(style, o)
	if ls == nil {
		return emptyStream()
	}
	return newStream(bytes.NewReader(data), nil, ls)
}

// ScanReader scans r with an explicit style. The caller keeps ownership
// of r; closing the stream does not close it.
func ScanReader(r io.Reader, style model.Style, o Options) *Stream {
	ls := lineScannerFor(style, o)
	if ls == nil {
		return emptyStream()
	}
	return newStream(r, nil, ls)
}

func lineScannerFor(style model.Style, o Options) lineScanner {
	switch style {
	case model.StyleC:
		return &cScanner{tabWidth: o.tabWidth()}
	case model.StylePy:
		return &pyScanner{tabWidth: o.tabWidth()}
	case model.StyleXML:
		return &xmlScanner{tabWidth: o.tabWidth()}
	}
	return nil
}

func open(path string, ls lineScanner) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newStream(f, f, ls), nil
}
