package engine

import "github.com/tyama/commentx/internal/model"

// Item is one extracted comment together with its source file.
type Item struct {
	File  string      `json:"file"`
	Style model.Style `json:"style"`
	Text  string      `json:"text"`
	Line  int         `json:"line"`
	Col   int         `json:"col"`
}

// ItemError records a file that could not be scanned; the run itself
// keeps going.
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options controls one engine run.
type Options struct {
	// Roots are the files or directories to scan. Empty means ".".
	Roots []string
	// Excludes are glob patterns matched against the slash-separated
	// relative path and against the base name.
	Excludes []string
	// ExcludeTypical additionally skips the usual junk directories
	// (.git, vendor, node_modules, ...).
	ExcludeTypical bool
	// Styles restricts scanning to the given comment styles. Empty
	// means all known styles.
	Styles []model.Style
	// TabWidth is passed through to the scanners (0 = default).
	TabWidth int
	// Jobs caps the number of parallel workers (clamped to 1..64).
	Jobs int
	// MaxFileBytes skips files larger than this when > 0.
	MaxFileBytes int
	// Progress enables the stderr progress line.
	Progress bool
}

// Result is the aggregated output of a run.
type Result struct {
	Items      []Item      `json:"items"`
	Total      int         `json:"total"`
	Files      int         `json:"files"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
