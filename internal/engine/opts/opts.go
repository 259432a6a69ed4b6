// Package opts holds the option plumbing shared by the CLI and the web
// API: defaults, validation and query-string binding.
package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/tyama/commentx/internal/engine"
	"github.com/tyama/commentx/internal/model"
	"github.com/tyama/commentx/internal/scanner"
)

const maxJobs = 64

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Roots:          nil,
		Excludes:       nil,
		ExcludeTypical: true,
		Styles:         nil,
		TabWidth:       scanner.DefaultTabWidth,
		Jobs:           jobs,
		MaxFileBytes:   0,
		Progress:       false,
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string
// into the provided options. Validation happens separately via
// NormalizeAndValidate.
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw := q["path"]; len(raw) > 0 {
		out.Roots = SplitMulti(raw)
	}
	if raw := q["exclude"]; len(raw) > 0 {
		out.Excludes = SplitMulti(raw)
	}
	if raw := q["style"]; len(raw) > 0 {
		styles, err := ParseStyles(SplitMulti(raw))
		if err != nil {
			return out, err
		}
		out.Styles = styles
	}
	if raw, ok := lastLiteralValue(q["tab_width"]); ok {
		n, err := ParseIntInRange(raw, "tab_width", 1, -1)
		if err != nil {
			return out, err
		}
		out.TabWidth = n
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	if raw, ok := lastLiteralValue(q["max_file_bytes"]); ok {
		n, err := parseInt(raw, "max_file_bytes")
		if err != nil {
			return out, err
		}
		out.MaxFileBytes = n
	}
	if raw, ok := lastLiteralValue(q["exclude_typical"]); ok {
		v, err := ParseBool(raw, "exclude_typical")
		if err != nil {
			return out, err
		}
		out.ExcludeTypical = v
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the
// allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	o.Roots = trimSlice(o.Roots)
	o.Excludes = trimSlice(o.Excludes)

	if o.TabWidth == 0 {
		o.TabWidth = scanner.DefaultTabWidth
	}
	if o.TabWidth < 1 {
		return fmt.Errorf("tab_width must be >= 1")
	}

	if o.Jobs == 0 {
		o.Jobs = Defaults().Jobs
	}
	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}

	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}

	return nil
}

// ParseStyles resolves user-supplied style names, dropping duplicates
// while keeping order.
func ParseStyles(values []string) ([]model.Style, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]model.Style, 0, len(values))
	seen := make(map[model.Style]struct{}, len(values))
	for _, raw := range values {
		style, err := model.ParseStyle(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[style]; ok {
			continue
		}
		seen[style] = struct{}{}
		out = append(out, style)
	}
	return out, nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within
// [min, max]. If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "tsv", "json", "csv", "ndjson", "markdown":
		return v, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated parameters (and comma-separated values) into
// a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
