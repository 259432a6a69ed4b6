package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// typicalExcludeDirs are directory names skipped when ExcludeTypical is
// set. Mirrors the usual build/dependency junk nobody wants scanned.
var typicalExcludeDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"vendor":       {},
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"target":       {},
}

// collectFiles expands the roots into the list of regular files to
// scan, in walk order. A root that is itself a file is always included,
// even when its extension is unknown; the scanner then simply yields
// nothing for it.
func collectFiles(opts Options) ([]string, error) {
	roots := opts.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var out []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				if p == root {
					return nil
				}
				if opts.ExcludeTypical {
					if _, skip := typicalExcludeDirs[d.Name()]; skip {
						return filepath.SkipDir
					}
				}
				if excludedPath(rel, d.Name(), opts.Excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if excludedPath(rel, d.Name(), opts.Excludes) {
				return nil
			}
			out = append(out, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return out, nil
}

func excludedPath(rel, base string, patterns []string) bool {
	for _, raw := range patterns {
		pat := strings.TrimSpace(filepath.ToSlash(raw))
		if pat == "" {
			continue
		}
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}
