// Package engine orchestrates comment extraction across many files.
package engine

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/tyama/commentx/internal/detect"
	"github.com/tyama/commentx/internal/model"
	"github.com/tyama/commentx/internal/scanner"
	"github.com/tyama/commentx/internal/util"
)

const maxJobs = 64

// binarySniffLen bounds how much of a file is inspected for NUL bytes.
const binarySniffLen = 8 * 1024

type fileResult struct {
	items []Item
	errs  []ItemError
}

// Run walks the configured roots, scans every eligible file and returns
// the comments found, ordered by file, line and column. Per-file
// failures land in Result.Errors; only setup failures (bad roots) abort
// the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	files, err := collectFiles(opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxJobs {
		workers = maxJobs
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	allowed := styleSet(opts.Styles)
	scanOpts := scanner.Options{TabWidth: opts.TabWidth}

	jobs := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- scanOne(path, opts, allowed, scanOpts)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	prog := util.NewProgress(len(files), opts.Progress)
	var items []Item
	var errs []ItemError
	done := 0
	for res := range results {
		items = append(items, res.items...)
		errs = append(errs, res.errs...)
		done++
		prog.Update(done)
	}
	prog.Done()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].File != items[j].File {
			return items[i].File < items[j].File
		}
		if items[i].Line != items[j].Line {
			return items[i].Line < items[j].Line
		}
		return items[i].Col < items[j].Col
	})
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].File != errs[j].File {
			return errs[i].File < errs[j].File
		}
		return errs[i].Stage < errs[j].Stage
	})

	return &Result{
		Items:      items,
		Total:      len(items),
		Files:      len(files),
		ElapsedMS:  time.Since(start).Milliseconds(),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

func scanOne(path string, opts Options, allowed map[model.Style]struct{}, scanOpts scanner.Options) fileResult {
	data, skip, err := readForScan(path, opts.MaxFileBytes)
	if err != nil {
		return fileResult{errs: []ItemError{{File: path, Stage: "read", Message: err.Error()}}}
	}
	if skip {
		return fileResult{}
	}
	style, ok := detect.StyleForContent(path, data)
	if !ok {
		return fileResult{}
	}
	if allowed != nil {
		if _, ok := allowed[style]; !ok {
			return fileResult{}
		}
	}
	comments, err := scanner.ScanBytes(data, style, scanOpts).Collect()
	if err != nil {
		return fileResult{errs: []ItemError{{File: path, Stage: "scan", Message: err.Error()}}}
	}
	items := make([]Item, 0, len(comments))
	for _, c := range comments {
		items = append(items, Item{
			File:  path,
			Style: c.Style,
			Text:  c.Text,
			Line:  c.Line,
			Col:   c.Col,
		})
	}
	return fileResult{items: items}
}

// readForScan loads a file, skipping binaries (NUL byte in the first
// 8 KiB) and files above the size cap.
func readForScan(path string, maxBytes int) (data []byte, skip bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if maxBytes > 0 && info.Size() > int64(maxBytes) {
		return nil, true, nil
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		return nil, true, nil
	}
	return data, false, nil
}

func styleSet(styles []model.Style) map[model.Style]struct{} {
	if len(styles) == 0 {
		return nil
	}
	set := make(map[model.Style]struct{}, len(styles))
	for _, s := range styles {
		set[s] = struct{}{}
	}
	return set
}
