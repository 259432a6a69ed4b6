package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/tyama/commentx/internal/engine"
	engineopts "github.com/tyama/commentx/internal/engine/opts"
	"github.com/tyama/commentx/internal/web"
)

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("p", 8080, "port")
	bind := fs.String("addr", "127.0.0.1", "bind address")
	root := fs.String("path", ".", "scan root served by the API")
	open := fs.Bool("open", false, "open the UI in the default browser")
	_ = fs.Parse(args)

	mux := http.NewServeMux()
	web.Register(mux)
	mux.Handle("/api/scan", apiScanHandler(*root))

	addr := fmt.Sprintf("%s:%d", *bind, *port)
	url := "http://" + addr + "/"
	log.Printf("commentx serve listening on %s (path=%s)", url, mustAbs(*root))
	if *open {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

// apiScanHandler binds query parameters to engine options and runs a
// scan rooted at root. Query paths are resolved inside root; anything
// escaping it is rejected.
func apiScanHandler(root string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		def := engineopts.Defaults()
		def.Roots = []string{root}

		opts, err := engineopts.ApplyWebQueryToOptions(def, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(r.URL.Query()["path"]) > 0 {
			roots, err := resolveRoots(root, opts.Roots)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			opts.Roots = roots
		}
		if err := engineopts.NormalizeAndValidate(&opts); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := engine.Run(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(res)
	})
}

// resolveRoots joins relative query paths onto the serve root and makes
// sure none of them climbs out of it.
func resolveRoots(root string, paths []string) ([]string, error) {
	base, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			return nil, fmt.Errorf("path must be relative to the serve root: %s", p)
		}
		joined := filepath.Join(base, p)
		rel, err := filepath.Rel(base, joined)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("path escapes the serve root: %s", p)
		}
		out = append(out, joined)
	}
	return out, nil
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
