package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	engineopts "github.com/tyama/commentx/internal/engine/opts"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	contents := map[string]string{
		".commentx.yaml": "tab_width: 8\npath:\n  - src\nstyles:\n  - c\n  - py\nexclude_typical: false\nui:\n  fields: location,text\n",
		".commentx.toml": "tab_width = 8\npath = [\"src\"]\nstyles = [\"c\", \"py\"]\nexclude_typical = false\n\n[ui]\nfields = \"location,text\"\n",
		".commentx.json": `{"tab_width": 8, "path": ["src"], "styles": ["c", "py"], "exclude_typical": false, "ui": {"fields": "location,text"}}`,
	}
	for name, content := range contents {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, dir, name, content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.Engine.TabWidth == nil || *cfg.Engine.TabWidth != 8 {
				t.Fatalf("tab_width mismatch: %+v", cfg.Engine.TabWidth)
			}
			if cfg.Engine.Paths == nil || !reflect.DeepEqual(*cfg.Engine.Paths, []string{"src"}) {
				t.Fatalf("path mismatch: %+v", cfg.Engine.Paths)
			}
			if cfg.Engine.Styles == nil || !reflect.DeepEqual(*cfg.Engine.Styles, []string{"c", "py"}) {
				t.Fatalf("styles mismatch: %+v", cfg.Engine.Styles)
			}
			if cfg.Engine.ExcludeTypical == nil || *cfg.Engine.ExcludeTypical {
				t.Fatal("exclude_typical should be false")
			}
			if cfg.UI.Fields == nil || *cfg.UI.Fields != "location,text" {
				t.Fatalf("fields mismatch: %+v", cfg.UI.Fields)
			}
		})
	}
}

func TestLoadEngineSection(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".commentx.yaml", "engine:\n  tab-width: 2\n  excludes: \"*.min.js, vendor\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.TabWidth == nil || *cfg.Engine.TabWidth != 2 {
		t.Fatalf("tab_width alias failed: %+v", cfg.Engine.TabWidth)
	}
	if cfg.Engine.Excludes == nil || !reflect.DeepEqual(*cfg.Engine.Excludes, []string{"*.min.js", "vendor"}) {
		t.Fatalf("exclude list mismatch: %+v", cfg.Engine.Excludes)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".commentx.yaml", "tabz: 4\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadRejectsBadType(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".commentx.yaml", "tab_width: [4]\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for list tab_width")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.ini", "tab_width=4\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("  ")
	if err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	if cfg.Engine.TabWidth != nil {
		t.Fatal("expected zero config")
	}
}

func TestMergeEngine(t *testing.T) {
	base := EngineSettingsFromOptions(engineopts.Defaults())
	two := 2
	out := "json"
	merged := MergeEngine(base,
		EngineConfig{TabWidth: &two},
		EngineConfig{Output: &out},
	)
	if merged.TabWidth != 2 {
		t.Fatalf("tab width not merged: %d", merged.TabWidth)
	}
	if merged.Output != "json" {
		t.Fatalf("output not merged: %q", merged.Output)
	}
	if merged.Color != "auto" {
		t.Fatalf("color default lost: %q", merged.Color)
	}
}

func TestMergeEngineLaterLayerWins(t *testing.T) {
	base := EngineSettingsFromOptions(engineopts.Defaults())
	first, second := 2, 8
	merged := MergeEngine(base,
		EngineConfig{TabWidth: &first},
		EngineConfig{TabWidth: &second},
	)
	if merged.TabWidth != 8 {
		t.Fatalf("later layer should win: %d", merged.TabWidth)
	}
}

func TestApplyToOptionsParsesStyles(t *testing.T) {
	base := EngineSettingsFromOptions(engineopts.Defaults())
	base.Styles = []string{"c_style", "xml"}
	opts := engineopts.Defaults()
	if err := base.ApplyToOptions(&opts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(opts.Styles) != 2 {
		t.Fatalf("styles mismatch: %v", opts.Styles)
	}

	base.Styles = []string{"fortran"}
	if err := base.ApplyToOptions(&opts); err == nil {
		t.Fatal("expected style parse error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, root, ".commentx.toml", "tab_width = 2\n")
	got, source, err := Find(nested, "", filepath.Join(root, "no-xdg"), filepath.Join(root, "no-home"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != want || source != "cwd-up" {
		t.Fatalf("Find = (%q, %q) want (%q, cwd-up)", got, source, want)
	}
}

func TestFindExplicitWins(t *testing.T) {
	dir := t.TempDir()
	explicit := writeConfig(t, dir, "custom.yaml", "tab_width: 3\n")
	got, source, err := Find(dir, explicit, "", "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != explicit || source != "explicit" {
		t.Fatalf("Find = (%q, %q)", got, source)
	}
}

func TestFindNothing(t *testing.T) {
	dir := t.TempDir()
	got, source, err := Find(dir, "", filepath.Join(dir, "xdg"), filepath.Join(dir, "home"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != "" || source != "" {
		t.Fatalf("expected nothing, got (%q, %q)", got, source)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"COMMENTX_TAB_WIDTH": "8",
		"COMMENTX_STYLES":    "c,xml",
		"COMMENTX_OUTPUT":    "ndjson",
	}
	cfg, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Engine.TabWidth == nil || *cfg.Engine.TabWidth != 8 {
		t.Fatalf("tab_width mismatch: %+v", cfg.Engine.TabWidth)
	}
	if cfg.Engine.Styles == nil || !reflect.DeepEqual(*cfg.Engine.Styles, []string{"c", "xml"}) {
		t.Fatalf("styles mismatch: %+v", cfg.Engine.Styles)
	}
	if cfg.Engine.Output == nil || *cfg.Engine.Output != "ndjson" {
		t.Fatalf("output mismatch: %+v", cfg.Engine.Output)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	env := map[string]string{"COMMENTX_TAB_WIDTH": "0"}
	if _, err := FromEnv(func(k string) string { return env[k] }); err == nil {
		t.Fatal("expected error for tab width 0")
	}
}
