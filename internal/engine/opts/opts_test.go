package opts

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/tyama/commentx/internal/model"
)

func TestDefaults(t *testing.T) {
	def := Defaults()
	if def.TabWidth != 4 {
		t.Fatalf("default tab width: %d", def.TabWidth)
	}
	if def.Jobs < 1 || def.Jobs > 64 {
		t.Fatalf("default jobs out of range: %d", def.Jobs)
	}
	if !def.ExcludeTypical {
		t.Fatal("typical excludes should default on")
	}
}

func TestApplyWebQueryToOptions(t *testing.T) {
	q := url.Values{
		"path":            {"src,include"},
		"exclude":         {"*.min.js"},
		"style":           {"c,py"},
		"tab_width":       {"8"},
		"jobs":            {"2"},
		"max_file_bytes":  {"1024"},
		"exclude_typical": {"no"},
	}
	got, err := ApplyWebQueryToOptions(Defaults(), q)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !reflect.DeepEqual(got.Roots, []string{"src", "include"}) {
		t.Fatalf("roots mismatch: %v", got.Roots)
	}
	if !reflect.DeepEqual(got.Excludes, []string{"*.min.js"}) {
		t.Fatalf("excludes mismatch: %v", got.Excludes)
	}
	if !reflect.DeepEqual(got.Styles, []model.Style{model.StyleC, model.StylePy}) {
		t.Fatalf("styles mismatch: %v", got.Styles)
	}
	if got.TabWidth != 8 || got.Jobs != 2 || got.MaxFileBytes != 1024 {
		t.Fatalf("numeric fields mismatch: %+v", got)
	}
	if got.ExcludeTypical {
		t.Fatal("exclude_typical should be off")
	}
}

func TestApplyWebQueryRejectsBadValues(t *testing.T) {
	cases := []url.Values{
		{"tab_width": {"0"}},
		{"tab_width": {"abc"}},
		{"jobs": {"99"}},
		{"style": {"pascal"}},
		{"exclude_typical": {"maybe"}},
	}
	for _, q := range cases {
		if _, err := ApplyWebQueryToOptions(Defaults(), q); err == nil {
			t.Fatalf("expected error for %v", q)
		}
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults()
	o.Roots = []string{" src ", ""}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !reflect.DeepEqual(o.Roots, []string{"src"}) {
		t.Fatalf("roots not trimmed: %v", o.Roots)
	}

	o = Defaults()
	o.TabWidth = -1
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("expected tab_width error")
	}

	o = Defaults()
	o.TabWidth = 0
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("zero tab width should default: %v", err)
	}
	if o.TabWidth != 4 {
		t.Fatalf("tab width not defaulted: %d", o.TabWidth)
	}

	o = Defaults()
	o.Jobs = 65
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("expected jobs error")
	}

	o = Defaults()
	o.MaxFileBytes = -1
	if err := NormalizeAndValidate(&o); err == nil {
		t.Fatal("expected max_file_bytes error")
	}
}

func TestParseStyles(t *testing.T) {
	got, err := ParseStyles([]string{"c_style", "python", "c"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []model.Style{model.StyleC, model.StylePy}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("styles mismatch: %v want %v", got, want)
	}
	if _, err := ParseStyles([]string{"ruby"}); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestNormalizeOutput(t *testing.T) {
	for _, v := range []string{"", "table", "TSV", "json", "csv", "ndjson", "markdown"} {
		if _, err := NormalizeOutput(v); err != nil {
			t.Fatalf("NormalizeOutput(%q): %v", v, err)
		}
	}
	if _, err := NormalizeOutput("xml"); err == nil {
		t.Fatal("expected error for unknown output")
	}
}

func TestSplitMulti(t *testing.T) {
	got := SplitMulti([]string{"a, b", "", "c"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("SplitMulti mismatch: %v", got)
	}
}
