package config

import (
	"github.com/tyama/commentx/internal/engine"
	engineopts "github.com/tyama/commentx/internal/engine/opts"
)

// EngineConfig carries the engine keys of a config file. Pointers
// distinguish "unset" from a zero value so layers merge cleanly.
type EngineConfig struct {
	TabWidth       *int      `yaml:"tab_width" toml:"tab_width" json:"tab_width"`
	Paths          *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Styles         *[]string `yaml:"styles" toml:"styles" json:"styles"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Output         *string   `yaml:"output" toml:"output" json:"output"`
	Color          *string   `yaml:"color" toml:"color" json:"color"`
}

type UIConfig struct {
	Fields *string `yaml:"fields" toml:"fields" json:"fields"`
	Sort   *string `yaml:"sort" toml:"sort" json:"sort"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

// EngineSettings is the merged, pointer-free view of the engine keys.
type EngineSettings struct {
	TabWidth       int
	Paths          []string
	Excludes       []string
	ExcludeTypical bool
	Styles         []string
	Jobs           int
	MaxFileBytes   int
	Output         string
	Color          string
}

type UISettings struct {
	Fields string
	Sort   string
}

// EngineSettingsFromOptions seeds settings from baseline engine options.
func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	styles := make([]string, 0, len(opts.Styles))
	for _, s := range opts.Styles {
		styles = append(styles, string(s))
	}
	return EngineSettings{
		TabWidth:       opts.TabWidth,
		Paths:          cloneStrings(opts.Roots),
		Excludes:       cloneStrings(opts.Excludes),
		ExcludeTypical: opts.ExcludeTypical,
		Styles:         styles,
		Jobs:           opts.Jobs,
		MaxFileBytes:   opts.MaxFileBytes,
		Output:         "table",
		Color:          "auto",
	}
}

// ApplyToOptions writes the merged settings back into engine options.
func (s EngineSettings) ApplyToOptions(o *engine.Options) error {
	if o == nil {
		return nil
	}
	styles, err := engineopts.ParseStyles(s.Styles)
	if err != nil {
		return err
	}
	o.TabWidth = s.TabWidth
	o.Roots = cloneStrings(s.Paths)
	o.Excludes = cloneStrings(s.Excludes)
	o.ExcludeTypical = s.ExcludeTypical
	o.Styles = styles
	o.Jobs = s.Jobs
	o.MaxFileBytes = s.MaxFileBytes
	return nil
}

func DefaultUISettings() UISettings {
	return UISettings{Fields: "", Sort: ""}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
