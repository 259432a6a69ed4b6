package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tyama/commentx/internal/config"
	"github.com/tyama/commentx/internal/engine"
	engineopts "github.com/tyama/commentx/internal/engine/opts"
	"github.com/tyama/commentx/internal/output"
	"github.com/tyama/commentx/internal/termcolor"
	"github.com/tyama/commentx/internal/util"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	scanCmd(os.Args[1:])
}

// scanConfig is the parsed command line of the scan command. The set map
// records which flags were given explicitly so only those override the
// config file and environment layers.
type scanConfig struct {
	roots          []string
	excludes       []string
	styles         []string
	tabWidth       int
	jobs           int
	maxFileBytes   int
	excludeTypical bool
	output         string
	fields         string
	sortSpec       string
	color          string
	truncate       int
	configPath     string
	noConfig       bool
	forceProgress  bool
	noProgress     bool
	set            map[string]bool
}

func parseScanArgs(args []string) (scanConfig, error) {
	cfg := scanConfig{}
	fs := flag.NewFlagSet("commentx", flag.ContinueOnError)

	var excludes, styles multiFlag
	fs.Var(&excludes, "exclude", "glob pattern to skip (repeatable, comma separated)")
	fs.Var(&styles, "style", "comment style to scan: c|py|xml (repeatable)")
	tabWidth := fs.Int("tab-width", 0, "tab stop width for column numbers (default 4)")
	jobs := fs.Int("jobs", 0, "max parallel workers (default: CPU count, capped at 64)")
	maxFileBytes := fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
	excludeTypical := fs.Bool("exclude-typical", true, "skip .git, vendor, node_modules and friends")
	outputFmt := fs.String("output", "", "table|tsv|json|csv|ndjson|markdown")
	fields := fs.String("fields", "", "output columns (file,line,col,location,style,text)")
	sortSpec := fs.String("sort", "", "sort keys with optional +/- prefix, e.g. -line,file")
	color := fs.String("color", "", "auto|always|never")
	truncate := fs.Int("truncate", 0, "truncate the text column to N display columns (0=unlimited)")
	configPath := fs.String("config", "", "config file path (default: auto-discovered)")
	noConfig := fs.Bool("no-config", false, "ignore config files")
	forceProg := fs.Bool("progress", false, "force progress even when piped")
	noProg := fs.Bool("no-progress", false, "disable progress/ETA")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	cfg.roots = fs.Args()
	cfg.excludes = engineopts.SplitMulti(excludes)
	cfg.styles = engineopts.SplitMulti(styles)
	cfg.tabWidth = *tabWidth
	cfg.jobs = *jobs
	cfg.maxFileBytes = *maxFileBytes
	cfg.excludeTypical = *excludeTypical
	cfg.output = *outputFmt
	cfg.fields = *fields
	cfg.sortSpec = *sortSpec
	cfg.color = *color
	cfg.truncate = *truncate
	cfg.configPath = *configPath
	cfg.noConfig = *noConfig
	cfg.forceProgress = *forceProg
	cfg.noProgress = *noProg
	return cfg, nil
}

// flagLayers turns the explicitly set flags into config layers so the
// command line can be merged like any other source, on top of the rest.
func (c scanConfig) flagLayers() (config.EngineConfig, config.UIConfig) {
	var eng config.EngineConfig
	var ui config.UIConfig

	if len(c.roots) > 0 {
		roots := c.roots
		eng.Paths = &roots
	}
	if c.set["exclude"] {
		excludes := c.excludes
		eng.Excludes = &excludes
	}
	if c.set["style"] {
		styles := c.styles
		eng.Styles = &styles
	}
	if c.set["tab-width"] {
		v := c.tabWidth
		eng.TabWidth = &v
	}
	if c.set["jobs"] {
		v := c.jobs
		eng.Jobs = &v
	}
	if c.set["max-file-bytes"] {
		v := c.maxFileBytes
		eng.MaxFileBytes = &v
	}
	if c.set["exclude-typical"] {
		v := c.excludeTypical
		eng.ExcludeTypical = &v
	}
	if c.set["output"] {
		v := c.output
		eng.Output = &v
	}
	if c.set["color"] {
		v := c.color
		eng.Color = &v
	}
	if c.set["fields"] {
		v := c.fields
		ui.Fields = &v
	}
	if c.set["sort"] {
		v := c.sortSpec
		ui.Sort = &v
	}
	return eng, ui
}

// resolveSettings layers defaults, the discovered config file, the
// environment and the explicit flags, in that order.
func resolveSettings(cfg scanConfig) (config.EngineSettings, config.UISettings, error) {
	base := config.EngineSettingsFromOptions(engineopts.Defaults())
	var engLayers []config.EngineConfig
	var uiLayers []config.UIConfig

	if !cfg.noConfig {
		path, _, err := config.Find(".", cfg.configPath, os.Getenv("XDG_CONFIG_HOME"), "")
		if err != nil {
			return config.EngineSettings{}, config.UISettings{}, err
		}
		if path != "" {
			fileCfg, err := config.Load(path)
			if err != nil {
				return config.EngineSettings{}, config.UISettings{}, err
			}
			engLayers = append(engLayers, fileCfg.Engine)
			uiLayers = append(uiLayers, fileCfg.UI)
		}
	}

	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return config.EngineSettings{}, config.UISettings{}, err
	}
	engLayers = append(engLayers, envCfg.Engine)
	uiLayers = append(uiLayers, envCfg.UI)

	flagEng, flagUI := cfg.flagLayers()
	engLayers = append(engLayers, flagEng)
	uiLayers = append(uiLayers, flagUI)

	settings := config.MergeEngine(base, engLayers...)
	ui := config.MergeUI(config.DefaultUISettings(), uiLayers...)
	return settings, ui, nil
}

func scanCmd(args []string) {
	cfg, err := parseScanArgs(args)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	settings, ui, err := resolveSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}

	opts := engineopts.Defaults()
	if err := settings.ApplyToOptions(&opts); err != nil {
		log.Fatal(err)
	}
	opts.Progress = util.ShouldShowProgress(cfg.forceProgress, cfg.noProgress)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		log.Fatal(err)
	}

	format, err := engineopts.NormalizeOutput(settings.Output)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		log.Fatal(err)
	}
	sel, err := output.ResolveFields(ui.Fields)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := ParseSortSpec(ui.Sort)
	if err != nil {
		log.Fatal(err)
	}

	res, err := engine.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	if len(spec.Keys) > 0 {
		ApplySort(res.Items, spec)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			log.Fatal(err)
		}
	case "tsv":
		printTSV(os.Stdout, res.Items, sel, cfg.truncate)
	case "csv":
		if err := output.WriteCSV(os.Stdout, res.Items, sel); err != nil {
			log.Fatal(err)
		}
	case "ndjson":
		if err := output.WriteNDJSON(os.Stdout, res.Items); err != nil {
			log.Fatal(err)
		}
	case "markdown":
		if err := output.WriteMarkdownTable(os.Stdout, res.Items, sel); err != nil {
			log.Fatal(err)
		}
	default:
		env := termcolor.EnvMap(os.Environ())
		rc := renderContext{
			enabled:  termcolor.Enabled(mode, os.Stdout),
			scheme:   termcolor.DetectScheme(env),
			profile:  termcolor.DetectProfile(env),
			truncate: cfg.truncate,
		}
		printTable(os.Stdout, res.Items, sel, rc)
	}

	reportErrors(res)
}

func reportErrors(res *engine.Result) {
	if res.ErrorCount == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "commentx: %d error(s) during scan\n", res.ErrorCount)
	for _, e := range res.Errors {
		file := e.File
		if file == "" {
			file = "(unknown file)"
		}
		stage := e.Stage
		if stage == "" {
			stage = "scan"
		}
		fmt.Fprintf(os.Stderr, "  %s [%s] %s\n", file, stage, e.Message)
	}
}
