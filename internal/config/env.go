package config

import (
	"errors"
	"strings"

	engineopts "github.com/tyama/commentx/internal/engine/opts"
)

// FromEnv builds a config layer from COMMENTX_* environment variables.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setInt(&cfg.Engine.TabWidth, "COMMENTX_TAB_WIDTH", 1, -1)
	setList(&cfg.Engine.Paths, "COMMENTX_PATH")
	setList(&cfg.Engine.Excludes, "COMMENTX_EXCLUDE")
	setBool(&cfg.Engine.ExcludeTypical, "COMMENTX_EXCLUDE_TYPICAL")
	setList(&cfg.Engine.Styles, "COMMENTX_STYLES")
	// rely on NormalizeAndValidate for the canonical jobs upper bound so
	// every input path shares the same error message
	setInt(&cfg.Engine.Jobs, "COMMENTX_JOBS", 0, -1)
	setInt(&cfg.Engine.MaxFileBytes, "COMMENTX_MAX_FILE_BYTES", 0, -1)
	setString(&cfg.Engine.Output, "COMMENTX_OUTPUT")
	setString(&cfg.Engine.Color, "COMMENTX_COLOR")

	setString(&cfg.UI.Fields, "COMMENTX_FIELDS")
	setString(&cfg.UI.Sort, "COMMENTX_SORT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
