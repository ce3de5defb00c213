// Package config loads contextlint settings from .contextlintrc.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentinit/agentinit/internal/domain"
)

// configNames are probed in order when no explicit path is given.
var configNames = []string{".contextlintrc.json", ".contextlintrc"}

// JSONLoader implements domain.LintConfigLoader. Loading is best-effort by
// contract: a missing file, malformed JSON, a non-object document, or a
// section of the wrong shape all degrade to defaults rather than an error.
type JSONLoader struct{}

func New() *JSONLoader {
	return &JSONLoader{}
}

// Load reads the config for root, preferring explicitPath when given.
func (l *JSONLoader) Load(root string, explicitPath string) domain.LintConfig {
	path := explicitPath
	if path == "" {
		for _, name := range configNames {
			candidate := filepath.Join(root, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return domain.DefaultLintConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultLintConfig()
	}
	return parse(data)
}

func parse(data []byte) domain.LintConfig {
	cfg := domain.DefaultLintConfig()

	// The document must be a JSON object; anything else is treated as an
	// absent config.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return cfg
	}

	// Presence of any nested section selects the nested schema; otherwise
	// the legacy flat fields are read.
	_, hasLineBudget := top["line_budget"]
	_, hasIgnore := top["ignore"]
	_, hasDiscovery := top["discovery"]
	if hasLineBudget || hasIgnore || hasDiscovery {
		parseNested(top, &cfg)
	} else {
		parseLegacy(data, &cfg)
	}

	return cfg
}

func parseNested(top map[string]json.RawMessage, cfg *domain.LintConfig) {
	if raw, ok := top["line_budget"]; ok {
		var lb struct {
			DefaultWarn  *int           `json:"default_warn"`
			DefaultError *int           `json:"default_error"`
			RouterWarn   *int           `json:"router_warn"`
			PerFile      map[string]int `json:"per_file"`
		}
		if json.Unmarshal(raw, &lb) == nil {
			applyInt(&cfg.DefaultWarn, lb.DefaultWarn)
			applyInt(&cfg.DefaultError, lb.DefaultError)
			applyInt(&cfg.RouterWarnLines, lb.RouterWarn)
			for rel, limit := range lb.PerFile {
				cfg.PerFileError[rel] = limit
			}
		}
	}

	if raw, ok := top["ignore"]; ok {
		var ig struct {
			Paths []string `json:"paths"`
			Refs  []string `json:"refs"`
			Files []string `json:"files"` // legacy alias of paths
		}
		if json.Unmarshal(raw, &ig) == nil {
			for _, p := range ig.Paths {
				cfg.IgnorePaths[p] = true
			}
			for _, p := range ig.Files {
				cfg.IgnorePaths[p] = true
			}
			for _, r := range ig.Refs {
				cfg.IgnoreRefs[r] = true
			}
		}
	}

	if raw, ok := top["discovery"]; ok {
		var disc struct {
			ExtraGlobs      []string `json:"extra_globs"`
			DisableDefaults bool     `json:"disable_defaults"`
		}
		if json.Unmarshal(raw, &disc) == nil {
			cfg.ExtraGlobs = disc.ExtraGlobs
			cfg.DisableDefaultDiscovery = disc.DisableDefaults
		}
	}
}

func parseLegacy(data []byte, cfg *domain.LintConfig) {
	var legacy struct {
		SoftWarnLines   *int     `json:"soft_warn_lines"`
		HardFailLines   *int     `json:"hard_fail_lines"`
		RouterWarnLines *int     `json:"router_warn_lines"`
		Ignore          []string `json:"ignore"`
	}
	if json.Unmarshal(data, &legacy) != nil {
		return
	}
	applyInt(&cfg.DefaultWarn, legacy.SoftWarnLines)
	applyInt(&cfg.DefaultError, legacy.HardFailLines)
	applyInt(&cfg.RouterWarnLines, legacy.RouterWarnLines)
	for _, p := range legacy.Ignore {
		cfg.IgnorePaths[p] = true
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
