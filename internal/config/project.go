package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/scantree/scantree/domain"
)

// projectConfigCandidates are searched, in order, in the project root when
// no explicit config path is given.
var projectConfigCandidates = []string{
	"scantree.yaml",
	"scantree.yml",
	".scantreerc.yaml",
	".scantreerc.yml",
	"scantree.json",
	".scantreerc.json",
	".scantreerc",
}

// ProjectConfig is the project-level settings a scantree.yaml (or
// equivalent) file carries, as distinct from package.json/tsconfig.json.
type ProjectConfig struct {
	Entry                   []string            `mapstructure:"entry"`
	Project                 []string            `mapstructure:"project"`
	Ignore                  []string            `mapstructure:"ignore"`
	IgnoreDependencies      []string            `mapstructure:"ignoreDependencies"`
	IgnoreBinaries          []string            `mapstructure:"ignoreBinaries"`
	IgnoreExports           map[string][]string `mapstructure:"ignoreExports"`
	IncludeEntryExports     bool                `mapstructure:"includeEntryExports"`
	IgnoreExportsUsedInFile bool                `mapstructure:"ignoreExportsUsedInFile"`
}

// DefaultProjectConfig matches the reference tool's defaults:
// ignoreExportsUsedInFile is on (so no export is reported unused), every
// other rule is as strict as its category allows.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		IgnoreExportsUsedInFile: true,
	}
}

// FindProjectConfigFile searches root for a recognized config file name.
func FindProjectConfigFile(root string) string {
	for _, candidate := range projectConfigCandidates {
		path := filepath.Join(root, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadProjectConfig loads configPath if given, else discovers a config file
// under root; a project with no config file at all gets the defaults.
func LoadProjectConfig(root, configPath string) (*ProjectConfig, error) {
	if configPath == "" {
		configPath = FindProjectConfigFile(root)
	}
	if configPath == "" {
		return DefaultProjectConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	cfg := DefaultProjectConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// ApplyTo folds p's settings into req. A list field req already set (from
// CLI flags) wins over the file's value; IncludeEntryExports and
// IgnoreExportsUsedInFile are always taken from p.
func (p *ProjectConfig) ApplyTo(req *domain.AnalysisRequest) {
	if len(req.IncludePatterns) == 0 {
		req.IncludePatterns = p.Project
	}
	if len(req.EntryPatterns) == 0 {
		req.EntryPatterns = p.Entry
	}
	if len(req.ExcludePatterns) == 0 {
		req.ExcludePatterns = p.Ignore
	}
	if len(req.IgnoreDependencies) == 0 {
		req.IgnoreDependencies = p.IgnoreDependencies
	}
	if len(req.IgnoreBinaries) == 0 {
		req.IgnoreBinaries = p.IgnoreBinaries
	}
	if len(req.IgnoreExports) == 0 {
		req.IgnoreExports = p.IgnoreExports
	}
	req.IncludeEntryExports = p.IncludeEntryExports
	req.IgnoreExportsUsedInFile = p.IgnoreExportsUsedInFile
}
