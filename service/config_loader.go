package service

import (
	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/config"
)

// ConfigLoaderImpl implements domain.ConfigurationLoader against a
// project's scantree.yaml (or equivalent) file.
type ConfigLoaderImpl struct{}

// NewConfigLoader creates a new configuration loader implementation.
func NewConfigLoader() *ConfigLoaderImpl {
	return &ConfigLoaderImpl{}
}

// LoadConfig discovers and reads the project config file under root (path)
// and returns it as an AnalysisRequest overlay.
func (l *ConfigLoaderImpl) LoadConfig(root string) (*domain.AnalysisRequest, error) {
	projectCfg, err := config.LoadProjectConfig(root, "")
	if err != nil {
		return nil, domain.NewConfigError("load project config", err)
	}

	req := &domain.AnalysisRequest{TargetPath: root}
	projectCfg.ApplyTo(req)
	return req, nil
}

// LoadDefaultConfig returns the built-in defaults, used when a project
// carries no config file at all.
func (l *ConfigLoaderImpl) LoadDefaultConfig() *domain.AnalysisRequest {
	req := &domain.AnalysisRequest{}
	config.DefaultProjectConfig().ApplyTo(req)
	return req
}

// MergeConfig folds override's explicitly-set fields (CLI flags) onto base
// (a loaded config file), with override winning wherever it is non-zero.
func (l *ConfigLoaderImpl) MergeConfig(base *domain.AnalysisRequest, override *domain.AnalysisRequest) *domain.AnalysisRequest {
	merged := *base

	if override.TargetPath != "" {
		merged.TargetPath = override.TargetPath
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.SortBy != "" {
		merged.SortBy = override.SortBy
	}
	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}
	if len(override.IgnoreExports) > 0 {
		merged.IgnoreExports = override.IgnoreExports
	}
	if len(override.IgnoreDependencies) > 0 {
		merged.IgnoreDependencies = override.IgnoreDependencies
	}
	if len(override.IgnoreBinaries) > 0 {
		merged.IgnoreBinaries = override.IgnoreBinaries
	}
	if len(override.EntryPatterns) > 0 {
		merged.EntryPatterns = override.EntryPatterns
	}
	if override.BaseURL != "" {
		merged.BaseURL = override.BaseURL
	}
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}
	if override.CacheDir != "" {
		merged.CacheDir = override.CacheDir
	}

	merged.Recursive = merged.Recursive || override.Recursive
	merged.IncludeDevDependencies = merged.IncludeDevDependencies || override.IncludeDevDependencies
	merged.IncludeEntryExports = merged.IncludeEntryExports || override.IncludeEntryExports
	merged.IgnoreExportsUsedInFile = merged.IgnoreExportsUsedInFile || override.IgnoreExportsUsedInFile
	merged.Production = merged.Production || override.Production
	merged.Strict = merged.Strict || override.Strict
	merged.UseCache = merged.UseCache || override.UseCache

	return &merged
}
