package service

import (
	"path/filepath"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/config"
)

// ResolveConfig merges an AnalysisRequest (CLI flags) with a project's own
// scantree.yaml, package.json, and tsconfig.json into the single
// domain.ResolvedConfig the analysis engine acts on. root is the project
// directory to analyze; list-valued CLI flags in req win over a project
// config file's values (see config.ProjectConfig.ApplyTo), and BaseURL/Paths
// in req win over tsconfig.json's.
func ResolveConfig(root string, req domain.AnalysisRequest) (*domain.ResolvedConfig, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, domain.NewConfigError("resolve project root", err)
	}

	projectCfg, err := config.LoadProjectConfig(absRoot, req.ConfigPath)
	if err != nil {
		return nil, domain.NewConfigError("load project config", err)
	}
	projectCfg.ApplyTo(&req)

	pkg, err := config.LoadPackageJSON(absRoot)
	if err != nil {
		return nil, domain.NewConfigError("load package.json", err)
	}

	baseURL, paths, err := config.LoadTSConfig(absRoot)
	if err != nil {
		return nil, domain.NewConfigError("load tsconfig.json", err)
	}
	if req.BaseURL != "" {
		baseURL = req.BaseURL
	}
	if len(req.Paths) > 0 {
		paths = req.Paths
	}

	return &domain.ResolvedConfig{
		Root:                    absRoot,
		PackageJSON:             pkg,
		Ignore:                  req.ExcludePatterns,
		IgnoreExports:           req.IgnoreExports,
		IgnoreDependencies:      req.IgnoreDependencies,
		IgnoreBinaries:          req.IgnoreBinaries,
		IncludeEntryExports:     req.IncludeEntryExports,
		IgnoreExportsUsedInFile: req.IgnoreExportsUsedInFile,
		BaseURL:                 baseURL,
		Paths:                   paths,
		EntryPatterns:           req.EntryPatterns,
		ProjectPatterns:         req.IncludePatterns,
		IgnorePatterns:          req.ExcludePatterns,
		Production:              req.Production,
		Strict:                  req.Strict,
		UseCache:                req.UseCache,
		CacheDir:                req.CacheDir,
	}, nil
}
