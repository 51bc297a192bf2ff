package analyzer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/cache"
	"github.com/scantree/scantree/internal/graph"
	"github.com/scantree/scantree/internal/version"
)

// Analyze runs the full pipeline — discovery, parallel parse (cache-first),
// resolution, reachability, and every diagnostic category — producing one
// complete domain.AnalysisResult.
func Analyze(cfg *domain.ResolvedConfig) (*domain.AnalysisResult, error) {
	start := time.Now()

	var parseCache *cache.Cache
	if cfg.UseCache {
		cacheDir := cfg.CacheDir
		if cacheDir == "" {
			cacheDir = filepath.Join(cfg.Root, ".pior-cache")
		}
		var err error
		parseCache, err = cache.Open(cacheDir, cache.DefaultConfig())
		if err != nil {
			return nil, domain.NewAnalysisError("failed to open parse cache", err)
		}
		defer parseCache.Close()
	}

	var packageMain string
	if cfg.PackageJSON != nil {
		packageMain = cfg.PackageJSON.Main
	}

	buildResult, err := graph.Build(cfg.Root, graph.BuildOptions{
		Discovery: graph.DiscoveryOptions{
			ProjectPatterns: cfg.ProjectPatterns,
			IgnorePatterns:  cfg.IgnorePatterns,
			Production:      cfg.Production,
		},
		EntryPatterns: cfg.EntryPatterns,
		BaseURL:       cfg.BaseURL,
		Paths:         cfg.Paths,
		PackageMain:   packageMain,
		Cache:         parseCache,
	})
	if err != nil {
		return nil, domain.NewAnalysisError("failed to build module graph", err)
	}

	moduleGraph := buildResult.Graph

	unusedFiles := FindUnusedFiles(moduleGraph, cfg.Root, cfg.Ignore)
	unusedExports, unusedTypes := FindUnusedExports(moduleGraph, cfg)
	unusedDependencies := FindUnusedDependencies(moduleGraph, cfg)
	unlistedDependencies := FindUnlistedDependencies(moduleGraph, cfg)
	unresolvedImports := FindUnresolvedImports(moduleGraph, cfg)
	duplicateExports := FindDuplicateExports(moduleGraph)
	unusedEnumMembers, unusedClassMembers := FindMemberUsageDiagnostics(moduleGraph)
	unlistedBinaries := FindUnlistedBinaries(cfg)

	var warnings []string
	for _, failure := range buildResult.Failures {
		warnings = append(warnings, fmt.Sprintf("%s: %v", failure.Path, failure.Err))
	}

	issues := domain.Issues{
		UnusedFiles:          unusedFiles,
		UnusedExports:        unusedExports,
		UnusedTypes:          unusedTypes,
		UnusedDependencies:   unusedDependencies,
		UnlistedDependencies: unlistedDependencies,
		UnresolvedImports:    unresolvedImports,
		DuplicateExports:     duplicateExports,
		UnusedEnumMembers:    unusedEnumMembers,
		UnusedClassMembers:   unusedClassMembers,
		UnlistedBinaries:     unlistedBinaries,
	}

	counters := domain.Counters{
		Files:                len(issues.UnusedFiles),
		Exports:              len(issues.UnusedExports),
		Types:                len(issues.UnusedTypes),
		Dependencies:         len(issues.UnusedDependencies),
		UnlistedDependencies: len(issues.UnlistedDependencies),
		UnresolvedImports:    len(issues.UnresolvedImports),
		DuplicateExports:     len(issues.DuplicateExports),
		EnumMembers:          len(issues.UnusedEnumMembers),
		ClassMembers:         len(issues.UnusedClassMembers),
		Binaries:             len(issues.UnlistedBinaries),
	}

	stats := domain.Stats{
		FilesAnalyzed: len(moduleGraph.Modules),
		FilesSkipped:  len(buildResult.Failures),
		Warnings:      warnings,
		DurationMS:    time.Since(start).Milliseconds(),
		CacheHits:     buildResult.CacheHits,
		CacheMisses:   buildResult.CacheMisses,
	}

	return &domain.AnalysisResult{
		Issues:      issues,
		Counters:    counters,
		Stats:       stats,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.GetVersion(),
	}, nil
}
