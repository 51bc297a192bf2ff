// Package graph builds a domain.ModuleGraph from a project directory:
// discovering files, parsing them (in parallel, through an optional
// on-disk cache), and resolving every import to a file or external package.
package graph

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/cache"
	"github.com/scantree/scantree/internal/parser"
	"github.com/scantree/scantree/internal/resolver"
)

// BuildOptions configures one graph-build run.
type BuildOptions struct {
	Discovery     DiscoveryOptions
	EntryPatterns []string
	BaseURL       string
	Paths         map[string][]string
	PackageMain   string

	// Cache, when non-nil, is consulted before parsing and updated after.
	// Graph does not open/close it — the caller owns its lifetime.
	Cache *cache.Cache

	// MaxConcurrency bounds the parallel parse stage; <= 0 uses NumCPU.
	MaxConcurrency int
}

// ParseFailure records one file the parse stage could not read or parse.
// These are recoverable: the file is simply excluded from the graph.
type ParseFailure struct {
	Path string
	Err  error
}

// BuildResult is the graph plus bookkeeping about what the build skipped.
type BuildResult struct {
	Graph       *domain.ModuleGraph
	Failures    []ParseFailure
	CacheHits   int
	CacheMisses int
}

// Build runs the full Stage 1-4 pipeline: discover project files, parse
// each (cache-first) in parallel, resolve every import, and assemble the
// resulting domain.ModuleGraph. Per-file parse failures are collected as
// warnings rather than aborting the whole run.
func Build(root string, opts BuildOptions) (*BuildResult, error) {
	projectFiles, err := CollectProjectFiles(root, opts.Discovery)
	if err != nil {
		return nil, fmt.Errorf("collect project files: %w", err)
	}

	entryPoints := FindEntryPoints(root, opts.EntryPatterns, projectFiles, opts.PackageMain)

	type parsedFile struct {
		path   string
		module *domain.ParsedModule
	}

	concurrency := opts.MaxConcurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	var (
		mu          sync.Mutex
		parsed      []parsedFile
		failures    []ParseFailure
		cacheHits   int
		cacheMisses int
	)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for _, path := range projectFiles {
		g.Go(func() error {
			module, hit, err := parseOne(path, opts.Cache)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, ParseFailure{Path: path, Err: err})
				return nil
			}
			if hit {
				cacheHits++
			} else {
				cacheMisses++
			}
			parsed = append(parsed, parsedFile{path: path, module: module})
			return nil
		})
	}
	_ = g.Wait()

	moduleResolver := resolver.New(root).WithBaseURL(opts.BaseURL).WithPaths(opts.Paths)

	moduleGraph := domain.NewModuleGraph()
	moduleGraph.EntryPoints = entryPoints

	for _, pf := range parsed {
		resolvedImports := make([]domain.ResolvedImport, 0, len(pf.module.Imports))

		for _, imp := range pf.module.Imports {
			resolved := domain.ResolvedImport{Original: imp}

			if resolvedPath, ok := moduleResolver.Resolve(imp.Specifier, pf.path); ok {
				resolved.ResolvedPath = &resolvedPath
			}

			if moduleResolver.IsExternal(imp.Specifier) {
				if pkg := resolver.PackageName(imp.Specifier); pkg != "" {
					resolved.PackageName = &pkg
					moduleGraph.ExternalImports[pkg] = append(moduleGraph.ExternalImports[pkg], pf.path)
				}
			}

			resolvedImports = append(resolvedImports, resolved)
		}

		resolvedReExports := make([]domain.ResolvedReExport, 0, len(pf.module.ReExports))
		for _, reExport := range pf.module.ReExports {
			resolved := domain.ResolvedReExport{Original: reExport}
			if resolvedPath, ok := moduleResolver.Resolve(reExport.Specifier, pf.path); ok {
				resolved.ResolvedPath = &resolvedPath
			}
			resolvedReExports = append(resolvedReExports, resolved)
		}

		moduleGraph.Modules[pf.path] = &domain.Module{
			Path:      pf.path,
			Imports:   resolvedImports,
			Exports:   pf.module.Exports,
			ReExports: resolvedReExports,
		}
	}

	return &BuildResult{
		Graph:       moduleGraph,
		Failures:    failures,
		CacheHits:   cacheHits,
		CacheMisses: cacheMisses,
	}, nil
}

// cacheMu guards every Get and Insert on the shared parse cache; the parse
// itself runs outside the lock.
var cacheMu sync.Mutex

// parseOne parses path, consulting c first if provided. The returned bool
// reports whether the result came from the cache.
func parseOne(path string, c *cache.Cache) (*domain.ParsedModule, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	if c == nil {
		module, err := parser.Extract(path, content)
		return module, false, err
	}

	contentHash := cache.ContentHash(content)
	cacheMu.Lock()
	entry, ok := c.Get(path)
	cacheMu.Unlock()
	if ok && entry.ContentHash == contentHash {
		return entry.Module, true, nil
	}

	module, err := parser.Extract(path, content)
	if err != nil {
		return nil, false, err
	}

	modifiedTime := cache.ModifiedTime(path)
	cacheMu.Lock()
	c.Insert(path, cache.Entry{
		ContentHash:  contentHash,
		ModifiedTime: modifiedTime,
		Module:       module,
	})
	cacheMu.Unlock()

	return module, false, nil
}
