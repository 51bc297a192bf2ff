// Package resolver turns an import specifier written in source into an
// absolute path on disk (or an external package name), the way Node.js and
// the TypeScript compiler's module resolution do for relative, absolute,
// path-alias, base-URL, and node_modules specifiers.
package resolver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/scantree/scantree/internal/policy"
)

// ModuleResolver resolves import specifiers relative to a project root,
// honoring a TypeScript-style baseUrl and "paths" alias map when configured.
type ModuleResolver struct {
	root    string
	baseURL string
	paths   map[string][]string
}

// New creates a resolver rooted at root with no base URL or path aliases.
func New(root string) *ModuleResolver {
	return &ModuleResolver{root: root, paths: map[string][]string{}}
}

// WithBaseURL sets the directory (relative to root, or absolute) that
// bare specifiers are resolved against after relative/absolute/alias
// resolution fails, mirroring tsconfig.json's "baseUrl".
func (r *ModuleResolver) WithBaseURL(baseURL string) *ModuleResolver {
	if baseURL != "" {
		r.baseURL = baseURL
	}
	return r
}

// WithPaths sets the tsconfig.json-style "paths" alias map (wildcard
// pattern -> ordered candidate replacements).
func (r *ModuleResolver) WithPaths(paths map[string][]string) *ModuleResolver {
	if paths != nil {
		r.paths = paths
	}
	return r
}

// Resolve maps specifier, written in the file at from, to an absolute path.
// It returns ("", false) when no candidate exists on disk — the caller
// reports that as an unresolved import.
func (r *ModuleResolver) Resolve(specifier, from string) (string, bool) {
	if resolved, ok := r.resolvePathAlias(specifier); ok {
		return resolved, true
	}

	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return r.resolveRelative(specifier, from)
	}

	if strings.HasPrefix(specifier, "/") {
		return r.tryResolveFile(specifier)
	}

	if r.baseURL != "" {
		if resolved, ok := r.tryResolveFile(r.baseJoin(specifier)); ok {
			return resolved, true
		}
	}

	return r.resolveNodeModules(specifier, from)
}

// IsExternal reports whether specifier names an external package rather
// than a project-relative or aliased file.
func (r *ModuleResolver) IsExternal(specifier string) bool {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || strings.HasPrefix(specifier, "/") {
		return false
	}
	for pattern := range r.paths {
		if _, ok := matchPathPattern(pattern, specifier); ok {
			return false
		}
	}
	if r.baseURL != "" {
		if _, ok := r.tryResolveFile(r.baseJoin(specifier)); ok {
			return false
		}
	}
	return true
}

// PackageName extracts the npm package name from an external specifier,
// handling scoped packages ("@scope/name/sub/path" -> "@scope/name").
// Returns "" for relative/absolute specifiers.
func PackageName(specifier string) string {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || strings.HasPrefix(specifier, "/") {
		return ""
	}
	name, _ := parsePackageSpecifier(specifier)
	return name
}

func (r *ModuleResolver) baseJoin(specifier string) string {
	if filepath.IsAbs(r.baseURL) {
		return filepath.Join(r.baseURL, specifier)
	}
	return filepath.Join(r.root, r.baseURL, specifier)
}

func (r *ModuleResolver) resolvePathAlias(specifier string) (string, bool) {
	for pattern, replacements := range r.paths {
		matched, ok := matchPathPattern(pattern, specifier)
		if !ok {
			continue
		}
		for _, replacement := range replacements {
			resolvedRel := strings.ReplaceAll(replacement, "*", matched)
			var full string
			if r.baseURL != "" {
				full = r.baseJoin(resolvedRel)
			} else {
				full = filepath.Join(r.root, resolvedRel)
			}
			if resolved, ok := r.tryResolveFile(full); ok {
				return resolved, true
			}
		}
	}
	return "", false
}

func (r *ModuleResolver) resolveRelative(specifier, from string) (string, bool) {
	baseDir := filepath.Dir(from)
	return r.tryResolveFile(filepath.Join(baseDir, specifier))
}

func (r *ModuleResolver) resolveNodeModules(specifier, from string) (string, bool) {
	current := filepath.Dir(from)
	for {
		nodeModules := filepath.Join(current, "node_modules")
		if info, err := os.Stat(nodeModules); err == nil && info.IsDir() {
			packageName, subpath := parsePackageSpecifier(specifier)
			packageDir := filepath.Join(nodeModules, packageName)
			if info, err := os.Stat(packageDir); err == nil && info.IsDir() {
				if resolved, ok := r.resolvePackageEntry(packageDir, subpath); ok {
					return resolved, true
				}
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

type packageJSON struct {
	Module string `json:"module"`
	Main   string `json:"main"`
	Types  string `json:"types"`
}

func (r *ModuleResolver) resolvePackageEntry(packageDir, subpath string) (string, bool) {
	if subpath != "" {
		return r.tryResolveFile(filepath.Join(packageDir, subpath))
	}

	pkgPath := filepath.Join(packageDir, "package.json")
	if data, err := os.ReadFile(pkgPath); err == nil {
		var pkg packageJSON
		if json.Unmarshal(data, &pkg) == nil {
			for _, entry := range []string{pkg.Module, pkg.Main, pkg.Types} {
				if entry == "" {
					continue
				}
				if resolved, ok := r.tryResolveFile(filepath.Join(packageDir, entry)); ok {
					return resolved, true
				}
			}
		}
	}

	for _, index := range policy.IndexFileNames() {
		indexPath := filepath.Join(packageDir, index)
		if _, err := os.Stat(indexPath); err == nil {
			return indexPath, true
		}
	}

	return "", false
}

// tryResolveFile applies the same candidate order Node's resolver does: the
// path as given, the path with each known extension substituted or
// appended, and finally (for a directory) each known index file name.
func (r *ModuleResolver) tryResolveFile(path string) (string, bool) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}

	withoutExt := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range policy.ResolutionExtensions() {
		candidate := withoutExt + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	for _, ext := range policy.ResolutionExtensions() {
		candidate := path + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		for _, index := range policy.IndexFileNames() {
			indexPath := filepath.Join(path, index)
			if _, err := os.Stat(indexPath); err == nil {
				return indexPath, true
			}
		}
	}

	return "", false
}

// matchPathPattern mirrors tsconfig "paths" wildcard matching: a pattern
// with one "*" matches any specifier sharing its literal prefix, returning
// the wildcard-captured suffix; a pattern with no "*" must match exactly.
func matchPathPattern(pattern, specifier string) (string, bool) {
	if strings.Contains(pattern, "*") {
		prefix, _, _ := strings.Cut(pattern, "*")
		if strings.HasPrefix(specifier, prefix) {
			return specifier[len(prefix):], true
		}
		return "", false
	}
	if pattern == specifier {
		return "", true
	}
	return "", false
}

// parsePackageSpecifier splits an external specifier into its package name
// and optional subpath, handling scoped ("@scope/name") packages.
func parsePackageSpecifier(specifier string) (name string, subpath string) {
	if strings.HasPrefix(specifier, "@") {
		parts := strings.SplitN(specifier, "/", 3)
		if len(parts) >= 2 {
			if len(parts) == 2 {
				return specifier, ""
			}
			name = parts[0] + "/" + parts[1]
			return name, parts[2]
		}
	}

	if idx := strings.Index(specifier, "/"); idx != -1 {
		return specifier[:idx], specifier[idx+1:]
	}
	return specifier, ""
}
