package analyzer

import (
	"sort"
	"strings"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnlistedDependencies reports every externally-imported package name
// absent from the manifest (runtime-only in Strict mode; every section
// otherwise), skipping Node builtins and @types/* typings packages.
func FindUnlistedDependencies(graph *domain.ModuleGraph, cfg *domain.ResolvedConfig) []domain.UnlistedDependency {
	if cfg.PackageJSON == nil {
		return nil
	}

	allDeps := manifestDependencyNames(cfg.PackageJSON, cfg.Strict)

	var unlisted []domain.UnlistedDependency
	for packageName, usedIn := range graph.ExternalImports {
		if _, listed := allDeps[packageName]; listed {
			continue
		}
		if policy.IsBuiltinModule(packageName) {
			continue
		}
		if strings.HasPrefix(packageName, "@types/") {
			continue
		}

		usedInCopy := append([]string(nil), usedIn...)
		sort.Strings(usedInCopy)
		unlisted = append(unlisted, domain.UnlistedDependency{Name: packageName, UsedIn: usedInCopy})
	}

	sort.Slice(unlisted, func(i, j int) bool { return unlisted[i].Name < unlisted[j].Name })
	return unlisted
}

// manifestDependencyNames collects the dependency names that count as
// "declared" for unlisted-dependency purposes. Strict mode restricts this to
// runtime dependencies only.
func manifestDependencyNames(pkg *domain.PackageJSON, strict bool) map[string]struct{} {
	names := make(map[string]struct{})
	for name := range pkg.Dependencies {
		names[name] = struct{}{}
	}
	if strict {
		return names
	}
	for name := range pkg.DevDependencies {
		names[name] = struct{}{}
	}
	for name := range pkg.PeerDependencies {
		names[name] = struct{}{}
	}
	for name := range pkg.OptionalDependencies {
		names[name] = struct{}{}
	}
	return names
}
