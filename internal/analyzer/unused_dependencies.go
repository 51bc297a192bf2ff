package analyzer

import (
	"sort"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnusedDependencies reports manifest dependencies (runtime always,
// devDependencies unless cfg.Production) that no reachable module imports,
// after the implicit-dependency and dev-tool allowlists and the user's
// IgnoreDependencies list are applied.
func FindUnusedDependencies(graph *domain.ModuleGraph, cfg *domain.ResolvedConfig) []domain.UnusedDependency {
	if cfg.PackageJSON == nil {
		return nil
	}

	usedPackages := graph.GetUsedPackages()
	ignored := toSet(cfg.IgnoreDependencies)

	var runtime, dev []domain.UnusedDependency

	for name := range cfg.PackageJSON.Dependencies {
		if _, skip := ignored[name]; skip {
			continue
		}
		if _, used := usedPackages[name]; used {
			continue
		}
		if policy.IsImplicitDependency(name) {
			continue
		}
		runtime = append(runtime, domain.UnusedDependency{Name: name, DevOnly: false})
	}

	if !cfg.Production {
		for name := range cfg.PackageJSON.DevDependencies {
			if _, skip := ignored[name]; skip {
				continue
			}
			if _, used := usedPackages[name]; used {
				continue
			}
			if policy.IsDevToolDependency(name) {
				continue
			}
			dev = append(dev, domain.UnusedDependency{Name: name, DevOnly: true})
		}
	}

	sort.Slice(runtime, func(i, j int) bool { return runtime[i].Name < runtime[j].Name })
	sort.Slice(dev, func(i, j int) bool { return dev[i].Name < dev[j].Name })

	return append(runtime, dev...)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
