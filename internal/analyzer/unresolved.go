package analyzer

import (
	"sort"
	"strings"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnresolvedImports reports imports the resolver could not map to a
// file: every relative specifier with no resolved path, plus every bare
// specifier that names a declared, non-builtin package yet still failed to
// resolve. A bare specifier naming an undeclared, non-builtin package is
// left to FindUnlistedDependencies instead — it is not "unresolved", it is
// simply not installed as far as the manifest is concerned.
func FindUnresolvedImports(graph *domain.ModuleGraph, cfg *domain.ResolvedConfig) []domain.UnresolvedImport {
	var allDeps map[string]struct{}
	if cfg.PackageJSON != nil {
		allDeps = manifestDependencyNames(cfg.PackageJSON, false)
	}

	var unresolved []domain.UnresolvedImport
	for _, module := range graph.Modules {
		for _, imp := range module.Imports {
			specifier := imp.Original.Specifier

			if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
				if imp.ResolvedPath == nil {
					unresolved = append(unresolved, domain.UnresolvedImport{
						Path:       module.Path,
						Specifier:  specifier,
						Location:   imp.Original.Location,
						IsTypeOnly: imp.Original.IsTypeOnly,
					})
				}
				continue
			}

			if imp.PackageName == nil {
				continue
			}
			pkgName := *imp.PackageName

			_, declared := allDeps[pkgName]
			isBuiltin := policy.IsBuiltinModule(pkgName)
			if !declared && !isBuiltin {
				continue
			}
			if imp.ResolvedPath == nil && !isBuiltin {
				unresolved = append(unresolved, domain.UnresolvedImport{
					Path:       module.Path,
					Specifier:  specifier,
					Location:   imp.Original.Location,
					IsTypeOnly: imp.Original.IsTypeOnly,
				})
			}
		}
	}

	sort.Slice(unresolved, func(i, j int) bool {
		if unresolved[i].Path != unresolved[j].Path {
			return unresolved[i].Path < unresolved[j].Path
		}
		return unresolved[i].Location.Line < unresolved[j].Location.Line
	})
	return unresolved
}
