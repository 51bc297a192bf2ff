package analyzer

import (
	"sort"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnusedExports walks every reachable module's exports, splitting the
// result into runtime exports (UnusedExport) and type-only exports
// (UnusedType: type/interface/enum/namespace declarations, or any export
// whose IsType flag was set by a type-only import/export form).
func FindUnusedExports(graph *domain.ModuleGraph, cfg *domain.ResolvedConfig) ([]domain.UnusedExport, []domain.UnusedType) {
	usedExports := graph.GetUsedExports()
	reachable := graph.GetReachableFiles()

	entryPoints := make(map[string]struct{}, len(graph.EntryPoints))
	for _, path := range graph.EntryPoints {
		entryPoints[path] = struct{}{}
	}

	var unusedExports []domain.UnusedExport
	var unusedTypes []domain.UnusedType

	for path, module := range graph.Modules {
		if _, ok := reachable[path]; !ok {
			continue
		}

		relative := relativeTo(cfg.Root, path)
		_, isEntry := entryPoints[path]
		usedInFile := usedExports[path]
		fileIgnores := ignoredExportNamesFor(cfg.IgnoreExports, relative)

		for _, export := range module.Exports {
			if export.IsDefault && isEntry && !cfg.IncludeEntryExports {
				continue
			}

			if _, all := fileIgnores["*"]; all {
				continue
			}
			if _, named := fileIgnores[export.Name]; named {
				continue
			}

			if exportIsUsed(export, usedInFile) {
				continue
			}

			// A blanket pass-through: when set, no export is ever reported
			// unused, matching the reference tool's own (perhaps
			// surprising, but deliberately mirrored) behavior for this flag.
			if cfg.IgnoreExportsUsedInFile {
				continue
			}

			if export.IsType || export.Kind.IsTypeKind() {
				unusedTypes = append(unusedTypes, domain.UnusedType{
					Path:     path,
					Name:     export.Name,
					Kind:     export.Kind,
					Location: export.Location,
				})
			} else {
				unusedExports = append(unusedExports, domain.UnusedExport{
					Path:     path,
					Name:     export.Name,
					Kind:     export.Kind,
					Location: export.Location,
				})
			}
		}
	}

	sort.Slice(unusedExports, func(i, j int) bool {
		if unusedExports[i].Path != unusedExports[j].Path {
			return unusedExports[i].Path < unusedExports[j].Path
		}
		return unusedExports[i].Location.Line < unusedExports[j].Location.Line
	})
	sort.Slice(unusedTypes, func(i, j int) bool {
		if unusedTypes[i].Path != unusedTypes[j].Path {
			return unusedTypes[i].Path < unusedTypes[j].Path
		}
		return unusedTypes[i].Location.Line < unusedTypes[j].Location.Line
	})

	return unusedExports, unusedTypes
}

// exportIsUsed reports whether some importer binds export's name, the
// namespace/side-effect sentinel "*", or (for default exports) the name
// "default".
func exportIsUsed(export domain.Export, usedInFile map[string]struct{}) bool {
	if usedInFile == nil {
		return false
	}
	if _, ok := usedInFile[export.Name]; ok {
		return true
	}
	if _, ok := usedInFile["*"]; ok {
		return true
	}
	if export.IsDefault {
		if _, ok := usedInFile["default"]; ok {
			return true
		}
	}
	return false
}

// ignoredExportNamesFor collects every ignore-export name bound to a glob
// pattern matching relative, from every pattern in ignoreExports.
func ignoredExportNamesFor(ignoreExports map[string][]string, relative string) map[string]struct{} {
	if len(ignoreExports) == 0 {
		return nil
	}
	names := make(map[string]struct{})
	for pattern, patternNames := range ignoreExports {
		if !policy.MatchIgnorePattern(pattern, relative) {
			continue
		}
		for _, name := range patternNames {
			names[name] = struct{}{}
		}
	}
	return names
}
