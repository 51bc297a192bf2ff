package domain

// ResolvedImport wraps an Import with the outcome of module resolution.
type ResolvedImport struct {
	Original     Import  `json:"original"`
	ResolvedPath *string `json:"resolved_path,omitempty"`
	PackageName  *string `json:"package_name,omitempty"`
}

// ResolvedReExport wraps a ReExport with the outcome of resolving its own
// specifier — a barrel file's `export ... from "s"` is resolved exactly like
// an import of "s" would be, independent of whatever else the file imports.
type ResolvedReExport struct {
	Original     ReExport `json:"original"`
	ResolvedPath *string  `json:"resolved_path,omitempty"`
}

// Module is one project file after parsing and import resolution.
type Module struct {
	Path      string             `json:"path"`
	Imports   []ResolvedImport   `json:"imports"`
	Exports   []Export           `json:"exports"`
	ReExports []ResolvedReExport `json:"re_exports"`
}

// ModuleGraph is the complete, immutable result of the graph-builder stage.
//
// Nodes are keyed by canonical absolute path. ExternalImports maps an external
// package name to the ordered (by discovery) list of files that import it.
type ModuleGraph struct {
	Modules         map[string]*Module  `json:"modules"`
	EntryPoints     []string            `json:"entry_points"`
	ExternalImports map[string][]string `json:"external_imports"`
}

// NewModuleGraph creates an empty graph ready for population by the builder.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{
		Modules:         make(map[string]*Module),
		ExternalImports: make(map[string][]string),
	}
}

// GetReachableFiles performs the worklist traversal described for Stage 5:
// entry points, following resolved in-project imports and re-exports, each
// re-export through its own resolved path (ResolvedReExport.ResolvedPath).
func (g *ModuleGraph) GetReachableFiles() map[string]struct{} {
	reachable := make(map[string]struct{})
	queue := append([]string{}, g.EntryPoints...)

	for len(queue) > 0 {
		path := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if _, seen := reachable[path]; seen {
			continue
		}
		reachable[path] = struct{}{}

		module, ok := g.Modules[path]
		if !ok {
			continue
		}

		for _, imp := range module.Imports {
			if imp.ResolvedPath == nil {
				continue
			}
			if _, inGraph := g.Modules[*imp.ResolvedPath]; !inGraph {
				continue
			}
			if _, already := reachable[*imp.ResolvedPath]; !already {
				queue = append(queue, *imp.ResolvedPath)
			}
		}

		for _, reExport := range module.ReExports {
			if reExport.ResolvedPath == nil {
				continue
			}
			if _, inGraph := g.Modules[*reExport.ResolvedPath]; !inGraph {
				continue
			}
			if _, already := reachable[*reExport.ResolvedPath]; !already {
				queue = append(queue, *reExport.ResolvedPath)
			}
		}
	}

	return reachable
}

// GetUsedExports returns, for every resolved-to file, the set of names some
// importer recorded against it. The sentinel "*" covers namespace imports and
// side-effect imports (Stage 6 accounting).
func (g *ModuleGraph) GetUsedExports() map[string]map[string]struct{} {
	used := make(map[string]map[string]struct{})

	for _, module := range g.Modules {
		for _, imp := range module.Imports {
			if imp.ResolvedPath == nil {
				continue
			}
			entry, ok := used[*imp.ResolvedPath]
			if !ok {
				entry = make(map[string]struct{})
				used[*imp.ResolvedPath] = entry
			}

			for _, name := range imp.Original.ImportedNames {
				entry[name.Name] = struct{}{}
			}
			if imp.Original.IsSideEffect {
				entry["*"] = struct{}{}
			}
		}
	}

	return used
}

// GetUsedPackages returns the set of external package names imported anywhere
// in the graph.
func (g *ModuleGraph) GetUsedPackages() map[string]struct{} {
	used := make(map[string]struct{}, len(g.ExternalImports))
	for pkg := range g.ExternalImports {
		used[pkg] = struct{}{}
	}
	return used
}
