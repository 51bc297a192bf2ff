package analyzer

import (
	"sort"

	"github.com/scantree/scantree/domain"
)

// FindDuplicateExports reports every externally-visible export name declared
// as a top-level (non-re-exported) export in more than one reachable file —
// a structural signal surfaced regardless of whether either declaration is
// ever imported, since it indicates an ambiguous public surface rather than
// dead code.
func FindDuplicateExports(graph *domain.ModuleGraph) []domain.DuplicateExport {
	reachable := graph.GetReachableFiles()

	locationsByName := make(map[string][]domain.SourceLocation)
	var order []string

	for path, module := range graph.Modules {
		if _, ok := reachable[path]; !ok {
			continue
		}
		for _, export := range module.Exports {
			if export.IsDefault {
				continue
			}
			if _, seen := locationsByName[export.Name]; !seen {
				order = append(order, export.Name)
			}
			locationsByName[export.Name] = append(locationsByName[export.Name], export.Location)
		}
	}

	var duplicates []domain.DuplicateExport
	for _, name := range order {
		locations := locationsByName[name]
		if len(locations) < 2 {
			continue
		}

		distinctFiles := make(map[string]struct{}, len(locations))
		for _, loc := range locations {
			distinctFiles[loc.Path] = struct{}{}
		}
		if len(distinctFiles) < 2 {
			continue
		}

		sort.Slice(locations, func(i, j int) bool {
			if locations[i].Path != locations[j].Path {
				return locations[i].Path < locations[j].Path
			}
			return locations[i].Line < locations[j].Line
		})

		duplicates = append(duplicates, domain.DuplicateExport{
			Path:      locations[0].Path,
			Name:      name,
			Locations: locations,
		})
	}

	sort.Slice(duplicates, func(i, j int) bool { return duplicates[i].Name < duplicates[j].Name })
	return duplicates
}
