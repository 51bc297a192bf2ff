package analyzer

import (
	"sort"
	"strings"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnusedFiles reports every project file the graph's reachability
// traversal never reaches from an entry point, excluding files matched by an
// ignore pattern and test files (which commonly have no importer by design).
func FindUnusedFiles(graph *domain.ModuleGraph, root string, ignorePatterns []string) []domain.UnusedFile {
	reachable := graph.GetReachableFiles()

	var unused []domain.UnusedFile
	for path := range graph.Modules {
		if _, ok := reachable[path]; ok {
			continue
		}

		relative := relativeTo(root, path)

		if policy.MatchAnyIgnorePattern(ignorePatterns, relative) {
			continue
		}
		if isTestFile(relative) {
			continue
		}

		unused = append(unused, domain.UnusedFile{Path: path})
	}

	sort.Slice(unused, func(i, j int) bool { return unused[i].Path < unused[j].Path })
	return unused
}

// relativeTo strips root as a path prefix, falling back to the original path
// when it isn't actually rooted there.
func relativeTo(root, path string) string {
	if rel := strings.TrimPrefix(path, root); rel != path {
		return strings.TrimPrefix(rel, "/")
	}
	return path
}

// isTestFile reports whether path looks like a test or spec file by the
// conventions this engine recognizes, regardless of framework.
func isTestFile(path string) bool {
	return strings.Contains(path, ".test.") ||
		strings.Contains(path, ".spec.") ||
		strings.Contains(path, "__tests__") ||
		strings.Contains(path, "__mocks__")
}
