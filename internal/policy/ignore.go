package policy

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchIgnorePattern reports whether path matches pattern. A pattern
// containing a glob metacharacter is matched with full `**`-aware glob
// semantics (via doublestar) so a single ignore entry can cover a whole
// directory tree; a pattern with no metacharacter is matched as a plain
// substring, letting a one-word pattern like "generated" exclude any path
// that contains it without requiring exact glob syntax.
func MatchIgnorePattern(pattern, path string) bool {
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := doublestar.Match(pattern, path)
		return err == nil && matched
	}
	return strings.Contains(path, pattern)
}

// MatchAnyIgnorePattern reports whether path matches any of patterns.
func MatchAnyIgnorePattern(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if MatchIgnorePattern(pattern, path) {
			return true
		}
	}
	return false
}

// resolutionExtensions are the extensions the module resolver appends, in
// order, when a specifier names neither an exact file nor a directory.
var resolutionExtensions = []string{".ts", ".tsx", ".d.ts", ".js", ".jsx", ".mjs", ".cjs", ".mts", ".cts", ".json"}

// ResolutionExtensions returns the ordered list of extensions the resolver
// tries when a bare specifier doesn't resolve directly.
func ResolutionExtensions() []string {
	out := make([]string, len(resolutionExtensions))
	copy(out, resolutionExtensions)
	return out
}

// indexFileNames are the file names the resolver tries, in order, when a
// specifier resolves to a directory rather than a file.
var indexFileNames = []string{"index.ts", "index.tsx", "index.js", "index.jsx", "index.mjs", "index.cjs"}

// IndexFileNames returns the ordered list of index file names the resolver
// tries for a directory specifier.
func IndexFileNames() []string {
	out := make([]string, len(indexFileNames))
	copy(out, indexFileNames)
	return out
}
