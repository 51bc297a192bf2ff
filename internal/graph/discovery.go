package graph

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var defaultProjectPatterns = []string{"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs"}

var defaultExcludePatterns = []string{"**/node_modules/**", "**/dist/**", "**/build/**", "**/.git/**"}

var productionExcludePatterns = []string{
	"**/*.test.ts", "**/*.test.tsx", "**/*.test.js", "**/*.test.jsx",
	"**/*.spec.ts", "**/*.spec.tsx", "**/*.spec.js", "**/*.spec.jsx",
	"**/__tests__/**", "**/__mocks__/**", "**/test/**", "**/tests/**",
	"**/*.stories.ts", "**/*.stories.tsx", "**/*.stories.js", "**/*.stories.jsx",
}

// DiscoveryOptions configures Stage 1 file collection.
type DiscoveryOptions struct {
	// ProjectPatterns are `**`-aware include globs, relative to Root.
	// Empty means the default JS/TS extension set.
	ProjectPatterns []string
	// IgnorePatterns are additional `**`-aware exclude globs, relative to Root.
	IgnorePatterns []string
	// Production also excludes test/story files, matching a production build's
	// module graph rather than a development one.
	Production bool
}

// CollectProjectFiles walks root, honoring .gitignore, and returns every
// file whose root-relative path matches the include patterns and none of
// the exclude patterns.
func CollectProjectFiles(root string, opts DiscoveryOptions) ([]string, error) {
	includePatterns := opts.ProjectPatterns
	if len(includePatterns) == 0 {
		includePatterns = defaultProjectPatterns
	}

	excludePatterns := append([]string{}, defaultExcludePatterns...)
	excludePatterns = append(excludePatterns, opts.IgnorePatterns...)
	if opts.Production {
		excludePatterns = append(excludePatterns, productionExcludePatterns...)
	}

	gi := loadGitIgnore(root)

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relative, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relative = path
		}
		relative = filepath.ToSlash(relative)

		if gi != nil && relative != "." && gi.MatchesPath(relative) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if matchesAny(excludePatterns, relative+"/") || matchesAny(excludePatterns, relative) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(excludePatterns, relative) {
			return nil
		}
		if matchesAny(includePatterns, relative) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func matchesAny(patterns []string, relative string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relative); err == nil && ok {
			return true
		}
	}
	return false
}

func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

var defaultEntryCandidates = []string{
	"src/index.ts", "src/index.tsx", "src/main.ts", "src/main.tsx",
	"index.ts", "index.tsx", "index.js", "main.ts", "main.tsx", "main.js",
}

// FindEntryPoints selects the project's entry files: explicit glob patterns
// if configured, else the first conventional index/main file present,
// plus package.json's "main" field if it names a project file.
func FindEntryPoints(root string, entryPatterns []string, projectFiles []string, packageJSONMain string) []string {
	projectSet := make(map[string]struct{}, len(projectFiles))
	for _, f := range projectFiles {
		projectSet[f] = struct{}{}
	}

	var entries []string
	seen := make(map[string]struct{})

	addEntry := func(path string) {
		if _, already := seen[path]; already {
			return
		}
		if _, inProject := projectSet[path]; inProject {
			entries = append(entries, path)
			seen[path] = struct{}{}
		}
	}

	if len(entryPatterns) > 0 {
		for _, pattern := range entryPatterns {
			for _, file := range projectFiles {
				relative, err := filepath.Rel(root, file)
				if err != nil {
					continue
				}
				relative = filepath.ToSlash(relative)
				if ok, err := doublestar.Match(pattern, relative); err == nil && ok {
					addEntry(file)
				}
			}
		}
	}

	if len(entries) == 0 {
		for _, candidate := range defaultEntryCandidates {
			path := filepath.Join(root, filepath.FromSlash(candidate))
			if _, inProject := projectSet[path]; inProject {
				addEntry(path)
				break
			}
		}
	}

	if packageJSONMain != "" {
		addEntry(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(packageJSONMain, "./"))))
	}

	return entries
}
