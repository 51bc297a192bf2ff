package config

// ProjectType represents the kind of JavaScript/TypeScript project being
// scaffolded, used to pick sensible default include/exclude globs.
type ProjectType string

const (
	ProjectTypeGeneric     ProjectType = "generic"
	ProjectTypeReact       ProjectType = "react"
	ProjectTypeVue         ProjectType = "vue"
	ProjectTypeNodeBackend ProjectType = "node"
)

// Strictness represents how much a scaffolded config reports: whether
// unused-export reporting is suppressed and whether an entry point's
// default export is reported.
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds the project glob defaults for one ProjectType.
type ProjectPreset struct {
	ProjectPatterns []string
	IgnorePatterns  []string
}

// StrictnessPreset holds the ignore-rule defaults for one Strictness level.
type StrictnessPreset struct {
	IgnoreExportsUsedInFile bool
	IncludeEntryExports     bool
}

// GetProjectPresets returns the glob presets for each known project type.
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			ProjectPatterns: []string{"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx"},
			IgnorePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
			},
		},
		ProjectTypeReact: {
			ProjectPatterns: []string{"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx"},
			IgnorePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/.next/**",
				"**/coverage/**",
			},
		},
		ProjectTypeVue: {
			ProjectPatterns: []string{"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx", "**/*.vue"},
			IgnorePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/.nuxt/**",
				"**/coverage/**",
			},
		},
		ProjectTypeNodeBackend: {
			ProjectPatterns: []string{"**/*.js", "**/*.ts", "**/*.mjs", "**/*.cjs"},
			IgnorePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/test/**",
				"**/tests/**",
				"**/__tests__/**",
			},
		},
	}
}

// GetStrictnessPresets returns the ignore-rule presets for each strictness
// level. Relaxed and standard turn on ignoreExportsUsedInFile (which
// suppresses every unused-export report) and hide an entry point's default
// export; strict reports everything.
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			IgnoreExportsUsedInFile: true,
			IncludeEntryExports:     false,
		},
		StrictnessStandard: {
			IgnoreExportsUsedInFile: true,
			IncludeEntryExports:     false,
		},
		StrictnessStrict: {
			IgnoreExportsUsedInFile: false,
			IncludeEntryExports:     true,
		},
	}
}

// GetFullConfigTemplate returns the documented scantree.yaml template for a
// given project type and strictness level.
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	preset := GetProjectPresets()[projectType]
	strict := GetStrictnessPresets()[strictness]

	return `# scantree configuration
# https://github.com/scantree/scantree

# Glob patterns of files considered part of the project.
project:
` + formatYAMLArray(preset.ProjectPatterns) + `

# Glob patterns excluded from discovery.
ignore:
` + formatYAMLArray(preset.IgnorePatterns) + `

# Explicit entry-point globs. Leave empty to use the first conventional
# index/main file found (src/index.ts, src/main.ts, index.ts, ...) plus
# package.json's main.
entry: []

# Dependency names never reported as unused, regardless of the
# implicit/dev-tool heuristics (e.g. type-only or plugin-loaded packages).
ignoreDependencies: []

# Command names never reported as an unlisted binary.
ignoreBinaries: []

# Per-file export names never reported as unused. The name "*" ignores
# every export in a matching file.
ignoreExports: {}

# Report an entry point's default export when unused (false hides it).
includeEntryExports: ` + formatYAMLBool(strict.IncludeEntryExports) + `

# When true, no export is reported as unused at all.
ignoreExportsUsedInFile: ` + formatYAMLBool(strict.IgnoreExportsUsedInFile) + `
`
}

// GetMinimalConfigTemplate returns a minimal scantree.yaml with just the
// fields a new project is most likely to need to adjust immediately.
func GetMinimalConfigTemplate() string {
	return `# scantree configuration
project:
  - "**/*.js"
  - "**/*.ts"
  - "**/*.jsx"
  - "**/*.tsx"

ignore:
  - "**/node_modules/**"
  - "**/dist/**"
`
}

func formatYAMLArray(items []string) string {
	if len(items) == 0 {
		return "  []"
	}
	var out string
	for i, item := range items {
		out += `  - "` + item + `"`
		if i < len(items)-1 {
			out += "\n"
		}
	}
	return out
}

func formatYAMLBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
