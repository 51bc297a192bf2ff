package domain

// PackageJSON is the subset of a project's package.json the analysis engine
// consults: declared dependencies, the entry file, and invocable binaries.
type PackageJSON struct {
	Name                 string            `json:"name"`
	Main                 string            `json:"main"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	Bin                  map[string]string `json:"-"`
	Scripts              map[string]string `json:"scripts"`
}

// ResolvedConfig is the fully merged configuration one analysis run acts on:
// CLI flags, a project config file, tsconfig.json path mapping, and
// package.json, all folded together by internal/config's loader.
type ResolvedConfig struct {
	Root        string
	PackageJSON *PackageJSON

	// Ignore lists root-relative file patterns (glob or substring, see
	// policy.MatchIgnorePattern) never reported as an unused file.
	Ignore []string

	// IgnoreExports maps a file glob to the export names within matching
	// files that should never be reported unused; "*" ignores every export
	// in a matching file.
	IgnoreExports map[string][]string

	// IgnoreDependencies lists manifest dependency names never reported
	// unused, regardless of the implicit/dev-tool heuristics.
	IgnoreDependencies []string

	// IgnoreBinaries lists command names never reported as an unlisted
	// binary, regardless of the built-in shell/package-manager allowlist.
	IgnoreBinaries []string

	// IncludeEntryExports, when false (the default), suppresses the
	// default export of an entry-point file from unused-export reporting,
	// since an entry point's default export is conventionally consumed by
	// a bundler or runtime outside the analyzed graph.
	IncludeEntryExports bool

	// IgnoreExportsUsedInFile, when true, is a blanket pass-through: no
	// export is reported as an unused export or unused type at all.
	IgnoreExportsUsedInFile bool

	// BaseURL and Paths mirror tsconfig.json's compilerOptions.
	BaseURL string
	Paths   map[string][]string

	// EntryPatterns are explicit entry-point globs; empty selects the
	// conventional index/main file.
	EntryPatterns []string

	// ProjectPatterns and IgnorePatterns configure Stage 1 file discovery.
	ProjectPatterns []string
	IgnorePatterns  []string

	// Production excludes test/story files from discovery, matching a
	// production build rather than a development tree.
	Production bool

	// Strict restricts unlisted-dependency detection to runtime
	// dependencies only, ignoring dev/peer/optional sections.
	Strict bool

	// UseCache toggles the on-disk parse cache.
	UseCache bool
	CacheDir string
}
