package domain

import (
	"context"
	"io"
)

// OutputFormat is a supported rendering of an AnalysisResult.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria orders a diagnostic listing for display.
type SortCriteria string

const (
	SortByName     SortCriteria = "name"
	SortByLocation SortCriteria = "location"
)

// AnalysisRequest is the input to a full dead-code analysis run.
type AnalysisRequest struct {
	// TargetPath is the project root to analyze.
	TargetPath   string
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ConfigPath   string
	SortBy       SortCriteria

	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// IgnoreExports maps a file glob pattern to the export names within
	// matching files that should never be reported unused; the name "*"
	// ignores every export in a matching file.
	IgnoreExports map[string][]string

	// IncludeDevDependencies controls whether devDependencies are checked
	// for use the same way runtime dependencies are.
	IncludeDevDependencies bool

	// IgnoreDependencies lists manifest dependency names never reported
	// unused, regardless of the implicit/dev-tool heuristics.
	IgnoreDependencies []string

	// IgnoreBinaries lists command names never reported as an unlisted
	// binary, regardless of the built-in shell/package-manager allowlist.
	IgnoreBinaries []string

	// EntryPatterns are explicit entry-point globs; empty selects the
	// conventional index/main file.
	EntryPatterns []string

	// BaseURL and Paths mirror tsconfig.json's compilerOptions, for import
	// resolution.
	BaseURL string
	Paths   map[string][]string

	// IncludeEntryExports, when false (the default), suppresses an entry
	// point's default export from unused-export reporting.
	IncludeEntryExports bool

	// IgnoreExportsUsedInFile, when true, suppresses every unused-export
	// and unused-type report.
	IgnoreExportsUsedInFile bool

	// Production excludes test/story files from discovery. Strict
	// restricts unlisted-dependency detection to runtime dependencies.
	Production bool
	Strict     bool

	// UseCache toggles the on-disk parse cache; CacheDir overrides its
	// default location under Root.
	UseCache bool
	CacheDir string
}

// UnusedFile is a project file that Stage 5 reachability never reaches from
// any configured entry point.
type UnusedFile struct {
	Path string `json:"path"`
}

// UnusedExport is a named runtime export no resolved importer ever binds.
type UnusedExport struct {
	Path     string         `json:"path"`
	Name     string         `json:"name"`
	Kind     ExportKind     `json:"kind"`
	Location SourceLocation `json:"location"`
}

// UnusedType is a type export (marked type-only, or of kind
// type/interface/enum/namespace) never consumed.
type UnusedType struct {
	Path     string         `json:"path"`
	Name     string         `json:"name"`
	Kind     ExportKind     `json:"kind"`
	Location SourceLocation `json:"location"`
}

// UnusedDependency is a manifest dependency (runtime or dev) never imported
// by any reachable module, after the implicit-dependency and dev-tool
// allowlists in internal/policy are applied.
type UnusedDependency struct {
	Name    string `json:"name"`
	DevOnly bool   `json:"dev_only"`
}

// UnlistedDependency is an external package imported somewhere in the
// project but declared in none of the manifest's dependency sections
// (runtime, dev, peer, optional; only runtime in strict mode), after the
// Node.js built-in allowlist is applied.
type UnlistedDependency struct {
	Name    string   `json:"name"`
	UsedIn  []string `json:"used_in"`
	IsLocal bool     `json:"is_local,omitempty"`
}

// UnresolvedImport is an import the resolver could not map onto any file on
// disk: a relative specifier, or a bare one naming a declared, non-builtin
// package.
type UnresolvedImport struct {
	Path       string         `json:"path"`
	Specifier  string         `json:"specifier"`
	Location   SourceLocation `json:"location"`
	IsTypeOnly bool           `json:"is_type_only,omitempty"`
}

// DuplicateExport is an externally-visible export name declared as a
// top-level (non-re-exported) export in more than one reachable file.
// Path holds the first offending location's file for quick display;
// Locations holds every declaration site.
type DuplicateExport struct {
	Path      string           `json:"path"`
	Name      string           `json:"name"`
	Locations []SourceLocation `json:"locations"`
}

// UnusedEnumMember is a member of an exported enum never
// referenced via `EnumName.Member` anywhere in the reachable graph.
type UnusedEnumMember struct {
	Path       string `json:"path"`
	EnumName   string `json:"enum_name"`
	MemberName string `json:"member_name"`
	Line       int    `json:"line"`
	Col        int    `json:"col"`
}

// ClassMemberKind classifies the syntactic form of a class member.
type ClassMemberKind string

const (
	ClassMemberMethod   ClassMemberKind = "method"
	ClassMemberProperty ClassMemberKind = "property"
	ClassMemberGetter   ClassMemberKind = "getter"
	ClassMemberSetter   ClassMemberKind = "setter"
)

// UnusedClassMember is a member of an exported class with no
// `this.member` (or `instance.member`, conservatively) access anywhere in
// the reachable graph.
type UnusedClassMember struct {
	Path       string          `json:"path"`
	ClassName  string          `json:"class_name"`
	MemberName string          `json:"member_name"`
	Kind       ClassMemberKind `json:"kind"`
	Line       int             `json:"line"`
	Col        int             `json:"col"`
}

// UnlistedBinary is a command invoked from a package.json scripts entry
// (directly or via npx) whose name matches no dependency declared in the
// manifest and is not a package-manager front-end or shell builtin.
type UnlistedBinary struct {
	Name   string   `json:"name"`
	UsedIn []string `json:"used_in"`
}

// Issues groups every diagnostic category produced by one analysis run, in
// the same shape and field order the result formatters render them in.
type Issues struct {
	UnusedFiles          []UnusedFile         `json:"unused_files"`
	UnusedExports        []UnusedExport       `json:"unused_exports"`
	UnusedTypes          []UnusedType         `json:"unused_types"`
	UnusedDependencies   []UnusedDependency   `json:"unused_dependencies"`
	UnlistedDependencies []UnlistedDependency `json:"unlisted_dependencies"`
	UnresolvedImports    []UnresolvedImport   `json:"unresolved_imports"`
	DuplicateExports     []DuplicateExport    `json:"duplicate_exports"`
	UnusedEnumMembers    []UnusedEnumMember   `json:"unused_enum_members"`
	UnusedClassMembers   []UnusedClassMember  `json:"unused_class_members"`
	UnlistedBinaries     []UnlistedBinary     `json:"unlisted_binaries"`
}

// Counters is the per-category count view of Issues, used for the text
// summary line and the CLI's quick threshold checks.
type Counters struct {
	Files                int `json:"files"`
	Exports              int `json:"exports"`
	Types                int `json:"types"`
	Dependencies         int `json:"dependencies"`
	UnlistedDependencies int `json:"unlisted_dependencies"`
	UnresolvedImports    int `json:"unresolved_imports"`
	DuplicateExports     int `json:"duplicate_exports"`
	EnumMembers          int `json:"enum_members"`
	ClassMembers         int `json:"class_members"`
	Binaries             int `json:"binaries"`
}

// Total sums every category; zero means the project is clean.
func (c Counters) Total() int {
	return c.Files + c.Exports + c.Types + c.Dependencies + c.UnlistedDependencies +
		c.UnresolvedImports + c.DuplicateExports + c.EnumMembers + c.ClassMembers + c.Binaries
}

// Stats carries run metadata alongside Issues: how much was analyzed, how
// long it took, and which files were skipped due to recoverable parse
// failures (see DomainError's ErrCodeParseError).
type Stats struct {
	FilesAnalyzed int      `json:"files_analyzed"`
	FilesSkipped  int      `json:"files_skipped"`
	Warnings      []string `json:"warnings,omitempty"`
	DurationMS    int64    `json:"duration_ms"`
	CacheHits     int      `json:"cache_hits"`
	CacheMisses   int      `json:"cache_misses"`
}

// AnalysisResult is the complete output of one analysis run.
type AnalysisResult struct {
	Issues      Issues   `json:"issues"`
	Counters    Counters `json:"counters"`
	Stats       Stats    `json:"stats"`
	GeneratedAt string   `json:"generated_at"`
	Version     string   `json:"version"`
}

// AnalysisService defines the core business logic for dead-code analysis.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

// OutputFormatter renders an AnalysisResult in one of OutputFormat's shapes.
type OutputFormatter interface {
	Format(result *AnalysisResult, format OutputFormat) (string, error)
	Write(result *AnalysisResult, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader loads and merges configuration for an AnalysisRequest.
type ConfigurationLoader interface {
	LoadConfig(path string) (*AnalysisRequest, error)
	LoadDefaultConfig() *AnalysisRequest
	MergeConfig(base *AnalysisRequest, override *AnalysisRequest) *AnalysisRequest
}
