package domain

// ExportKind classifies the declaration form an Export came from.
type ExportKind string

const (
	ExportKindFunction  ExportKind = "function"
	ExportKindClass     ExportKind = "class"
	ExportKindVariable  ExportKind = "variable"
	ExportKindConst     ExportKind = "const"
	ExportKindLet       ExportKind = "let"
	ExportKindType      ExportKind = "type"
	ExportKindInterface ExportKind = "interface"
	ExportKindEnum      ExportKind = "enum"
	ExportKindNamespace ExportKind = "namespace"
	ExportKindDefault   ExportKind = "default"
)

// IsTypeKind reports whether kind carries no runtime value by construction.
func (k ExportKind) IsTypeKind() bool {
	switch k {
	case ExportKindType, ExportKindInterface, ExportKindEnum, ExportKindNamespace:
		return true
	}
	return false
}

// SourceLocation is a 1-based line/column position within one source file.
type SourceLocation struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// ImportedName is one binding drawn from an import or re-export specifier list.
// Name "*" denotes a namespace binding; name "default" denotes the default export.
type ImportedName struct {
	Name   string `json:"name"`
	Alias  string `json:"alias,omitempty"`
	IsType bool   `json:"is_type,omitempty"`
}

// Import is a single import statement (static or dynamic) as written in source.
type Import struct {
	Specifier     string         `json:"specifier"`
	ImportedNames []ImportedName `json:"imported_names,omitempty"`
	IsTypeOnly    bool           `json:"is_type_only,omitempty"`
	IsSideEffect  bool           `json:"is_side_effect,omitempty"`
	IsDynamic     bool           `json:"is_dynamic,omitempty"`
	Location      SourceLocation `json:"location"`
}

// EnumMember is one member of an Enum-kind Export, captured so the analyzer
// can check whether its qualified access (`EnumName.Member`) ever appears.
type EnumMember struct {
	Name     string         `json:"name"`
	Location SourceLocation `json:"location"`
}

// ClassMember is one member of a Class-kind Export, captured so the analyzer
// can check whether it is ever referenced.
type ClassMember struct {
	Name     string          `json:"name"`
	Kind     ClassMemberKind `json:"kind"`
	Location SourceLocation  `json:"location"`
}

// Export is a single exported binding, one per bound identifier for destructuring forms.
type Export struct {
	Name      string         `json:"name"`
	Kind      ExportKind     `json:"kind"`
	IsType    bool           `json:"is_type"`
	IsDefault bool           `json:"is_default"`
	Location  SourceLocation `json:"location"`

	// EnumMembers is populated only when Kind is ExportKindEnum.
	EnumMembers []EnumMember `json:"enum_members,omitempty"`
	// ClassMembers is populated only when Kind is ExportKindClass.
	ClassMembers []ClassMember `json:"class_members,omitempty"`
}

// ExportedName is one binding within an `export { ... } from "s"` clause.
// Name "*" denotes a star re-export.
type ExportedName struct {
	Name   string `json:"name"`
	Alias  string `json:"alias,omitempty"`
	IsType bool   `json:"is_type,omitempty"`
}

// ReExport is an `export ... from "s"` statement, including `export * from "s"`.
type ReExport struct {
	Specifier     string         `json:"specifier"`
	ExportedNames []ExportedName `json:"exported_names"`
	IsTypeOnly    bool           `json:"is_type_only,omitempty"`
	Location      SourceLocation `json:"location"`
}

// ParsedModule is the parser facade's output for a single source file.
type ParsedModule struct {
	Imports   []Import   `json:"imports"`
	Exports   []Export   `json:"exports"`
	ReExports []ReExport `json:"re_exports"`
}
