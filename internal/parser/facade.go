package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"github.com/scantree/scantree/domain"
)

// Facade extracts the import/export surface of one source file, producing a
// domain.ParsedModule. It walks the raw tree-sitter CST directly, looking
// nodes up by type and field name, so TypeScript's type-only import/export
// forms and interface/enum declarations are handled by explicit node-kind
// cases.
type Facade struct {
	filename string
	source   []byte
}

// NewFacade creates a Facade for one file's already-read source bytes.
func NewFacade(filename string, source []byte) *Facade {
	return &Facade{filename: filename, source: source}
}

// Extract parses source with the language selected by the file extension
// and returns its import/export facts.
func Extract(filename string, source []byte) (*domain.ParsedModule, error) {
	lang := languageFor(filename)
	sp := sitter.NewParser()
	sp.SetLanguage(lang)
	defer sp.Close()

	tree := sp.Parse(nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s", filename)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no root node for %s", filename)
	}

	f := NewFacade(filename, source)
	return f.build(root), nil
}

func languageFor(filename string) *sitter.Language {
	if isTypeScriptFile(filename) {
		return tsx.GetLanguage()
	}
	return javascript.GetLanguage()
}

func isTypeScriptFile(filename string) bool {
	for _, ext := range []string{".ts", ".tsx", ".mts", ".cts"} {
		if len(filename) >= len(ext) && filename[len(filename)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func (f *Facade) build(root *sitter.Node) *domain.ParsedModule {
	module := &domain.ParsedModule{}

	for i := 0; i < int(root.ChildCount()); i++ {
		stmt := root.Child(i)
		if stmt == nil {
			continue
		}
		f.visitTopLevel(stmt, module)
	}

	f.collectDynamicImports(root, module)

	return module
}

// visitTopLevel dispatches one top-level statement into imports/exports,
// unwrapping "export" wrappers around declarations.
func (f *Facade) visitTopLevel(stmt *sitter.Node, module *domain.ParsedModule) {
	switch stmt.Type() {
	case "import_statement":
		if imp, ok := f.buildImport(stmt); ok {
			module.Imports = append(module.Imports, imp)
		}
	case "export_statement":
		f.visitExportStatement(stmt, module)
	case "export_assignment":
		// TypeScript `export = expr;` — treated as the module's default export.
		module.Exports = append(module.Exports, domain.Export{
			Name:      "default",
			Kind:      domain.ExportKindDefault,
			IsDefault: true,
			Location:  f.location(stmt),
		})
	}
}

func (f *Facade) location(n *sitter.Node) domain.SourceLocation {
	return domain.SourceLocation{
		Path: f.filename,
		Line: int(n.StartPoint().Row) + 1,
		Col:  int(n.StartPoint().Column) + 1,
	}
}

func childByField(n *sitter.Node, field string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) == field {
			return n.Child(i)
		}
	}
	return nil
}

func hasChildOfType(n *sitter.Node, nodeType string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && c.Type() == nodeType {
			return true
		}
	}
	return false
}

func stringLiteralValue(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	raw := n.Content(source)
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// buildImport handles `import ... from "specifier"`, static forms only.
func (f *Facade) buildImport(stmt *sitter.Node) (domain.Import, bool) {
	sourceNode := childByField(stmt, "source")
	if sourceNode == nil {
		return domain.Import{}, false
	}

	imp := domain.Import{
		Specifier:  stringLiteralValue(sourceNode, f.source),
		Location:   f.location(stmt),
		IsTypeOnly: hasChildOfType(stmt, "type"),
	}

	hasClause := false
	for i := 0; i < int(stmt.ChildCount()); i++ {
		child := stmt.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_clause":
			hasClause = true
			f.extractImportClause(child, &imp)
		case "namespace_import":
			hasClause = true
			imp.ImportedNames = append(imp.ImportedNames, domain.ImportedName{Name: "*", Alias: f.namespaceAlias(child)})
		case "named_imports":
			hasClause = true
			f.extractNamedImports(child, &imp)
		}
	}

	imp.IsSideEffect = !hasClause
	return imp, true
}

func (f *Facade) namespaceAlias(namespaceImport *sitter.Node) string {
	for i := 0; i < int(namespaceImport.ChildCount()); i++ {
		if c := namespaceImport.Child(i); c != nil && c.Type() == "identifier" {
			return c.Content(f.source)
		}
	}
	return ""
}

func (f *Facade) extractImportClause(clause *sitter.Node, imp *domain.Import) {
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			imp.ImportedNames = append(imp.ImportedNames, domain.ImportedName{Name: "default", Alias: child.Content(f.source)})
		case "namespace_import":
			imp.ImportedNames = append(imp.ImportedNames, domain.ImportedName{Name: "*", Alias: f.namespaceAlias(child)})
		case "named_imports":
			f.extractNamedImports(child, imp)
		}
	}
}

func (f *Facade) extractNamedImports(namedImports *sitter.Node, imp *domain.Import) {
	for i := 0; i < int(namedImports.ChildCount()); i++ {
		spec := namedImports.Child(i)
		if spec == nil || spec.Type() != "import_specifier" {
			continue
		}
		imp.ImportedNames = append(imp.ImportedNames, f.buildImportSpecifier(spec))
	}
}

func (f *Facade) buildImportSpecifier(spec *sitter.Node) domain.ImportedName {
	isType := hasChildOfType(spec, "type")
	var identifiers []*sitter.Node
	for i := 0; i < int(spec.ChildCount()); i++ {
		if c := spec.Child(i); c != nil && (c.Type() == "identifier" || c.Type() == "type_identifier") {
			identifiers = append(identifiers, c)
		}
	}
	switch len(identifiers) {
	case 1:
		name := identifiers[0].Content(f.source)
		return domain.ImportedName{Name: name, IsType: isType}
	case 2:
		return domain.ImportedName{
			Name:   identifiers[0].Content(f.source),
			Alias:  identifiers[1].Content(f.source),
			IsType: isType,
		}
	default:
		return domain.ImportedName{}
	}
}

// visitExportStatement handles every `export ...` form: named declarations,
// default exports, re-exports (with or without a brace clause), and `export *`.
func (f *Facade) visitExportStatement(stmt *sitter.Node, module *domain.ParsedModule) {
	isTypeOnly := hasChildOfType(stmt, "type")
	isDefault := hasChildOfType(stmt, "default")
	isWildcard := hasChildOfType(stmt, "*")
	sourceNode := childByField(stmt, "source")

	switch {
	case sourceNode != nil && isWildcard:
		f.buildWildcardReExport(stmt, sourceNode, isTypeOnly, module)
		return
	case sourceNode != nil:
		f.buildNamedReExport(stmt, sourceNode, isTypeOnly, module)
		return
	}

	if isDefault {
		f.buildDefaultExport(stmt, module)
		return
	}

	if clause := childByField(stmt, "declaration"); clause != nil {
		f.extractDeclarationExports(clause, isTypeOnly, module)
		return
	}

	// Bare `export { a, b }` with no source and no declaration field.
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if child := stmt.Child(i); child != nil && child.Type() == "export_clause" {
			f.extractLocalExportClause(child, isTypeOnly, module)
		}
	}
}

func (f *Facade) buildWildcardReExport(stmt, sourceNode *sitter.Node, isTypeOnly bool, module *domain.ParsedModule) {
	exported := domain.ExportedName{Name: "*"}
	// `export * as ns from "mod"` carries a namespace identifier child.
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if c := stmt.Child(i); c != nil && c.Type() == "identifier" {
			exported.Alias = c.Content(f.source)
		}
	}
	module.ReExports = append(module.ReExports, domain.ReExport{
		Specifier:     stringLiteralValue(sourceNode, f.source),
		ExportedNames: []domain.ExportedName{exported},
		IsTypeOnly:    isTypeOnly,
		Location:      f.location(stmt),
	})
}

func (f *Facade) buildNamedReExport(stmt, sourceNode *sitter.Node, isTypeOnly bool, module *domain.ParsedModule) {
	reExport := domain.ReExport{
		Specifier:  stringLiteralValue(sourceNode, f.source),
		IsTypeOnly: isTypeOnly,
		Location:   f.location(stmt),
	}
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if child := stmt.Child(i); child != nil && child.Type() == "export_clause" {
			reExport.ExportedNames = append(reExport.ExportedNames, f.exportClauseNames(child)...)
		}
	}
	module.ReExports = append(module.ReExports, reExport)
}

func (f *Facade) extractLocalExportClause(clause *sitter.Node, isTypeOnly bool, module *domain.ParsedModule) {
	for _, name := range f.exportClauseNames(clause) {
		exportName := name.Name
		if name.Alias != "" {
			exportName = name.Alias
		}
		module.Exports = append(module.Exports, domain.Export{
			Name:     exportName,
			Kind:     domain.ExportKindVariable,
			IsType:   isTypeOnly || name.IsType,
			Location: f.location(clause),
		})
	}
}

func (f *Facade) exportClauseNames(clause *sitter.Node) []domain.ExportedName {
	var names []domain.ExportedName
	for i := 0; i < int(clause.ChildCount()); i++ {
		spec := clause.Child(i)
		if spec == nil || spec.Type() != "export_specifier" {
			continue
		}
		isType := hasChildOfType(spec, "type")
		var identifiers []*sitter.Node
		for j := 0; j < int(spec.ChildCount()); j++ {
			if c := spec.Child(j); c != nil && (c.Type() == "identifier" || c.Type() == "type_identifier") {
				identifiers = append(identifiers, c)
			}
		}
		switch len(identifiers) {
		case 1:
			names = append(names, domain.ExportedName{Name: identifiers[0].Content(f.source), IsType: isType})
		case 2:
			names = append(names, domain.ExportedName{
				Name:   identifiers[0].Content(f.source),
				Alias:  identifiers[1].Content(f.source),
				IsType: isType,
			})
		}
	}
	return names
}

func (f *Facade) buildDefaultExport(stmt *sitter.Node, module *domain.ParsedModule) {
	value := childByField(stmt, "value")
	if value == nil {
		value = childByField(stmt, "declaration")
	}

	name := "default"
	kind := domain.ExportKindDefault
	var classMembers []domain.ClassMember
	if value != nil {
		switch value.Type() {
		case "function_declaration", "generator_function_declaration":
			kind = domain.ExportKindFunction
		case "class_declaration":
			kind = domain.ExportKindClass
			classMembers = f.classMembers(value)
		}
		if kind != domain.ExportKindDefault {
			if nameNode := childByField(value, "name"); nameNode != nil {
				name = nameNode.Content(f.source)
			}
		}
	}

	module.Exports = append(module.Exports, domain.Export{
		Name:         name,
		Kind:         kind,
		IsDefault:    true,
		Location:     f.location(stmt),
		ClassMembers: classMembers,
	})
}

// extractDeclarationExports handles `export <declaration>`, recording one
// Export per bound identifier (multiple for `export const a = 1, b = 2`).
func (f *Facade) extractDeclarationExports(decl *sitter.Node, isTypeOnly bool, module *domain.ParsedModule) {
	switch decl.Type() {
	case "function_declaration", "generator_function_declaration":
		f.appendNamedDeclExport(decl, module, domain.ExportKindFunction, isTypeOnly)
	case "class_declaration", "abstract_class_declaration":
		f.appendClassExport(decl, module, isTypeOnly)
	case "interface_declaration":
		f.appendNamedDeclExport(decl, module, domain.ExportKindInterface, true)
	case "type_alias_declaration":
		f.appendNamedDeclExport(decl, module, domain.ExportKindType, true)
	case "enum_declaration":
		f.appendEnumExport(decl, module)
	case "internal_module", "module", "namespace_declaration":
		f.appendNamedDeclExport(decl, module, domain.ExportKindNamespace, isTypeOnly)
	case "variable_declaration", "lexical_declaration":
		f.appendVariableDeclExports(decl, module, isTypeOnly)
	}
}

func (f *Facade) appendNamedDeclExport(decl *sitter.Node, module *domain.ParsedModule, kind domain.ExportKind, isType bool) {
	nameNode := childByField(decl, "name")
	if nameNode == nil {
		return
	}
	module.Exports = append(module.Exports, domain.Export{
		Name:     nameNode.Content(f.source),
		Kind:     kind,
		IsType:   isType || kind.IsTypeKind(),
		Location: f.location(decl),
	})
}

// appendEnumExport records an `enum` declaration's export along with every
// member name it declares, so the analyzer can later check each member's
// qualified access independently of whether the enum itself is used.
func (f *Facade) appendEnumExport(decl *sitter.Node, module *domain.ParsedModule) {
	nameNode := childByField(decl, "name")
	if nameNode == nil {
		return
	}
	export := domain.Export{
		Name:     nameNode.Content(f.source),
		Kind:     domain.ExportKindEnum,
		IsType:   true,
		Location: f.location(decl),
	}

	if body := childByField(decl, "body"); body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			member := body.Child(i)
			if member == nil {
				continue
			}
			switch member.Type() {
			case "property_identifier":
				export.EnumMembers = append(export.EnumMembers, domain.EnumMember{
					Name:     member.Content(f.source),
					Location: f.location(member),
				})
			case "enum_assignment":
				if memberName := childByField(member, "name"); memberName != nil {
					export.EnumMembers = append(export.EnumMembers, domain.EnumMember{
						Name:     memberName.Content(f.source),
						Location: f.location(memberName),
					})
				}
			}
		}
	}

	module.Exports = append(module.Exports, export)
}

// appendClassExport records a `class` declaration's export along with its
// member list, for the same per-member usage check as appendEnumExport.
func (f *Facade) appendClassExport(decl *sitter.Node, module *domain.ParsedModule, isTypeOnly bool) {
	nameNode := childByField(decl, "name")
	if nameNode == nil {
		return
	}
	module.Exports = append(module.Exports, domain.Export{
		Name:         nameNode.Content(f.source),
		Kind:         domain.ExportKindClass,
		IsType:       isTypeOnly,
		Location:     f.location(decl),
		ClassMembers: f.classMembers(decl),
	})
}

// classMembers walks a class_declaration's body, recording one ClassMember
// per method, accessor, or field — skipping the constructor, which is never
// a candidate for "unused".
func (f *Facade) classMembers(decl *sitter.Node) []domain.ClassMember {
	body := childByField(decl, "body")
	if body == nil {
		return nil
	}

	var members []domain.ClassMember
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}

		switch member.Type() {
		case "method_definition":
			nameNode := childByField(member, "name")
			if nameNode == nil || nameNode.Content(f.source) == "constructor" {
				continue
			}
			kind := domain.ClassMemberMethod
			switch {
			case hasChildOfType(member, "get"):
				kind = domain.ClassMemberGetter
			case hasChildOfType(member, "set"):
				kind = domain.ClassMemberSetter
			}
			members = append(members, domain.ClassMember{
				Name:     nameNode.Content(f.source),
				Kind:     kind,
				Location: f.location(member),
			})
		case "public_field_definition":
			nameNode := childByField(member, "name")
			if nameNode == nil {
				continue
			}
			members = append(members, domain.ClassMember{
				Name:     nameNode.Content(f.source),
				Kind:     domain.ClassMemberProperty,
				Location: f.location(member),
			})
		}
	}
	return members
}

func (f *Facade) appendVariableDeclExports(decl *sitter.Node, module *domain.ParsedModule, isTypeOnly bool) {
	kind := domain.ExportKindVariable
	if k := childByField(decl, "kind"); k != nil {
		switch k.Content(f.source) {
		case "const":
			kind = domain.ExportKindConst
		case "let":
			kind = domain.ExportKindLet
		}
	} else if hasChildOfType(decl, "const") {
		kind = domain.ExportKindConst
	} else if hasChildOfType(decl, "let") {
		kind = domain.ExportKindLet
	}

	for i := 0; i < int(decl.ChildCount()); i++ {
		declarator := decl.Child(i)
		if declarator == nil || declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := childByField(declarator, "name")
		if nameNode == nil {
			continue
		}
		for _, id := range bindingIdentifiers(nameNode) {
			module.Exports = append(module.Exports, domain.Export{
				Name:     id.Content(f.source),
				Kind:     kind,
				IsType:   isTypeOnly,
				Location: f.location(declarator),
			})
		}
	}
}

// bindingIdentifiers flattens a binding pattern (plain identifier, object
// pattern, or array pattern) into its bound identifiers. Destructured
// defaults and rest elements are walked recursively.
func bindingIdentifiers(pattern *sitter.Node) []*sitter.Node {
	switch pattern.Type() {
	case "identifier":
		return []*sitter.Node{pattern}
	case "object_pattern":
		var out []*sitter.Node
		for i := 0; i < int(pattern.ChildCount()); i++ {
			child := pattern.Child(i)
			if child == nil {
				continue
			}
			switch child.Type() {
			case "shorthand_property_identifier_pattern":
				out = append(out, child)
			case "pair_pattern":
				if value := childByField(child, "value"); value != nil {
					out = append(out, bindingIdentifiers(value)...)
				}
			case "rest_pattern":
				out = append(out, bindingIdentifiers(child.Child(int(child.ChildCount())-1))...)
			}
		}
		return out
	case "array_pattern":
		var out []*sitter.Node
		for i := 0; i < int(pattern.ChildCount()); i++ {
			child := pattern.Child(i)
			if child == nil {
				continue
			}
			if child.Type() == "identifier" {
				out = append(out, child)
			}
		}
		return out
	case "assignment_pattern":
		if left := childByField(pattern, "left"); left != nil {
			return bindingIdentifiers(left)
		}
	}
	return nil
}

// collectDynamicImports scans the whole tree for `import(...)` call
// expressions, which can appear anywhere a statement or expression can.
func (f *Facade) collectDynamicImports(n *sitter.Node, module *domain.ParsedModule) {
	if n.Type() == "call_expression" {
		if callee := childByField(n, "function"); callee != nil && callee.Type() == "import" {
			if args := childByField(n, "arguments"); args != nil && args.ChildCount() > 0 {
				if first := args.Child(1); first != nil && first.Type() == "string" {
					module.Imports = append(module.Imports, domain.Import{
						Specifier:     stringLiteralValue(first, f.source),
						ImportedNames: []domain.ImportedName{{Name: "*"}},
						IsDynamic:     true,
						Location:      f.location(n),
					})
				}
			}
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil {
			f.collectDynamicImports(child, module)
		}
	}
}
