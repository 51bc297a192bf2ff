package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// MemberAccessScan is the result of walking one file's CST for every
// dotted/bracketed property access on a plain identifier (or `this`), grounding the
// conservative enum/class member usage check: a qualified access
// ("EnumName.Member") is recorded precisely; an access via a non-literal
// computed index ("obj[expr]") is recorded only as "some computed access
// happened on this object", since the accessed property name cannot be
// known statically.
type MemberAccessScan struct {
	// Properties maps an object identifier's text to the set of property
	// names it was seen accessed with via `.prop` or `obj["prop"]`.
	Properties map[string]map[string]struct{}
	// Computed is the set of object identifiers seen with at least one
	// `obj[expr]` access where expr is not a string literal.
	Computed map[string]struct{}
}

func newMemberAccessScan() *MemberAccessScan {
	return &MemberAccessScan{
		Properties: make(map[string]map[string]struct{}),
		Computed:   make(map[string]struct{}),
	}
}

func (s *MemberAccessScan) recordProperty(object, property string) {
	set, ok := s.Properties[object]
	if !ok {
		set = make(map[string]struct{})
		s.Properties[object] = set
	}
	set[property] = struct{}{}
}

// HasProperty reports whether object was ever accessed with the given
// property name, directly or via a string-literal computed index.
func (s *MemberAccessScan) HasProperty(object, property string) bool {
	set, ok := s.Properties[object]
	if !ok {
		return false
	}
	_, found := set[property]
	return found
}

// HasAnyProperty reports whether property was accessed on any object at
// all, regardless of which one — the conservative fallback for members
// whose receiver (an instance, not the declaring class) cannot be bound
// without full type-aware usage tracking.
func (s *MemberAccessScan) HasAnyProperty(property string) bool {
	for _, set := range s.Properties {
		if _, ok := set[property]; ok {
			return true
		}
	}
	return false
}

// IsComputedOn reports whether object was ever indexed with a non-literal
// computed expression, meaning any of its properties must be conservatively
// treated as possibly used.
func (s *MemberAccessScan) IsComputedOn(object string) bool {
	_, ok := s.Computed[object]
	return ok
}

// ScanMemberAccesses parses source and collects every property access whose
// object is a plain identifier, or `this` for a dotted access (not a call
// result, nested access, etc. —
// those are out of scope for this conservative, syntax-level check).
func ScanMemberAccesses(filename string, source []byte) (*MemberAccessScan, error) {
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

	scan := newMemberAccessScan()
	walkMemberAccesses(root, source, scan)
	return scan, nil
}

func walkMemberAccesses(node *sitter.Node, source []byte, scan *MemberAccessScan) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "member_expression":
		object := childByField(node, "object")
		property := childByField(node, "property")
		if object != nil && property != nil && (object.Type() == "identifier" || object.Type() == "this") {
			scan.recordProperty(object.Content(source), property.Content(source))
		}
	case "subscript_expression":
		object := childByField(node, "object")
		index := childByField(node, "index")
		if object != nil && index != nil && object.Type() == "identifier" {
			objectName := object.Content(source)
			if index.Type() == "string" {
				scan.recordProperty(objectName, unquoteStringLiteral(index.Content(source)))
			} else {
				scan.Computed[objectName] = struct{}{}
			}
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkMemberAccesses(node.Child(i), source, scan)
	}
}

func unquoteStringLiteral(raw string) string {
	if len(raw) >= 2 {
		quote := raw[0]
		if (quote == '"' || quote == '\'' || quote == '`') && raw[len(raw)-1] == quote {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}
