package analyzer

import (
	"os"
	"sort"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/parser"
)

// FindMemberUsageDiagnostics scans every reachable file's property accesses
// and reports enum/class members that are never observed used. Files that
// fail to read or parse at this stage are silently skipped — they already
// produced a ParseFailure during the graph build — rather than aborting.
func FindMemberUsageDiagnostics(graph *domain.ModuleGraph) ([]domain.UnusedEnumMember, []domain.UnusedClassMember) {
	reachable := graph.GetReachableFiles()

	scan := parser.MemberAccessScan{}
	merged := &scan
	merged.Properties = make(map[string]map[string]struct{})
	merged.Computed = make(map[string]struct{})

	for path := range reachable {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileScan, err := parser.ScanMemberAccesses(path, content)
		if err != nil {
			continue
		}
		mergeMemberAccessScan(merged, fileScan)
	}

	var unusedEnumMembers []domain.UnusedEnumMember
	var unusedClassMembers []domain.UnusedClassMember

	for path, module := range graph.Modules {
		if _, ok := reachable[path]; !ok {
			continue
		}

		for _, export := range module.Exports {
			switch export.Kind {
			case domain.ExportKindEnum:
				for _, member := range export.EnumMembers {
					if merged.HasProperty(export.Name, member.Name) || merged.IsComputedOn(export.Name) {
						continue
					}
					unusedEnumMembers = append(unusedEnumMembers, domain.UnusedEnumMember{
						Path:       path,
						EnumName:   export.Name,
						MemberName: member.Name,
						Line:       member.Location.Line,
						Col:        member.Location.Col,
					})
				}
			case domain.ExportKindClass:
				for _, member := range export.ClassMembers {
					if merged.HasAnyProperty(member.Name) {
						continue
					}
					unusedClassMembers = append(unusedClassMembers, domain.UnusedClassMember{
						Path:       path,
						ClassName:  export.Name,
						MemberName: member.Name,
						Kind:       member.Kind,
						Line:       member.Location.Line,
						Col:        member.Location.Col,
					})
				}
			}
		}
	}

	sort.Slice(unusedEnumMembers, func(i, j int) bool {
		if unusedEnumMembers[i].Path != unusedEnumMembers[j].Path {
			return unusedEnumMembers[i].Path < unusedEnumMembers[j].Path
		}
		return unusedEnumMembers[i].Line < unusedEnumMembers[j].Line
	})
	sort.Slice(unusedClassMembers, func(i, j int) bool {
		if unusedClassMembers[i].Path != unusedClassMembers[j].Path {
			return unusedClassMembers[i].Path < unusedClassMembers[j].Path
		}
		return unusedClassMembers[i].Line < unusedClassMembers[j].Line
	})

	return unusedEnumMembers, unusedClassMembers
}

func mergeMemberAccessScan(dst, src *parser.MemberAccessScan) {
	for object, properties := range src.Properties {
		set, ok := dst.Properties[object]
		if !ok {
			set = make(map[string]struct{})
			dst.Properties[object] = set
		}
		for property := range properties {
			set[property] = struct{}{}
		}
	}
	for object := range src.Computed {
		dst.Computed[object] = struct{}{}
	}
}
