package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/policy"
)

// FindUnlistedBinaries reports a package.json `scripts` entry's invoked
// command whose name is not a package-manager/shell builtin and does not
// match any dependency declared anywhere in the manifest (the same
// assumption `find_unlisted_dependencies` makes: a binary's name usually
// matches the package that provides it, e.g. "jest" ships the `jest` CLI).
func FindUnlistedBinaries(cfg *domain.ResolvedConfig) []domain.UnlistedBinary {
	if cfg.PackageJSON == nil || len(cfg.PackageJSON.Scripts) == 0 {
		return nil
	}

	declared := manifestDependencyNames(cfg.PackageJSON, false)
	ignored := toSet(cfg.IgnoreBinaries)

	usedIn := make(map[string][]string)
	var order []string

	for scriptName, command := range cfg.PackageJSON.Scripts {
		for _, name := range invokedCommandNames(command) {
			if _, ok := declared[name]; ok {
				continue
			}
			if policy.IsAlwaysAvailableCommand(name) {
				continue
			}
			if _, ok := ignored[name]; ok {
				continue
			}
			if _, seen := usedIn[name]; !seen {
				order = append(order, name)
			}
			usedIn[name] = append(usedIn[name], "package.json#scripts."+scriptName)
		}
	}

	var unlisted []domain.UnlistedBinary
	for _, name := range order {
		sites := usedIn[name]
		sort.Strings(sites)
		unlisted = append(unlisted, domain.UnlistedBinary{Name: name, UsedIn: sites})
	}

	sort.Slice(unlisted, func(i, j int) bool { return unlisted[i].Name < unlisted[j].Name })
	return unlisted
}

var envAssignmentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// invokedCommandNames splits a scripts-field shell command on its sequencing
// operators and extracts the leading executable name of each segment,
// skipping leading environment-variable assignments and an "npx " prefix.
func invokedCommandNames(command string) []string {
	var names []string
	for _, segment := range splitShellSequence(command) {
		tokens := strings.Fields(segment)
		idx := 0
		for idx < len(tokens) && envAssignmentPattern.MatchString(tokens[idx]) {
			idx++
		}
		if idx >= len(tokens) {
			continue
		}
		name := tokens[idx]
		if name == "npx" && idx+1 < len(tokens) {
			name = tokens[idx+1]
		}
		name = strings.Trim(name, "\"'")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// splitShellSequence splits on &&, ||, ;, and | at the top level — good
// enough for the conventional single-line scripts-field commands this
// targets, not a full shell grammar.
func splitShellSequence(command string) []string {
	replacer := strings.NewReplacer("&&", "\x00", "||", "\x00", ";", "\x00", "|", "\x00")
	raw := replacer.Replace(command)
	parts := strings.Split(raw, "\x00")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
