package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scantree/scantree/domain"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements domain.OutputFormatter for every
// domain.OutputFormat scantree supports.
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter implementation.
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format renders result as a string in the given format.
func (f *OutputFormatterImpl) Format(result *domain.AnalysisResult, format domain.OutputFormat) (string, error) {
	var buf []byte
	var err error

	switch format {
	case domain.OutputFormatJSON:
		buf, err = json.MarshalIndent(result, "", "  ")
	case domain.OutputFormatYAML:
		buf, err = yaml.Marshal(result)
	case domain.OutputFormatCSV:
		return formatCSV(result)
	case domain.OutputFormatText, "":
		return formatText(result), nil
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}

	if err != nil {
		return "", domain.NewOutputError("failed to marshal result", err)
	}
	return string(buf), nil
}

// Write renders result in the given format directly to writer.
func (f *OutputFormatterImpl) Write(result *domain.AnalysisResult, format domain.OutputFormat, writer io.Writer) error {
	rendered, err := f.Format(result, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(writer, rendered); err != nil {
		return domain.NewOutputError("failed to write result", err)
	}
	return nil
}

func formatText(result *domain.AnalysisResult) string {
	c := result.Counters
	if c.Total() == 0 {
		return "No unused code or dependency issues found.\n"
	}

	var out string
	out += fmt.Sprintf("Found %d issue(s) in %d analyzed file(s):\n\n", c.Total(), result.Stats.FilesAnalyzed)

	if len(result.Issues.UnusedFiles) > 0 {
		out += fmt.Sprintf("Unused files (%d):\n", len(result.Issues.UnusedFiles))
		for _, f := range result.Issues.UnusedFiles {
			out += fmt.Sprintf("  %s\n", f.Path)
		}
		out += "\n"
	}
	if len(result.Issues.UnusedExports) > 0 {
		out += fmt.Sprintf("Unused exports (%d):\n", len(result.Issues.UnusedExports))
		for _, e := range result.Issues.UnusedExports {
			out += fmt.Sprintf("  %s:%d:%d  %s (%s)\n", e.Path, e.Location.Line, e.Location.Col, e.Name, e.Kind)
		}
		out += "\n"
	}
	if len(result.Issues.UnusedTypes) > 0 {
		out += fmt.Sprintf("Unused types (%d):\n", len(result.Issues.UnusedTypes))
		for _, e := range result.Issues.UnusedTypes {
			out += fmt.Sprintf("  %s:%d:%d  %s (%s)\n", e.Path, e.Location.Line, e.Location.Col, e.Name, e.Kind)
		}
		out += "\n"
	}
	if len(result.Issues.UnusedDependencies) > 0 {
		out += fmt.Sprintf("Unused dependencies (%d):\n", len(result.Issues.UnusedDependencies))
		for _, d := range result.Issues.UnusedDependencies {
			label := "runtime"
			if d.DevOnly {
				label = "dev"
			}
			out += fmt.Sprintf("  %s (%s)\n", d.Name, label)
		}
		out += "\n"
	}
	if len(result.Issues.UnlistedDependencies) > 0 {
		out += fmt.Sprintf("Unlisted dependencies (%d):\n", len(result.Issues.UnlistedDependencies))
		for _, d := range result.Issues.UnlistedDependencies {
			out += fmt.Sprintf("  %s  used in: %v\n", d.Name, d.UsedIn)
		}
		out += "\n"
	}
	if len(result.Issues.UnresolvedImports) > 0 {
		out += fmt.Sprintf("Unresolved imports (%d):\n", len(result.Issues.UnresolvedImports))
		for _, u := range result.Issues.UnresolvedImports {
			out += fmt.Sprintf("  %s:%d:%d  %s\n", u.Path, u.Location.Line, u.Location.Col, u.Specifier)
		}
		out += "\n"
	}
	if len(result.Issues.DuplicateExports) > 0 {
		out += fmt.Sprintf("Duplicate exports (%d):\n", len(result.Issues.DuplicateExports))
		for _, d := range result.Issues.DuplicateExports {
			out += fmt.Sprintf("  %s declared in %d files\n", d.Name, len(d.Locations))
		}
		out += "\n"
	}
	if len(result.Issues.UnusedEnumMembers) > 0 {
		out += fmt.Sprintf("Unused enum members (%d):\n", len(result.Issues.UnusedEnumMembers))
		for _, m := range result.Issues.UnusedEnumMembers {
			out += fmt.Sprintf("  %s:%d:%d  %s.%s\n", m.Path, m.Line, m.Col, m.EnumName, m.MemberName)
		}
		out += "\n"
	}
	if len(result.Issues.UnusedClassMembers) > 0 {
		out += fmt.Sprintf("Unused class members (%d):\n", len(result.Issues.UnusedClassMembers))
		for _, m := range result.Issues.UnusedClassMembers {
			out += fmt.Sprintf("  %s:%d:%d  %s.%s (%s)\n", m.Path, m.Line, m.Col, m.ClassName, m.MemberName, m.Kind)
		}
		out += "\n"
	}
	if len(result.Issues.UnlistedBinaries) > 0 {
		out += fmt.Sprintf("Unlisted binaries (%d):\n", len(result.Issues.UnlistedBinaries))
		for _, b := range result.Issues.UnlistedBinaries {
			out += fmt.Sprintf("  %s  used in: %v\n", b.Name, b.UsedIn)
		}
		out += "\n"
	}

	return out
}

// formatCSV renders every diagnostic category as one flat table: category,
// path, name, line, col. Categories without a natural line/col (dependency
// and binary diagnostics) leave those columns blank.
func formatCSV(result *domain.AnalysisResult) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"category", "path", "name", "line", "col"}); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	write := func(record []string) error {
		return w.Write(record)
	}

	for _, f := range result.Issues.UnusedFiles {
		if err := write([]string{"unused_file", f.Path, "", "", ""}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, e := range result.Issues.UnusedExports {
		if err := write([]string{"unused_export", e.Path, e.Name, itoa(e.Location.Line), itoa(e.Location.Col)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, e := range result.Issues.UnusedTypes {
		if err := write([]string{"unused_type", e.Path, e.Name, itoa(e.Location.Line), itoa(e.Location.Col)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, d := range result.Issues.UnusedDependencies {
		if err := write([]string{"unused_dependency", "", d.Name, "", ""}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, d := range result.Issues.UnlistedDependencies {
		if err := write([]string{"unlisted_dependency", "", d.Name, "", ""}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, u := range result.Issues.UnresolvedImports {
		if err := write([]string{"unresolved_import", u.Path, u.Specifier, itoa(u.Location.Line), itoa(u.Location.Col)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, d := range result.Issues.DuplicateExports {
		if err := write([]string{"duplicate_export", d.Path, d.Name, "", ""}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, m := range result.Issues.UnusedEnumMembers {
		name := m.EnumName + "." + m.MemberName
		if err := write([]string{"unused_enum_member", m.Path, name, itoa(m.Line), itoa(m.Col)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, m := range result.Issues.UnusedClassMembers {
		name := m.ClassName + "." + m.MemberName
		if err := write([]string{"unused_class_member", m.Path, name, itoa(m.Line), itoa(m.Col)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}
	for _, b := range result.Issues.UnlistedBinaries {
		if err := write([]string{"unlisted_binary", "", b.Name, "", ""}); err != nil {
			return "", domain.NewOutputError("failed to write CSV row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV output", err)
	}
	return sb.String(), nil
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
