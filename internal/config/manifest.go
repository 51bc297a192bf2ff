package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scantree/scantree/domain"
)

// rawPackageJSON mirrors package.json's shape for the fields the analyzer
// cares about. Bin is read as json.RawMessage because npm allows it to be
// either a single string (binary named after the package) or an object
// mapping each binary name to its script path.
type rawPackageJSON struct {
	Name                 string            `json:"name"`
	Main                 string            `json:"main"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	Scripts              map[string]string `json:"scripts"`
	Bin                  json.RawMessage   `json:"bin"`
}

// LoadPackageJSON reads root/package.json, if present. A missing file is not
// an error — projects without a manifest simply skip dependency diagnostics.
func LoadPackageJSON(root string) (*domain.PackageJSON, error) {
	path := filepath.Join(root, "package.json")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read package.json: %w", err)
	}

	var raw rawPackageJSON
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse package.json: %w", err)
	}

	bin, err := parseBinField(raw.Bin, raw.Name)
	if err != nil {
		return nil, fmt.Errorf("parse package.json bin field: %w", err)
	}

	return &domain.PackageJSON{
		Name:                 raw.Name,
		Main:                 raw.Main,
		Dependencies:         raw.Dependencies,
		DevDependencies:      raw.DevDependencies,
		PeerDependencies:     raw.PeerDependencies,
		OptionalDependencies: raw.OptionalDependencies,
		Scripts:              raw.Scripts,
		Bin:                  bin,
	}, nil
}

func parseBinField(raw json.RawMessage, packageName string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var asString string
	if json.Unmarshal(raw, &asString) == nil {
		name := packageName
		if idx := strings.LastIndex(name, "/"); idx != -1 {
			name = name[idx+1:]
		}
		return map[string]string{name: asString}, nil
	}

	var asMap map[string]string
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, err
	}
	return asMap, nil
}

// tsConfig mirrors the subset of tsconfig.json/jsconfig.json this project
// resolves imports against.
type tsConfig struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
	Extends string `json:"extends"`
}

// LoadTSConfig finds and parses tsconfig.json or jsconfig.json under root,
// following a relative "extends" (recursively, through a whole chain of
// relative extends) and returns the effective baseUrl/paths pair. Both are zero-valued
// if no config file exists.
func LoadTSConfig(root string) (baseURL string, paths map[string][]string, err error) {
	for _, name := range []string{"tsconfig.json", "jsconfig.json"} {
		path := filepath.Join(root, name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		return loadTSConfigFile(path)
	}
	return "", nil, nil
}

func loadTSConfigFile(path string) (string, map[string][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg tsConfig
	if err := json.Unmarshal(stripJSONComments(content), &cfg); err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}

	baseURL, paths := cfg.CompilerOptions.BaseURL, cfg.CompilerOptions.Paths

	if cfg.Extends != "" && (strings.HasPrefix(cfg.Extends, "./") || strings.HasPrefix(cfg.Extends, "../")) {
		parentPath := filepath.Join(filepath.Dir(path), cfg.Extends)
		if filepath.Ext(parentPath) != ".json" {
			parentPath += ".json"
		}
		if _, statErr := os.Stat(parentPath); statErr == nil {
			parentBaseURL, parentPaths, parentErr := loadTSConfigFile(parentPath)
			if parentErr == nil {
				if baseURL == "" {
					baseURL = parentBaseURL
				}
				if len(paths) == 0 {
					paths = parentPaths
				}
			}
		}
	}

	return baseURL, paths, nil
}

// stripJSONComments removes // and /* */ comments from JSONC content
// outside of string literals, so tsconfig.json (which commonly carries
// comments) parses as plain JSON.
func stripJSONComments(input []byte) []byte {
	var out []byte
	inString := false
	escapeNext := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if escapeNext {
			out = append(out, c)
			escapeNext = false
			continue
		}
		if c == '\\' && inString {
			out = append(out, c)
			escapeNext = true
			continue
		}
		if c == '"' {
			inString = !inString
			out = append(out, c)
			continue
		}
		if inString {
			out = append(out, c)
			continue
		}
		if c == '/' && i+1 < len(input) {
			if input[i+1] == '/' {
				for i < len(input) && input[i] != '\n' {
					i++
				}
				i--
				continue
			}
			if input[i+1] == '*' {
				i += 2
				for i+1 < len(input) && !(input[i] == '*' && input[i+1] == '/') {
					i++
				}
				i++
				continue
			}
		}
		out = append(out, c)
	}

	return out
}
