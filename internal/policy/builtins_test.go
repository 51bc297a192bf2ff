package policy

import "testing"

func TestIsBuiltinModule(t *testing.T) {
	cases := map[string]bool{
		"fs":              true,
		"node:fs":         true,
		"node:fs/promises": true,
		"path":            true,
		"lodash":          false,
		"@scope/pkg":      false,
		"":                false,
	}

	for specifier, want := range cases {
		if got := IsBuiltinModule(specifier); got != want {
			t.Errorf("IsBuiltinModule(%q) = %v, want %v", specifier, got, want)
		}
	}
}
