package policy

import "strings"

// implicitRuntimeDependencies are packages a project can depend on at
// runtime without ever importing them by name — framework conventions pull
// them in implicitly. Listing one in the manifest is never reported unused.
var implicitRuntimeDependencies = map[string]struct{}{
	"typescript":          {},
	"@types/node":         {},
	"tslib":               {},
	"core-js":             {},
	"regenerator-runtime": {},
}

// IsImplicitDependency reports whether name is conventionally depended upon
// without a matching import statement anywhere in the project.
func IsImplicitDependency(name string) bool {
	_, ok := implicitRuntimeDependencies[name]
	return ok
}

// devToolNames and devToolPrefixes identify manifest dependencies that are
// invoked only through build scripts or CI, never imported from source, and
// so should not be flagged unused by the same rule that catches an
// accidentally-unimported runtime dependency.
var devToolNames = map[string]struct{}{
	"eslint": {}, "prettier": {}, "husky": {}, "lint-staged": {}, "nodemon": {},
	"rimraf": {}, "cross-env": {}, "npm-run-all": {}, "concurrently": {},
	"commitlint": {}, "standard-version": {}, "semantic-release": {},
}

var devToolPrefixes = []string{
	"eslint-", "@typescript-eslint/", "babel-", "@babel/", "webpack-", "rollup-",
	"vite-", "jest-", "@commitlint/",
}

// IsDevToolDependency reports whether name matches a known build/lint/CI
// tool, exactly or by prefix.
func IsDevToolDependency(name string) bool {
	if _, ok := devToolNames[name]; ok {
		return true
	}
	for _, prefix := range devToolPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// alwaysAvailableCommands are package-manager front-ends and POSIX shell
// builtins a script commonly invokes that are never themselves a manifest
// dependency, so an unlisted-binary check must not flag them.
var alwaysAvailableCommands = map[string]struct{}{
	"node": {}, "npm": {}, "npx": {}, "yarn": {}, "pnpm": {}, "corepack": {},
	"sh": {}, "bash": {}, "echo": {}, "cd": {}, "rm": {}, "cp": {}, "mv": {},
	"mkdir": {}, "test": {}, "true": {}, "false": {}, "exit": {}, "set": {},
}

// IsAlwaysAvailableCommand reports whether name is a package-manager
// front-end or shell builtin, never a binary a manifest dependency provides.
func IsAlwaysAvailableCommand(name string) bool {
	_, ok := alwaysAvailableCommands[name]
	return ok
}
