// Package policy holds the fixed allowlists and matching rules the
// dead-code analyzer consults to classify a dependency or import as
// builtin, implicit, a dev-tool, or ignorable — the parts of the engine
// that are data, not algorithm.
package policy

import "strings"

// nodeBuiltins is the set of Node.js built-in module names. A specifier that
// names one of these (optionally under the explicit "node:" scheme) is never
// reported unlisted, since it never appears in a manifest's dependencies.
var nodeBuiltins = map[string]struct{}{
	"assert": {}, "async_hooks": {}, "buffer": {}, "child_process": {}, "cluster": {},
	"console": {}, "constants": {}, "crypto": {}, "dgram": {}, "diagnostics_channel": {},
	"dns": {}, "domain": {}, "events": {}, "fs": {}, "http": {}, "http2": {}, "https": {},
	"inspector": {}, "module": {}, "net": {}, "os": {}, "path": {}, "perf_hooks": {},
	"process": {}, "punycode": {}, "querystring": {}, "readline": {}, "repl": {},
	"stream": {}, "string_decoder": {}, "sys": {}, "timers": {}, "tls": {}, "trace_events": {},
	"tty": {}, "url": {}, "util": {}, "v8": {}, "vm": {}, "wasi": {}, "worker_threads": {}, "zlib": {},
}

// IsBuiltinModule reports whether specifier names a Node.js built-in,
// accepting both the bare form ("fs") and the explicit scheme ("node:fs").
// Subpath imports of a built-in (e.g. "node:fs/promises") also count.
func IsBuiltinModule(specifier string) bool {
	name := strings.TrimPrefix(specifier, "node:")
	if idx := strings.Index(name, "/"); idx != -1 {
		name = name[:idx]
	}
	_, ok := nodeBuiltins[name]
	return ok
}
