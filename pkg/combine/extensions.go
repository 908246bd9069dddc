package combine

import (
	"path/filepath"
	"sort"
	"strings"
)

// allowedExtensions is the fixed set of extensions treated as text or source.
// Entries are lower case and include the leading dot. It is never mutated.
var allowedExtensions = map[string]struct{}{
	// source
	".c": {}, ".cc": {}, ".cpp": {}, ".cxx": {}, ".h": {}, ".hh": {}, ".hpp": {},
	".cs": {}, ".csx": {}, ".fs": {}, ".fsx": {}, ".vb": {},
	".go": {}, ".rs": {}, ".java": {}, ".kt": {}, ".kts": {}, ".scala": {}, ".groovy": {},
	".js": {}, ".jsx": {}, ".mjs": {}, ".cjs": {}, ".ts": {}, ".tsx": {}, ".vue": {}, ".svelte": {},
	".py": {}, ".rb": {}, ".php": {}, ".pl": {}, ".lua": {}, ".r": {}, ".swift": {}, ".m": {},
	".dart": {}, ".ex": {}, ".exs": {}, ".erl": {}, ".hs": {}, ".clj": {}, ".elm": {}, ".zig": {},
	".sh": {}, ".bash": {}, ".zsh": {}, ".fish": {}, ".ps1": {}, ".psm1": {}, ".bat": {}, ".cmd": {},
	".sql": {}, ".graphql": {}, ".gql": {}, ".proto": {},

	// markup and styles
	".html": {}, ".htm": {}, ".xhtml": {}, ".css": {}, ".scss": {}, ".sass": {}, ".less": {},
	".xml": {}, ".xaml": {}, ".axaml": {}, ".svg": {}, ".razor": {}, ".cshtml": {},

	// config and build
	".json": {}, ".jsonc": {}, ".yaml": {}, ".yml": {}, ".toml": {}, ".ini": {}, ".cfg": {},
	".conf": {}, ".config": {}, ".env": {}, ".properties": {}, ".editorconfig": {},
	".gitignore": {}, ".gitattributes": {}, ".dockerignore": {}, ".csproj": {}, ".sln": {},
	".props": {}, ".targets": {}, ".gradle": {}, ".cmake": {}, ".mk": {}, ".mod": {},

	// docs and data
	".txt": {}, ".md": {}, ".markdown": {}, ".rst": {}, ".adoc": {}, ".tex": {},
	".csv": {}, ".tsv": {}, ".log": {},
}

// AllowedExtensions returns the allow-list in ascending order.
func AllowedExtensions() []string {
	return sortedKeys(allowedExtensions)
}

// IsAllowed reports whether ext belongs to the allow-list. The comparison ignores case.
func IsAllowed(ext string) bool {
	_, ok := allowedExtensions[strings.ToLower(ext)]
	return ok
}

// ExtensionOf returns the lower-cased extension of the final element of path:
// everything from the last dot to the end. Names without an extension, or ending
// in a bare dot, yield "".
func ExtensionOf(path string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(path)))
	if ext == "." {
		return ""
	}
	return ext
}

// NormalizeExtensions turns user supplied extensions into a lookup set.
// Each argument may hold a comma separated list; entries are trimmed, lower-cased
// and given a leading dot, so "GO", ".go" and "go, md" are all accepted.
func NormalizeExtensions(exts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, ext := range exts {
		for _, part := range strings.Split(ext, ",") {
			cleaned := strings.ToLower(strings.TrimSpace(part))
			if cleaned == "" || cleaned == "." {
				continue
			}
			if !strings.HasPrefix(cleaned, ".") {
				cleaned = "." + cleaned
			}
			set[cleaned] = struct{}{}
		}
	}
	return set
}

// sortedKeys returns the keys of set in ascending byte order. The result is never nil.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
