package usecase

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// nativeFileSuffixes lists file name suffixes owned by the native toolchains.
// Matching is case sensitive.
var nativeFileSuffixes = []string{
	"package.json",

	// Android
	".java",
	".xml",
	".gradle",
	".properties",
	".pro",
	".kt",

	// iOS
	".h",
	".m",
	".mm",
	".swift",
	".podspec",
	"Podfile",
	"Podfile.lock",
	".pbxproj",

	// C/C++
	".c",
	".cpp",
	"CMakeLists.txt",
}

// IsNativeFile reports whether path belongs to the Android, iOS or C/C++ build
func IsNativeFile(path string) bool {
	for _, suffix := range nativeFileSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// FilterNativeFiles returns files that are native by suffix or match one of the
// extra doublestar patterns. Order of files is kept.
func FilterNativeFiles(files []string, extraPatterns []string) []string {
	native := []string{}
	for _, file := range files {
		if IsNativeFile(file) || matchesAnyPattern(extraPatterns, file) {
			native = append(native, file)
		}
	}
	return native
}

func matchesAnyPattern(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return false
	}

	norm := normalizePath(path)
	for _, pattern := range patterns {
		pattern = normalizePath(pattern)
		if pattern == "" {
			continue
		}
		matched, err := doublestar.Match(pattern, norm)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	norm := filepath.ToSlash(strings.TrimSpace(p))
	for strings.HasPrefix(norm, "./") {
		norm = strings.TrimPrefix(norm, "./")
	}
	return strings.TrimLeft(norm, "/")
}

// ValidatePatterns returns the first pattern doublestar cannot parse
func ValidatePatterns(patterns []string) (string, bool) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(normalizePath(pattern)) {
			return pattern, false
		}
	}
	return "", true
}
