package lister

import "github.com/temirov/annotree/internal/utils"

// DefaultExclusions are the paths the generator leaves out unless told otherwise:
// hosting caches, TypeScript build info, logs, and rendered content dumps.
var DefaultExclusions = []string{
	".firebase/",
	"functions/tsconfig.build.tsbuildinfo",
	"packages/shared/tsconfig.tsbuildinfo",
	"*.log",
	"/content.html",
}

// Filter removes paths that match any of its exclusion patterns.
type Filter struct {
	Patterns []string
}

// NewFilter combines the default exclusions (when requested) with extra
// patterns, dropping duplicates.
func NewFilter(includeDefaults bool, extraPatterns []string) Filter {
	var patterns []string
	if includeDefaults {
		patterns = append(patterns, DefaultExclusions...)
	}
	patterns = append(patterns, extraPatterns...)
	return Filter{Patterns: utils.DeduplicatePatterns(patterns)}
}

// Apply returns the paths that survive the filter, preserving their order.
func (filter Filter) Apply(paths []string) []string {
	retainedPaths := make([]string, 0, len(paths))
	for _, path := range paths {
		if utils.ShouldIgnoreByPath(path, filter.Patterns) {
			continue
		}
		retainedPaths = append(retainedPaths, path)
	}
	return retainedPaths
}
