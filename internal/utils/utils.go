// Package utils contains general helper functions used across the annotree tool.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// NormalizeSeparators converts backslash separators into forward slashes.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", pathSegmentSeparator)
}

// ShouldIgnoreByPath reports whether a repository-relative path matches any of
// the exclusion patterns. The candidate path and every pattern are converted to
// forward-slash form before evaluation and split into segments.
//
// A pattern ending with a trailing slash names a directory anchored at the
// repository root and matches every path below it. A single-segment pattern
// such as "*.log" is matched against the last path segment only, unless a
// leading slash anchors it at the root ("/content.html"). Any other pattern
// matches a path with the same number of segments where each segment
// satisfies filepath.Match.
func ShouldIgnoreByPath(relativePath string, ignorePatterns []string) bool {
	pathSegments := strings.Split(NormalizeSeparators(relativePath), pathSegmentSeparator)
	lastSegment := pathSegments[len(pathSegments)-1]

	for _, patternValue := range ignorePatterns {
		normalizedPattern := NormalizeSeparators(strings.TrimSpace(patternValue))
		if normalizedPattern == "" {
			continue
		}

		isAnchoredPattern := strings.HasPrefix(normalizedPattern, pathSegmentSeparator)
		isDirectoryPattern := strings.HasSuffix(normalizedPattern, pathSegmentSeparator)
		trimmedPattern := strings.Trim(normalizedPattern, pathSegmentSeparator)
		if trimmedPattern == "" {
			continue
		}
		patternSegments := strings.Split(trimmedPattern, pathSegmentSeparator)

		if isDirectoryPattern {
			if len(pathSegments) > len(patternSegments) && segmentsMatch(pathSegments[:len(patternSegments)], patternSegments) {
				return true
			}
			continue
		}

		if len(patternSegments) == 1 && !isAnchoredPattern {
			isMatched, matchError := filepath.Match(patternSegments[0], lastSegment)
			if matchError == nil && isMatched {
				return true
			}
			continue
		}

		if len(pathSegments) == len(patternSegments) && segmentsMatch(pathSegments, patternSegments) {
			return true
		}
	}

	return false
}

// segmentsMatch reports whether each pattern segment matches the corresponding
// path segment using filepath.Match semantics.
func segmentsMatch(pathSegments, patternSegments []string) bool {
	for segmentIndex, patternSegment := range patternSegments {
		isMatched, matchError := filepath.Match(patternSegment, pathSegments[segmentIndex])
		if matchError != nil || !isMatched {
			return false
		}
	}
	return true
}
