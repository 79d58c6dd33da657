// Package utils contains general helper functions used across the lstree tool.
package utils

import (
	"path/filepath"
	"strings"
)

// RelativePathOrSelf calculates the forward-slash relative path from root to
// fullPath. It returns the cleaned fullPath when the relative calculation
// fails and "." when fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath string, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, absoluteRootError := filepath.Abs(root)
	if absoluteRootError != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relativePathError := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relativePathError != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// NormalizePath lowercases a path and converts both separator styles to
// forward-slash form so comparisons are case-insensitive and
// separator-agnostic.
func NormalizePath(pathValue string) string {
	return strings.ToLower(strings.ReplaceAll(pathValue, `\`, "/"))
}

// DeduplicateStrings removes duplicate values from a slice while preserving
// order. The first occurrence of each unique value is kept.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, currentValue := range values {
		if _, exists := encounteredValues[currentValue]; !exists {
			encounteredValues[currentValue] = struct{}{}
			result = append(result, currentValue)
		}
	}
	return result
}
