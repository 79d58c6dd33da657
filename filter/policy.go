package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/lstree/internal/utils"
)

// Policy holds the four filter sets consulted during one traversal session.
// Registering any include-only directory spec or extension switches the
// corresponding dimension from exclude-list mode to include-list mode.
type Policy struct {
	excludedDirectories map[string]struct{}
	excludedExtensions  map[string]struct{}
	includedDirectories []string
	includedExtensions  map[string]struct{}
	includedPathIndex   []string
}

// NewPolicy constructs a Policy with empty filter sets.
func NewPolicy() *Policy {
	return &Policy{
		excludedDirectories: make(map[string]struct{}),
		excludedExtensions:  make(map[string]struct{}),
		includedExtensions:  make(map[string]struct{}),
	}
}

// ExcludeDirectories registers directory names hidden from the tree.
func (policy *Policy) ExcludeDirectories(directoryNames ...string) {
	for _, directoryName := range directoryNames {
		trimmedName := strings.TrimSpace(directoryName)
		if trimmedName == "" {
			continue
		}
		policy.excludedDirectories[strings.ToLower(trimmedName)] = struct{}{}
	}
}

// ExcludeExtensions registers file extensions hidden from the tree. A missing
// leading dot is prepended.
func (policy *Policy) ExcludeExtensions(extensions ...string) {
	for _, extension := range extensions {
		normalizedExtension := utils.NormalizeExtension(extension)
		if normalizedExtension == "" {
			continue
		}
		policy.excludedExtensions[normalizedExtension] = struct{}{}
	}
}

// IncludeOnlyDirectories registers directory specs; once any spec is present
// only matching directories (and their subtrees) are visible.
func (policy *Policy) IncludeOnlyDirectories(directorySpecs ...string) {
	for _, directorySpec := range directorySpecs {
		normalizedSpec := strings.Trim(utils.NormalizePath(strings.TrimSpace(directorySpec)), pathSegmentSeparator)
		if normalizedSpec == "" {
			continue
		}
		if !containsString(policy.includedDirectories, normalizedSpec) {
			policy.includedDirectories = append(policy.includedDirectories, normalizedSpec)
		}
	}
}

// IncludeOnlyExtensions registers extensions; once any is present only files
// with a registered extension are visible. A missing leading dot is prepended.
func (policy *Policy) IncludeOnlyExtensions(extensions ...string) {
	for _, extension := range extensions {
		normalizedExtension := utils.NormalizeExtension(extension)
		if normalizedExtension == "" {
			continue
		}
		policy.includedExtensions[normalizedExtension] = struct{}{}
	}
}

// HasIncludedDirectories reports whether include-list mode is active for
// directories.
func (policy *Policy) HasIncludedDirectories() bool {
	return len(policy.includedDirectories) > 0
}

// IsDirectoryExcluded reports whether a plain directory name is on the
// exclusion list. The check is case-insensitive.
func (policy *Policy) IsDirectoryExcluded(directoryName string) bool {
	_, excluded := policy.excludedDirectories[strings.ToLower(directoryName)]
	return excluded
}

// IsDirectoryVisible reports whether the directory at directoryPath is
// visible under the current filters. Without include specs a directory is
// visible unless its name is excluded. With include specs a directory is
// visible when its name literally matches a spec, or when its path is an
// ancestor or descendant of a path recorded in the included-path index.
func (policy *Policy) IsDirectoryVisible(directoryPath string) bool {
	directoryName := filepath.Base(directoryPath)
	if !policy.HasIncludedDirectories() {
		return !policy.IsDirectoryExcluded(directoryName)
	}

	if containsString(policy.includedDirectories, strings.ToLower(directoryName)) {
		return true
	}

	normalizedPath := utils.NormalizePath(directoryPath)
	for _, indexedPath := range policy.includedPathIndex {
		if strings.HasPrefix(indexedPath, normalizedPath) || strings.HasPrefix(normalizedPath, indexedPath) {
			return true
		}
	}
	return false
}

// IsFileVisible reports whether a file is visible under the current filters.
// An excluded extension always hides the file; otherwise the file is visible
// when include-list mode is off or its extension is included.
func (policy *Policy) IsFileVisible(fileName string) bool {
	fileExtension := utils.ExtensionOf(fileName)
	if _, excluded := policy.excludedExtensions[fileExtension]; excluded {
		return false
	}
	if len(policy.includedExtensions) == 0 {
		return true
	}
	_, included := policy.includedExtensions[fileExtension]
	return included
}

// containsString reports whether values holds target.
func containsString(values []string, target string) bool {
	for _, currentValue := range values {
		if currentValue == target {
			return true
		}
	}
	return false
}

// RebuildIncludedPathIndex discards and rebuilds the included-path index with
// a breadth-first walk from rootDirectoryPath. A directory whose name exactly
// matches an include spec is recorded and not expanded further; every other
// directory is expanded and tested against each spec until one matches.
// Listing failures leave the affected directory unexpanded.
func (policy *Policy) RebuildIncludedPathIndex(rootDirectoryPath string) {
	policy.includedPathIndex = nil
	if !policy.HasIncludedDirectories() {
		return
	}

	pendingDirectories := []string{filepath.Clean(rootDirectoryPath)}
	for len(pendingDirectories) > 0 {
		currentDirectory := pendingDirectories[0]
		pendingDirectories = pendingDirectories[1:]

		directoryEntries, readDirectoryError := os.ReadDir(currentDirectory)
		if readDirectoryError != nil {
			continue
		}
		for _, directoryEntry := range directoryEntries {
			if !directoryEntry.IsDir() {
				continue
			}
			childPath := filepath.Join(currentDirectory, directoryEntry.Name())
			if containsString(policy.includedDirectories, strings.ToLower(directoryEntry.Name())) {
				policy.recordIncludedPath(childPath)
				continue
			}
			pendingDirectories = append(pendingDirectories, childPath)
			for _, includeSpec := range policy.includedDirectories {
				if MatchesIncludeSpec(childPath, includeSpec) {
					policy.recordIncludedPath(childPath)
					break
				}
			}
		}
	}
}

// recordIncludedPath stores a normalized directory path in the index.
func (policy *Policy) recordIncludedPath(directoryPath string) {
	policy.includedPathIndex = append(policy.includedPathIndex, utils.NormalizePath(directoryPath))
}
