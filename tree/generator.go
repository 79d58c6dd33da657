// Package tree walks a directory subtree, applies the configured filters, and
// renders the visible entries as prefixed text lines and an addressable node
// hierarchy.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/lstree/filter"
	"github.com/temirov/lstree/output"
)

const (
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorRootFormat wraps the not-found sentinel with the offending path.
	errorRootFormat = "%w: %s"
)

var (
	// ErrRootPathEmpty reports a nil, empty, or whitespace-only root path.
	ErrRootPathEmpty = errors.New("root path is empty")
	// ErrRootNotFound reports a root path that is not an existing directory.
	ErrRootNotFound = errors.New("root path is not an existing directory")
)

// Generator walks a directory tree and renders the filtered view. A generator
// carries its filter configuration across calls and may be reused for
// multiple roots, but not concurrently.
type Generator struct {
	policy *filter.Policy
}

// NewGenerator constructs a Generator with empty filters.
func NewGenerator() *Generator {
	return &Generator{policy: filter.NewPolicy()}
}

// ExcludeDirectories hides directories by plain name and returns the
// generator for chaining.
func (generator *Generator) ExcludeDirectories(directoryNames ...string) *Generator {
	generator.policy.ExcludeDirectories(directoryNames...)
	return generator
}

// ExcludeExtensions hides files by extension and returns the generator for
// chaining. A missing leading dot is prepended.
func (generator *Generator) ExcludeExtensions(extensions ...string) *Generator {
	generator.policy.ExcludeExtensions(extensions...)
	return generator
}

// IncludeOnlyDirectories switches directory filtering to include-list mode
// and returns the generator for chaining. Specs are names or slash-delimited
// subpaths such as "src/lib".
func (generator *Generator) IncludeOnlyDirectories(directorySpecs ...string) *Generator {
	generator.policy.IncludeOnlyDirectories(directorySpecs...)
	return generator
}

// IncludeOnlyExtensions switches file filtering to include-list mode and
// returns the generator for chaining. A missing leading dot is prepended.
func (generator *Generator) IncludeOnlyExtensions(extensions ...string) *Generator {
	generator.policy.IncludeOnlyExtensions(extensions...)
	return generator
}

// Options controls per-generation behavior.
type Options struct {
	// PrintRootLine renders the absolute root path as the first line. When
	// false the first line is the "/" placeholder instead.
	PrintRootLine bool
}

// Generate renders the subtree under rootDirectoryPath with the root path as
// the first line.
func (generator *Generator) Generate(rootDirectoryPath string) (*Result, error) {
	return generator.GenerateWithOptions(rootDirectoryPath, Options{PrintRootLine: true})
}

// GenerateWithOptions validates the root, rebuilds the included-path index,
// performs the full traversal, and returns the populated result. Validation
// failures surface before any traversal; listing failures inside the walk are
// downgraded to empty listings.
func (generator *Generator) GenerateWithOptions(rootDirectoryPath string, options Options) (*Result, error) {
	if strings.TrimSpace(rootDirectoryPath) == "" {
		return nil, ErrRootPathEmpty
	}

	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	rootInformation, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil || !rootInformation.IsDir() {
		return nil, fmt.Errorf(errorRootFormat, ErrRootNotFound, rootDirectoryPath)
	}
	absoluteRootPath = filepath.Clean(absoluteRootPath)

	generator.policy.RebuildIncludedPathIndex(absoluteRootPath)

	result := newResult(absoluteRootPath)
	result.appendLine(output.RootLine(absoluteRootPath, options.PrintRootLine))
	generator.visitDirectory(absoluteRootPath, "", result)
	return result, nil
}

// visitDirectory renders the visible entries of one directory and descends
// into each visible subdirectory. The indent argument is the accumulated
// prefix carried from the ancestors.
func (generator *Generator) visitDirectory(directoryPath string, indent string, result *Result) {
	subdirectoryNames, fileNames := generator.listEntries(directoryPath)

	visibleSubdirectories := make([]string, 0, len(subdirectoryNames))
	for _, subdirectoryName := range subdirectoryNames {
		if generator.policy.IsDirectoryVisible(filepath.Join(directoryPath, subdirectoryName)) {
			visibleSubdirectories = append(visibleSubdirectories, subdirectoryName)
		}
	}

	for directoryIndex, subdirectoryName := range visibleSubdirectories {
		isLastEntry := directoryIndex == len(visibleSubdirectories)-1 && len(fileNames) == 0
		subdirectoryPath := filepath.Join(directoryPath, subdirectoryName)
		result.appendLine(output.EntryLine(indent, output.Connector(isLastEntry), subdirectoryName, true))
		result.builder.createOrGet(subdirectoryPath, true, generator.hasVisibleChildren(subdirectoryPath))
		generator.visitDirectory(subdirectoryPath, output.ChildIndent(indent, isLastEntry), result)
	}

	for fileIndex, fileName := range fileNames {
		isLastEntry := fileIndex == len(fileNames)-1
		result.appendLine(output.EntryLine(indent, output.Connector(isLastEntry), fileName, false))
		result.builder.createOrGet(filepath.Join(directoryPath, fileName), false, false)
	}
}

// listEntries returns the surviving subdirectory and file names of one
// directory, each alphabetically sorted. Subdirectories whose plain name is
// excluded and files failing the visibility predicate are dropped. Listing
// failures are treated as an empty directory so one unreadable subtree never
// interrupts the walk.
func (generator *Generator) listEntries(directoryPath string) ([]string, []string) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, nil
	}

	var subdirectoryNames []string
	var fileNames []string
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			if generator.policy.IsDirectoryExcluded(directoryEntry.Name()) {
				continue
			}
			subdirectoryNames = append(subdirectoryNames, directoryEntry.Name())
		} else if generator.policy.IsFileVisible(directoryEntry.Name()) {
			fileNames = append(fileNames, directoryEntry.Name())
		}
	}
	sort.Strings(subdirectoryNames)
	sort.Strings(fileNames)
	return subdirectoryNames, fileNames
}

// hasVisibleChildren probes one level below directoryPath for at least one
// visible file or subdirectory without mutating traversal state.
func (generator *Generator) hasVisibleChildren(directoryPath string) bool {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return false
	}
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			if generator.policy.IsDirectoryExcluded(directoryEntry.Name()) {
				continue
			}
			if generator.policy.IsDirectoryVisible(filepath.Join(directoryPath, directoryEntry.Name())) {
				return true
			}
		} else if generator.policy.IsFileVisible(directoryEntry.Name()) {
			return true
		}
	}
	return false
}
