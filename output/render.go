// Package output turns traversal order into the prefixed text lines of a
// rendered directory tree.
package output

import (
	"runtime"
	"strings"
)

const (
	// BranchConnector precedes an entry that has following siblings.
	BranchConnector = "├── "
	// LastConnector precedes the final entry of a directory.
	LastConnector = "└── "
	// BranchPadding is the indent carried to children under a continuing branch.
	BranchPadding = "│   "
	// LastPadding is the indent carried to children under a terminal branch.
	LastPadding = "    "

	// DirectorySuffix marks directory entries in rendered lines.
	DirectorySuffix = "/"
	// RootPlaceholder replaces the root path line when root printing is suppressed.
	RootPlaceholder = "/"

	windowsOperatingSystem = "windows"
	windowsLineSeparator   = "\r\n"
	defaultLineSeparator   = "\n"
)

// LineSeparator returns the line separator of the current platform.
func LineSeparator() string {
	if runtime.GOOS == windowsOperatingSystem {
		return windowsLineSeparator
	}
	return defaultLineSeparator
}

// RootLine renders the first line of a tree: the absolute root path with a
// trailing separator, or the placeholder when root printing is suppressed.
func RootLine(absoluteRootPath string, printRootPath bool) string {
	if !printRootPath {
		return RootPlaceholder
	}
	return absoluteRootPath + DirectorySuffix
}

// Connector selects the glyph preceding an entry based on its last status.
func Connector(isLastEntry bool) string {
	if isLastEntry {
		return LastConnector
	}
	return BranchConnector
}

// ChildIndent extends the accumulated indent for the children of an entry.
func ChildIndent(indent string, isLastEntry bool) string {
	if isLastEntry {
		return indent + LastPadding
	}
	return indent + BranchPadding
}

// EntryLine renders one tree line from the accumulated indent, the connector,
// and the entry name. Directories carry a trailing separator.
func EntryLine(indent string, connector string, entryName string, isDirectory bool) string {
	if isDirectory {
		entryName += DirectorySuffix
	}
	return indent + connector + entryName
}

// JoinLines joins rendered lines with the platform line separator.
func JoinLines(lines []string) string {
	return strings.Join(lines, LineSeparator())
}
