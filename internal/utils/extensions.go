package utils

import (
	"path/filepath"
	"strings"
)

const extensionDot = "."

// NormalizeExtension lowercases an extension argument and prepends the leading
// dot when it is missing. Blank input normalizes to the empty string.
func NormalizeExtension(extension string) string {
	trimmedExtension := strings.TrimSpace(extension)
	if trimmedExtension == "" {
		return ""
	}
	if !strings.HasPrefix(trimmedExtension, extensionDot) {
		trimmedExtension = extensionDot + trimmedExtension
	}
	return strings.ToLower(trimmedExtension)
}

// ExtensionOf returns the lowercased extension of a file name, including the
// leading dot, or the empty string for files without an extension.
func ExtensionOf(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
