package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/lstree/internal/utils"
)

// TestNormalizeExtension verifies dot prefixing and lowercasing.
func TestNormalizeExtension(testingInstance *testing.T) {
	testCases := []struct {
		testName  string
		extension string
		expected  string
	}{
		{testName: "missing dot is prepended", extension: "txt", expected: ".txt"},
		{testName: "existing dot is kept", extension: ".txt", expected: ".txt"},
		{testName: "uppercase is lowered", extension: ".TXT", expected: ".txt"},
		{testName: "surrounding whitespace is trimmed", extension: " md ", expected: ".md"},
		{testName: "blank input normalizes to empty", extension: "   ", expected: ""},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtest *testing.T) {
			actual := utils.NormalizeExtension(testCase.extension)
			if actual != testCase.expected {
				subtest.Errorf("NormalizeExtension(%q) = %q, expected %q", testCase.extension, actual, testCase.expected)
			}
		})
	}
}

// TestExtensionOf verifies extension extraction from file names.
func TestExtensionOf(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		fileName string
		expected string
	}{
		{testName: "plain extension", fileName: "main.go", expected: ".go"},
		{testName: "uppercase extension is lowered", fileName: "NOTES.TXT", expected: ".txt"},
		{testName: "no extension", fileName: "Makefile", expected: ""},
		{testName: "last extension wins", fileName: "archive.tar.gz", expected: ".gz"},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtest *testing.T) {
			actual := utils.ExtensionOf(testCase.fileName)
			if actual != testCase.expected {
				subtest.Errorf("ExtensionOf(%q) = %q, expected %q", testCase.fileName, actual, testCase.expected)
			}
		})
	}
}

// TestRelativePathOrSelf verifies relative path calculation against a root.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()

	nestedPath := filepath.Join(rootDirectory, "sub", "file.txt")
	if relativePath := utils.RelativePathOrSelf(nestedPath, rootDirectory); relativePath != "sub/file.txt" {
		testingInstance.Errorf("RelativePathOrSelf nested = %q, expected sub/file.txt", relativePath)
	}
	if relativeRoot := utils.RelativePathOrSelf(rootDirectory, rootDirectory); relativeRoot != "." {
		testingInstance.Errorf("RelativePathOrSelf of root = %q, expected .", relativeRoot)
	}
}

// TestNormalizePath verifies lowercasing and separator normalization.
func TestNormalizePath(testingInstance *testing.T) {
	if normalized := utils.NormalizePath(`C:\Repo\SRC`); normalized != "c:/repo/src" {
		testingInstance.Errorf("NormalizePath = %q, expected c:/repo/src", normalized)
	}
}

// TestDeduplicateStrings verifies order-preserving deduplication.
func TestDeduplicateStrings(testingInstance *testing.T) {
	actual := utils.DeduplicateStrings([]string{"a", "b", "a", "c", "b"})
	expected := []string{"a", "b", "c"}
	if len(actual) != len(expected) {
		testingInstance.Fatalf("expected %d values, got %d", len(expected), len(actual))
	}
	for valueIndex, expectedValue := range expected {
		if actual[valueIndex] != expectedValue {
			testingInstance.Errorf("position %d: expected %q, got %q", valueIndex, expectedValue, actual[valueIndex])
		}
	}
}
