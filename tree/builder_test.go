package tree

import (
	"path/filepath"
	"testing"
)

// TestCreateOrGetIsIdempotent verifies that repeated resolution of one path
// returns the identical node instance.
func TestCreateOrGetIsIdempotent(testingInstance *testing.T) {
	rootPath := filepath.Join("/", "repo")
	builder := newNodeBuilder(rootPath)

	entryPath := filepath.Join(rootPath, "src", "main.go")
	firstNode := builder.createOrGet(entryPath, false, false)
	secondNode := builder.createOrGet(entryPath, false, false)

	if firstNode != secondNode {
		testingInstance.Error("expected the identical node instance on repeated resolution")
	}
	parentNode := builder.rootNode.FindChild("src")
	if parentNode == nil {
		testingInstance.Fatal("expected intermediate src node to exist")
	}
	if len(parentNode.Children) != 1 {
		testingInstance.Errorf("expected a single child under src, got %d", len(parentNode.Children))
	}
}

// TestCreateOrGetLookupIgnoresCase verifies case-insensitive child lookup.
func TestCreateOrGetLookupIgnoresCase(testingInstance *testing.T) {
	rootPath := filepath.Join("/", "repo")
	builder := newNodeBuilder(rootPath)

	lowerNode := builder.createOrGet(filepath.Join(rootPath, "docs"), true, true)
	upperNode := builder.createOrGet(filepath.Join(rootPath, "Docs"), true, true)

	if lowerNode != upperNode {
		testingInstance.Error("expected case-insensitive lookup to return the existing node")
	}
	if len(builder.rootNode.Children) != 1 {
		testingInstance.Errorf("expected one child under the root, got %d", len(builder.rootNode.Children))
	}
}

// TestCreateOrGetMaterializesAncestors verifies that missing intermediate
// directories are created as expandable directory nodes.
func TestCreateOrGetMaterializesAncestors(testingInstance *testing.T) {
	rootPath := filepath.Join("/", "repo")
	builder := newNodeBuilder(rootPath)

	builder.createOrGet(filepath.Join(rootPath, "a", "b", "leaf.txt"), false, false)

	intermediateNode := builder.rootNode.FindChild("a")
	if intermediateNode == nil {
		testingInstance.Fatal("expected intermediate node a")
	}
	if !intermediateNode.IsDirectory || !intermediateNode.IsExpandable {
		testingInstance.Error("expected intermediate node to be an expandable directory")
	}
	if intermediateNode.RelativePath != "a" {
		testingInstance.Errorf("expected relative path a, got %q", intermediateNode.RelativePath)
	}
	deeperNode := intermediateNode.FindChild("b")
	if deeperNode == nil || deeperNode.FindChild("leaf.txt") == nil {
		testingInstance.Fatal("expected chain a/b/leaf.txt to be materialized")
	}
}

// TestCreateOrGetRootResolution verifies that the root path resolves to the
// session root node with the "." relative path.
func TestCreateOrGetRootResolution(testingInstance *testing.T) {
	rootPath := filepath.Join("/", "repo")
	builder := newNodeBuilder(rootPath)

	resolvedRoot := builder.createOrGet(rootPath, true, true)
	if resolvedRoot != builder.rootNode {
		testingInstance.Error("expected the session root node")
	}
	if resolvedRoot.RelativePath != "." {
		testingInstance.Errorf("expected root relative path ., got %q", resolvedRoot.RelativePath)
	}
}
