package tree

import (
	"path/filepath"

	"github.com/temirov/lstree/internal/utils"
	"github.com/temirov/lstree/types"
)

// nodeBuilder lazily materializes the node hierarchy in step with traversal.
// The root node exists for the whole session; descendant nodes are created on
// first visit and deduplicated by name under their parent.
type nodeBuilder struct {
	rootPath string
	rootNode *types.TreeNode
}

// newNodeBuilder constructs the builder together with its root node.
func newNodeBuilder(absoluteRootPath string) *nodeBuilder {
	cleanRootPath := filepath.Clean(absoluteRootPath)
	return &nodeBuilder{
		rootPath: cleanRootPath,
		rootNode: &types.TreeNode{
			Name:         filepath.Base(cleanRootPath),
			FullPath:     cleanRootPath,
			RelativePath: types.RootRelativePath,
			IsDirectory:  true,
			IsExpandable: true,
		},
	}
}

// createOrGet resolves the node for entryPath, creating it and any missing
// ancestors on the way down from the root. Intermediate directories are
// materialized as expandable. A second call with the same path returns the
// identical node instance.
func (builder *nodeBuilder) createOrGet(entryPath string, isDirectory bool, isExpandable bool) *types.TreeNode {
	cleanPath := filepath.Clean(entryPath)
	if cleanPath == builder.rootPath {
		return builder.rootNode
	}

	parentPath := filepath.Dir(cleanPath)
	if parentPath == cleanPath {
		// Reached the filesystem root without meeting the session root.
		return builder.rootNode
	}
	parentNode := builder.createOrGet(parentPath, true, true)

	entryName := filepath.Base(cleanPath)
	if existingNode := parentNode.FindChild(entryName); existingNode != nil {
		return existingNode
	}

	createdNode := &types.TreeNode{
		Name:         entryName,
		FullPath:     cleanPath,
		RelativePath: utils.RelativePathOrSelf(cleanPath, builder.rootPath),
		IsDirectory:  isDirectory,
		IsExpandable: isExpandable,
	}
	parentNode.AppendChild(createdNode)
	return createdNode
}
