// Package types defines the node structures shared across the lstree packages.
package types

import "strings"

// RootRelativePath is the relative path recorded for the generation root itself.
const RootRelativePath = "."

// TreeNode represents one filesystem entry in a generated tree.
type TreeNode struct {
	Name         string      `json:"name"`
	FullPath     string      `json:"fullPath"`
	RelativePath string      `json:"relativePath"`
	IsDirectory  bool        `json:"isDirectory"`
	IsExpandable bool        `json:"isExpandable,omitempty"`
	Children     []*TreeNode `json:"children,omitempty"`
}

// FindChild returns the existing child whose name matches childName ignoring
// case, or nil when no such child has been attached yet.
func (node *TreeNode) FindChild(childName string) *TreeNode {
	for _, childNode := range node.Children {
		if strings.EqualFold(childNode.Name, childName) {
			return childNode
		}
	}
	return nil
}

// AppendChild attaches childNode to the node preserving discovery order.
func (node *TreeNode) AppendChild(childNode *TreeNode) {
	node.Children = append(node.Children, childNode)
}
