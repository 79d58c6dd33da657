package tree

import (
	"path/filepath"

	"github.com/temirov/lstree/internal/utils"
	"github.com/temirov/lstree/output"
	"github.com/temirov/lstree/types"
)

// Result owns the rendered lines and the materialized node tree of one
// generation. It is append-only during traversal and read-only afterwards.
type Result struct {
	rootPath string
	builder  *nodeBuilder
	lines    []string
}

// newResult prepares an empty result anchored at the generation root.
func newResult(absoluteRootPath string) *Result {
	return &Result{
		rootPath: filepath.Clean(absoluteRootPath),
		builder:  newNodeBuilder(absoluteRootPath),
	}
}

// appendLine records one rendered line in traversal order.
func (result *Result) appendLine(renderedLine string) {
	result.lines = append(result.lines, renderedLine)
}

// Text returns the rendered tree with lines joined by the platform line
// separator.
func (result *Result) Text() string {
	return output.JoinLines(result.lines)
}

// Lines returns a copy of the rendered lines in traversal order.
func (result *Result) Lines() []string {
	linesCopy := make([]string, len(result.lines))
	copy(linesCopy, result.lines)
	return linesCopy
}

// Root returns the materialized root node of the generated hierarchy.
func (result *Result) Root() *types.TreeNode {
	return result.builder.rootNode
}

// RelativePath translates an absolute path into a path relative to the
// generation root, "." for the root itself.
func (result *Result) RelativePath(absolutePath string) string {
	return utils.RelativePathOrSelf(absolutePath, result.rootPath)
}

// AbsolutePath translates a root-relative path back into an absolute path.
func (result *Result) AbsolutePath(relativePath string) string {
	if relativePath == "" || relativePath == types.RootRelativePath {
		return result.rootPath
	}
	return filepath.Join(result.rootPath, filepath.FromSlash(relativePath))
}
