// Package output renders annotated directory trees and writes them to their destination.
package output

import (
	"strings"

	"github.com/temirov/annotree/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	descriptionSeparator = " — "
)

// LineSeparator joins rendered lines.
const LineSeparator = "\n"

// Describer supplies the annotation for every rendered entry.
type Describer interface {
	DescribeDirectory(directoryPath string) string
	DescribeFile(fullPath string, fileName string) string
}

// RenderLines walks the tree depth first and returns one annotated line per
// entry. The root is emitted as ". — description"; each directory lists its
// child directories before its files. A child directory only receives the
// closing connector when its parent holds no files.
func RenderLines(root *types.DirectoryNode, describer Describer) []string {
	if root == nil {
		return nil
	}
	lines := []string{types.RootDirectoryName + descriptionSeparator + describer.DescribeDirectory(root.Path)}
	return renderChildren(lines, root, "", describer)
}

// Render returns the annotated tree as text joined by newlines, without a trailing newline.
func Render(root *types.DirectoryNode, describer Describer) string {
	return strings.Join(RenderLines(root, describer), LineSeparator)
}

func renderChildren(lines []string, directory *types.DirectoryNode, prefix string, describer Describer) []string {
	hasFiles := len(directory.Files) > 0
	for childIndex, child := range directory.Children {
		isLast := !hasFiles && childIndex == len(directory.Children)-1
		linePrefix, childPrefix := treeNodeLinePrefix(prefix, isLast)
		lines = append(lines, annotatedLine(linePrefix, child.Name, describer.DescribeDirectory(child.Path)))
		lines = renderChildren(lines, child, childPrefix, describer)
	}
	for fileIndex, fileName := range directory.Files {
		linePrefix, _ := treeNodeLinePrefix(prefix, fileIndex == len(directory.Files)-1)
		lines = append(lines, annotatedLine(linePrefix, fileName, describer.DescribeFile(directory.ChildPath(fileName), fileName)))
	}
	return lines
}

// treeNodeLinePrefix returns the prefix of an entry's own line and the prefix
// its children inherit.
func treeNodeLinePrefix(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}

func annotatedLine(linePrefix string, name string, description string) string {
	return linePrefix + name + descriptionSeparator + description
}
