// Package types defines every cross‑package data structure used by the annotree CLI.
package types

const (
	// RootDirectoryName is the display name of the repository root.
	RootDirectoryName = "."
	// RootDirectoryPath is the repository-relative path of the root node.
	RootDirectoryPath = ""
	// PathSeparator separates repository-relative path segments.
	PathSeparator = "/"
)

// DirectoryNode represents one directory of the reconstructed repository hierarchy.
// Plain files are terminal and are stored by name in Files rather than as child nodes.
type DirectoryNode struct {
	Name     string
	Path     string
	Children []*DirectoryNode
	Files    []string
}

// IsRoot reports whether the node is the repository root.
func (node *DirectoryNode) IsRoot() bool {
	return node.Path == RootDirectoryPath
}

// ChildPath returns the repository-relative path of an entry named name inside the node.
func (node *DirectoryNode) ChildPath(name string) string {
	if node.IsRoot() {
		return name
	}
	return node.Path + PathSeparator + name
}

// Walk visits the node and every descendant directory in depth-first pre-order.
func (node *DirectoryNode) Walk(visit func(directory *DirectoryNode)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children {
		child.Walk(visit)
	}
}

// FilePaths returns the repository-relative paths of every file below the node
// in rendering order.
func (node *DirectoryNode) FilePaths() []string {
	var filePaths []string
	node.Walk(func(directory *DirectoryNode) {
		for _, fileName := range directory.Files {
			filePaths = append(filePaths, directory.ChildPath(fileName))
		}
	})
	return filePaths
}

// TreeSummary captures aggregate counts for a built tree. The root is not counted.
type TreeSummary struct {
	Directories int
	Files       int
}

// Summarize counts the directories and files below the node.
func (node *DirectoryNode) Summarize() TreeSummary {
	var summary TreeSummary
	node.Walk(func(directory *DirectoryNode) {
		if directory != node {
			summary.Directories++
		}
		summary.Files += len(directory.Files)
	})
	return summary
}

// GenerationResult describes one completed run of the generator.
type GenerationResult struct {
	Destination  string
	Tree         TreeSummary
	Lines        int
	Bytes        int64
	Tokens       int
	TokenModel   string
	SkippedPaths int
	Copied       bool
}
