package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/temirov/annotree/internal/types"
	"github.com/temirov/annotree/internal/utils"
)

const (
	// errorInvalidPathFormat is the message of an InvalidPathError.
	errorInvalidPathFormat = "invalid path %q: %s"

	reasonEmptyPath        = "path is empty"
	reasonAbsolutePath     = "path is absolute"
	reasonEmptySegment     = "path contains an empty segment"
	reasonRelativeSegment  = "path contains a relative segment"
	currentDirectoryMarker = "."
	parentDirectoryMarker  = ".."
)

// ErrTreeFinalized is returned when a path is inserted after Finalize.
var ErrTreeFinalized = errors.New("tree already finalized")

// InvalidPathError reports a listed path that cannot be placed in the tree.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (invalidPathError *InvalidPathError) Error() string {
	return fmt.Sprintf(errorInvalidPathFormat, invalidPathError.Path, invalidPathError.Reason)
}

// TreeBuilder reconstructs a directory hierarchy from a flat list of
// repository-relative file paths.
type TreeBuilder struct {
	root        *types.DirectoryNode
	directories map[string]*types.DirectoryNode
	files       map[string]struct{}
	finalized   bool
}

// NewTreeBuilder returns a builder holding only the root directory.
func NewTreeBuilder() *TreeBuilder {
	root := &types.DirectoryNode{Name: types.RootDirectoryName, Path: types.RootDirectoryPath}
	return &TreeBuilder{
		root:        root,
		directories: map[string]*types.DirectoryNode{types.RootDirectoryPath: root},
		files:       make(map[string]struct{}),
	}
}

// Insert registers one file path, creating every missing ancestor directory.
// Inserting a path that is already present is a no-op. A malformed path is
// rejected with an *InvalidPathError before any node is created.
func (treeBuilder *TreeBuilder) Insert(path string) error {
	if treeBuilder.finalized {
		return ErrTreeFinalized
	}
	segments, splitError := splitRepositoryPath(path)
	if splitError != nil {
		return splitError
	}

	normalizedPath := strings.Join(segments, types.PathSeparator)
	if _, exists := treeBuilder.files[normalizedPath]; exists {
		return nil
	}

	parent := treeBuilder.root
	for segmentIndex, segment := range segments[:len(segments)-1] {
		directoryPath := strings.Join(segments[:segmentIndex+1], types.PathSeparator)
		directory, exists := treeBuilder.directories[directoryPath]
		if !exists {
			directory = &types.DirectoryNode{Name: segment, Path: directoryPath}
			treeBuilder.directories[directoryPath] = directory
			parent.Children = append(parent.Children, directory)
		}
		parent = directory
	}

	parent.Files = append(parent.Files, segments[len(segments)-1])
	treeBuilder.files[normalizedPath] = struct{}{}
	return nil
}

// Finalize sorts the children and files of every directory once and returns
// the root. The builder accepts no further inserts afterwards.
func (treeBuilder *TreeBuilder) Finalize() *types.DirectoryNode {
	if treeBuilder.finalized {
		return treeBuilder.root
	}
	for _, directory := range treeBuilder.directories {
		sort.Slice(directory.Children, func(left, right int) bool {
			return directory.Children[left].Name < directory.Children[right].Name
		})
		sort.Strings(directory.Files)
	}
	treeBuilder.finalized = true
	return treeBuilder.root
}

// BuildTree builds and finalizes a tree from paths in a single pass. Malformed
// paths are skipped; every rejection is returned in a combined
// *multierror.Error alongside the tree built from the remaining paths.
func BuildTree(paths []string) (*types.DirectoryNode, error) {
	treeBuilder := NewTreeBuilder()
	var rejectedPaths *multierror.Error
	for _, path := range paths {
		if insertError := treeBuilder.Insert(path); insertError != nil {
			rejectedPaths = multierror.Append(rejectedPaths, insertError)
		}
	}
	return treeBuilder.Finalize(), rejectedPaths.ErrorOrNil()
}

// splitRepositoryPath validates a repository-relative path and returns its segments.
func splitRepositoryPath(path string) ([]string, error) {
	normalizedPath := utils.NormalizeSeparators(path)
	if normalizedPath == "" {
		return nil, &InvalidPathError{Path: path, Reason: reasonEmptyPath}
	}
	if strings.HasPrefix(normalizedPath, types.PathSeparator) {
		return nil, &InvalidPathError{Path: path, Reason: reasonAbsolutePath}
	}
	segments := strings.Split(normalizedPath, types.PathSeparator)
	for _, segment := range segments {
		switch segment {
		case "":
			return nil, &InvalidPathError{Path: path, Reason: reasonEmptySegment}
		case currentDirectoryMarker, parentDirectoryMarker:
			return nil, &InvalidPathError{Path: path, Reason: reasonRelativeSegment}
		}
	}
	return segments, nil
}
