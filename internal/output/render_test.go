package output_test

import (
	"strings"
	"testing"

	"github.com/temirov/annotree/internal/output"
	"github.com/temirov/annotree/internal/types"
)

// pathDescriber annotates entries with their own paths so tests can assert structure.
type pathDescriber struct{}

func (pathDescriber) DescribeDirectory(directoryPath string) string {
	return "dir:" + directoryPath
}

func (pathDescriber) DescribeFile(fullPath string, fileName string) string {
	return "file:" + fullPath
}

func singleDirectoryTree() *types.DirectoryNode {
	return &types.DirectoryNode{
		Name: types.RootDirectoryName,
		Children: []*types.DirectoryNode{
			{Name: "a", Path: "a", Files: []string{"b.ts", "c.ts"}},
		},
	}
}

func mixedTree() *types.DirectoryNode {
	return &types.DirectoryNode{
		Name: types.RootDirectoryName,
		Children: []*types.DirectoryNode{
			{Name: "a", Path: "a", Files: []string{"x.ts"}},
			{
				Name: "b",
				Path: "b",
				Children: []*types.DirectoryNode{
					{Name: "y", Path: "b/y", Files: []string{"z.ts"}},
				},
			},
		},
		Files: []string{"root.md"},
	}
}

// TestRenderLines verifies connectors, indentation, and directory-before-file ordering.
func TestRenderLines(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		root     *types.DirectoryNode
		expected []string
	}{
		{
			name: "single directory with two files",
			root: singleDirectoryTree(),
			expected: []string{
				". — dir:",
				"└── a — dir:a",
				"    ├── b.ts — file:a/b.ts",
				"    └── c.ts — file:a/c.ts",
			},
		},
		{
			name: "directories are not last while files follow",
			root: mixedTree(),
			expected: []string{
				". — dir:",
				"├── a — dir:a",
				"│   └── x.ts — file:a/x.ts",
				"├── b — dir:b",
				"│   └── y — dir:b/y",
				"│       └── z.ts — file:b/y/z.ts",
				"└── root.md — file:root.md",
			},
		},
		{
			name:     "empty root",
			root:     &types.DirectoryNode{Name: types.RootDirectoryName},
			expected: []string{". — dir:"},
		},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTestHandle *testing.T) {
			lines := output.RenderLines(testCase.root, pathDescriber{})
			if strings.Join(lines, "\n") != strings.Join(testCase.expected, "\n") {
				subTestHandle.Fatalf("unexpected rendering:\n%s\nexpected:\n%s", strings.Join(lines, "\n"), strings.Join(testCase.expected, "\n"))
			}
		})
	}
}

// TestRenderIsDeterministic verifies rendering the same tree twice yields identical text without a trailing newline.
func TestRenderIsDeterministic(testingHandle *testing.T) {
	root := mixedTree()
	firstRendering := output.Render(root, pathDescriber{})
	secondRendering := output.Render(root, pathDescriber{})
	if firstRendering != secondRendering {
		testingHandle.Fatalf("renderings differ")
	}
	if strings.HasSuffix(firstRendering, "\n") {
		testingHandle.Fatalf("rendering must not end with a newline")
	}
	if strings.Count(firstRendering, "\n") != 6 {
		testingHandle.Fatalf("expected 7 lines, got %q", firstRendering)
	}
}

// TestRenderNilRoot verifies a missing tree renders nothing.
func TestRenderNilRoot(testingHandle *testing.T) {
	if lines := output.RenderLines(nil, pathDescriber{}); lines != nil {
		testingHandle.Fatalf("expected no lines, got %v", lines)
	}
}
