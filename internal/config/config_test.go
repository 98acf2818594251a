package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/annotree/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks verifies only pattern lines are returned.
func TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks(testingHandle *testing.T) {
	ignoreFilePath := filepath.Join(testingHandle.TempDir(), utils.IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# generated\n\ndist/\n  *.map  \n")

	patternList, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}
	expectedPatterns := []string{"dist/", "*.map"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnoreFilePatternsMissingFile verifies a missing file is not an error.
func TestLoadIgnoreFilePatternsMissingFile(testingHandle *testing.T) {
	patternList, loadError := LoadIgnoreFilePatterns(filepath.Join(testingHandle.TempDir(), utils.IgnoreFileName))
	if loadError != nil || patternList != nil {
		testingHandle.Fatalf("expected no patterns and no error, got %v and %v", patternList, loadError)
	}
}

// TestLoadCombinedIgnorePatterns verifies ignore file patterns precede explicit ones without duplicates.
func TestLoadCombinedIgnorePatterns(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), "dist/\n*.map\n")

	testCases := []struct {
		name           string
		useIgnoreFile  bool
		exclusions     []string
		expectedResult []string
	}{
		{
			name:           "ignore file and exclusions",
			useIgnoreFile:  true,
			exclusions:     []string{"*.map", " coverage/ ", ""},
			expectedResult: []string{"dist/", "*.map", "coverage/"},
		},
		{
			name:           "ignore file disabled",
			useIgnoreFile:  false,
			exclusions:     []string{"coverage/"},
			expectedResult: []string{"coverage/"},
		},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTestHandle *testing.T) {
			patternList, loadError := LoadCombinedIgnorePatterns(rootDirectory, testCase.exclusions, testCase.useIgnoreFile)
			if loadError != nil {
				subTestHandle.Fatalf("LoadCombinedIgnorePatterns failed: %v", loadError)
			}
			if !reflect.DeepEqual(patternList, testCase.expectedResult) {
				subTestHandle.Fatalf("unexpected patterns: got %v want %v", patternList, testCase.expectedResult)
			}
		})
	}
}
