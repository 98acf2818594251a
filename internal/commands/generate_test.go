package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/annotree/internal/commands"
	"github.com/temirov/annotree/internal/describe"
	"github.com/temirov/annotree/internal/lister"
	"github.com/temirov/annotree/internal/output"
)

const (
	exampleRootLine  = ". — Root of the repository containing all project workspaces and configuration."
	exampleDirectory = "└── a — Directory grouping the A resources within the project structure."
	exampleFirstFile = "    ├── b.ts — General TypeScript module related to b functionality. It contributes typed logic to the project."
	exampleLastFile  = "    └── c.ts — General TypeScript module related to c functionality. It contributes typed logic to the project."
)

// staticLister returns a fixed path list.
type staticLister struct {
	paths []string
	err   error
}

func (listing staticLister) List(context.Context) ([]string, error) {
	return listing.paths, listing.err
}

type recordingCopier struct {
	copiedText string
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copiedText = text
	return nil
}

type lineCounter struct{}

func (lineCounter) Name() string { return "lines" }

func (lineCounter) CountString(input string) (int, error) {
	return strings.Count(input, "\n") + 1, nil
}

// TestGenerateWritesAnnotatedTree verifies the full pipeline output for a two-file directory.
func TestGenerateWritesAnnotatedTree(testingHandle *testing.T) {
	destinationPath := filepath.Join(testingHandle.TempDir(), output.DefaultDestination)
	result, generateError := commands.Generate(context.Background(), commands.GenerateOptions{
		Lister:      staticLister{paths: []string{"a/c.ts", "a/b.ts"}},
		Filter:      lister.NewFilter(true, nil),
		Describer:   describe.NewEngine(),
		Destination: destinationPath,
	})
	if generateError != nil {
		testingHandle.Fatalf("Generate error: %v", generateError)
	}
	writtenContent, readError := os.ReadFile(destinationPath)
	if readError != nil {
		testingHandle.Fatalf("reading output: %v", readError)
	}
	expected := strings.Join([]string{exampleRootLine, exampleDirectory, exampleFirstFile, exampleLastFile}, "\n")
	if string(writtenContent) != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", writtenContent, expected)
	}
	if result.Lines != 4 || result.Tree.Files != 2 || result.Tree.Directories != 1 {
		testingHandle.Fatalf("unexpected result %+v", result)
	}
	if result.Bytes != int64(len(expected)) || result.Destination != destinationPath {
		testingHandle.Fatalf("unexpected result %+v", result)
	}
}

// TestGenerateUsesCuratedReadme verifies curated descriptions reach the rendered file line.
func TestGenerateUsesCuratedReadme(testingHandle *testing.T) {
	var standardOutput bytes.Buffer
	_, generateError := commands.Generate(context.Background(), commands.GenerateOptions{
		Lister:         staticLister{paths: []string{"README.md"}},
		Describer:      describe.NewEngine(),
		Destination:    "-",
		StandardOutput: &standardOutput,
	})
	if generateError != nil {
		testingHandle.Fatalf("Generate error: %v", generateError)
	}
	curated := describe.DefaultFileDescriptions()["README.md"]
	expectedLine := "└── README.md — " + curated
	if !strings.HasSuffix(standardOutput.String(), expectedLine) {
		testingHandle.Fatalf("expected curated line %q in %q", expectedLine, standardOutput.String())
	}
}

// TestGenerateFiltersAndReportsSkippedPaths verifies exclusions apply and malformed paths are logged.
func TestGenerateFiltersAndReportsSkippedPaths(testingHandle *testing.T) {
	observedCore, observedLogs := observer.New(zap.WarnLevel)
	var standardOutput bytes.Buffer
	copier := &recordingCopier{}
	result, generateError := commands.Generate(context.Background(), commands.GenerateOptions{
		Lister:         staticLister{paths: []string{"debug.log", ".firebase/cache", "/abs.ts", "src/app.ts"}},
		Filter:         lister.NewFilter(true, nil),
		Describer:      describe.NewEngine(),
		Destination:    "-",
		StandardOutput: &standardOutput,
		Copier:         copier,
		TokenCounter:   lineCounter{},
		Logger:         zap.New(observedCore),
	})
	if generateError != nil {
		testingHandle.Fatalf("Generate error: %v", generateError)
	}
	if strings.Contains(standardOutput.String(), "debug.log") || strings.Contains(standardOutput.String(), ".firebase") {
		testingHandle.Fatalf("excluded paths were rendered: %s", standardOutput.String())
	}
	if result.SkippedPaths != 1 || observedLogs.FilterMessage("skipping path").Len() != 1 {
		testingHandle.Fatalf("expected one skipped path to be logged, result %+v", result)
	}
	if !result.Copied || copier.copiedText != standardOutput.String() {
		testingHandle.Fatalf("expected rendered tree on the clipboard")
	}
	if result.Tokens != result.Lines || result.TokenModel != "lines" {
		testingHandle.Fatalf("unexpected token report %+v", result)
	}
	if result.Destination != "stdout" {
		testingHandle.Fatalf("expected stdout destination, got %q", result.Destination)
	}
}

// TestGenerateListingFailureLeavesDestination verifies a failed listing does not touch the output file.
func TestGenerateListingFailureLeavesDestination(testingHandle *testing.T) {
	destinationPath := filepath.Join(testingHandle.TempDir(), output.DefaultDestination)
	if writeError := os.WriteFile(destinationPath, []byte("previous"), 0o644); writeError != nil {
		testingHandle.Fatalf("seeding destination: %v", writeError)
	}
	listingFailure := errors.New("not a git repository")
	_, generateError := commands.Generate(context.Background(), commands.GenerateOptions{
		Lister:      staticLister{err: listingFailure},
		Describer:   describe.NewEngine(),
		Destination: destinationPath,
	})
	if !errors.Is(generateError, listingFailure) {
		testingHandle.Fatalf("expected listing failure, got %v", generateError)
	}
	writtenContent, readError := os.ReadFile(destinationPath)
	if readError != nil || string(writtenContent) != "previous" {
		testingHandle.Fatalf("destination was modified after a listing failure")
	}
}
