package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/annotree/internal/output"
)

const (
	previousContent = "previous tree"
	renderedContent = ". — root\n└── a — dir"
)

// TestWriteFileAtomicReplacesContent verifies the destination is replaced and no temp files remain.
func TestWriteFileAtomicReplacesContent(testingHandle *testing.T) {
	destinationDirectory := testingHandle.TempDir()
	destinationPath := filepath.Join(destinationDirectory, output.DefaultDestination)
	if writeError := os.WriteFile(destinationPath, []byte(previousContent), 0o644); writeError != nil {
		testingHandle.Fatalf("seeding destination: %v", writeError)
	}
	if writeError := output.WriteFileAtomic(destinationPath, []byte(renderedContent)); writeError != nil {
		testingHandle.Fatalf("WriteFileAtomic error: %v", writeError)
	}
	writtenContent, readError := os.ReadFile(destinationPath)
	if readError != nil {
		testingHandle.Fatalf("reading destination: %v", readError)
	}
	if string(writtenContent) != renderedContent {
		testingHandle.Fatalf("expected %q, got %q", renderedContent, writtenContent)
	}
	directoryEntries, listError := os.ReadDir(destinationDirectory)
	if listError != nil {
		testingHandle.Fatalf("listing directory: %v", listError)
	}
	if len(directoryEntries) != 1 {
		testingHandle.Fatalf("expected only the destination file, found %d entries", len(directoryEntries))
	}
}

// TestWriteFileAtomicMissingDirectory verifies failures leave nothing behind.
func TestWriteFileAtomicMissingDirectory(testingHandle *testing.T) {
	destinationPath := filepath.Join(testingHandle.TempDir(), "missing", output.DefaultDestination)
	if writeError := output.WriteFileAtomic(destinationPath, []byte(renderedContent)); writeError == nil {
		testingHandle.Fatalf("expected error for missing directory")
	}
	if _, statError := os.Stat(destinationPath); !os.IsNotExist(statError) {
		testingHandle.Fatalf("destination must not exist after failure")
	}
}

// TestWriteFileAtomicOntoDirectory verifies a failed rename keeps the destination and removes the temp file.
func TestWriteFileAtomicOntoDirectory(testingHandle *testing.T) {
	parentDirectory := testingHandle.TempDir()
	destinationPath := filepath.Join(parentDirectory, "occupied")
	if mkdirError := os.Mkdir(destinationPath, 0o755); mkdirError != nil {
		testingHandle.Fatalf("mkdir: %v", mkdirError)
	}
	if writeError := output.WriteFileAtomic(destinationPath, []byte(renderedContent)); writeError == nil {
		testingHandle.Fatalf("expected error when destination is a directory")
	}
	directoryEntries, listError := os.ReadDir(parentDirectory)
	if listError != nil {
		testingHandle.Fatalf("listing directory: %v", listError)
	}
	if len(directoryEntries) != 1 {
		testingHandle.Fatalf("temporary file was not cleaned up: %d entries", len(directoryEntries))
	}
}

// TestWriteDestinationStandardOutput verifies "-" writes to the provided stream.
func TestWriteDestinationStandardOutput(testingHandle *testing.T) {
	var standardOutput bytes.Buffer
	if writeError := output.WriteDestination("-", []byte(renderedContent), &standardOutput); writeError != nil {
		testingHandle.Fatalf("WriteDestination error: %v", writeError)
	}
	if standardOutput.String() != renderedContent {
		testingHandle.Fatalf("expected %q, got %q", renderedContent, standardOutput.String())
	}
}
