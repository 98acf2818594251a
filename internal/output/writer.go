package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/temirov/annotree/internal/utils"
)

const (
	// DefaultDestination is the file the annotated tree is written to when no destination is configured.
	DefaultDestination = "project_file_tree_with_descriptions.txt"

	temporaryFilePattern = ".annotree-*.tmp"
	outputFilePermission = 0o644

	errorCreateTemporaryFormat = "failed to create temp file in %s: %w"
	errorWriteTemporaryFormat  = "failed to write temp file %s: %w"
	errorSyncTemporaryFormat   = "failed to sync temp file %s: %w"
	errorCloseTemporaryFormat  = "failed to close temp file %s: %w"
	errorChmodTemporaryFormat  = "failed to set permissions on %s: %w"
	errorReplaceFormat         = "failed to replace %s: %w"
	errorWriteStreamFormat     = "failed to write output: %w"
)

// WriteDestination writes data to destination, or to standardOutput when the
// destination is "-".
func WriteDestination(destination string, data []byte, standardOutput io.Writer) error {
	if destination == utils.StandardStreamPath {
		if _, writeError := standardOutput.Write(data); writeError != nil {
			return fmt.Errorf(errorWriteStreamFormat, writeError)
		}
		return nil
	}
	return WriteFileAtomic(destination, data)
}

// WriteFileAtomic replaces the file at path with data. The content is written
// to a temporary file in the same directory, synced, and renamed over path, so
// readers observe either the previous file or the complete new one. On failure
// the temporary file is removed and path is left untouched.
func WriteFileAtomic(path string, data []byte) (writeError error) {
	destinationDirectory := filepath.Dir(path)
	temporaryFile, createError := os.CreateTemp(destinationDirectory, temporaryFilePattern)
	if createError != nil {
		return fmt.Errorf(errorCreateTemporaryFormat, destinationDirectory, createError)
	}
	temporaryPath := temporaryFile.Name()
	defer func() {
		if writeError != nil {
			temporaryFile.Close()
			os.Remove(temporaryPath)
		}
	}()

	if _, writeError = temporaryFile.Write(data); writeError != nil {
		return fmt.Errorf(errorWriteTemporaryFormat, temporaryPath, writeError)
	}
	if writeError = temporaryFile.Chmod(outputFilePermission); writeError != nil {
		return fmt.Errorf(errorChmodTemporaryFormat, temporaryPath, writeError)
	}
	if writeError = temporaryFile.Sync(); writeError != nil {
		return fmt.Errorf(errorSyncTemporaryFormat, temporaryPath, writeError)
	}
	if writeError = temporaryFile.Close(); writeError != nil {
		return fmt.Errorf(errorCloseTemporaryFormat, temporaryPath, writeError)
	}
	if writeError = os.Rename(temporaryPath, path); writeError != nil {
		return fmt.Errorf(errorReplaceFormat, path, writeError)
	}
	return nil
}
