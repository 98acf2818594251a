package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	gitExecutableName = "git"

	// errorGitCommandFormat reports a failed git invocation together with its stderr.
	errorGitCommandFormat = "git %s: %w: %s"
	// errorGitDirectoryMissingFormat reports that no repository was found.
	errorGitDirectoryMissingFormat = ".git directory not found in or above %s"
)

// RunGit executes git with the provided arguments inside workingDirectory and
// returns its standard output. A non-zero exit is returned as an error carrying
// the trimmed standard error text.
//
// #nosec G204
func RunGit(ctx context.Context, workingDirectory string, arguments ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	gitCommand := exec.CommandContext(ctx, gitExecutableName, arguments...)
	gitCommand.Dir = workingDirectory
	var standardError bytes.Buffer
	gitCommand.Stderr = &standardError
	standardOutput, runError := gitCommand.Output()
	if runError != nil {
		return nil, fmt.Errorf(errorGitCommandFormat, strings.Join(arguments, " "), runError, strings.TrimSpace(standardError.String()))
	}
	return standardOutput, nil
}

// FindGitDirectory searches upward from the provided starting directory
// until it locates a directory containing the .git folder and returns
// the path to that directory.
func FindGitDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, errorAbsolute := filepath.Abs(startDirectory)
	if errorAbsolute != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", startDirectory, errorAbsolute)
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitPath := filepath.Join(currentDirectory, GitDirectoryName)
		if _, errorStat := os.Stat(gitPath); errorStat == nil {
			return currentDirectory, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return "", fmt.Errorf(errorGitDirectoryMissingFormat, absoluteStartDirectory)
}
