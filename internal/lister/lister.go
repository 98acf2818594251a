// Package lister obtains the flat list of repository-relative paths that the
// tree is built from.
package lister

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/annotree/internal/utils"
)

const (
	lsFilesCommand        = "ls-files"
	nullTerminatedFlag    = "-z"
	currentDirectoryPath  = "."
	carriageReturn        = "\r"
	nullSeparator         = "\x00"
	maximumPathLineLength = 1024 * 1024

	errorRepositoryLookupFormat = "locate repository for %s: %w"
	errorGitListingFormat       = "list tracked files: %w"
	errorOpenInputFormat        = "open path list %s: %w"
	errorReadInputFormat        = "read path list %s: %w"
)

// Lister produces repository-relative, slash-separated file paths in source order.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// GitLister lists the files tracked by git in Directory.
type GitLister struct {
	Directory string
}

// List runs git ls-files and returns the tracked paths.
func (gitLister GitLister) List(ctx context.Context) ([]string, error) {
	workingDirectory := gitLister.Directory
	if workingDirectory == utils.EmptyString {
		workingDirectory = currentDirectoryPath
	}
	if _, lookupError := utils.FindGitDirectory(workingDirectory); lookupError != nil {
		return nil, fmt.Errorf(errorRepositoryLookupFormat, workingDirectory, lookupError)
	}
	standardOutput, gitError := utils.RunGit(ctx, workingDirectory, lsFilesCommand, nullTerminatedFlag)
	if gitError != nil {
		return nil, fmt.Errorf(errorGitListingFormat, gitError)
	}
	var paths []string
	for _, entry := range strings.Split(string(standardOutput), nullSeparator) {
		if entry != utils.EmptyString {
			paths = append(paths, entry)
		}
	}
	return paths, nil
}

// FileLister reads a newline-separated path list from Path, or from Input
// when Path is "-". Input defaults to standard input.
type FileLister struct {
	Path  string
	Input io.Reader
}

// List reads the path list, dropping blank lines and carriage returns.
func (fileLister FileLister) List(ctx context.Context) ([]string, error) {
	if fileLister.Path == utils.StandardStreamPath {
		input := fileLister.Input
		if input == nil {
			input = os.Stdin
		}
		return readPathList(ctx, fileLister.Path, input)
	}
	inputFile, openError := os.Open(fileLister.Path)
	if openError != nil {
		return nil, fmt.Errorf(errorOpenInputFormat, fileLister.Path, openError)
	}
	defer inputFile.Close()
	return readPathList(ctx, fileLister.Path, inputFile)
}

func readPathList(ctx context.Context, sourceName string, input io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, bytes.MinRead), maximumPathLineLength)
	var paths []string
	for scanner.Scan() {
		if ctx != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSuffix(scanner.Text(), carriageReturn)
		if strings.TrimSpace(line) == utils.EmptyString {
			continue
		}
		paths = append(paths, line)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf(errorReadInputFormat, sourceName, scanError)
	}
	return paths, nil
}
