package utils

import (
	"context"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion  = "unknown"
	develBuildLabel = "(devel)"
)

var versionDescribeArguments = [][]string{
	{"describe", "--tags", "--exact-match"},
	{"describe", "--tags", "--long", "--dirty"},
}

// GetApplicationVersion attempts to determine the application version using various methods.
// It checks Go build info first, then falls back to git describe in the enclosing repository.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != develBuildLabel {
		return buildInfo.Main.Version
	}

	gitDirectoryPath, gitDirectoryError := FindGitDirectory(".")
	if gitDirectoryError != nil {
		return unknownVersion
	}
	for _, describeArguments := range versionDescribeArguments {
		describeOutput, describeError := RunGit(context.Background(), gitDirectoryPath, describeArguments...)
		if describeError == nil && len(describeOutput) > 0 {
			return strings.TrimSpace(string(describeOutput))
		}
	}
	return unknownVersion
}
