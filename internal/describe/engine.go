// Package describe produces one-to-two-sentence descriptions for repository
// directories and files from their paths alone.
package describe

import (
	"fmt"
	"path"
	"strings"

	"github.com/temirov/annotree/internal/types"
	"github.com/temirov/annotree/internal/utils"
)

const (
	rootDirectoryDescription = "Root of the repository containing all project workspaces and configuration."
	genericDirectoryTemplate = "Directory grouping the %s resources within the project structure."
)

// Engine describes directories and files. The zero value is not usable; build
// one with NewEngine. An Engine is read-only after construction and safe for
// concurrent use.
type Engine struct {
	directoryDescriptions map[string]string
	fileDescriptions      map[string]string
}

// Option customizes an Engine.
type Option func(engine *Engine)

// WithDirectoryDescriptions overlays curated directory descriptions keyed by
// repository-relative directory path. Entries replace built-in ones with the
// same key.
func WithDirectoryDescriptions(descriptions map[string]string) Option {
	return func(engine *Engine) {
		for directoryPath, description := range descriptions {
			normalizedPath := strings.Trim(utils.NormalizeSeparators(directoryPath), types.PathSeparator)
			if normalizedPath == types.RootDirectoryName {
				normalizedPath = types.RootDirectoryPath
			}
			engine.directoryDescriptions[normalizedPath] = description
		}
	}
}

// WithFileDescriptions overlays curated file descriptions keyed by exact file name.
func WithFileDescriptions(descriptions map[string]string) Option {
	return func(engine *Engine) {
		for fileName, description := range descriptions {
			engine.fileDescriptions[fileName] = description
		}
	}
}

// NewEngine returns an Engine seeded with the built-in curated tables.
func NewEngine(options ...Option) *Engine {
	engine := &Engine{
		directoryDescriptions: DefaultDirectoryDescriptions(),
		fileDescriptions:      DefaultFileDescriptions(),
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// DescribeDirectory returns the description of the directory at the given
// repository-relative path. The root is addressed by the empty path.
func (engine *Engine) DescribeDirectory(directoryPath string) string {
	if description, found := engine.directoryDescriptions[directoryPath]; found {
		return description
	}
	if directoryPath == types.RootDirectoryPath {
		return rootDirectoryDescription
	}
	return fmt.Sprintf(genericDirectoryTemplate, utils.Humanize(path.Base(directoryPath)))
}

// DescribeFile returns the description of the file fileName located at fullPath.
// Every input yields a non-empty sentence.
func (engine *Engine) DescribeFile(fullPath string, fileName string) string {
	if description, found := engine.fileDescriptions[fileName]; found {
		return description
	}
	return firstMatch(extensionRules, newFileContext(fullPath, fileName))
}
