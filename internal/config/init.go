package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/dedent"
	"gopkg.in/yaml.v3"

	"github.com/temirov/annotree/internal/describe"
	"github.com/temirov/annotree/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	yamlIndentation = 2
)

var defaultConfigurationTemplate = dedent.Dedent(`
	# annotree configuration. Command-line flags override these values.
	output: project_file_tree_with_descriptions.txt
	# input: paths.txt
	directory: .
	exclude: []
	default_excludes: true
	use_ignore: true
	clipboard: false
	tokens:
	  enabled: false
	  model: gpt-4o
`)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
	HomeDirectory    string
}

// DefaultConfiguration renders the starter configuration file, including the
// built-in curated description tables so they can be edited in place.
func DefaultConfiguration() (string, error) {
	descriptionDocument := struct {
		Descriptions DescriptionConfiguration `yaml:"descriptions"`
	}{Descriptions: defaultDescriptionConfiguration()}

	var encoded strings.Builder
	encoder := yaml.NewEncoder(&encoded)
	encoder.SetIndent(yamlIndentation)
	if err := encoder.Encode(descriptionDocument); err != nil {
		return "", fmt.Errorf("encode default descriptions: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("encode default descriptions: %w", err)
	}
	return strings.TrimLeft(defaultConfigurationTemplate, "\n") + encoded.String(), nil
}

func defaultDescriptionConfiguration() DescriptionConfiguration {
	var configuration DescriptionConfiguration
	directoryDescriptions := describe.DefaultDirectoryDescriptions()
	for _, directoryPath := range sortedKeys(directoryDescriptions) {
		configuration.Directories = append(configuration.Directories, DirectoryDescription{
			Path:        directoryPath,
			Description: directoryDescriptions[directoryPath],
		})
	}
	fileDescriptions := describe.DefaultFileDescriptions()
	for _, fileName := range sortedKeys(fileDescriptions) {
		configuration.Files = append(configuration.Files, FileDescription{
			Name:        fileName,
			Description: fileDescriptions[fileName],
		})
	}
	return configuration
}

func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// InitializeConfiguration writes the default configuration to the requested target.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	case InitTargetGlobal:
		homeDirectory := options.HomeDirectory
		if homeDirectory == "" {
			resolvedHome, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home directory for configuration: %w", err)
			}
			homeDirectory = resolvedHome
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		destinationPath = filepath.Join(configurationDirectory, utils.GlobalConfigFileName)
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	configurationContent, err := DefaultConfiguration()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(destinationPath, []byte(configurationContent), 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}
