package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/annotree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	// HomeDirectory overrides the user's home directory when locating the global file.
	HomeDirectory string
}

// ApplicationConfiguration holds the defaults a run starts from before flags apply.
type ApplicationConfiguration struct {
	Output          string                   `mapstructure:"output"`
	Input           string                   `mapstructure:"input"`
	Directory       string                   `mapstructure:"directory"`
	Exclude         []string                 `mapstructure:"exclude"`
	DefaultExcludes *bool                    `mapstructure:"default_excludes"`
	UseIgnoreFile   *bool                    `mapstructure:"use_ignore"`
	Clipboard       *bool                    `mapstructure:"clipboard"`
	Tokens          TokenConfiguration       `mapstructure:"tokens"`
	Descriptions    DescriptionConfiguration `mapstructure:"descriptions"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// DescriptionConfiguration adds or replaces curated descriptions. Entries are
// lists rather than maps because viper splits map keys on dots.
type DescriptionConfiguration struct {
	Directories []DirectoryDescription `mapstructure:"directories" yaml:"directories"`
	Files       []FileDescription      `mapstructure:"files" yaml:"files"`
}

// DirectoryDescription describes the directory at a repository-relative path.
type DirectoryDescription struct {
	Path        string `mapstructure:"path" yaml:"path"`
	Description string `mapstructure:"description" yaml:"description"`
}

// FileDescription describes every file with an exact name.
type FileDescription struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Description string `mapstructure:"description" yaml:"description"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}
	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	if options.ExplicitFilePath != "" {
		if _, statErr := os.Stat(localPath); statErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("configuration file %s: %w", localPath, statErr)
		}
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(configurationFileType)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
// Scalars in override win when set; exclusion lists replace; description lists
// append so later entries take precedence for the same key.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Input != "" {
		result.Input = override.Input
	}
	if override.Directory != "" {
		result.Directory = override.Directory
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	if override.DefaultExcludes != nil {
		result.DefaultExcludes = cloneBool(override.DefaultExcludes)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	result.Descriptions = result.Descriptions.merge(override.Descriptions)
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func (config DescriptionConfiguration) merge(override DescriptionConfiguration) DescriptionConfiguration {
	return DescriptionConfiguration{
		Directories: append(append([]DirectoryDescription{}, config.Directories...), override.Directories...),
		Files:       append(append([]FileDescription{}, config.Files...), override.Files...),
	}
}

// DirectoryTable returns the configured directory descriptions keyed by path.
// Entries without a path or description are ignored.
func (config DescriptionConfiguration) DirectoryTable() map[string]string {
	table := make(map[string]string, len(config.Directories))
	for _, entry := range config.Directories {
		if entry.Path == "" || entry.Description == "" {
			continue
		}
		table[entry.Path] = entry.Description
	}
	return table
}

// FileTable returns the configured file descriptions keyed by file name.
// Entries without a name or description are ignored.
func (config DescriptionConfiguration) FileTable() map[string]string {
	table := make(map[string]string, len(config.Files))
	for _, entry := range config.Files {
		if entry.Name == "" || entry.Description == "" {
			continue
		}
		table[entry.Name] = entry.Description
	}
	return table
}

// BoolValue returns the pointed-to value or fallback when unset.
func BoolValue(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
