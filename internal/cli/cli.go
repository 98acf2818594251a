// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/annotree/internal/commands"
	"github.com/temirov/annotree/internal/config"
	"github.com/temirov/annotree/internal/describe"
	"github.com/temirov/annotree/internal/lister"
	"github.com/temirov/annotree/internal/output"
	"github.com/temirov/annotree/internal/services/clipboard"
	"github.com/temirov/annotree/internal/tokenizer"
	"github.com/temirov/annotree/internal/types"
	"github.com/temirov/annotree/internal/utils"
)

const (
	outputFlagName            = "output"
	outputFlagShorthand       = "o"
	inputFlagName             = "input"
	inputFlagShorthand        = "i"
	directoryFlagName         = "directory"
	directoryFlagShorthand    = "C"
	exclusionFlagName         = "exclude"
	exclusionFlagShorthand    = "e"
	noDefaultExcludesFlagName = "no-default-excludes"
	noIgnoreFlagName          = "no-ignore"
	configFlagName            = "config"
	copyFlagName              = "copy"
	tokensFlagName            = "tokens"
	modelFlagName             = "model"
	verboseFlagName           = "verbose"
	versionFlagName           = "version"
	globalFlagName            = "global"
	forceFlagName             = "force"

	defaultDirectory = "."
	versionTemplate  = "annotree version: %s\n"
	initTemplate     = "configuration written to %s\n"

	rootUse              = "annotree"
	rootShortDescription = "annotated repository tree generator"
	rootLongDescription  = `annotree lists the files tracked by git, rebuilds the directory hierarchy,
and writes it as an ASCII tree where every directory and file carries a short description.
Descriptions come from curated tables, configurable in .annotree.yaml, and from rules keyed
on file extensions and well-known directory names.`

	rootUsageExample = `  # Write project_file_tree_with_descriptions.txt for the current repository
  annotree

  # Print the tree for another repository, skipping generated code
  annotree -C ../service -e gen/ -o -

  # Describe an explicit path list and copy the result
  git ls-files | annotree -i - --copy`

	initUse              = "init"
	initShortDescription = "write a starter configuration file"
	initLongDescription  = `Write .annotree.yaml in the working directory, or ~/.annotree/config.yaml with --global.
The file includes the built-in curated descriptions so they can be edited in place.`

	outputFlagDescription            = "destination file, or - for standard output"
	inputFlagDescription             = "read the path list from a file, or - for standard input, instead of git ls-files"
	directoryFlagDescription         = "repository directory to list with git"
	exclusionFlagDescription         = "exclude path pattern"
	noDefaultExcludesFlagDescription = "do not apply the built-in exclusion patterns"
	noIgnoreFlagDescription          = "do not read " + utils.IgnoreFileName
	configFlagDescription            = "configuration file replacing the local " + utils.ConfigFileName
	copyFlagDescription              = "copy the rendered tree to the clipboard"
	tokensFlagDescription            = "count the tokens of the rendered tree"
	modelFlagDescription             = "tokenizer model to use for token counting"
	verboseFlagDescription           = "enable debug logging"
	versionFlagDescription           = "display application version"
	globalFlagDescription            = "write the global configuration instead of the local one"
	forceFlagDescription             = "overwrite an existing configuration file"

	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	loadConfigurationErrorFormat = "loading configuration: %w"
	loadExclusionsErrorFormat    = "loading exclusion patterns: %w"

	generationSummaryMessage    = "wrote annotated tree"
	tokenizerUnavailableMessage = "token counting disabled"
	logFieldDestination         = "destination"
	logFieldDirectories         = "directories"
	logFieldFiles               = "files"
	logFieldLines               = "lines"
	logFieldSize                = "size"
	logFieldTokens              = "tokens"
	logFieldModel               = "model"
	logFieldSkipped             = "skipped"
	logFieldCopied              = "copied"
)

// Dependencies carries the process-level collaborators of the CLI.
// Zero fields fall back to the real process resources.
type Dependencies struct {
	Logger           *zap.Logger
	LogLevel         zap.AtomicLevel
	StandardInput    io.Reader
	StandardOutput   io.Writer
	WorkingDirectory string
	HomeDirectory    string
	Copier           clipboard.Copier
	NewTokenCounter  func(cfg tokenizer.Config) (tokenizer.Counter, string, error)
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.LogLevel == (zap.AtomicLevel{}) {
		dependencies.LogLevel = zap.NewAtomicLevel()
	}
	if dependencies.StandardInput == nil {
		dependencies.StandardInput = os.Stdin
	}
	if dependencies.StandardOutput == nil {
		dependencies.StandardOutput = os.Stdout
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.NewTokenCounter == nil {
		dependencies.NewTokenCounter = tokenizer.NewCounter
	}
	return dependencies
}

// Execute runs the annotree application with the process arguments.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := NewRootCommand(Dependencies{Logger: logger, LogLevel: logLevel})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(context.Background())
}

// generateOptions stores the values of the generation flags.
type generateOptions struct {
	outputPath        string
	inputPath         string
	directory         string
	exclusionPatterns []string
	noDefaultExcludes bool
	noIgnoreFile      bool
	configPath        string
	copyToClipboard   bool
	tokensEnabled     bool
	tokenizerModel    string
	verbose           bool
	showVersion       bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	var options generateOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if options.verbose {
				dependencies.LogLevel.SetLevel(zapcore.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(dependencies.StandardOutput, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runGenerate(command, options, dependencies)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, output.DefaultDestination, outputFlagDescription)
	flagSet.StringVarP(&options.inputPath, inputFlagName, inputFlagShorthand, "", inputFlagDescription)
	flagSet.StringVarP(&options.directory, directoryFlagName, directoryFlagShorthand, defaultDirectory, directoryFlagDescription)
	flagSet.StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagShorthand, nil, exclusionFlagDescription)
	registerBooleanFlag(flagSet, &options.noDefaultExcludes, noDefaultExcludesFlagName, false, noDefaultExcludesFlagDescription)
	registerBooleanFlag(flagSet, &options.noIgnoreFile, noIgnoreFlagName, false, noIgnoreFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flagSet, &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	registerBooleanFlag(flagSet, &options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	flagSet.StringVar(&options.tokenizerModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	registerBooleanFlag(flagSet, &options.showVersion, versionFlagName, false, versionFlagDescription)
	registerBooleanFlag(rootCommand.PersistentFlags(), &options.verbose, verboseFlagName, false, verboseFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies Dependencies) *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            forceOverwrite,
				WorkingDirectory: dependencies.WorkingDirectory,
				HomeDirectory:    dependencies.HomeDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(dependencies.StandardOutput, initTemplate, destinationPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &globalTarget, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runGenerate resolves flags against configuration and runs the pipeline.
// Explicit flags win over configuration, which wins over built-in defaults.
func runGenerate(command *cobra.Command, options generateOptions, dependencies Dependencies) error {
	logger := dependencies.Logger
	workingDirectory := dependencies.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
		HomeDirectory:    dependencies.HomeDirectory,
	})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, loadError)
	}

	flags := command.Flags()
	destination := resolveString(flags.Changed(outputFlagName), options.outputPath, applicationConfiguration.Output)
	inputPath := resolveString(flags.Changed(inputFlagName), options.inputPath, applicationConfiguration.Input)
	repositoryDirectory := resolveString(flags.Changed(directoryFlagName), options.directory, applicationConfiguration.Directory)
	includeDefaults := !resolveBool(flags.Changed(noDefaultExcludesFlagName), options.noDefaultExcludes, invertBool(applicationConfiguration.DefaultExcludes), false)
	useIgnoreFile := !resolveBool(flags.Changed(noIgnoreFlagName), options.noIgnoreFile, invertBool(applicationConfiguration.UseIgnoreFile), false)
	copyToClipboard := resolveBool(flags.Changed(copyFlagName), options.copyToClipboard, applicationConfiguration.Clipboard, false)
	tokensEnabled := resolveBool(flags.Changed(tokensFlagName), options.tokensEnabled, applicationConfiguration.Tokens.Enabled, false)
	tokenizerModel := resolveString(flags.Changed(modelFlagName), options.tokenizerModel, applicationConfiguration.Tokens.Model)

	repositoryDirectory = resolveAgainst(workingDirectory, repositoryDirectory)
	if destination != utils.StandardStreamPath {
		destination = resolveAgainst(workingDirectory, destination)
	}

	exclusionPatterns := append(append([]string{}, applicationConfiguration.Exclude...), options.exclusionPatterns...)
	combinedPatterns, patternsError := config.LoadCombinedIgnorePatterns(repositoryDirectory, exclusionPatterns, useIgnoreFile)
	if patternsError != nil {
		return fmt.Errorf(loadExclusionsErrorFormat, patternsError)
	}

	var pathLister lister.Lister = lister.GitLister{Directory: repositoryDirectory}
	if inputPath != "" {
		if inputPath != utils.StandardStreamPath {
			inputPath = resolveAgainst(workingDirectory, inputPath)
		}
		pathLister = lister.FileLister{Path: inputPath, Input: dependencies.StandardInput}
	}

	pipelineOptions := commands.GenerateOptions{
		Lister: pathLister,
		Filter: lister.NewFilter(includeDefaults, combinedPatterns),
		Describer: describe.NewEngine(
			describe.WithDirectoryDescriptions(applicationConfiguration.Descriptions.DirectoryTable()),
			describe.WithFileDescriptions(applicationConfiguration.Descriptions.FileTable()),
		),
		Destination:    destination,
		StandardOutput: dependencies.StandardOutput,
		Logger:         logger,
	}
	if copyToClipboard {
		pipelineOptions.Copier = dependencies.Copier
	}
	if tokensEnabled {
		counter, _, counterError := dependencies.NewTokenCounter(tokenizer.Config{Model: tokenizerModel})
		if counterError != nil {
			logger.Warn(tokenizerUnavailableMessage, zap.Error(counterError))
		} else {
			pipelineOptions.TokenCounter = counter
		}
	}

	result, generateError := commands.Generate(command.Context(), pipelineOptions)
	if generateError != nil {
		return generateError
	}
	logGenerationSummary(logger, result)
	return nil
}

func logGenerationSummary(logger *zap.Logger, result types.GenerationResult) {
	fields := []zap.Field{
		zap.String(logFieldDestination, result.Destination),
		zap.String(logFieldDirectories, utils.FormatCount(result.Tree.Directories, "directory", "directories")),
		zap.String(logFieldFiles, utils.FormatCount(result.Tree.Files, "file", "files")),
		zap.Int(logFieldLines, result.Lines),
		zap.String(logFieldSize, utils.FormatFileSize(result.Bytes)),
	}
	if result.TokenModel != "" {
		fields = append(fields, zap.Int(logFieldTokens, result.Tokens), zap.String(logFieldModel, result.TokenModel))
	}
	if result.SkippedPaths > 0 {
		fields = append(fields, zap.Int(logFieldSkipped, result.SkippedPaths))
	}
	if result.Copied {
		fields = append(fields, zap.Bool(logFieldCopied, true))
	}
	logger.Info(generationSummaryMessage, fields...)
}

// resolveString returns the flag value when the flag was given, otherwise the
// configured value when set, otherwise the flag default.
func resolveString(flagChanged bool, flagValue string, configuredValue string) string {
	if flagChanged || configuredValue == "" {
		return flagValue
	}
	return configuredValue
}

func resolveBool(flagChanged bool, flagValue bool, configuredValue *bool, fallback bool) bool {
	if flagChanged {
		return flagValue
	}
	return config.BoolValue(configuredValue, fallback)
}

// invertBool turns a positive configuration switch into the negative flag sense.
func invertBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	inverted := !*value
	return &inverted
}

func resolveAgainst(baseDirectory string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDirectory, path)
}
