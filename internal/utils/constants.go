package utils

const (
	// EmptyString represents a reusable empty string constant.
	EmptyString = ""

	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".annotree.yaml"
	// GlobalConfigDirectoryName is the directory under the home directory holding global configuration.
	GlobalConfigDirectoryName = ".annotree"
	// IgnoreFileName lists extra exclusion patterns in the repository directory.
	IgnoreFileName = ".annotreeignore"
	// GlobalConfigFileName is the name of the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"

	// StandardStreamPath selects standard input or output instead of a file.
	StandardStreamPath = "-"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes the fatal log line of a failed run.
	ApplicationExecutionFailedMessage = "annotree failed"
)
