package utils

const (
	// ApplicationName is the command name and the configuration directory stem.
	ApplicationName = "auscope"
	// GlobalConfigDirectoryName is the directory below the home directory holding the configuration.
	GlobalConfigDirectoryName = "." + ApplicationName
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.json"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes errors returned by a command.
	ApplicationExecutionFailedMessage = "auscope failed"
)
