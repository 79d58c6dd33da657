package utils

// LoggerInitializationFailedMessageFormat reports a logger construction failure at startup.
const LoggerInitializationFailedMessageFormat = "initializing logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal CLI errors.
const ApplicationExecutionFailedMessage = "application execution failed"

// GlobalConfigDirectoryName is the per-user configuration directory under the home directory.
const GlobalConfigDirectoryName = ".lstree"

// ConfigFileName is the configuration file name used in both global and local locations.
const ConfigFileName = ".lstree.yaml"

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"
