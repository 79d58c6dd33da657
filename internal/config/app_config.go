// Package config loads filter and output defaults from configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/lstree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds the defaults applied before CLI flags.
type ApplicationConfiguration struct {
	Filters FilterConfiguration `mapstructure:"filters"`
	Output  OutputConfiguration `mapstructure:"output"`
}

// FilterConfiguration pre-seeds the four filter sets of a generation.
type FilterConfiguration struct {
	ExcludeDirectories []string `mapstructure:"exclude_directories"`
	ExcludeExtensions  []string `mapstructure:"exclude_extensions"`
	IncludeDirectories []string `mapstructure:"include_directories"`
	IncludeExtensions  []string `mapstructure:"include_extensions"`
}

// OutputConfiguration controls rendering and delivery defaults.
type OutputConfiguration struct {
	PrintRoot *bool `mapstructure:"print_root"`
	Clipboard *bool `mapstructure:"clipboard"`
}

// LoadApplicationConfiguration loads configuration from the global file under
// the home directory and the local file in the working directory, with local
// values overriding global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	merged.Filters = merged.Filters.deduplicated()
	return merged, nil
}

// resolveLocalConfigPath returns the local configuration path, honoring an
// explicit override.
func resolveLocalConfigPath(workingDirectory string, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

// loadConfigurationFromPath reads and decodes one configuration file. A
// missing file yields the zero configuration.
func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	if configurationPath == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInformation, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Filters = result.Filters.merge(override.Filters)
	result.Output = result.Output.merge(override.Output)
	return result
}

func (configuration FilterConfiguration) merge(override FilterConfiguration) FilterConfiguration {
	result := configuration
	if len(override.ExcludeDirectories) > 0 {
		result.ExcludeDirectories = append([]string{}, override.ExcludeDirectories...)
	}
	if len(override.ExcludeExtensions) > 0 {
		result.ExcludeExtensions = append([]string{}, override.ExcludeExtensions...)
	}
	if len(override.IncludeDirectories) > 0 {
		result.IncludeDirectories = append([]string{}, override.IncludeDirectories...)
	}
	if len(override.IncludeExtensions) > 0 {
		result.IncludeExtensions = append([]string{}, override.IncludeExtensions...)
	}
	return result
}

func (configuration FilterConfiguration) deduplicated() FilterConfiguration {
	result := configuration
	result.ExcludeDirectories = utils.DeduplicateStrings(result.ExcludeDirectories)
	result.ExcludeExtensions = utils.DeduplicateStrings(result.ExcludeExtensions)
	result.IncludeDirectories = utils.DeduplicateStrings(result.IncludeDirectories)
	result.IncludeExtensions = utils.DeduplicateStrings(result.IncludeExtensions)
	return result
}

func (configuration OutputConfiguration) merge(override OutputConfiguration) OutputConfiguration {
	result := configuration
	if override.PrintRoot != nil {
		result.PrintRoot = cloneBool(override.PrintRoot)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
