// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/lstree/internal/config"
	"github.com/temirov/lstree/internal/services/clipboard"
	"github.com/temirov/lstree/internal/utils"
	"github.com/temirov/lstree/output"
	"github.com/temirov/lstree/tree"
)

const (
	rootUse              = "lstree [paths...]"
	rootShortDescription = "render filtered directory trees"
	rootLongDescription  = `lstree renders a directory subtree as an indented ASCII diagram.
Directories and files can be filtered by excluded names and extensions, or
restricted to include-only directory specs and extensions. Filter defaults are
read from configuration files and extended by flags.`
	rootUsageExample = `  # Render the current directory without build output
  lstree -e node_modules -e dist

  # Show only Go and Markdown files beneath src/lib
  lstree -d src/lib -i go -i md .`

	initUse              = "init"
	initShortDescription = "write a starter configuration file"

	excludeDirFlagName       = "exclude-dir"
	excludeDirFlagShorthand  = "e"
	excludeDirDescription    = "directory name to exclude"
	excludeExtFlagName       = "exclude-ext"
	excludeExtFlagShorthand  = "x"
	excludeExtDescription    = "file extension to exclude"
	includeDirFlagName       = "include-dir"
	includeDirFlagShorthand  = "d"
	includeDirDescription    = "directory name or subpath to include exclusively"
	includeExtFlagName       = "include-ext"
	includeExtFlagShorthand  = "i"
	includeExtDescription    = "file extension to include exclusively"
	noRootFlagName           = "no-root"
	noRootFlagDescription    = "replace the root path line with a '/' placeholder"
	copyFlagName             = "copy"
	copyFlagDescription      = "copy the rendered tree to the system clipboard"
	configFlagName           = "config"
	configFlagDescription    = "path to the configuration file"
	versionFlagName          = "version"
	versionFlagDescription   = "display application version"
	initForceFlagName        = "force"
	initForceFlagDescription = "overwrite an existing configuration file"
	initGlobalFlagName       = "global"
	initGlobalDescription    = "write the global configuration instead of the local one"

	versionTemplate               = "lstree version: %s\n"
	defaultPath                   = "."
	initializedConfigMessage      = "Configuration written to %s\n"
	clipboardCopyFailedFormat     = "copying rendered tree to clipboard: %w"
	configurationLoadFailedFormat = "loading configuration: %w"
)

// Execute runs the lstree application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeCopyFlagArguments(os.Args[1:]))
	return rootCommand.Execute()
}

// filterOptions stores filter values collected from flags.
type filterOptions struct {
	excludedDirectories []string
	excludedExtensions  []string
	includedDirectories []string
	includedExtensions  []string
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var filterConfiguration filterOptions
	var suppressRootLine bool
	var copyEnabled bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runRender(command, arguments, filterConfiguration, suppressRootLine, copyEnabled, configurationPath)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringArrayVarP(&filterConfiguration.excludedDirectories, excludeDirFlagName, excludeDirFlagShorthand, nil, excludeDirDescription)
	rootCommand.Flags().StringArrayVarP(&filterConfiguration.excludedExtensions, excludeExtFlagName, excludeExtFlagShorthand, nil, excludeExtDescription)
	rootCommand.Flags().StringArrayVarP(&filterConfiguration.includedDirectories, includeDirFlagName, includeDirFlagShorthand, nil, includeDirDescription)
	rootCommand.Flags().StringArrayVarP(&filterConfiguration.includedExtensions, includeExtFlagName, includeExtFlagShorthand, nil, includeExtDescription)
	rootCommand.Flags().BoolVar(&suppressRootLine, noRootFlagName, false, noRootFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	registerCopyFlag(rootCommand.Flags(), &copyEnabled)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runRender renders each requested path with one configured generator.
func runRender(
	command *cobra.Command,
	arguments []string,
	filterConfiguration filterOptions,
	suppressRootLine bool,
	copyEnabled bool,
	configurationPath string,
) error {
	if len(arguments) == 0 {
		arguments = []string{defaultPath}
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: configurationPath,
	})
	if configurationError != nil {
		return fmt.Errorf(configurationLoadFailedFormat, configurationError)
	}

	generator := tree.NewGenerator().
		ExcludeDirectories(applicationConfiguration.Filters.ExcludeDirectories...).
		ExcludeExtensions(applicationConfiguration.Filters.ExcludeExtensions...).
		IncludeOnlyDirectories(applicationConfiguration.Filters.IncludeDirectories...).
		IncludeOnlyExtensions(applicationConfiguration.Filters.IncludeExtensions...).
		ExcludeDirectories(filterConfiguration.excludedDirectories...).
		ExcludeExtensions(filterConfiguration.excludedExtensions...).
		IncludeOnlyDirectories(filterConfiguration.includedDirectories...).
		IncludeOnlyExtensions(filterConfiguration.includedExtensions...)

	printRootLine := true
	if applicationConfiguration.Output.PrintRoot != nil {
		printRootLine = *applicationConfiguration.Output.PrintRoot
	}
	if suppressRootLine {
		printRootLine = false
	}

	copyRequested := copyEnabled
	if !command.Flags().Changed(copyFlagName) && applicationConfiguration.Output.Clipboard != nil {
		copyRequested = *applicationConfiguration.Output.Clipboard
	}

	renderedTexts := make([]string, 0, len(arguments))
	for _, pathArgument := range arguments {
		generationResult, generationError := generator.GenerateWithOptions(pathArgument, tree.Options{
			PrintRootLine: printRootLine,
		})
		if generationError != nil {
			return generationError
		}
		fmt.Println(generationResult.Text())
		renderedTexts = append(renderedTexts, generationResult.Text())
	}

	if copyRequested {
		copier := clipboard.NewService()
		if copyError := copier.Copy(strings.Join(renderedTexts, output.LineSeparator())); copyError != nil {
			return fmt.Errorf(clipboardCopyFailedFormat, copyError)
		}
	}
	return nil
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			destinationPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf(initializedConfigMessage, destinationPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, initGlobalFlagName, false, initGlobalDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}
