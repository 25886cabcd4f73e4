package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/auscope/internal/config"
)

const (
	resetFlagDescription            = "reset the configuration to the default values"
	configProjectFlagDescription    = "set the directory to scan for Logic projects"
	configComponentFlagDescription  = "set the directory to scan for components"
	configurationResetMessageFormat = "Configuration reset in %s."
	configurationSavedMessageFormat = "Configuration saved to %s."
	configurationIndentPrefix       = ""
	configurationIndentSpacer       = "  "
	errorPrintConfigurationFormat   = "print configuration: %w"
)

// createConfigCommand returns the config subcommand.
func createConfigCommand(app *application) *cobra.Command {
	var projectDirectory string
	var componentDirectory string
	var resetEnabled bool

	configCommand := &cobra.Command{
		Use:     configUse,
		Short:   configShortDescription,
		Long:    configLongDescription,
		Example: configUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return app.runConfig(projectDirectory, componentDirectory, resetEnabled)
		},
	}

	configCommand.Flags().StringVarP(&projectDirectory, projectDirectoryFlagName, projectDirectoryShorthand, "", configProjectFlagDescription)
	configCommand.Flags().StringVarP(&componentDirectory, componentDirectoryName, componentDirectoryShort, "", configComponentFlagDescription)
	registerBooleanFlag(configCommand.Flags(), &resetEnabled, resetFlagName, resetFlagShorthand, false, resetFlagDescription)
	return configCommand
}

// runConfig resets or updates the stored configuration and prints the result.
func (app *application) runConfig(projectDirectory string, componentDirectory string, resetEnabled bool) error {
	var configuration config.Configuration
	var configurationError error
	switch {
	case resetEnabled:
		configuration, configurationError = app.store.Reset()
		if configurationError == nil {
			app.reporter.Succeed(fmt.Sprintf(configurationResetMessageFormat, app.store.Path()))
		}
	case projectDirectory != "" || componentDirectory != "":
		configuration, configurationError = app.store.Update(config.DirectoryUpdate(projectDirectory, componentDirectory))
		if configurationError == nil {
			app.reporter.Succeed(fmt.Sprintf(configurationSavedMessageFormat, app.store.Path()))
		}
	default:
		configuration, configurationError = app.configuration()
	}
	if configurationError != nil {
		return configurationError
	}

	encoded, encodeError := json.MarshalIndent(configuration, configurationIndentPrefix, configurationIndentSpacer)
	if encodeError != nil {
		return fmt.Errorf(errorPrintConfigurationFormat, encodeError)
	}
	_, writeError := fmt.Fprintln(app.dependencies.Stdout, string(encoded))
	return writeError
}
