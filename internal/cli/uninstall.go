package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/auscope/internal/utils"
)

const (
	yesFlagDescription        = "remove without asking for confirmation"
	uninstallQuestion         = "Are you sure you want to uninstall " + utils.ApplicationName + "?"
	uninstallCancelledMessage = "Uninstall cancelled."
	uninstalledMessageFormat  = "Removed %s."
)

// createUninstallCommand returns the uninstall subcommand.
func createUninstallCommand(app *application) *cobra.Command {
	var confirmed bool

	uninstallCommand := &cobra.Command{
		Use:   uninstallUse,
		Short: uninstallShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return app.runUninstall(confirmed)
		},
	}

	registerBooleanFlag(uninstallCommand.Flags(), &confirmed, yesFlagName, yesFlagShorthand, false, yesFlagDescription)
	return uninstallCommand
}

// runUninstall removes the configuration directory after confirmation.
func (app *application) runUninstall(confirmed bool) error {
	if !confirmed {
		if !app.interactive() {
			return errNoTerminalForConfirmation
		}
		answer, promptError := app.dependencies.Prompter.Confirm(uninstallQuestion)
		if promptError != nil {
			return promptError
		}
		if !answer {
			app.reporter.Info(uninstallCancelledMessage)
			return nil
		}
	}
	if removeError := app.store.Remove(); removeError != nil {
		return removeError
	}
	app.reporter.Succeed(fmt.Sprintf(uninstalledMessageFormat, app.store.Directory()))
	return nil
}
