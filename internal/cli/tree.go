package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/auscope/internal/config"
	"github.com/temirov/auscope/internal/tree"
	"github.com/temirov/auscope/internal/types"
	"github.com/temirov/auscope/internal/utils"
)

const (
	noFilesFoundFormat = `No "%s" files were found in "%s"`
	foundFilesFormat   = "Found %d %s."
	copiedTreeMessage  = "Copied the tree to the clipboard."
	errorCopyFormat    = "copy tree to clipboard: %w"
)

// scanOptions holds the flags shared by commands that scan a directory.
type scanOptions struct {
	fileType           string
	projectDirectory   string
	componentDirectory string
}

func addScanFlags(command *cobra.Command, options *scanOptions, withDirectories bool) {
	command.Flags().StringVarP(&options.fileType, typeFlagName, typeFlagShorthand, string(types.FileTypeProject), typeFlagDescription)
	if withDirectories {
		command.Flags().StringVarP(&options.projectDirectory, projectDirectoryFlagName, projectDirectoryShorthand, "", projectFlagDescription)
		command.Flags().StringVarP(&options.componentDirectory, componentDirectoryName, componentDirectoryShort, "", componentFlagDescription)
	}
}

// directoryFor returns the flag override for fileType or the configured directory.
func (options scanOptions) directoryFor(fileType types.FileType, configuration config.Configuration) string {
	override := options.projectDirectory
	if fileType == types.FileTypeComponent {
		override = options.componentDirectory
	}
	if override != "" {
		return override
	}
	return configuration.DirectoryFor(fileType)
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(app *application) *cobra.Command {
	var options scanOptions
	var limitValue string
	var copyEnabled bool

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			fileType, typeError := parseType(options.fileType)
			if typeError != nil {
				return typeError
			}
			limit, limitError := parseLimit(limitValue)
			if limitError != nil {
				return limitError
			}
			configuration, configurationError := app.configuration()
			if configurationError != nil {
				return configurationError
			}
			return app.runTree(fileType, options.directoryFor(fileType, configuration), limit, copyEnabled)
		},
	}

	addScanFlags(treeCommand, &options, true)
	treeCommand.Flags().StringVarP(&limitValue, limitFlagName, limitFlagShorthand, "", limitFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &copyEnabled, copyFlagName, "", false, copyFlagDescription)
	return treeCommand
}

// runTree scans directory and prints the resulting tree.
func (app *application) runTree(fileType types.FileType, directory string, limit int, copyEnabled bool) error {
	app.logger.Debug("scanning", zap.String("type", string(fileType)), zap.String("directory", directory), zap.Int("limit", limit))
	filePaths, scanError := app.scanner.Scan(fileType.Extension(), directory, limit)
	if scanError != nil {
		return scanError
	}
	if len(filePaths) == 0 {
		app.reporter.Info(fmt.Sprintf(noFilesFoundFormat, fileType, directory))
		return nil
	}
	app.reporter.Succeed(fmt.Sprintf(foundFilesFormat, len(filePaths), utils.Plural(len(filePaths), string(fileType), "")))

	root := tree.Build(filePaths)
	if _, writeError := fmt.Fprintln(app.dependencies.Stdout, tree.Render(root, app.treeStyle())); writeError != nil {
		return writeError
	}
	if !copyEnabled {
		return nil
	}
	if copyError := app.dependencies.Copier.Copy(tree.Render(root, tree.PlainStyle())); copyError != nil {
		return fmt.Errorf(errorCopyFormat, copyError)
	}
	app.reporter.Info(copiedTreeMessage)
	return nil
}
