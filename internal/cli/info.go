package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/auscope/internal/component"
	"github.com/temirov/auscope/internal/output"
	"github.com/temirov/auscope/internal/types"
	"github.com/temirov/auscope/internal/utils"
)

const (
	noFilesFoundForInfoFormat = "No %s found."
	selectionMessageFormat    = "Select %s to view their information."
	invalidFormatMessage      = "invalid format value %q"
)

// createInfoCommand returns the info subcommand.
func createInfoCommand(app *application) *cobra.Command {
	var options scanOptions
	var selectAll bool
	var outputFormat string

	infoCommand := &cobra.Command{
		Use:     infoUse,
		Aliases: []string{infoAlias},
		Short:   infoShortDescription,
		Long:    infoLongDescription,
		Example: infoUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			fileType, typeError := parseType(options.fileType)
			if typeError != nil {
				return typeError
			}
			outputFormatLower := strings.ToLower(outputFormat)
			if !output.IsSupportedFormat(outputFormatLower) {
				return fmt.Errorf(invalidFormatMessage, outputFormatLower)
			}

			selectedPaths := arguments
			if len(selectedPaths) == 0 {
				scannedPaths, selectError := app.selectPaths(fileType, options, selectAll)
				if selectError != nil {
					return selectError
				}
				selectedPaths = scannedPaths
			}
			if len(selectedPaths) == 0 {
				return nil
			}
			return app.runInfo(command.Context(), fileType, selectedPaths, outputFormatLower)
		},
	}

	addScanFlags(infoCommand, &options, true)
	registerBooleanFlag(infoCommand.Flags(), &selectAll, allFlagName, "", false, allFlagDescription)
	infoCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	return infoCommand
}

// selectPaths scans the directory for fileType and narrows the result to the user selection.
func (app *application) selectPaths(fileType types.FileType, options scanOptions, selectAll bool) ([]string, error) {
	configuration, configurationError := app.configuration()
	if configurationError != nil {
		return nil, configurationError
	}
	directory := options.directoryFor(fileType, configuration)
	scannedPaths, scanError := app.scanner.Scan(fileType.Extension(), directory, 0)
	if scanError != nil {
		return nil, scanError
	}
	pluralType := utils.Plural(len(scannedPaths), string(fileType), "")
	if len(scannedPaths) == 0 {
		app.reporter.Fail(fmt.Sprintf(noFilesFoundForInfoFormat, pluralType))
		return nil, nil
	}
	app.reporter.Succeed(fmt.Sprintf(foundFilesFormat, len(scannedPaths), pluralType))

	if selectAll {
		return scannedPaths, nil
	}
	if !app.interactive() {
		return nil, errNoTerminalForSelection
	}
	selectedIndexes, promptError := app.dependencies.Prompter.SelectMany(
		fmt.Sprintf(selectionMessageFormat, utils.Plural(2, string(fileType), "")),
		scannedPaths,
	)
	if promptError != nil {
		return nil, promptError
	}
	selectedPaths := make([]string, 0, len(selectedIndexes))
	for _, selectedIndex := range selectedIndexes {
		selectedPaths = append(selectedPaths, scannedPaths[selectedIndex])
	}
	return selectedPaths, nil
}

// runInfo prints metadata for components or the data preview for projects.
func (app *application) runInfo(ctx context.Context, fileType types.FileType, paths []string, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app.logger.Debug("inspecting", zap.String("type", string(fileType)), zap.Strings("paths", paths))

	var rendered string
	var renderError error
	switch fileType {
	case types.FileTypeComponent:
		infos, inspectError := app.inspector.InspectAll(ctx, paths, component.DefaultConcurrency)
		if inspectError != nil {
			return inspectError
		}
		rendered, renderError = output.RenderComponents(infos, format)
	default:
		dumps := make([]types.ProjectDump, 0, len(paths))
		for _, projectPath := range paths {
			dump, dumpError := app.dumper.Dump(projectPath, 0)
			if dumpError != nil {
				return dumpError
			}
			dumps = append(dumps, dump)
		}
		rendered, renderError = output.RenderProjectDumps(dumps, format)
	}
	if renderError != nil {
		return renderError
	}
	_, writeError := fmt.Fprintln(app.dependencies.Stdout, rendered)
	return writeError
}
