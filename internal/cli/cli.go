// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/auscope/internal/component"
	"github.com/temirov/auscope/internal/config"
	"github.com/temirov/auscope/internal/output"
	"github.com/temirov/auscope/internal/project"
	"github.com/temirov/auscope/internal/prompt"
	"github.com/temirov/auscope/internal/scan"
	"github.com/temirov/auscope/internal/services/clipboard"
	"github.com/temirov/auscope/internal/tree"
	"github.com/temirov/auscope/internal/utils"
)

const (
	configFlagName            = "config"
	debugFlagName             = "debug"
	typeFlagName              = "type"
	typeFlagShorthand         = "t"
	projectDirectoryFlagName  = "project-directory"
	projectDirectoryShorthand = "p"
	componentDirectoryName    = "component-directory"
	componentDirectoryShort   = "c"
	limitFlagName             = "limit"
	limitFlagShorthand        = "l"
	copyFlagName              = "copy"
	allFlagName               = "all"
	formatFlagName            = "format"
	resetFlagName             = "reset"
	resetFlagShorthand        = "r"
	yesFlagName               = "yes"
	yesFlagShorthand          = "y"

	versionTemplate      = utils.ApplicationName + " version: {{.Version}}\n"
	versionLineFormat    = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName
	rootShortDescription = "Locate and inspect Logic projects and Audio Unit components"
	rootLongDescription  = `auscope scans the configured directories for Logic projects (.logicx) and
Audio Unit components (.component), renders them as a directory tree and reports plugin metadata.
Use config to change the scanned directories and --version to print the application version.`

	configFlagDescription    = "configuration file location (default ~/.auscope/config.json)"
	debugFlagDescription     = "enable debug logging"
	typeFlagDescription      = `the type of files to scan for: "project" or "component"`
	projectFlagDescription   = "the directory to scan for Logic projects, the default can be set in config"
	componentFlagDescription = "the directory to scan for components, the default can be set in config"
	limitFlagDescription     = "limits the number of files to scan"
	copyFlagDescription      = "copy the rendered tree to the clipboard"
	allFlagDescription       = "select every scanned file without prompting"
	formatFlagDescription    = "output format: raw, json, or yaml"

	treeUse                   = "tree"
	treeAlias                 = "t"
	treeShortDescription      = "Display a tree of Logic projects or components (" + treeAlias + ")"
	infoUse                   = "info [paths...]"
	infoAlias                 = "i"
	infoShortDescription      = "Display information about the selected projects or components (" + infoAlias + ")"
	configUse                 = "config"
	configShortDescription    = "Show or set configuration options"
	uninstallUse              = "uninstall"
	uninstallShortDescription = "Remove " + utils.ApplicationName + " configuration from your computer"
	versionUse                = "version"
	versionShortDescription   = "Display the application version"

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Scan a directory for files of the selected type and print them as a tree.
The directory defaults to the configured one for the type.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Show every Logic project in the configured directory
  auscope tree

  # Show at most ten components from a custom directory and copy the tree
  auscope tree --type component -c ~/Library/Audio/Plug-Ins/Components -l 10 --copy`

	// infoLongDescription provides detailed help for the info command.
	infoLongDescription = `Report metadata for components or the raw data preview of projects.
Without paths the configured directory is scanned and a selection is requested on the terminal.`
	// infoUsageExample demonstrates info command usage.
	infoUsageExample = `  # Pick components interactively
  auscope info --type component

  # Report every component as JSON
  auscope info --type component --all --format json`

	// configLongDescription provides detailed help for the config command.
	configLongDescription = `Update the directories scanned by default, reset them, or print the current configuration.`
	// configUsageExample demonstrates config command usage.
	configUsageExample = `  # Scan an external drive for projects
  auscope config -p /Volumes/Music/Logic/

  # Restore defaults
  auscope config --reset`

	noTerminalForSelectionMessage    = "no terminal available to select files; pass paths or --all"
	noTerminalForConfirmationMessage = "no terminal available to confirm; pass --yes"
)

var (
	errNoTerminalForSelection    = errors.New(noTerminalForSelectionMessage)
	errNoTerminalForConfirmation = errors.New(noTerminalForConfirmationMessage)
)

// Dependencies carries the collaborators of the commands.
type Dependencies struct {
	// ConfigPath overrides the configuration location; empty means ~/.auscope/config.json.
	ConfigPath string
	// HomeDirectory seeds default scan directories; empty means the user home directory.
	HomeDirectory string
	FileSystem    afero.Fs
	AliasDetector scan.AliasDetector
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
	Copier        clipboard.Copier
	// Prompter asks for confirmations and selections when Interactive reports true.
	Prompter prompt.Prompter
	// Interactive reports whether prompts can be shown.
	Interactive func() bool
	// ColorEnabled enables colored trees and status lines.
	ColorEnabled bool
}

// DefaultDependencies wires the commands to the operating system.
func DefaultDependencies() Dependencies {
	fileSystem := afero.NewOsFs()
	return Dependencies{
		FileSystem:    fileSystem,
		AliasDetector: scan.DefaultAliasDetector(fileSystem),
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Copier:        clipboard.NewSystem(),
		Prompter:      prompt.NewTerminal(os.Stdin, os.Stderr, os.Stderr),
		Interactive: func() bool {
			return prompt.IsInteractive(os.Stdin) && prompt.IsInteractive(os.Stderr)
		},
		ColorEnabled: prompt.IsInteractive(os.Stdout),
	}
}

// application is the state shared by the command handlers once flags are parsed.
type application struct {
	dependencies Dependencies
	logger       *zap.Logger
	store        *config.Store
	scanner      *scan.Scanner
	inspector    *component.Inspector
	dumper       *project.Dumper
	reporter     *output.Reporter
}

// configuration loads the stored configuration, creating it on first use.
func (app *application) configuration() (config.Configuration, error) {
	return app.store.Load()
}

func (app *application) treeStyle() tree.Style {
	if app.dependencies.ColorEnabled {
		return tree.ColorStyle()
	}
	return tree.PlainStyle()
}

func (app *application) interactive() bool {
	return app.dependencies.Interactive != nil && app.dependencies.Interactive()
}

// Execute runs the auscope application.
func Execute() error {
	rootCommand := NewRootCommand(DefaultDependencies())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command around dependencies.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = completeDependencies(dependencies)
	app := &application{dependencies: dependencies}

	var configPath string
	var debugEnabled bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Version:       utils.GetApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return app.initialize(configPath, debugEnabled)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.SetIn(dependencies.Stdin)
	rootCommand.SetOut(dependencies.Stdout)
	rootCommand.SetErr(dependencies.Stderr)
	rootCommand.PersistentFlags().StringVar(&configPath, configFlagName, dependencies.ConfigPath, configFlagDescription)
	registerBooleanFlag(rootCommand.PersistentFlags(), &debugEnabled, debugFlagName, "", false, debugFlagDescription)

	rootCommand.AddCommand(
		createTreeCommand(app),
		createInfoCommand(app),
		createConfigCommand(app),
		createUninstallCommand(app),
		createVersionCommand(app),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// initialize builds the logger and the collaborators that depend on parsed flags.
func (app *application) initialize(configPath string, debugEnabled bool) error {
	logger, loggerError := utils.NewApplicationLogger(debugEnabled)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	app.logger = logger

	if configPath == "" {
		defaultPath, pathError := config.DefaultPath()
		if pathError != nil {
			return pathError
		}
		configPath = defaultPath
	}
	homeDirectory := app.dependencies.HomeDirectory
	if homeDirectory == "" {
		resolvedHome, homeError := os.UserHomeDir()
		if homeError != nil {
			return fmt.Errorf("resolve home directory: %w", homeError)
		}
		homeDirectory = resolvedHome
	}

	dependencies := app.dependencies
	app.store = config.NewStore(configPath, config.DefaultConfiguration(homeDirectory), logger)
	app.scanner = scan.NewScanner(dependencies.FileSystem, dependencies.AliasDetector, logger)
	app.inspector = component.NewInspector(dependencies.FileSystem, logger)
	app.dumper = project.NewDumper(dependencies.FileSystem)
	app.reporter = output.NewReporter(dependencies.Stderr, dependencies.ColorEnabled)
	logger.Debug("initialized application", zap.String("config", configPath), zap.Bool("color", dependencies.ColorEnabled))
	return nil
}

func completeDependencies(dependencies Dependencies) Dependencies {
	if dependencies.FileSystem == nil {
		dependencies.FileSystem = afero.NewOsFs()
	}
	if dependencies.AliasDetector == nil {
		dependencies.AliasDetector = scan.DefaultAliasDetector(dependencies.FileSystem)
	}
	if dependencies.Stdin == nil {
		dependencies.Stdin = os.Stdin
	}
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
	}
	if dependencies.Stderr == nil {
		dependencies.Stderr = os.Stderr
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewSystem()
	}
	if dependencies.Prompter == nil {
		dependencies.Prompter = prompt.NewTerminal(os.Stdin, os.Stderr, os.Stderr)
	}
	return dependencies
}

// createVersionCommand returns the version subcommand.
func createVersionCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   versionUse,
		Short: versionShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			_, writeError := fmt.Fprintf(app.dependencies.Stdout, versionLineFormat, command.Root().Version)
			return writeError
		},
	}
}
