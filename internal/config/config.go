// Package config persists the scan directories used by the auscope commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/auscope/internal/merge"
	"github.com/temirov/auscope/internal/types"
	"github.com/temirov/auscope/internal/utils"
)

const (
	// defaultProjectDirectorySuffix is appended to the home directory for Logic projects.
	defaultProjectDirectorySuffix = "Music/Logic/"
	// DefaultComponentDirectory is the system wide Audio Unit location.
	DefaultComponentDirectory = "/Library/Audio/Plug-Ins/Components/"

	errorHomeDirectoryFormat = "resolve home directory for configuration: %w"

	// Keys of the configuration document, shared by partial updates.
	KeyDirectory = "directory"
	KeyProject   = "project"
	KeyComponent = "component"
)

// Configuration holds the persisted application settings.
type Configuration struct {
	Directory DirectoryConfiguration `mapstructure:"directory" json:"directory"`
}

// DirectoryConfiguration holds the default scan directory for every file type.
type DirectoryConfiguration struct {
	Project   string `mapstructure:"project" json:"project"`
	Component string `mapstructure:"component" json:"component"`
}

// DirectoryFor returns the scan directory configured for fileType.
func (configuration Configuration) DirectoryFor(fileType types.FileType) string {
	if fileType == types.FileTypeComponent {
		return configuration.Directory.Component
	}
	return configuration.Directory.Project
}

// DefaultConfiguration returns the settings written on first use.
func DefaultConfiguration(homeDirectory string) Configuration {
	return Configuration{
		Directory: DirectoryConfiguration{
			Project:   filepath.Join(homeDirectory, defaultProjectDirectorySuffix) + string(filepath.Separator),
			Component: DefaultComponentDirectory,
		},
	}
}

// DirectoryUpdate builds a partial document for the provided flag values. Empty values leave the
// stored directory untouched.
func DirectoryUpdate(projectDirectory string, componentDirectory string) map[string]any {
	return map[string]any{
		KeyDirectory: map[string]any{
			KeyProject:   merge.ValueOrUndefined(projectDirectory),
			KeyComponent: merge.ValueOrUndefined(componentDirectory),
		},
	}
}

// DefaultPath returns the configuration file location below the home directory.
func DefaultPath() (string, error) {
	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil {
		return "", fmt.Errorf(errorHomeDirectoryFormat, homeError)
	}
	return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName), nil
}
