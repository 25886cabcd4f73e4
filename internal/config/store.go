package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/temirov/auscope/internal/merge"
	"github.com/temirov/auscope/internal/utils"
)

const (
	configurationFileType       = "json"
	configurationDirectoryMode  = 0o755
	configurationFileMode       = 0o600
	configurationIndentPrefix   = ""
	configurationIndentSpacer   = "  "
	errorInitializeFormat       = "an error occurred while initializing the config file: %w"
	errorReadFormat             = "an error occurred while reading the config file: %w"
	errorUpdateFormat           = "an error occurred while updating the config file: %w"
	errorRemoveFormat           = "an error occurred while removing the config directory %s: %w"
	errorInspectFormat          = "inspect configuration path %s: %w"
	errorCreateDirectoryFormat  = "create configuration directory %s: %w"
	errorWriteFormat            = "write configuration to %s: %w"
	errorEncodeFormat           = "encode configuration: %w"
	errorDecodeFormat           = "decode configuration from %s: %w"
	errorConfigurationDirFormat = "configuration path %s is a directory"
)

// Store reads and writes the JSON configuration file.
type Store struct {
	path     string
	defaults Configuration
	logger   *zap.Logger
}

// NewStore creates a Store for the file at path. Missing files are initialized with defaults.
func NewStore(path string, defaults Configuration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, defaults: defaults, logger: logger}
}

// Path returns the configuration file location.
func (store *Store) Path() string {
	return store.path
}

// Directory returns the directory holding the configuration file.
func (store *Store) Directory() string {
	return filepath.Dir(store.path)
}

// Load initializes the file when missing and returns its contents laid over the defaults.
func (store *Store) Load() (Configuration, error) {
	if initializeError := store.initialize(false); initializeError != nil {
		return Configuration{}, fmt.Errorf(errorInitializeFormat, initializeError)
	}

	reader := viper.New()
	reader.SetConfigFile(store.path)
	reader.SetConfigType(configurationFileType)
	if readError := reader.ReadInConfig(); readError != nil {
		return Configuration{}, fmt.Errorf(errorReadFormat, readError)
	}

	configuration, decodeError := merge.Struct(store.defaults, reader.AllSettings())
	if decodeError != nil {
		return Configuration{}, fmt.Errorf(errorReadFormat, fmt.Errorf(errorDecodeFormat, store.path, decodeError))
	}
	store.logger.Debug("configuration loaded", zap.String("path", store.path))
	return configuration, nil
}

// Update merges partial onto the stored configuration and writes the result.
func (store *Store) Update(partial map[string]any) (Configuration, error) {
	current, loadError := store.Load()
	if loadError != nil {
		return Configuration{}, loadError
	}
	updated, mergeError := merge.Struct(current, partial)
	if mergeError != nil {
		return Configuration{}, fmt.Errorf(errorUpdateFormat, mergeError)
	}
	if writeError := store.write(updated); writeError != nil {
		return Configuration{}, fmt.Errorf(errorUpdateFormat, writeError)
	}
	store.logger.Debug("configuration updated", zap.String("path", store.path))
	return updated, nil
}

// Reset overwrites the stored configuration with the defaults.
func (store *Store) Reset() (Configuration, error) {
	if initializeError := store.initialize(true); initializeError != nil {
		return Configuration{}, fmt.Errorf(errorInitializeFormat, initializeError)
	}
	return store.defaults, nil
}

// Remove deletes the application configuration directory and everything in it. A configuration
// file kept anywhere else is removed on its own, leaving its directory in place.
func (store *Store) Remove() error {
	target := store.path
	if filepath.Base(store.Directory()) == utils.GlobalConfigDirectoryName {
		target = store.Directory()
	}
	if removeError := os.RemoveAll(target); removeError != nil {
		return fmt.Errorf(errorRemoveFormat, target, removeError)
	}
	store.logger.Debug("configuration removed", zap.String("path", target))
	return nil
}

func (store *Store) initialize(reset bool) error {
	if !reset {
		info, statError := os.Stat(store.path)
		if statError == nil {
			if info.IsDir() {
				return fmt.Errorf(errorConfigurationDirFormat, store.path)
			}
			return nil
		}
		if !os.IsNotExist(statError) {
			return fmt.Errorf(errorInspectFormat, store.path, statError)
		}
	}
	return store.write(store.defaults)
}

func (store *Store) write(configuration Configuration) error {
	if mkdirError := os.MkdirAll(store.Directory(), configurationDirectoryMode); mkdirError != nil {
		return fmt.Errorf(errorCreateDirectoryFormat, store.Directory(), mkdirError)
	}
	encoded, encodeError := json.MarshalIndent(configuration, configurationIndentPrefix, configurationIndentSpacer)
	if encodeError != nil {
		return fmt.Errorf(errorEncodeFormat, encodeError)
	}
	if writeError := os.WriteFile(store.path, encoded, configurationFileMode); writeError != nil {
		return fmt.Errorf(errorWriteFormat, store.path, writeError)
	}
	return nil
}
