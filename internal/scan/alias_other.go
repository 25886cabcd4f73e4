//go:build !darwin

package scan

import "github.com/spf13/afero"

// DefaultAliasDetector returns the header based detector; Spotlight is unavailable here.
func DefaultAliasDetector(fileSystem afero.Fs) AliasDetector {
	return HeaderAliasDetector{FileSystem: fileSystem}
}
