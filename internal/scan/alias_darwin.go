//go:build darwin

package scan

import (
	"os/exec"
	"strings"

	"github.com/spf13/afero"
)

const (
	spotlightCommand         = "mdls"
	spotlightContentTypeKey  = "kMDItemContentType"
	spotlightAliasContentUTI = "com.apple.alias-file"
)

// SpotlightAliasDetector asks Spotlight for the content type of regular files and falls back to
// the bookmark header when Spotlight has no answer.
type SpotlightAliasDetector struct {
	header HeaderAliasDetector
}

// DefaultAliasDetector returns the Spotlight backed detector.
func DefaultAliasDetector(fileSystem afero.Fs) AliasDetector {
	return SpotlightAliasDetector{header: HeaderAliasDetector{FileSystem: fileSystem}}
}

// IsAlias implements AliasDetector.
func (detector SpotlightAliasDetector) IsAlias(path string) (bool, error) {
	info, statError := lstat(detector.header.FileSystem, path)
	if statError != nil {
		return false, statError
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	// #nosec G204
	contentType, spotlightError := exec.Command(spotlightCommand, "-raw", "-name", spotlightContentTypeKey, path).Output()
	if spotlightError == nil && strings.TrimSpace(string(contentType)) == spotlightAliasContentUTI {
		return true, nil
	}
	return hasAliasHeader(detector.header.FileSystem, path)
}
