// Package component reads Audio Unit metadata from plugin bundles.
package component

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"howett.net/plist"

	"github.com/temirov/auscope/internal/types"
)

const (
	contentsDirectoryName = "Contents"
	infoPlistFileName     = "Info.plist"

	// authorNameSeparator splits component names of the form "Author: Name".
	authorNameSeparator = ": "

	audioUnitTypeEffect     = "aufx"
	audioUnitTypeInstrument = "aumu"

	// DefaultConcurrency bounds the number of bundles read at once by InspectAll.
	DefaultConcurrency = 4

	errorReadPlistFormat   = "reading %s: %w"
	errorDecodePlistFormat = "decoding %s: %w"
)

type audioComponent struct {
	Description  string `plist:"description"`
	Manufacturer string `plist:"manufacturer"`
	Name         string `plist:"name"`
	Type         string `plist:"type"`
}

type bundlePlist struct {
	AudioComponents            []audioComponent `plist:"AudioComponents"`
	CFBundleName               string           `plist:"CFBundleName"`
	CFBundleShortVersionString string           `plist:"CFBundleShortVersionString"`
}

// Inspector decodes the Info.plist of component bundles.
type Inspector struct {
	fileSystem afero.Fs
	logger     *zap.Logger
}

// NewInspector creates an Inspector reading from fileSystem. A nil logger disables logging.
func NewInspector(fileSystem afero.Fs, logger *zap.Logger) *Inspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inspector{fileSystem: fileSystem, logger: logger}
}

// PlistPath returns the location of the metadata file inside a bundle.
func PlistPath(componentPath string) string {
	return filepath.Join(componentPath, contentsDirectoryName, infoPlistFileName)
}

// Inspect returns the metadata of the bundle at componentPath.
func (inspector *Inspector) Inspect(componentPath string) (types.ComponentInfo, error) {
	plistPath := PlistPath(componentPath)
	data, readError := afero.ReadFile(inspector.fileSystem, plistPath)
	if readError != nil {
		return types.ComponentInfo{}, fmt.Errorf(errorReadPlistFormat, plistPath, readError)
	}

	var decoded bundlePlist
	format, decodeError := plist.Unmarshal(data, &decoded)
	if decodeError != nil {
		return types.ComponentInfo{}, fmt.Errorf(errorDecodePlistFormat, plistPath, decodeError)
	}
	inspector.logger.Debug("decoded component plist",
		zap.String("path", plistPath),
		zap.String("format", plist.FormatNames[format]),
		zap.Int("audioComponents", len(decoded.AudioComponents)))

	info := describe(decoded)
	info.Path = componentPath
	return info, nil
}

// InspectAll inspects every path concurrently and returns the results in input order.
// The first failure cancels the remaining work.
func (inspector *Inspector) InspectAll(ctx context.Context, componentPaths []string, concurrency int) ([]types.ComponentInfo, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	results := make([]types.ComponentInfo, len(componentPaths))
	group, groupContext := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for pathIndex, componentPath := range componentPaths {
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			info, inspectError := inspector.Inspect(componentPath)
			if inspectError != nil {
				return inspectError
			}
			results[pathIndex] = info
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return results, nil
}

func describe(decoded bundlePlist) types.ComponentInfo {
	var firstComponent *audioComponent
	if len(decoded.AudioComponents) > 0 {
		firstComponent = &decoded.AudioComponents[0]
	}

	name := types.UnknownValue
	author := types.UnknownValue
	componentType := types.ComponentTypeUnknown

	if firstComponent != nil && firstComponent.Name != "" {
		name = firstComponent.Name
	} else if decoded.CFBundleName != "" {
		name = decoded.CFBundleName
	}
	if firstComponent != nil && firstComponent.Manufacturer != "" {
		author = firstComponent.Manufacturer
	}

	nameParts := strings.Split(name, authorNameSeparator)
	if len(nameParts) == 2 {
		author = nameParts[0]
		name = nameParts[1]
	}

	if firstComponent != nil {
		switch firstComponent.Type {
		case audioUnitTypeEffect:
			componentType = types.ComponentTypeEffect
		case audioUnitTypeInstrument:
			componentType = types.ComponentTypeInstrument
		}
	}

	version := decoded.CFBundleShortVersionString
	if version == "" {
		version = types.UnknownValue
	}

	return types.ComponentInfo{
		Name:    name,
		Author:  author,
		Version: version,
		Type:    componentType,
	}
}
