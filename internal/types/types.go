// Package types defines every cross‑package data structure used by the auscope CLI.
package types

import (
	"fmt"
	"strings"
)

const (
	CommandTree      = "tree"
	CommandInfo      = "info"
	CommandConfig    = "config"
	CommandUninstall = "uninstall"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatYAML = "yaml"

	ExtensionProject   = ".logicx"
	ExtensionComponent = ".component"

	// UnknownValue is reported for metadata missing from a bundle.
	UnknownValue = "Unknown"

	errorInvalidFileTypeFormat = "type must be one of %s"
)

// FileType names a category of bundle the scanner looks for.
type FileType string

const (
	FileTypeProject   FileType = "project"
	FileTypeComponent FileType = "component"
)

// FileTypes lists every supported file type in display order.
var FileTypes = []FileType{FileTypeProject, FileTypeComponent}

// Extension returns the bundle extension for the file type.
func (fileType FileType) Extension() string {
	switch fileType {
	case FileTypeComponent:
		return ExtensionComponent
	default:
		return ExtensionProject
	}
}

// ParseFileType validates a user supplied file type.
func ParseFileType(value string) (FileType, error) {
	for _, fileType := range FileTypes {
		if string(fileType) == value {
			return fileType, nil
		}
	}
	return "", fmt.Errorf(errorInvalidFileTypeFormat, QuotedFileTypes())
}

// QuotedFileTypes returns the supported types as a quoted, comma separated list.
func QuotedFileTypes() string {
	quoted := make([]string, 0, len(FileTypes))
	for _, fileType := range FileTypes {
		quoted = append(quoted, `"`+string(fileType)+`"`)
	}
	return strings.Join(quoted, ", ")
}

// ComponentType classifies an Audio Unit component.
type ComponentType string

const (
	ComponentTypeEffect     ComponentType = "Effect"
	ComponentTypeInstrument ComponentType = "Virtual Instrument"
	ComponentTypeUnknown    ComponentType = UnknownValue
)

// ComponentInfo is the metadata reported by the info command for a plugin bundle.
type ComponentInfo struct {
	Path    string        `json:"path" yaml:"path"`
	Name    string        `json:"name" yaml:"name"`
	Author  string        `json:"author" yaml:"author"`
	Version string        `json:"version" yaml:"version"`
	Type    ComponentType `json:"type" yaml:"type"`
}

// ProjectDump is the raw byte preview reported by the info command for a project bundle.
type ProjectDump struct {
	Path     string `json:"path" yaml:"path"`
	DataFile string `json:"dataFile" yaml:"dataFile"`
	Size     int64  `json:"size" yaml:"size"`
	Preview  []byte `json:"preview" yaml:"preview"`
}
