// Package output renders info command results as raw text, JSON, or YAML.
package output

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/auscope/internal/types"
	"github.com/temirov/auscope/internal/utils"
)

const (
	indentPrefix = ""
	indentSpacer = "  "
	yamlIndent   = 2

	// componentSeparator separates consecutive raw component blocks.
	componentSeparator = "\n\n"

	nameLabel     = "Name: "
	authorLabel   = "Author: "
	versionLabel  = "Version: "
	typeLabel     = "Type: "
	projectLabel  = "Project: "
	dataFileLabel = "Data file: "
	sizeLabel     = "Size: "

	errorUnsupportedFormat = "unsupported output format %q"
	errorEncodeFormat      = "encoding %s output: %w"
)

// projectDocument is the structured form of a project dump. The preview is hex encoded.
type projectDocument struct {
	Path     string `json:"path" yaml:"path"`
	DataFile string `json:"dataFile" yaml:"dataFile"`
	Size     int64  `json:"size" yaml:"size"`
	Preview  string `json:"preview" yaml:"preview"`
}

// IsSupportedFormat reports whether format names a renderer.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatYAML:
		return true
	default:
		return false
	}
}

// RenderComponents renders component metadata in the requested format.
func RenderComponents(infos []types.ComponentInfo, format string) (string, error) {
	if format == types.FormatRaw {
		return RenderComponentsRaw(infos), nil
	}
	if infos == nil {
		infos = []types.ComponentInfo{}
	}
	return encode(infos, format)
}

// RenderComponentsRaw returns one Name/Author/Version/Type block per component.
func RenderComponentsRaw(infos []types.ComponentInfo) string {
	blocks := make([]string, 0, len(infos))
	for _, info := range infos {
		var buffer bytes.Buffer
		buffer.WriteString(nameLabel + info.Name + "\n")
		buffer.WriteString(authorLabel + info.Author + "\n")
		buffer.WriteString(versionLabel + info.Version + "\n")
		buffer.WriteString(typeLabel + string(info.Type))
		blocks = append(blocks, buffer.String())
	}
	return strings.Join(blocks, componentSeparator)
}

// RenderProjectDumps renders project previews in the requested format.
func RenderProjectDumps(dumps []types.ProjectDump, format string) (string, error) {
	if format == types.FormatRaw {
		return RenderProjectDumpsRaw(dumps), nil
	}
	documents := make([]projectDocument, 0, len(dumps))
	for _, dump := range dumps {
		documents = append(documents, projectDocument{
			Path:     dump.Path,
			DataFile: dump.DataFile,
			Size:     dump.Size,
			Preview:  hex.EncodeToString(dump.Preview),
		})
	}
	return encode(documents, format)
}

// RenderProjectDumpsRaw returns a header and a hex dump per project.
func RenderProjectDumpsRaw(dumps []types.ProjectDump) string {
	blocks := make([]string, 0, len(dumps))
	for _, dump := range dumps {
		var buffer bytes.Buffer
		buffer.WriteString(projectLabel + dump.Path + "\n")
		buffer.WriteString(dataFileLabel + dump.DataFile + "\n")
		buffer.WriteString(sizeLabel + utils.FormatDataSize(dump.Size, len(dump.Preview)) + "\n")
		buffer.WriteString(strings.TrimSuffix(hex.Dump(dump.Preview), "\n"))
		blocks = append(blocks, buffer.String())
	}
	return strings.Join(blocks, componentSeparator)
}

func encode(value any, format string) (string, error) {
	switch format {
	case types.FormatJSON:
		encoded, jsonEncodeError := json.MarshalIndent(value, indentPrefix, indentSpacer)
		if jsonEncodeError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, jsonEncodeError)
		}
		return string(encoded), nil
	case types.FormatYAML:
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		encoder.SetIndent(yamlIndent)
		if yamlEncodeError := encoder.Encode(value); yamlEncodeError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, yamlEncodeError)
		}
		if closeError := encoder.Close(); closeError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, closeError)
		}
		return strings.TrimSuffix(buffer.String(), "\n"), nil
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}
