// Package project previews the raw data of Logic project bundles. The project format itself is
// not decoded.
package project

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/auscope/internal/types"
)

const (
	// DefaultPreviewBytes is the number of leading bytes returned by Dump.
	DefaultPreviewBytes = 256

	errorOpenDataFormat = "opening project data %s: %w"
	errorStatDataFormat = "stat failed for project data %s: %w"
	errorReadDataFormat = "reading project data %s: %w"
)

// dataFileSegments locates the data of the first alternative inside a bundle.
var dataFileSegments = []string{"Alternatives", "000", "ProjectData"}

// Dumper reads project data files.
type Dumper struct {
	fileSystem afero.Fs
}

// NewDumper creates a Dumper reading from fileSystem.
func NewDumper(fileSystem afero.Fs) *Dumper {
	return &Dumper{fileSystem: fileSystem}
}

// DataFilePath returns the location of the project data inside the bundle.
func DataFilePath(projectPath string) string {
	return filepath.Join(append([]string{projectPath}, dataFileSegments...)...)
}

// Dump returns up to previewBytes leading bytes of the project data. A non-positive previewBytes
// uses DefaultPreviewBytes.
//
// #nosec G304
func (dumper *Dumper) Dump(projectPath string, previewBytes int) (types.ProjectDump, error) {
	if previewBytes <= 0 {
		previewBytes = DefaultPreviewBytes
	}
	dataPath := DataFilePath(projectPath)

	dataFile, openError := dumper.fileSystem.Open(dataPath)
	if openError != nil {
		return types.ProjectDump{}, fmt.Errorf(errorOpenDataFormat, dataPath, openError)
	}
	defer dataFile.Close()

	info, statError := dataFile.Stat()
	if statError != nil {
		return types.ProjectDump{}, fmt.Errorf(errorStatDataFormat, dataPath, statError)
	}

	preview := make([]byte, previewBytes)
	readCount, readError := io.ReadFull(dataFile, preview)
	if readError != nil && !errors.Is(readError, io.ErrUnexpectedEOF) && !errors.Is(readError, io.EOF) {
		return types.ProjectDump{}, fmt.Errorf(errorReadDataFormat, dataPath, readError)
	}

	return types.ProjectDump{
		Path:     projectPath,
		DataFile: dataPath,
		Size:     info.Size(),
		Preview:  preview[:readCount],
	}, nil
}
