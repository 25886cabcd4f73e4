package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// finderAliasHeader opens every bookmark-based Finder alias file.
var finderAliasHeader = []byte("book\x00\x00\x00\x00mark\x00\x00\x00\x00")

// AliasDetector reports whether a path is a Finder alias rather than a real directory.
// A missing path yields an error wrapping ErrDirectoryNotFound.
type AliasDetector interface {
	IsAlias(path string) (bool, error)
}

// HeaderAliasDetector recognizes alias files by their bookmark header.
type HeaderAliasDetector struct {
	FileSystem afero.Fs
}

// IsAlias implements AliasDetector.
func (detector HeaderAliasDetector) IsAlias(path string) (bool, error) {
	info, statError := lstat(detector.FileSystem, path)
	if statError != nil {
		return false, statError
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	return hasAliasHeader(detector.FileSystem, path)
}

func lstat(fileSystem afero.Fs, path string) (os.FileInfo, error) {
	var info os.FileInfo
	var statError error
	if lstater, supportsLstat := fileSystem.(afero.Lstater); supportsLstat {
		info, _, statError = lstater.LstatIfPossible(path)
	} else {
		info, statError = fileSystem.Stat(path)
	}
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return nil, fmt.Errorf(errorPathFormat, ErrDirectoryNotFound, path)
		}
		return nil, fmt.Errorf(errorStatFormat, path, statError)
	}
	return info, nil
}

// #nosec G304
func hasAliasHeader(fileSystem afero.Fs, path string) (bool, error) {
	fileHandle, openError := fileSystem.Open(path)
	if openError != nil {
		return false, fmt.Errorf(errorStatFormat, path, openError)
	}
	defer fileHandle.Close()

	header := make([]byte, len(finderAliasHeader))
	readCount, readError := io.ReadFull(fileHandle, header)
	if readError != nil && !errors.Is(readError, io.ErrUnexpectedEOF) && !errors.Is(readError, io.EOF) {
		return false, fmt.Errorf(errorStatFormat, path, readError)
	}
	return readCount == len(finderAliasHeader) && bytes.Equal(header, finderAliasHeader), nil
}
