// Package scan locates project and component bundles below a directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrDirectoryNotFound reports a scan root that does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")
	// ErrNotADirectory reports a scan root that exists but is not a directory.
	ErrNotADirectory = errors.New("the path is not a directory")
	// ErrAliasPath reports a scan root that is a Finder alias.
	ErrAliasPath = errors.New("this path is an alias, please use the resolved directory path")
)

const (
	errorPathFormat          = "%w: %q"
	errorReadDirectoryFormat = "an error occurred while reading the directory %q below %q: %w"
	errorStatFormat          = "stat failed for %q: %w"
)

// Scanner walks directory trees looking for files with a given extension.
type Scanner struct {
	fileSystem    afero.Fs
	aliasDetector AliasDetector
	logger        *zap.Logger
}

// NewScanner creates a Scanner. A nil logger disables logging.
func NewScanner(fileSystem afero.Fs, aliasDetector AliasDetector, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		fileSystem:    fileSystem,
		aliasDetector: aliasDetector,
		logger:        logger,
	}
}

// NewOSScanner creates a Scanner over the host file system with the platform alias detector.
func NewOSScanner(logger *zap.Logger) *Scanner {
	fileSystem := afero.NewOsFs()
	return NewScanner(fileSystem, DefaultAliasDetector(fileSystem), logger)
}

// Scan returns the paths below rootPath whose names end with extension.
//
// Directories are explored with an explicit stack and each listing is processed in reverse, so the
// result follows traversal order rather than lexicographic order. Matching directories are
// descended into as well. A positive limit stops the scan once that many paths were collected.
// On failure no partial result is returned.
func (scanner *Scanner) Scan(extension string, rootPath string, limit int) ([]string, error) {
	if validationError := scanner.validateRoot(rootPath); validationError != nil {
		return nil, validationError
	}

	filePaths := []string{}
	stack := []string{rootPath}

	for len(stack) > 0 && !limitReached(len(filePaths), limit) {
		currentPath := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, readError := afero.ReadDir(scanner.fileSystem, currentPath)
		if readError != nil {
			if errors.Is(readError, fs.ErrNotExist) {
				return nil, fmt.Errorf(errorPathFormat, ErrDirectoryNotFound, rootPath)
			}
			return nil, fmt.Errorf(errorReadDirectoryFormat, currentPath, rootPath, readError)
		}
		scanner.logger.Debug("scanning directory", zap.String("path", currentPath), zap.Int("entries", len(entries)))

		for entryIndex := len(entries) - 1; entryIndex >= 0; entryIndex-- {
			if limitReached(len(filePaths), limit) {
				break
			}
			entry := entries[entryIndex]
			fullPath := filepath.Join(currentPath, entry.Name())

			if strings.HasSuffix(entry.Name(), extension) {
				filePaths = append(filePaths, fullPath)
			}
			if entry.IsDir() {
				stack = append(stack, fullPath)
			}
		}
	}

	scanner.logger.Debug("scan finished", zap.String("root", rootPath), zap.Int("matches", len(filePaths)))
	return filePaths, nil
}

func (scanner *Scanner) validateRoot(rootPath string) error {
	if rootPath == "" {
		return fmt.Errorf(errorPathFormat, ErrDirectoryNotFound, rootPath)
	}

	isAlias, aliasError := scanner.aliasDetector.IsAlias(rootPath)
	if aliasError != nil {
		return aliasError
	}
	if isAlias {
		return fmt.Errorf(errorPathFormat, ErrAliasPath, rootPath)
	}

	rootInfo, statError := scanner.fileSystem.Stat(rootPath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return fmt.Errorf(errorPathFormat, ErrDirectoryNotFound, rootPath)
		}
		return fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	if !rootInfo.IsDir() {
		return fmt.Errorf(errorPathFormat, ErrNotADirectory, rootPath)
	}
	return nil
}

func limitReached(count int, limit int) bool {
	return limit > 0 && count >= limit
}
