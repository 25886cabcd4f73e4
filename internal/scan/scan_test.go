package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/temirov/auscope/internal/scan"
	"github.com/temirov/auscope/internal/types"
)

const (
	componentsRoot = "/Library/Audio/Plug-Ins/Components"
	aliasFileName  = "Components alias"
)

type stubAliasDetector struct {
	isAlias bool
	calls   int
}

func (detector *stubAliasDetector) IsAlias(path string) (bool, error) {
	detector.calls++
	return detector.isAlias, nil
}

type countingFileSystem struct {
	afero.Fs
	opens int
	stats int
}

func (fileSystem *countingFileSystem) Open(name string) (afero.File, error) {
	fileSystem.opens++
	return fileSystem.Fs.Open(name)
}

func (fileSystem *countingFileSystem) Stat(name string) (os.FileInfo, error) {
	fileSystem.stats++
	return fileSystem.Fs.Stat(name)
}

type failingOpenFileSystem struct {
	afero.Fs
	failingPath string
	cause       error
}

func (fileSystem *failingOpenFileSystem) Open(name string) (afero.File, error) {
	if name == fileSystem.failingPath {
		return nil, fileSystem.cause
	}
	return fileSystem.Fs.Open(name)
}

func writeFile(testingHandle *testing.T, fileSystem afero.Fs, path string, content string) {
	testingHandle.Helper()
	if mkdirError := fileSystem.MkdirAll(filepath.Dir(path), 0o755); mkdirError != nil {
		testingHandle.Fatalf("mkdir %s: %v", filepath.Dir(path), mkdirError)
	}
	if writeError := afero.WriteFile(fileSystem, path, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("write %s: %v", path, writeError)
	}
}

func newMemoryScanner(fileSystem afero.Fs) *scan.Scanner {
	return scan.NewScanner(fileSystem, scan.HeaderAliasDetector{FileSystem: fileSystem}, nil)
}

// TestScanReturnsOnlyMatchingPaths verifies extension filtering regardless of nesting.
func TestScanReturnsOnlyMatchingPaths(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	matchingPath := filepath.Join(componentsRoot, "vendor", "deep", "Reverb.component")
	writeFile(testingHandle, fileSystem, matchingPath, "")
	writeFile(testingHandle, fileSystem, filepath.Join(componentsRoot, "vendor", "readme.txt"), "")

	paths, scanError := newMemoryScanner(fileSystem).Scan(types.ExtensionComponent, componentsRoot, 0)
	if scanError != nil {
		testingHandle.Fatalf("Scan error: %v", scanError)
	}
	if !reflect.DeepEqual(paths, []string{matchingPath}) {
		testingHandle.Fatalf("unexpected paths: %v", paths)
	}
}

// TestScanFollowsStackOrder verifies listings are processed in reverse and directories last in first out.
func TestScanFollowsStackOrder(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	writeFile(testingHandle, fileSystem, filepath.Join(componentsRoot, "Alpha.component", "Contents", "Info.plist"), "")
	writeFile(testingHandle, fileSystem, filepath.Join(componentsRoot, "Beta.component", "Contents", "Info.plist"), "")
	writeFile(testingHandle, fileSystem, filepath.Join(componentsRoot, "vendor", "Gamma.component"), "")

	paths, scanError := newMemoryScanner(fileSystem).Scan(types.ExtensionComponent, componentsRoot, 0)
	if scanError != nil {
		testingHandle.Fatalf("Scan error: %v", scanError)
	}
	expected := []string{
		filepath.Join(componentsRoot, "Beta.component"),
		filepath.Join(componentsRoot, "Alpha.component"),
		filepath.Join(componentsRoot, "vendor", "Gamma.component"),
	}
	if !reflect.DeepEqual(paths, expected) {
		testingHandle.Fatalf("expected %v, got %v", expected, paths)
	}
}

// TestScanHonorsLimit verifies the result count is capped.
func TestScanHonorsLimit(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	for _, name := range []string{"A.logicx", "B.logicx", "C.logicx", "nested/D.logicx"} {
		writeFile(testingHandle, fileSystem, filepath.Join("/Music/Logic", name), "")
	}

	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "unbounded", limit: 0, expected: 4},
		{name: "negative_is_unbounded", limit: -1, expected: 4},
		{name: "one", limit: 1, expected: 1},
		{name: "within_first_directory", limit: 2, expected: 2},
		{name: "above_total", limit: 10, expected: 4},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			paths, scanError := newMemoryScanner(fileSystem).Scan(types.ExtensionProject, "/Music/Logic", testCase.limit)
			if scanError != nil {
				testingHandle.Fatalf("Scan error: %v", scanError)
			}
			if len(paths) != testCase.expected {
				testingHandle.Fatalf("expected %d paths, got %d: %v", testCase.expected, len(paths), paths)
			}
		})
	}
}

// TestScanErrors verifies the error taxonomy for invalid roots.
func TestScanErrors(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	writeFile(testingHandle, fileSystem, "/data/plain.txt", "text")
	writeFile(testingHandle, fileSystem, filepath.Join("/data", aliasFileName), "book\x00\x00\x00\x00mark\x00\x00\x00\x00rest")

	testCases := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{name: "missing_directory", path: "/fake/path/to/alias", expectedErr: scan.ErrDirectoryNotFound},
		{name: "empty_path", path: "", expectedErr: scan.ErrDirectoryNotFound},
		{name: "plain_file", path: "/data/plain.txt", expectedErr: scan.ErrNotADirectory},
		{name: "alias_file", path: filepath.Join("/data", aliasFileName), expectedErr: scan.ErrAliasPath},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			paths, scanError := newMemoryScanner(fileSystem).Scan(types.ExtensionComponent, testCase.path, 0)
			if !errors.Is(scanError, testCase.expectedErr) {
				testingHandle.Fatalf("expected %v, got %v", testCase.expectedErr, scanError)
			}
			if paths != nil {
				testingHandle.Fatalf("expected no partial result, got %v", paths)
			}
			if testCase.path != "" && !strings.Contains(scanError.Error(), testCase.path) {
				testingHandle.Fatalf("error %q does not identify path %q", scanError.Error(), testCase.path)
			}
		})
	}
}

// TestScanWrapsListingFailures verifies read errors keep their cause and name the failing directory.
func TestScanWrapsListingFailures(testingHandle *testing.T) {
	cause := os.ErrPermission
	memoryFileSystem := afero.NewMemMapFs()
	writeFile(testingHandle, memoryFileSystem, "/root/a/X.component", "")
	writeFile(testingHandle, memoryFileSystem, "/root/b/Y.component", "")

	testCases := []struct {
		name        string
		failingPath string
	}{
		{name: "subdirectory", failingPath: "/root/a"},
		{name: "root", failingPath: "/root"},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			fileSystem := &failingOpenFileSystem{Fs: memoryFileSystem, failingPath: testCase.failingPath, cause: cause}
			paths, scanError := newMemoryScanner(fileSystem).Scan(types.ExtensionComponent, "/root", 0)
			if !errors.Is(scanError, cause) {
				testingHandle.Fatalf("expected cause %v, got %v", cause, scanError)
			}
			if errors.Is(scanError, scan.ErrDirectoryNotFound) {
				testingHandle.Fatalf("permission failure reported as missing directory: %v", scanError)
			}
			if paths != nil {
				testingHandle.Fatalf("expected no partial result, got %v", paths)
			}
			if !strings.Contains(scanError.Error(), strconv.Quote(testCase.failingPath)) {
				testingHandle.Fatalf("error %q does not identify directory %q", scanError.Error(), testCase.failingPath)
			}
		})
	}
}

// TestScanRejectsAliasBeforeListing verifies no file system access happens for alias roots.
func TestScanRejectsAliasBeforeListing(testingHandle *testing.T) {
	fileSystem := &countingFileSystem{Fs: afero.NewMemMapFs()}
	detector := &stubAliasDetector{isAlias: true}

	_, scanError := scan.NewScanner(fileSystem, detector, nil).Scan(types.ExtensionComponent, "fake/path/to/alias", 0)
	if !errors.Is(scanError, scan.ErrAliasPath) {
		testingHandle.Fatalf("expected alias error, got %v", scanError)
	}
	if detector.calls != 1 {
		testingHandle.Fatalf("expected one alias check, got %d", detector.calls)
	}
	if fileSystem.opens != 0 || fileSystem.stats != 0 {
		testingHandle.Fatalf("expected no file system access, got %d opens and %d stats", fileSystem.opens, fileSystem.stats)
	}
}

// TestHeaderAliasDetector verifies header detection for files and directories.
func TestHeaderAliasDetector(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	writeFile(testingHandle, fileSystem, "/aliases/short", "book")
	writeFile(testingHandle, fileSystem, "/aliases/real", "book\x00\x00\x00\x00mark\x00\x00\x00\x00")
	detector := scan.HeaderAliasDetector{FileSystem: fileSystem}

	testCases := []struct {
		path     string
		expected bool
	}{
		{path: "/aliases", expected: false},
		{path: "/aliases/short", expected: false},
		{path: "/aliases/real", expected: true},
	}
	for _, testCase := range testCases {
		isAlias, detectError := detector.IsAlias(testCase.path)
		if detectError != nil {
			testingHandle.Fatalf("IsAlias(%s) error: %v", testCase.path, detectError)
		}
		if isAlias != testCase.expected {
			testingHandle.Fatalf("IsAlias(%s) = %v, expected %v", testCase.path, isAlias, testCase.expected)
		}
	}

	if _, missingError := detector.IsAlias("/aliases/missing"); !errors.Is(missingError, scan.ErrDirectoryNotFound) {
		testingHandle.Fatalf("expected directory not found, got %v", missingError)
	}
}

// TestOSScanner verifies the scanner against the real file system.
func TestOSScanner(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	projectPath := filepath.Join(rootDirectory, "Songs", "Demo.logicx")
	if mkdirError := os.MkdirAll(filepath.Join(projectPath, "Alternatives"), 0o755); mkdirError != nil {
		testingHandle.Fatalf("mkdir: %v", mkdirError)
	}
	paths, scanError := scan.NewOSScanner(nil).Scan(types.ExtensionProject, rootDirectory, 0)
	if scanError != nil {
		testingHandle.Fatalf("Scan error: %v", scanError)
	}
	if !reflect.DeepEqual(paths, []string{projectPath}) {
		testingHandle.Fatalf("unexpected paths: %v", paths)
	}
}
