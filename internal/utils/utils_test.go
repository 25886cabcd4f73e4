package utils_test

import (
	"testing"

	"github.com/temirov/auscope/internal/utils"
)

func TestFormatDataSize(t *testing.T) {
	testCases := []struct {
		name      string
		total     int64
		previewed int
		expected  string
	}{
		{name: "negative", total: -1, previewed: 0, expected: "0b"},
		{name: "empty", total: 0, previewed: 0, expected: "0b"},
		{name: "bytes", total: 512, previewed: 512, expected: "512b"},
		{name: "decimal kilobyte", total: 1000, previewed: 1000, expected: "1kb"},
		{name: "binary kilobyte", total: 1024, previewed: 1024, expected: "1kb"},
		{name: "fractional kilobyte", total: 1536, previewed: 1536, expected: "1.5kb"},
		{name: "ten megabytes", total: 10 * 1000 * 1000, previewed: -1, expected: "10mb"},
		{name: "partial preview", total: 2300000, previewed: 256, expected: "2.3mb, first 256b shown"},
		{name: "preview covers file", total: 14, previewed: 256, expected: "14b"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatDataSize(testCase.total, testCase.previewed)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	testCases := []struct {
		name         string
		count        int
		word         string
		customPlural string
		expected     string
	}{
		{name: "singular", count: 1, word: "project", expected: "project"},
		{name: "zero", count: 0, word: "project", expected: "projects"},
		{name: "many", count: 3, word: "component", expected: "components"},
		{name: "custom", count: 2, word: "alias", customPlural: "aliases", expected: "aliases"},
		{name: "custom singular", count: 1, word: "alias", customPlural: "aliases", expected: "alias"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.Plural(testCase.count, testCase.word, testCase.customPlural)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestNewApplicationLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, loggerError := utils.NewApplicationLogger(debug)
		if loggerError != nil {
			t.Fatalf("NewApplicationLogger(%v) error: %v", debug, loggerError)
		}
		if logger.Core().Enabled(-1) != debug {
			t.Fatalf("debug level enabled mismatch for debug=%v", debug)
		}
	}
}
