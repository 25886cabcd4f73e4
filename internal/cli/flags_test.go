package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--copy"},
			expected:     true,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--copy=false"},
			expected:     false,
		},
		{
			name:         "sets_false_with_no_literal",
			defaultValue: true,
			arguments:    []string{"--copy", "no"},
			expected:     false,
		},
		{
			name:         "shorthand_with_literal",
			defaultValue: true,
			arguments:    []string{"-y", "off"},
			expected:     false,
		},
		{
			name:         "shorthand_without_value",
			defaultValue: false,
			arguments:    []string{"-y"},
			expected:     true,
		},
		{
			name:         "ignores_non_boolean_trailing_value",
			defaultValue: false,
			arguments:    []string{"--copy", "maybe"},
			expected:     true,
		},
		{
			name:         "rejects_invalid_inline_value",
			defaultValue: false,
			arguments:    []string{"--copy=maybe"},
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagValue := !testCase.defaultValue
			registerBooleanFlag(command.Flags(), &flagValue, "copy", "y", testCase.defaultValue, "copy the tree")
			normalizedArguments := normalizeBooleanFlagArguments(command, testCase.arguments)
			parseErr := command.ParseFlags(normalizedArguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeBooleanFlagArgumentsStopsAtTerminator(t *testing.T) {
	command := &cobra.Command{Use: "boolean-test"}
	var flagValue bool
	registerBooleanFlag(command.Flags(), &flagValue, "all", "", false, "select all")
	arguments := []string{"--all", "yes", "--", "--all", "no"}
	normalized := normalizeBooleanFlagArguments(command, arguments)
	expected := []string{"--all=yes", "--", "--all", "no"}
	if len(normalized) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, normalized)
	}
	for index := range expected {
		if normalized[index] != expected[index] {
			t.Fatalf("expected %v, got %v", expected, normalized)
		}
	}
}

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		value       string
		expected    int
		expectError string
	}{
		{value: "", expected: 0},
		{value: "25", expected: 25},
		{value: " 3 ", expected: 3},
		{value: "1O", expectError: `limit must be a number, received "1O"`},
		{value: "0", expected: 0},
		{value: "-1", expectError: `limit must be a number of zero or more, received "-1"`},
	}
	for _, testCase := range testCases {
		limit, parseError := parseLimit(testCase.value)
		if testCase.expectError != "" {
			if parseError == nil || parseError.Error() != testCase.expectError {
				t.Fatalf("expected error %q, got %v", testCase.expectError, parseError)
			}
			continue
		}
		if parseError != nil || limit != testCase.expected {
			t.Fatalf("value %q: expected %d, got %d (%v)", testCase.value, testCase.expected, limit, parseError)
		}
	}
}
