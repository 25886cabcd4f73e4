package merge_test

import (
	"reflect"
	"testing"

	"github.com/temirov/auscope/internal/merge"
)

type iterativeMergeCase struct {
	name     string
	target   map[string]any
	source   map[string]any
	expected map[string]any
}

// TestIterative verifies nested merging, array replacement and undefined skipping.
func TestIterative(testingHandle *testing.T) {
	testCases := []iterativeMergeCase{
		{
			name:     "merges_two_objects",
			target:   map[string]any{"a": 1, "b": "1", "c": 1},
			source:   map[string]any{"b": "2", "c": 3},
			expected: map[string]any{"a": 1, "b": "2", "c": 3},
		},
		{
			name:     "merges_nested_objects",
			target:   map[string]any{"a": 1, "b": "1", "c": map[string]any{"d": 1, "e": 1}},
			source:   map[string]any{"b": "2", "c": map[string]any{"e": 2}},
			expected: map[string]any{"a": 1, "b": "2", "c": map[string]any{"d": 1, "e": 2}},
		},
		{
			name:     "replaces_arrays",
			target:   map[string]any{"a": 1, "b": "1", "c": []any{1, 2, 3}},
			source:   map[string]any{"b": "2", "c": []any{4, 5, 6}},
			expected: map[string]any{"a": 1, "b": "2", "c": []any{4, 5, 6}},
		},
		{
			name:     "returns_target_for_empty_source",
			target:   map[string]any{"a": 1, "b": "1", "c": 1},
			source:   map[string]any{},
			expected: map[string]any{"a": 1, "b": "1", "c": 1},
		},
		{
			name:     "skips_undefined_values",
			target:   map[string]any{"a": 1, "b": "1", "c": 1},
			source:   map[string]any{"c": merge.Undefined},
			expected: map[string]any{"a": 1, "b": "1", "c": 1},
		},
		{
			name:     "nil_overwrites",
			target:   map[string]any{"a": 1},
			source:   map[string]any{"a": nil},
			expected: map[string]any{"a": nil},
		},
		{
			name:     "creates_missing_nested_object",
			target:   map[string]any{"a": 1},
			source:   map[string]any{"b": map[string]any{"c": "x", "d": merge.Undefined}},
			expected: map[string]any{"a": 1, "b": map[string]any{"c": "x"}},
		},
		{
			name: "merges_deeply_nested_objects",
			target: map[string]any{
				"directory": map[string]any{"project": "/p", "component": "/c"},
			},
			source: map[string]any{
				"directory": map[string]any{"project": merge.Undefined, "component": "/new"},
			},
			expected: map[string]any{
				"directory": map[string]any{"project": "/p", "component": "/new"},
			},
		},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			actual := merge.Iterative(testCase.target, testCase.source)
			if !reflect.DeepEqual(actual, testCase.expected) {
				testingHandle.Fatalf("expected %#v, got %#v", testCase.expected, actual)
			}
		})
	}
}

// TestIterativeDoesNotMutateInputs verifies the target and source stay untouched.
func TestIterativeDoesNotMutateInputs(testingHandle *testing.T) {
	target := map[string]any{"nested": map[string]any{"value": 1}, "list": []any{1, 2}}
	source := map[string]any{"nested": map[string]any{"value": 2}, "list": []any{3}}

	merged := merge.Iterative(target, source)
	merged["list"].([]any)[0] = 99

	if target["nested"].(map[string]any)["value"] != 1 {
		testingHandle.Fatalf("target nested value was mutated")
	}
	if source["list"].([]any)[0] != 3 {
		testingHandle.Fatalf("source list shares storage with the result")
	}
	if len(target["list"].([]any)) != 2 {
		testingHandle.Fatalf("target list was replaced in place")
	}
}

type sampleDirectories struct {
	Project   string `mapstructure:"project"`
	Component string `mapstructure:"component"`
}

type sampleConfiguration struct {
	Directory sampleDirectories `mapstructure:"directory"`
	Tags      []string          `mapstructure:"tags"`
}

// TestStruct verifies typed merging through the mapstructure document.
func TestStruct(testingHandle *testing.T) {
	target := sampleConfiguration{
		Directory: sampleDirectories{Project: "/projects", Component: "/components"},
		Tags:      []string{"a", "b"},
	}
	source := map[string]any{
		"directory": map[string]any{"project": merge.Undefined, "component": "/plugins"},
		"tags":      []any{"c"},
	}

	merged, mergeError := merge.Struct(target, source)
	if mergeError != nil {
		testingHandle.Fatalf("Struct error: %v", mergeError)
	}
	expected := sampleConfiguration{
		Directory: sampleDirectories{Project: "/projects", Component: "/plugins"},
		Tags:      []string{"c"},
	}
	if !reflect.DeepEqual(merged, expected) {
		testingHandle.Fatalf("expected %#v, got %#v", expected, merged)
	}
	if target.Directory.Component != "/components" {
		testingHandle.Fatalf("target struct was mutated")
	}
}

// TestValueOrUndefined verifies empty flag values map to Undefined.
func TestValueOrUndefined(testingHandle *testing.T) {
	if !merge.IsUndefined(merge.ValueOrUndefined("")) {
		testingHandle.Fatalf("expected empty string to be undefined")
	}
	if merge.ValueOrUndefined("/path") != "/path" {
		testingHandle.Fatalf("expected value to pass through")
	}
}
