// Package merge applies partial JSON-shaped documents onto full ones.
package merge

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	// mapstructureTagName selects the struct tag shared with the configuration loader.
	mapstructureTagName = "mapstructure"

	errorEncodeTargetFormat = "encode merge target: %w"
	errorDecodeResultFormat = "decode merge result: %w"
	errorDecoderFormat      = "create merge decoder: %w"
)

type undefinedValue struct{}

// Undefined marks a key in a partial document that must leave the target value untouched.
// A nil value, unlike Undefined, overwrites the target value.
var Undefined any = undefinedValue{}

// IsUndefined reports whether value is the Undefined marker.
func IsUndefined(value any) bool {
	_, isUndefined := value.(undefinedValue)
	return isUndefined
}

// ValueOrUndefined returns Undefined for an empty string and the string otherwise.
// Command handlers use it to build partial documents from optional flags.
func ValueOrUndefined(value string) any {
	if value == "" {
		return Undefined
	}
	return value
}

type stackItem struct {
	target map[string]any
	source map[string]any
}

// Iterative merges source onto a deep copy of target and returns the copy.
//
// Nested maps are merged key by key. Slices, scalars and nil replace the target value wholesale,
// so slices are never merged element-wise. Undefined values are skipped. When source holds a map
// for a key that target lacks or holds a non-map for, a fresh map is created in the copy first.
// Neither argument is mutated.
func Iterative(target map[string]any, source map[string]any) map[string]any {
	merged := deepCopyMap(target)
	if merged == nil {
		merged = map[string]any{}
	}
	stack := []stackItem{{target: merged, source: source}}

	for len(stack) > 0 {
		currentItem := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, value := range currentItem.source {
			if IsUndefined(value) {
				continue
			}

			nestedSource, isObject := value.(map[string]any)
			if !isObject || nestedSource == nil {
				currentItem.target[key] = copyValue(value)
				continue
			}

			nestedTarget, targetIsObject := currentItem.target[key].(map[string]any)
			if !targetIsObject || nestedTarget == nil {
				nestedTarget = map[string]any{}
				currentItem.target[key] = nestedTarget
			}
			stack = append(stack, stackItem{target: nestedTarget, source: nestedSource})
		}
	}

	return merged
}

// Struct merges a partial document onto a struct value. The struct is converted to its
// mapstructure document, merged with Iterative and decoded back into a fresh value of type T.
func Struct[T any](target T, source map[string]any) (T, error) {
	var result T

	targetDocument := map[string]any{}
	if encodeError := decode(target, &targetDocument); encodeError != nil {
		return result, fmt.Errorf(errorEncodeTargetFormat, encodeError)
	}

	mergedDocument := Iterative(targetDocument, source)
	if decodeError := decode(mergedDocument, &result); decodeError != nil {
		return result, fmt.Errorf(errorDecodeResultFormat, decodeError)
	}
	return result, nil
}

func decode(input any, output any) error {
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          mapstructureTagName,
		Result:           output,
		WeaklyTypedInput: true,
	})
	if decoderError != nil {
		return fmt.Errorf(errorDecoderFormat, decoderError)
	}
	return decoder.Decode(input)
}
