package merge

type copyTask struct {
	sourceMap        map[string]any
	destinationMap   map[string]any
	sourceSlice      []any
	destinationSlice []any
}

// deepCopyMap copies nested maps and slices without recursion.
func deepCopyMap(source map[string]any) map[string]any {
	if source == nil {
		return nil
	}
	destination := make(map[string]any, len(source))
	copyContainers(copyTask{sourceMap: source, destinationMap: destination})
	return destination
}

// copyValue returns an independent copy of a JSON-shaped value.
func copyValue(value any) any {
	switch typedValue := value.(type) {
	case map[string]any:
		return deepCopyMap(typedValue)
	case []any:
		if typedValue == nil {
			return typedValue
		}
		destination := make([]any, len(typedValue))
		copyContainers(copyTask{sourceSlice: typedValue, destinationSlice: destination})
		return destination
	default:
		return value
	}
}

func copyContainers(initialTask copyTask) {
	stack := []copyTask{initialTask}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, value := range task.sourceMap {
			copied, nestedTask := shallowCopy(value)
			task.destinationMap[key] = copied
			if nestedTask != nil {
				stack = append(stack, *nestedTask)
			}
		}
		for index, value := range task.sourceSlice {
			copied, nestedTask := shallowCopy(value)
			task.destinationSlice[index] = copied
			if nestedTask != nil {
				stack = append(stack, *nestedTask)
			}
		}
	}
}

// shallowCopy allocates the container for value and returns the task that fills it.
func shallowCopy(value any) (any, *copyTask) {
	switch typedValue := value.(type) {
	case map[string]any:
		if typedValue == nil {
			return typedValue, nil
		}
		destination := make(map[string]any, len(typedValue))
		return destination, &copyTask{sourceMap: typedValue, destinationMap: destination}
	case []any:
		if typedValue == nil {
			return typedValue, nil
		}
		destination := make([]any, len(typedValue))
		return destination, &copyTask{sourceSlice: typedValue, destinationSlice: destination}
	default:
		return value, nil
	}
}
