package tree

import (
	"path/filepath"
	"strings"
)

// Build assembles the tree for the given paths using the platform separator.
func Build(paths []string) Node {
	return BuildWithSeparator(paths, string(filepath.Separator))
}

// BuildWithSeparator assembles the tree for paths split on separator.
//
// Segments followed by further segments become directories and the final segment becomes a
// file, whether or not it carries an extension. Existing children are reused by exact name.
// The synthetic root is stripped when at least one path was supplied.
func BuildWithSeparator(paths []string, separator string) Node {
	root := &DirectoryNode{Name: "", Children: []Node{}}

	for _, filePath := range paths {
		pathParts := strings.Split(filePath, separator)
		var currentNode Node = root

		for partIndex, part := range pathParts {
			currentDirectory, isDirectory := currentNode.(*DirectoryNode)
			if isDirectory {
				if existingNode := currentDirectory.child(part); existingNode != nil {
					currentNode = existingNode
					continue
				}
			}

			var newNode Node
			if partIndex < len(pathParts)-1 {
				newNode = &DirectoryNode{Name: part, Children: []Node{}}
			} else {
				newNode = &FileNode{Name: part}
			}

			if isDirectory {
				currentDirectory.Children = append(currentDirectory.Children, newNode)
			}
			currentNode = newNode
		}
	}

	if len(root.Children) > 0 {
		return root.Children[0]
	}
	return root
}
