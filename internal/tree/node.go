// Package tree converts flat bundle paths into a directory tree and renders it as text.
package tree

// Node is either a *FileNode or a *DirectoryNode.
type Node interface {
	NodeName() string
	isNode()
}

// FileNode is a leaf of the tree.
type FileNode struct {
	Name string
}

// DirectoryNode holds child nodes in first-encounter order.
type DirectoryNode struct {
	Name     string
	Children []Node
}

// NodeName returns the path segment of the file.
func (node *FileNode) NodeName() string { return node.Name }

// NodeName returns the path segment of the directory.
func (node *DirectoryNode) NodeName() string { return node.Name }

func (*FileNode) isNode()      {}
func (*DirectoryNode) isNode() {}

// child returns the child with the exact name, or nil.
func (node *DirectoryNode) child(name string) Node {
	for _, candidate := range node.Children {
		if candidate.NodeName() == name {
			return candidate
		}
	}
	return nil
}
