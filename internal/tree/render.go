package tree

import (
	"strings"

	"github.com/fatih/color"
)

// Connector glyphs. Every glyph is three cells wide and carries no trailing space.
const (
	SymbolEdge   = "├──"
	SymbolLine   = "│  "
	SymbolCorner = "└──"
	SymbolBlank  = "   "
)

// Style decorates connector indents and directory names.
type Style struct {
	Indent    func(text string) string
	Directory func(text string) string
}

// PlainStyle renders without terminal escapes.
func PlainStyle() Style {
	identity := func(text string) string { return text }
	return Style{Indent: identity, Directory: identity}
}

// ColorStyle renders gray connectors and bold blue directories. Escapes are omitted when
// color output is disabled for the process.
func ColorStyle() Style {
	indentColor := color.New(color.FgHiBlack)
	directoryColor := color.New(color.Bold, color.FgBlue)
	return Style{
		Indent:    func(text string) string { return indentColor.Sprint(text) },
		Directory: func(text string) string { return directoryColor.Sprint(text) },
	}
}

type treeBranch struct {
	node   Node
	indent string
	depth  int
}

// Render returns the text drawing of root, one node per line.
//
// Children are pushed in order and popped last in first out, so siblings print in reverse and
// the first child, printed last, receives the corner glyph. Children of the root receive no
// connector. A directory root without children renders as the empty string.
func Render(root Node, style Style) string {
	if directory, isDirectory := root.(*DirectoryNode); isDirectory && len(directory.Children) == 0 {
		return ""
	}
	style = completeStyle(style)

	buffer := []string{}
	stack := []treeBranch{{node: root, indent: "", depth: 0}}

	for len(stack) > 0 {
		currentBranch := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		directory, isDirectory := currentBranch.node.(*DirectoryNode)
		if !isDirectory {
			buffer = append(buffer, styled(style.Indent, currentBranch.indent)+currentBranch.node.NodeName())
			continue
		}

		buffer = append(buffer, styled(style.Indent, currentBranch.indent)+styled(style.Directory, directory.Name))

		childDepth := currentBranch.depth + 1
		for childIndex, child := range directory.Children {
			stack = append(stack, treeBranch{
				node:   child,
				indent: childIndent(currentBranch, childIndex, childDepth),
				depth:  childDepth,
			})
		}
	}

	return strings.Join(buffer, "\n")
}

func childIndent(parent treeBranch, childIndex int, childDepth int) string {
	if parent.depth == 0 {
		return ""
	}

	var indent string
	switch {
	case strings.HasSuffix(parent.indent, SymbolEdge):
		indent = strings.TrimSuffix(parent.indent, SymbolEdge) + SymbolLine
	case strings.HasSuffix(parent.indent, SymbolCorner):
		indent = strings.TrimSuffix(parent.indent, SymbolCorner) + SymbolBlank
	default:
		indent = strings.Repeat(SymbolBlank, childDepth-2)
	}

	if childIndex == 0 {
		return indent + SymbolCorner
	}
	return indent + SymbolEdge
}

func completeStyle(style Style) Style {
	plain := PlainStyle()
	if style.Indent == nil {
		style.Indent = plain.Indent
	}
	if style.Directory == nil {
		style.Directory = plain.Directory
	}
	return style
}

func styled(decorate func(string) string, text string) string {
	if text == "" {
		return ""
	}
	return decorate(text)
}
