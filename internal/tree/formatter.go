package tree

import (
	"fmt"
	"strings"
)

type Formatter struct {
	verbose bool
}

func NewFormatter(verbose bool) *Formatter {
	return &Formatter{verbose: verbose}
}

func (f *Formatter) FormatNode(node *Node, prefix string, isLast bool) []string {
	var lines []string

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	nodeLine := fmt.Sprintf("%s%s%s", prefix, connector, f.getNodeString(node))
	lines = append(lines, nodeLine)

	if f.verbose {
		detailPrefix := prefix
		if isLast {
			detailPrefix += "    "
		} else {
			detailPrefix += "│   "
		}
		lines = append(lines, f.getDetailLines(node, detailPrefix)...)
	}

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}

	children := node.Children()
	for i, child := range children {
		isLastChild := i == len(children)-1
		childLines := f.FormatNode(child, childPrefix, isLastChild)
		lines = append(lines, childLines...)
	}

	return lines
}

func (f *Formatter) getNodeString(node *Node) string {
	name := node.GetDisplayName()
	idString := node.IDString()

	if node.ClassLabel() != "Device" {
		return fmt.Sprintf("[Port %d] %s [%s] (%s)", node.Port, name, idString, node.ClassLabel())
	}

	return fmt.Sprintf("[Port %d] %s [%s]", node.Port, name, idString)
}

func (f *Formatter) getDetailLines(node *Node, prefix string) []string {
	var lines []string

	if node.Serial != NoSerial {
		lines = append(lines, fmt.Sprintf("%s├─ Serial: %s", prefix, node.Serial))
	}

	if node.Vendor != "" {
		lines = append(lines, fmt.Sprintf("%s├─ Vendor: %s", prefix, node.Vendor))
	}

	lines = append(lines, fmt.Sprintf("%s└─ Bus %d, Port %d, Address %d",
		prefix, node.Bus(), node.Port, node.Address()))

	return lines
}

func (f *Formatter) FormatTree(roots []*Node) string {
	if len(roots) == 0 {
		return "No USB devices found"
	}

	var allLines []string
	allLines = append(allLines, "USB Device Tree:")
	allLines = append(allLines, "")

	for i, root := range roots {
		isLast := i == len(roots)-1
		lines := f.FormatNode(root, "", isLast)
		allLines = append(allLines, lines...)
	}

	return strings.Join(allLines, "\n")
}
