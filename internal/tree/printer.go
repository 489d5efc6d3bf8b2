package tree

import (
	"fmt"

	"github.com/fatih/color"
)

type Printer struct {
	formatter *Formatter
	useColor  bool
}

func NewPrinter(verbose bool) *Printer {
	return &Printer{
		formatter: NewFormatter(verbose),
		useColor:  !color.NoColor,
	}
}

// PrintFinding reports one located headset: its display name, where its
// shared hub sits on the bus, the serials of the wireless receivers found
// beneath that hub, and (in verbose mode) the full subtree under it.
func (p *Printer) PrintFinding(name string, ancestor *Node, dongleSerials []string) {
	nameColor := color.New(color.FgWhite, color.Bold)
	busColor := color.New(color.FgGreen)
	detailColor := color.New(color.FgHiBlack)
	valueColor := color.New(color.FgCyan)

	nameColor.Print(name)
	fmt.Print(" ")
	busColor.Printf("[bus %d, address %d]\n", ancestor.Bus(), ancestor.Address())

	if len(dongleSerials) == 0 {
		detailColor.Println("  no wireless receivers attached")
	}
	for _, serial := range dongleSerials {
		detailColor.Print("  receiver serial: ")
		valueColor.Println(serial)
	}

	if p.formatter.verbose {
		fmt.Println()
		p.PrintSubtree(ancestor)
	}
	fmt.Println()
}

// PrintSubtree renders the hub tree rooted at the given node.
func (p *Printer) PrintSubtree(root *Node) {
	for _, line := range p.formatter.FormatNode(root, "", true) {
		fmt.Println(line)
	}
}

func (p *Printer) PrintNoFindings() {
	warning := color.New(color.FgYellow)
	warning.Println("No supported HMD found")
	fmt.Println("\nNote: this tool requires libusb-1.0 to be installed.")
	fmt.Println("On macOS: brew install libusb")
	fmt.Println("On Linux: sudo apt-get install libusb-1.0-0 (or equivalent)")
}
