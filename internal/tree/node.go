package tree

import (
	"fmt"

	"github.com/user/hmdscan/internal/models"
)

// USB device class code for hubs, per the USB device-class registry.
const classHub = 0x09

// Valve wireless receiver signature.
const dongleVendorID = 0x28de

var dongleProductIDs = map[uint16]bool{
	0x2101: true,
	0x2102: true,
}

// NoSerial is the normalized serial value for devices that did not report
// a serial number descriptor.
const NoSerial = "No Serial Number"

// Node is one position in a reconstructed hub tree. It wraps the device
// record enumerated at that position, or no record at all when the position
// was only implied by a descendant's port path. Nodes are immutable after
// construction: classification and string normalization happen exactly once
// in newNode, so all downstream comparisons see the same values.
type Node struct {
	Device *models.DeviceRecord
	Port   int
	Level  int

	// Normalized string descriptors: missing product or vendor becomes "",
	// a missing serial becomes NoSerial.
	Product string
	Vendor  string
	Serial  string

	parent   *Node
	children []*Node

	isHub    bool
	isDongle bool
	label    string
}

func newNode(port int, device *models.DeviceRecord, parent *Node, level int) *Node {
	n := &Node{
		Device: device,
		Port:   port,
		Level:  level,
		Serial: NoSerial,
		parent: parent,
		label:  "Unknown",
	}

	if device == nil {
		return n
	}

	if device.Product != nil {
		n.Product = *device.Product
	}
	if device.Manufacturer != nil {
		n.Vendor = *device.Manufacturer
	}
	if device.Serial != nil {
		n.Serial = *device.Serial
	}

	n.isHub = device.Class == classHub
	n.isDongle = device.VendorID == dongleVendorID && dongleProductIDs[device.ProductID]
	if n.isHub {
		n.label = "USB-Hub"
	} else {
		n.label = "Device"
	}

	return n
}

// Parent returns the node one level up, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in ascending port order.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildAt returns the direct child attached at the given port, or nil.
func (n *Node) ChildAt(port int) *Node {
	for _, child := range n.children {
		if child.Port == port {
			return child
		}
	}
	return nil
}

func (n *Node) IsHub() bool {
	return n.isHub
}

func (n *Node) IsDongle() bool {
	return n.isDongle
}

func (n *Node) ClassLabel() string {
	return n.label
}

func (n *Node) GetDisplayName() string {
	if n.Product != "" {
		return n.Product
	}
	if n.Vendor != "" {
		return n.Vendor
	}
	return "Unknown Device"
}

func (n *Node) IDString() string {
	if n.Device == nil {
		return "----:----"
	}
	return n.Device.IDString()
}

func (n *Node) Bus() int {
	if n.Device == nil {
		return 0
	}
	return n.Device.Bus
}

func (n *Node) Address() int {
	if n.Device == nil {
		return 0
	}
	return n.Device.Address
}

// expandable reports whether traversal may descend through this node. Only
// hubs carry downstream ports; a node with no device record is counted too,
// since such nodes exist only because children were enumerated beneath them.
func (n *Node) expandable() bool {
	return n.isHub || n.Device == nil
}

// FlatDescendants returns every node below n reachable through hub
// expansion, in pre-order. Children of non-hub devices are never visited.
func (n *Node) FlatDescendants() []*Node {
	var flat []*Node
	stack := make([]*Node, 0, len(n.children))
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, n.children[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		flat = append(flat, node)
		if node.expandable() {
			for i := len(node.children) - 1; i >= 0; i-- {
				stack = append(stack, node.children[i])
			}
		}
	}
	return flat
}

func (n *Node) String() string {
	return fmt.Sprintf("[Port%d]: %s (%s)", n.Port, n.ClassLabel(), n.IDString())
}
