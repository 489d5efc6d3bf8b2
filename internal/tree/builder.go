package tree

import (
	"sort"

	"github.com/user/hmdscan/internal/models"
)

// protoNode is the mutable construction form of a tree position: an optional
// device slot plus a port-keyed child map. It never escapes Build.
type protoNode struct {
	device   *models.DeviceRecord
	children map[int]*protoNode
}

func newProtoNode() *protoNode {
	return &protoNode{children: make(map[int]*protoNode)}
}

// Build reconstructs the hub/port forest for one bus from a flat list of
// device records. Each record is placed by walking its port path from the
// bus root, creating intermediate positions as needed; a position created
// for an intermediate hub keeps an empty device slot until that hub's own
// record shows up, and stays device-less if it never does. Every level of
// the result iterates in ascending numeric port order regardless of
// enumeration order.
func Build(records []*models.DeviceRecord) []*Node {
	root := make(map[int]*protoNode)
	for _, record := range records {
		level := root
		path := record.Path()
		for _, port := range path[:len(path)-1] {
			slot, ok := level[port]
			if !ok {
				slot = newProtoNode()
				level[port] = slot
			}
			level = slot.children
		}
		last := path[len(path)-1]
		slot, ok := level[last]
		if !ok {
			slot = newProtoNode()
			level[last] = slot
		}
		slot.device = record
	}
	return convert(root, nil, 0)
}

// convert turns one level of the construction map into finished nodes,
// sorted by port, recursing top-down so parent links and levels are threaded
// at construction time.
func convert(level map[int]*protoNode, parent *Node, depth int) []*Node {
	ports := make([]int, 0, len(level))
	for port := range level {
		ports = append(ports, port)
	}
	sort.Ints(ports)

	nodes := make([]*Node, 0, len(ports))
	for _, port := range ports {
		proto := level[port]
		node := newNode(port, proto.device, parent, depth)
		node.children = convert(proto.children, node, depth+1)
		nodes = append(nodes, node)
	}
	return nodes
}
