package hmd

import (
	"sort"

	"github.com/user/hmdscan/internal/models"
	"github.com/user/hmdscan/internal/tree"
)

// Scan reconstructs the hub topology of every bus in the snapshot and
// returns the headsets located in it, ordered by bus number and then by
// discovery order within the bus. The result is deterministic for a given
// snapshot; an empty snapshot yields no findings.
func Scan(records []*models.DeviceRecord) []*Finding {
	byBus := make(map[int][]*models.DeviceRecord)
	for _, record := range records {
		byBus[record.Bus] = append(byBus[record.Bus], record)
	}

	buses := make([]int, 0, len(byBus))
	for bus := range byBus {
		buses = append(buses, bus)
	}
	sort.Ints(buses)

	var findings []*Finding
	for _, bus := range buses {
		for _, root := range tree.Build(byBus[bus]) {
			if finding := locate(root); finding != nil {
				findings = append(findings, finding)
			}
		}
	}
	return findings
}

// locate searches one subtree for an identifying headset device. Children
// are searched before the node itself, so the deepest match in a subtree
// wins. On a match the required number of parent hops leads to the hub
// addressing the assembly; a candidate whose ascent runs past the root is
// skipped rather than reported.
func locate(n *tree.Node) *Finding {
	for _, child := range n.Children() {
		if finding := locate(child); finding != nil {
			return finding
		}
	}

	depth, ok := ascentDepth(n)
	if !ok {
		return nil
	}
	device := n
	for hop := 0; hop < depth; hop++ {
		device = device.Parent()
		if device == nil {
			return nil
		}
	}
	return &Finding{Device: device, IDDevice: n}
}
