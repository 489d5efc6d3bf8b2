package hmd

import "github.com/user/hmdscan/internal/tree"

// HTC Vive family headsets enumerate as 0x0bb4:0x0309 and sit one hub
// deeper in the link box than headsets we can only recognize by product
// name, hence the differing hop counts.
const (
	htcVendorID      = 0x0bb4
	viveHMDProductID = 0x0309
)

var namedHMDs = map[string]bool{
	"Beyond":    true,
	"Index HMD": true,
}

// ascentDepth reports how many parent hops separate an identifying device
// from the hub that addresses the whole headset assembly, and whether the
// node identifies a supported headset at all.
func ascentDepth(n *tree.Node) (int, bool) {
	if n.Device != nil && n.Device.VendorID == htcVendorID && n.Device.ProductID == viveHMDProductID {
		return 3, true
	}
	if namedHMDs[n.Product] {
		return 2, true
	}
	return 0, false
}
