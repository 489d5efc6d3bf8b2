package hmd

import (
	"strings"

	"github.com/user/hmdscan/internal/tree"
)

// Finding pairs the hub that addresses a located headset assembly with the
// leaf device whose signature identified it. Device may be a hub several
// levels above IDDevice; IDDevice carries the human-readable identity.
type Finding struct {
	Device   *tree.Node
	IDDevice *tree.Node
}

// AttachedDongles returns every wireless receiver found below the
// finding's hub, in traversal order.
func (f *Finding) AttachedDongles() []*tree.Node {
	var dongles []*tree.Node
	for _, node := range f.Device.FlatDescendants() {
		if node.IsDongle() {
			dongles = append(dongles, node)
		}
	}
	return dongles
}

// DongleSerials returns the serial numbers of the attached receivers, in
// the same order as AttachedDongles.
func (f *Finding) DongleSerials() []string {
	dongles := f.AttachedDongles()
	serials := make([]string, 0, len(dongles))
	for _, dongle := range dongles {
		serials = append(serials, dongle.Serial)
	}
	return serials
}

func (f *Finding) DisplayName() string {
	return strings.TrimSpace(f.IDDevice.Vendor + " " + f.IDDevice.Product)
}
