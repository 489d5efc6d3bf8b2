package hmd

import "github.com/user/hmdscan/internal/tree"

// NodeReport is the JSON view of one tree node's identity.
type NodeReport struct {
	VendorID  uint16 `json:"vendor_id"`
	ProductID uint16 `json:"product_id"`
	Vendor    string `json:"vendor,omitempty"`
	Product   string `json:"product,omitempty"`
	Serial    string `json:"serial"`
	Bus       int    `json:"bus"`
	Port      int    `json:"port"`
	Address   int    `json:"address"`
}

// FindingReport is the JSON view of one located headset.
type FindingReport struct {
	Name     string       `json:"name"`
	Device   NodeReport   `json:"device"`
	IDDevice NodeReport   `json:"id_device"`
	Dongles  []NodeReport `json:"dongles,omitempty"`
}

func newNodeReport(n *tree.Node) NodeReport {
	report := NodeReport{
		Vendor:  n.Vendor,
		Product: n.Product,
		Serial:  n.Serial,
		Bus:     n.Bus(),
		Port:    n.Port,
		Address: n.Address(),
	}
	if n.Device != nil {
		report.VendorID = n.Device.VendorID
		report.ProductID = n.Device.ProductID
	}
	return report
}

func (f *Finding) Report() FindingReport {
	report := FindingReport{
		Name:     f.DisplayName(),
		Device:   newNodeReport(f.Device),
		IDDevice: newNodeReport(f.IDDevice),
	}
	for _, dongle := range f.AttachedDongles() {
		report.Dongles = append(report.Dongles, newNodeReport(dongle))
	}
	return report
}
