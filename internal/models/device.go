package models

import "fmt"

// DeviceRecord is an immutable snapshot of one USB device's identity and bus
// position, taken during enumeration. Optional string descriptors are nil
// when the device declined to report them; nil is distinct from an empty
// string.
type DeviceRecord struct {
	Bus     int
	Address int
	Port    int

	// PortPath is the chain of port numbers from the bus root down to the
	// device. It is nil for devices attached directly to the root, in which
	// case Port is the only path element. When non-nil it is non-empty and
	// its last element equals Port.
	PortPath []int

	VendorID  uint16
	ProductID uint16
	Class     uint8

	Product      *string
	Manufacturer *string
	Serial       *string
}

// Path returns the full port chain for this device, falling back to the
// device's own port number when no path was reported.
func (d *DeviceRecord) Path() []int {
	if d.PortPath == nil {
		return []int{d.Port}
	}
	return d.PortPath
}

func (d *DeviceRecord) IDString() string {
	return fmt.Sprintf("%04x:%04x", d.VendorID, d.ProductID)
}
