package usb

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/user/hmdscan/internal/models"
)

// gousbEnumerator reads device records through libusb. The gousb context is
// opened once here and released in Close, not per snapshot.
type gousbEnumerator struct {
	ctx *gousb.Context
}

func newGousbEnumerator() Enumerator {
	return &gousbEnumerator{ctx: gousb.NewContext()}
}

func (e *gousbEnumerator) Devices() ([]*models.DeviceRecord, error) {
	devices, err := e.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return true
	})
	defer func() {
		for _, dev := range devices {
			dev.Close()
		}
	}()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	records := make([]*models.DeviceRecord, 0, len(devices))
	for _, dev := range devices {
		records = append(records, newRecord(dev))
	}
	return records, nil
}

// newRecord copies one opened device's descriptor into a DeviceRecord.
// String descriptor reads fail routinely (permissions, suspended devices);
// a failed read leaves the field nil rather than degrading the snapshot.
func newRecord(dev *gousb.Device) *models.DeviceRecord {
	desc := dev.Desc
	record := &models.DeviceRecord{
		Bus:       desc.Bus,
		Address:   desc.Address,
		Port:      desc.Port,
		VendorID:  uint16(desc.Vendor),
		ProductID: uint16(desc.Product),
		Class:     uint8(desc.Class),
	}
	if len(desc.Path) > 0 {
		record.PortPath = append([]int(nil), desc.Path...)
	}

	if product, err := dev.Product(); err == nil {
		record.Product = &product
	}
	if manufacturer, err := dev.Manufacturer(); err == nil {
		record.Manufacturer = &manufacturer
	}
	if serial, err := dev.SerialNumber(); err == nil {
		record.Serial = &serial
	}

	return record
}

func (e *gousbEnumerator) Close() error {
	return e.ctx.Close()
}
