package usb

import "github.com/user/hmdscan/internal/models"

// Enumerator takes snapshots of the USB devices attached to the host. An
// enumerator owns a native backend; callers must Close it when done.
type Enumerator interface {
	Devices() ([]*models.DeviceRecord, error)
	Close() error
}

func NewEnumerator() Enumerator {
	return newGousbEnumerator()
}
