package tree

import (
	"strings"
	"testing"

	"github.com/user/hmdscan/internal/models"
)

func buildHubWithChildren(t *testing.T) *Node {
	t.Helper()

	hub := record([]int{1}, 0x05AC, 0x1234, classHub)
	hub.Product = strPtr("USB Hub")

	receiver := record([]int{1, 1}, 0x28DE, 0x2101, 0x00)
	receiver.Product = strPtr("Watchman Dongle")

	storage := record([]int{1, 2}, 0x0781, 0x5591, 0x08)
	storage.Product = strPtr("SanDisk Ultra")

	roots := Build([]*models.DeviceRecord{hub, receiver, storage})
	if len(roots) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(roots))
	}
	return roots[0]
}

func TestFormatter_FormatNode(t *testing.T) {
	formatter := NewFormatter(false)

	hub := buildHubWithChildren(t)
	lines := formatter.FormatNode(hub, "", false)

	if len(lines) < 3 {
		t.Errorf("Expected at least 3 lines, got %d", len(lines))
	}

	if !strings.Contains(lines[0], "USB Hub") {
		t.Errorf("Expected hub name in first line, got: %s", lines[0])
	}

	if !strings.Contains(lines[0], "[05ac:1234]") {
		t.Errorf("Expected device ID in first line, got: %s", lines[0])
	}

	if !strings.Contains(lines[0], "(USB-Hub)") {
		t.Errorf("Expected class label in first line, got: %s", lines[0])
	}

	foundReceiver := false
	foundStorage := false
	for _, line := range lines {
		if strings.Contains(line, "Watchman Dongle") {
			foundReceiver = true
		}
		if strings.Contains(line, "SanDisk Ultra") {
			foundStorage = true
		}
	}

	if !foundReceiver {
		t.Error("Child (Watchman Dongle) not found in output")
	}

	if !foundStorage {
		t.Error("Child (SanDisk Ultra) not found in output")
	}
}

func TestFormatter_FormatNode_Verbose(t *testing.T) {
	formatter := NewFormatter(true)

	rec := record([]int{3}, 0x28DE, 0x2101, 0x00)
	rec.Bus = 1
	rec.Address = 7
	rec.Product = strPtr("Watchman Dongle")
	rec.Manufacturer = strPtr("Valve Software")
	rec.Serial = strPtr("ABC123")

	node := Build([]*models.DeviceRecord{rec})[0]
	lines := formatter.FormatNode(node, "", true)

	foundSerial := false
	foundVendor := false
	foundBusInfo := false

	for _, line := range lines {
		if strings.Contains(line, "Serial: ABC123") {
			foundSerial = true
		}
		if strings.Contains(line, "Vendor: Valve Software") {
			foundVendor = true
		}
		if strings.Contains(line, "Bus 1, Port 3, Address 7") {
			foundBusInfo = true
		}
	}

	if !foundSerial {
		t.Error("Serial number not found in verbose output")
	}

	if !foundVendor {
		t.Error("Vendor not found in verbose output")
	}

	if !foundBusInfo {
		t.Error("Bus info not found in verbose output")
	}
}

func TestFormatter_FormatTree(t *testing.T) {
	formatter := NewFormatter(false)

	result := formatter.FormatTree(nil)
	if result != "No USB devices found" {
		t.Errorf("Expected 'No USB devices found', got: %s", result)
	}

	hub1 := record([]int{1}, 0x05AC, 0x1234, classHub)
	hub1.Product = strPtr("USB Hub 1")
	hub2 := record([]int{2}, 0x05AC, 0x5678, classHub)
	hub2.Product = strPtr("USB Hub 2")

	result = formatter.FormatTree(Build([]*models.DeviceRecord{hub1, hub2}))

	if !strings.Contains(result, "USB Device Tree:") {
		t.Error("Expected header 'USB Device Tree:' in output")
	}

	if !strings.Contains(result, "USB Hub 1") {
		t.Error("Expected 'USB Hub 1' in output")
	}

	if !strings.Contains(result, "USB Hub 2") {
		t.Error("Expected 'USB Hub 2' in output")
	}
}

func TestFormatter_TreeConnectors(t *testing.T) {
	formatter := NewFormatter(false)

	hub := buildHubWithChildren(t)
	lines := formatter.FormatNode(hub, "", false)

	for _, line := range lines {
		if strings.Contains(line, "Watchman Dongle") {
			if !strings.Contains(line, "├──") {
				t.Errorf("Expected ├── connector for middle child, got: %s", line)
			}
		}
		if strings.Contains(line, "SanDisk Ultra") {
			if !strings.Contains(line, "└──") {
				t.Errorf("Expected └── connector for last child, got: %s", line)
			}
		}
	}
}

func TestFormatter_PlaceholderNode(t *testing.T) {
	formatter := NewFormatter(false)

	// Hub at port 2 implied but never enumerated.
	rec := record([]int{2, 1}, 0x28DE, 0x2101, 0x00)
	roots := Build([]*models.DeviceRecord{rec})

	lines := formatter.FormatNode(roots[0], "", true)

	if !strings.Contains(lines[0], "[----:----]") {
		t.Errorf("Expected placeholder ID marker in first line, got: %s", lines[0])
	}
	if !strings.Contains(lines[0], "(Unknown)") {
		t.Errorf("Expected 'Unknown' class label for placeholder, got: %s", lines[0])
	}
}
