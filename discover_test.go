package joydev

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeOpener(path string) (*DeviceInfo, error) {
	return &DeviceInfo{Path: path, Name: filepath.Base(path)}, nil
}

func writeNodes(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	r := &Registry{open: fakeOpener}

	count, err := r.Scan(t.TempDir())
	if err != nil {
		t.Fatalf("scan of empty root failed: %v", err)
	}
	if count != 0 || r.Len() != 0 {
		t.Errorf("got count %d, registry size %d, want 0/0", count, r.Len())
	}
}

func TestScanSuffixFilter(t *testing.T) {
	root := t.TempDir()
	writeNodes(t, root,
		"usb-Vendor_Pad-event-joystick",
		"usb-Vendor_Pad-if01",
		"usb-Vendor_Pad-joystick",
		"-event-joystick", // suffix alone is not a device name
	)
	if err := os.Mkdir(filepath.Join(root, "dir-event-joystick"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := &Registry{open: fakeOpener}
	count, err := r.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("got %d devices, want 1", count)
	}
	if name := r.Devices()[0].Name; name != "usb-Vendor_Pad-event-joystick" {
		t.Errorf("wrong device survived the filter: %q", name)
	}
}

func TestScanRootUnreadable(t *testing.T) {
	r := &Registry{open: fakeOpener}
	r.devices = []*DeviceInfo{testDevice()}

	count, err := r.Scan(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected an error for an unreadable root")
	}
	if count != -1 {
		t.Errorf("got count %d, want -1", count)
	}
	if r.Len() != 1 {
		t.Errorf("previous result set was discarded on a failed scan")
	}
}

func TestScanDropsFailingDevice(t *testing.T) {
	root := t.TempDir()
	writeNodes(t, root,
		"usb-Broken_Pad-event-joystick",
		"usb-Good_Pad-event-joystick",
	)

	r := &Registry{open: func(path string) (*DeviceInfo, error) {
		if strings.Contains(path, "Broken") {
			return nil, errors.New("no such device")
		}
		return fakeOpener(path)
	}}

	count, err := r.Scan(root)
	if err != nil {
		t.Fatalf("per-device failure must not fail the scan: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d devices, want 1", count)
	}
	if !strings.Contains(r.Devices()[0].Path, "Good") {
		t.Errorf("wrong device survived: %q", r.Devices()[0].Path)
	}
}

func TestScanReplacesPreviousResult(t *testing.T) {
	first := t.TempDir()
	writeNodes(t, first, "usb-Pad_A-event-joystick", "usb-Pad_B-event-joystick")

	r := &Registry{open: fakeOpener}
	if _, err := r.Scan(first); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("got %d devices after first scan, want 2", r.Len())
	}

	if _, err := r.Scan(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("second scan kept %d stale devices", r.Len())
	}
}

func TestScanNotifiesDisplay(t *testing.T) {
	root := t.TempDir()
	writeNodes(t, root, "usb-Pad-event-joystick")

	d := &fakeDisplay{}
	r := &Registry{display: d, open: fakeOpener}
	if _, err := r.Scan(root); err != nil {
		t.Fatal(err)
	}
	if len(d.scans) != 1 || d.scans[0] != 1 {
		t.Errorf("scan notifications: got %v, want [1]", d.scans)
	}
}
