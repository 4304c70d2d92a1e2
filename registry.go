package joydev

import (
	"errors"
	"runtime"
	"sort"
)

// SortField selects the string field Registry.Sort orders by.
type SortField int

const (
	SortByIdentity SortField = iota
	SortByName
	SortByPath
)

// Registry owns the descriptors produced by the most recent scan. At most
// one result set is live at a time; a new scan replaces the previous one
// wholesale. The registry is not safe for concurrent use, scans run
// synchronously on explicit user action only, never from the polling tick.
type Registry struct {
	display Display
	open    deviceOpener
	devices []*DeviceInfo
}

// NewRegistry creates an empty registry reporting scan results through
// display, which may be nil.
func NewRegistry(display Display) (*Registry, error) {
	switch runtime.GOOS {
	case "linux":
		return &Registry{display: display, open: openDeviceInfo}, nil
	default:
		return nil, errors.New(ErrOsNotSupported)
	}
}

// Scan discovers joystick device nodes under root and replaces the owned
// result set with the outcome, returning the device count. When root cannot
// be listed the count is -1, distinguishing a failed scan from one that
// found nothing, and the previous result set stays in place.
func (r *Registry) Scan(root string) (int, error) {
	devices, err := scanRoot(root, r.open)
	if err != nil {
		return -1, err
	}
	r.devices = devices
	if r.display != nil {
		r.display.ScanCompleted(len(devices))
	}
	return len(devices), nil
}

// Devices returns the registry's own descriptors. A caller keeping one past
// the next Scan must keep a Clone instead.
func (r *Registry) Devices() []*DeviceInfo {
	return r.devices
}

// Len returns the number of devices in the current result set.
func (r *Registry) Len() int {
	return len(r.devices)
}

// Sort stably orders the current result set in place by the string form of
// the chosen field. Sorting an empty registry is a no-op.
func (r *Registry) Sort(field SortField) {
	key := func(d *DeviceInfo) string {
		switch field {
		case SortByName:
			return d.Name
		case SortByPath:
			return d.Path
		default:
			return d.GUIDString
		}
	}
	sort.SliceStable(r.devices, func(i, j int) bool {
		return key(r.devices[i]) < key(r.devices[j])
	})
}
