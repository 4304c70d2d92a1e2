package joydev

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultRoot is where udev keeps stable by-id symlinks for input devices.
	DefaultRoot = "/dev/input/by-id"

	// deviceSuffix marks the event-interface joystick nodes under the by-id
	// root. The suffix is the sole filter; nothing is opened to decide.
	deviceSuffix = "-event-joystick"
)

// deviceOpener builds a descriptor from a device node path. A function value
// so the scan can be exercised without real device nodes.
type deviceOpener func(path string) (*DeviceInfo, error)

func hasJoystickSuffix(name string) bool {
	return len(name) > len(deviceSuffix) && strings.HasSuffix(name, deviceSuffix)
}

// scanRoot enumerates root and builds descriptors for every entry matching
// the joystick naming convention, in enumeration order. An entry that cannot
// be opened or queried is dropped and the scan continues; an unreadable root
// fails the whole scan.
func scanRoot(root string, open deviceOpener) ([]*DeviceInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf(ErrRootUnreadable, root, err)
	}

	var devices []*DeviceInfo
	for _, entry := range entries {
		if entry.IsDir() || !hasJoystickSuffix(entry.Name()) {
			continue
		}
		dev, err := open(filepath.Join(root, entry.Name()))
		if err != nil {
			log.WithError(err).Debugf("skipping device node %s", entry.Name())
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}
