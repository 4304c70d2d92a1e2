package joydev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request encoding for the evdev "read" requests, per the kernel's
// _IOC macro with type 'E'.
const (
	iocRead      = 2
	iocSizeShift = 16
	iocDirShift  = 30
	iocEvType    = 'E' << 8
)

func ior(nr, size uintptr) uintptr {
	return iocRead<<iocDirShift | size<<iocSizeShift | iocEvType | nr
}

// EVIOCGID, EVIOCGNAME, EVIOCGBIT and EVIOCGABS.
func evIocGID() uintptr { return ior(0x02, unsafe.Sizeof(inputID{})) }

func evIocGName(size uintptr) uintptr { return ior(0x06, size) }

func evIocGBit(evType, size uintptr) uintptr { return ior(0x20+evType, size) }

func evIocGAbs(code uintptr) uintptr { return ior(0x40+code, unsafe.Sizeof(inputAbsInfo{})) }

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// inputAbsInfo mirrors struct input_absinfo.
type inputAbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

func ioctl(fd int, req uintptr, dest unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(dest))
	if errno != 0 {
		return errno
	}
	return nil
}

func openDeviceNode(path string) (int, error) {
	return unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
}

// openDeviceInfo opens a device node read-only and non-blocking, queries its
// identity and runs the capability classification pass, producing a complete
// descriptor. The node is closed again before returning.
func openDeviceInfo(path string) (*DeviceInfo, error) {
	fd, err := openDeviceNode(path)
	if err != nil {
		return nil, fmt.Errorf(ErrDeviceOpen, path, err)
	}
	defer func() { _ = unix.Close(fd) }()

	var id inputID
	if err = ioctl(fd, evIocGID(), unsafe.Pointer(&id)); err != nil {
		return nil, fmt.Errorf(ErrDeviceIdentity, path, err)
	}

	name := make([]byte, 256)
	if err = ioctl(fd, evIocGName(uintptr(len(name))), unsafe.Pointer(&name[0])); err != nil {
		return nil, fmt.Errorf(ErrDeviceName, path, err)
	}

	dev := &DeviceInfo{
		Path:    path,
		Name:    escapeString(name),
		Bustype: id.Bustype,
		Vendor:  id.Vendor,
		Product: id.Product,
		Version: id.Version,
	}
	dev.GUID = newGUID(id.Bustype, id.Vendor, id.Product, id.Version)
	dev.GUIDString = guidString(dev.GUID)

	if err = scanCapabilities(fd, dev); err != nil {
		return nil, fmt.Errorf(ErrDeviceCaps, path, err)
	}
	return dev, nil
}

// scanCapabilities fills Buttons, Axes and Hats from the device's capability
// bitmasks, feeding the classification pass with the raw EVIOCGBIT masks and
// the device's calibration records.
func scanCapabilities(fd int, dev *DeviceInfo) error {
	var evBits [EV_MAX/8 + 1]byte
	if err := ioctl(fd, evIocGBit(0, uintptr(len(evBits))), unsafe.Pointer(&evBits[0])); err != nil {
		return err
	}

	var keyMask, absMask []byte
	if bitSet(evBits[:], EV_KEY) {
		var keyBits [KEY_MAX/8 + 1]byte
		if err := ioctl(fd, evIocGBit(EV_KEY, uintptr(len(keyBits))), unsafe.Pointer(&keyBits[0])); err != nil {
			return err
		}
		keyMask = keyBits[:]
	}
	if bitSet(evBits[:], EV_ABS) {
		var absBits [ABS_MAX/8 + 1]byte
		if err := ioctl(fd, evIocGBit(EV_ABS, uintptr(len(absBits))), unsafe.Pointer(&absBits[0])); err != nil {
			return err
		}
		absMask = absBits[:]
	}

	classify(dev, keyMask, absMask, func(code uint16) AbsInfo {
		return queryAbsInfo(fd, code)
	})
	return nil
}

// classify runs the capability classification pass. Codes are visited in
// ascending order exactly once, so each bucket comes out strictly ascending
// with no duplicates, and every code lands in exactly one bucket: the
// ABS_HAT0X..ABS_HAT3Y block in Hats, all other absolute axes in Axes, key
// codes from the joystick button range in Buttons. A nil mask means the
// device does not support that event type.
func classify(dev *DeviceInfo, keyBits, absBits []byte, abs func(code uint16) AbsInfo) {
	if keyBits != nil {
		for code := uint16(BTN_JOYSTICK); code < KEY_MAX; code++ {
			if bitSet(keyBits, code) {
				dev.Buttons = append(dev.Buttons, code)
			}
		}
	}
	if absBits != nil {
		for code := uint16(ABS_X); code < ABS_RESERVED; code++ {
			if !bitSet(absBits, code) {
				continue
			}
			info := abs(code)
			if isHatCode(code) {
				dev.Hats = append(dev.Hats, info)
			} else {
				dev.Axes = append(dev.Axes, info)
			}
		}
	}
}

// queryAbsInfo reads the calibration record of one absolute axis. A device
// that reports no calibration gets the conventional signed 16-bit range;
// missing calibration is never treated as fatal.
func queryAbsInfo(fd int, code uint16) AbsInfo {
	var raw inputAbsInfo

	if err := ioctl(fd, evIocGAbs(uintptr(code)), unsafe.Pointer(&raw)); err != nil {
		return defaultAbsInfo(code)
	}
	return AbsInfo{
		Code:       code,
		Minimum:    raw.Minimum,
		Maximum:    raw.Maximum,
		Fuzz:       raw.Fuzz,
		Flat:       raw.Flat,
		Resolution: raw.Resolution,
	}
}

// defaultAbsInfo is the calibration assumed for an axis whose record cannot
// be read.
func defaultAbsInfo(code uint16) AbsInfo {
	return AbsInfo{Code: code, Minimum: -32768, Maximum: 32767}
}
