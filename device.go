package joydev

import "strings"

// AbsInfo describes one absolute axis: its event code and the calibration
// record reported by the device.
type AbsInfo struct {
	Code       uint16
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// DeviceInfo holds the capability descriptor of one discovered joystick
// device. Buttons, Axes and Hats are filled by a single classification pass
// during discovery and are ascending by event code. Hats always come in X/Y
// pairs, so len(Hats) is even and Hats[2i], Hats[2i+1] belong to one
// physical hat.
type DeviceInfo struct {
	Path string
	Name string

	GUID       [16]byte
	GUIDString string

	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16

	Buttons []uint16
	Axes    []AbsInfo
	Hats    []AbsInfo
}

// NumHats returns the number of physical hats, each covering two axis
// entries in Hats.
func (d *DeviceInfo) NumHats() int {
	return len(d.Hats) / 2
}

// Clone returns a deep copy sharing no storage with the receiver. Holders of
// a descriptor beyond the next scan must keep a clone, never the registry's
// own instance.
func (d *DeviceInfo) Clone() *DeviceInfo {
	dup := *d
	dup.Buttons = append([]uint16(nil), d.Buttons...)
	dup.Axes = append([]AbsInfo(nil), d.Axes...)
	dup.Hats = append([]AbsInfo(nil), d.Hats...)
	return &dup
}

// buttonOrdinal returns the position of a button code in Buttons, or -1.
func (d *DeviceInfo) buttonOrdinal(code uint16) int {
	for i, c := range d.Buttons {
		if c == code {
			return i
		}
	}
	return -1
}

// axisOrdinal returns the position of an axis code in a slice of axis
// records, or -1.
func axisOrdinal(axes []AbsInfo, code uint16) int {
	for i, abs := range axes {
		if abs.Code == code {
			return i
		}
	}
	return -1
}

// ButtonNames lists the names of all buttons in descriptor order.
func (d *DeviceInfo) ButtonNames() []string {
	names := make([]string, len(d.Buttons))
	for i, code := range d.Buttons {
		names[i] = ButtonName(code)
	}
	return names
}

// AxisNames lists the names of all non-hat axes in descriptor order.
func (d *DeviceInfo) AxisNames() []string {
	names := make([]string, len(d.Axes))
	for i, abs := range d.Axes {
		names[i] = AxisName(abs.Code)
	}
	return names
}

// HatNames lists the names of the physical hats, one per X/Y pair.
func (d *DeviceInfo) HatNames() []string {
	names := make([]string, d.NumHats())
	for i := range names {
		names[i] = HatName(d.Hats[i*2].Code)
	}
	return names
}

// Summary returns a one-line description suitable for device listings.
func (d *DeviceInfo) Summary() string {
	var b strings.Builder

	b.WriteString(d.Name)
	b.WriteString(" (")
	b.WriteString(d.GUIDString)
	b.WriteString(") buttons: ")
	b.WriteString(join(d.ButtonNames()))
	b.WriteString(", axes: ")
	b.WriteString(join(d.AxisNames()))
	b.WriteString(", hats: ")
	b.WriteString(join(d.HatNames()))
	return b.String()
}

func join(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
