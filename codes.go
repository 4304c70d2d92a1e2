package joydev

// Event types and codes from the Linux input subsystem. Only the subset the
// package actually inspects is defined here; names match linux/input-event-codes.h.
const (
	EV_SYN = 0x00
	EV_KEY = 0x01
	EV_ABS = 0x03
	EV_MAX = 0x1f

	SYN_REPORT  = 0x00
	SYN_DROPPED = 0x03

	BTN_JOYSTICK = 0x120
	KEY_MAX      = 0x2ff

	ABS_X        = 0x00
	ABS_HAT0X    = 0x10
	ABS_HAT3Y    = 0x17
	ABS_RESERVED = 0x2e
	ABS_MAX      = 0x3f
)

type codeName struct {
	code uint16
	name string
}

// Button names as used by the kernel's HID debug output.
var buttonNames = []codeName{
	/* 0x100-0x109 - BTN_MISC */
	{0x100, "Btn0"}, {0x101, "Btn1"},
	{0x102, "Btn2"}, {0x103, "Btn3"},
	{0x104, "Btn4"}, {0x105, "Btn5"},
	{0x106, "Btn6"}, {0x107, "Btn7"},
	{0x108, "Btn8"}, {0x109, "Btn9"},

	/* 0x110-0x117 - BTN_MOUSE */
	{0x110, "LeftBtn"}, {0x111, "RightBtn"},
	{0x112, "MiddleBtn"}, {0x113, "SideBtn"},
	{0x114, "ExtraBtn"}, {0x115, "ForwardBtn"},
	{0x116, "BackBtn"}, {0x117, "TaskBtn"},

	/* 0x120-0x12f - BTN_JOYSTICK */
	{0x120, "Trigger"}, {0x121, "ThumbBtn"},
	{0x122, "ThumbBtn2"}, {0x123, "TopBtn"},
	{0x124, "TopBtn2"}, {0x125, "PinkieButton"},
	{0x126, "BaseBtn"}, {0x127, "BaseBtn2"},
	{0x128, "BaseBtn3"}, {0x129, "BaseBtn4"},
	{0x12a, "BaseBtn5"}, {0x12b, "BaseBtn6"},
	{0x12f, "BtnDead"},

	/* 0x130-0x13e - BTN_GAMEPAD */
	{0x130, "BtnA"}, {0x131, "BtnB"},
	{0x132, "BtnC"}, {0x133, "BtnX"},
	{0x134, "BtnY"}, {0x135, "BtnZ"},
	{0x136, "BtnTL"}, {0x137, "BtnTR"},
	{0x138, "BtnTL2"}, {0x139, "BtnTR2"},
	{0x13a, "BtnSelect"}, {0x13b, "BtnStart"},
	{0x13c, "BtnMode"}, {0x13d, "BtnThumbL"},
	{0x13e, "BtnThumbR"},

	/* 0x150-0x151 - BTN_WHEEL */
	{0x150, "GearDown"}, {0x151, "GearUp"},

	/* 0x220-0x223 - BTN_DPAD */
	{0x220, "BtnDPadUp"}, {0x221, "BtnDPadDown"},
	{0x222, "BtnDPadLeft"}, {0x223, "BtnDPadRight"},
}

// Axis names, including the hat axes which the kernel reports as plain
// absolute axes.
var axisNames = []codeName{
	{0x00, "X"},
	{0x01, "Y"},
	{0x02, "Z"},
	{0x03, "Rx"},
	{0x04, "Ry"},
	{0x05, "Rz"},
	{0x06, "Throttle"},
	{0x07, "Rudder"},
	{0x08, "Wheel"},
	{0x09, "Gas"},
	{0x0a, "Brake"},
	{0x10, "Hat0X"},
	{0x11, "Hat0Y"},
	{0x12, "Hat1X"},
	{0x13, "Hat1Y"},
	{0x14, "Hat2X"},
	{0x15, "Hat2Y"},
	{0x16, "Hat3X"},
	{0x17, "Hat3Y"},
	{0x18, "Pressure"},
	{0x19, "Distance"},
	{0x1a, "XTilt"},
	{0x1b, "YTilt"},
	{0x1c, "ToolWidth"},
	{0x20, "Volume"},
	{0x21, "Profile"},
	{0x28, "Misc"},
}

// Hat names: both axes of a pair map to the same name.
var hatNames = []codeName{
	{0x10, "Hat0"}, {0x11, "Hat0"},
	{0x12, "Hat1"}, {0x13, "Hat1"},
	{0x14, "Hat2"}, {0x15, "Hat2"},
	{0x16, "Hat3"}, {0x17, "Hat3"},
}

func lookupName(table []codeName, code uint16) string {
	for _, entry := range table {
		if entry.code == code {
			return entry.name
		}
		if entry.code > code {
			break
		}
	}
	return "<?>"
}

// ButtonName returns the conventional name for a button event code.
func ButtonName(code uint16) string {
	return lookupName(buttonNames, code)
}

// AxisName returns the conventional name for an absolute axis event code.
func AxisName(code uint16) string {
	return lookupName(axisNames, code)
}

// HatName returns the name of the hat an axis code belongs to, the same name
// for both axes of a pair.
func HatName(code uint16) string {
	return lookupName(hatNames, code)
}

// HatDirection renders the value pair of a hat's X and Y axes as a compass
// style direction.
func HatDirection(x, y int32) string {
	var h, v string

	switch {
	case x < 0:
		h = "left"
	case x > 0:
		h = "right"
	}
	switch {
	case y < 0:
		v = "up"
	case y > 0:
		v = "down"
	}

	switch {
	case h == "" && v == "":
		return "centered"
	case h == "":
		return v
	case v == "":
		return h
	default:
		return v + "-" + h
	}
}

func isHatCode(code uint16) bool {
	return code >= ABS_HAT0X && code <= ABS_HAT3Y
}
