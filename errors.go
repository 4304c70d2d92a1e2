package joydev

const (
	ErrOsNotSupported = "os is not supported (yet)"
	ErrRootUnreadable = "cannot read device directory %s: %w"
	ErrDeviceOpen     = "cannot open device %s: %w"
	ErrDeviceIdentity = "cannot query identity of %s: %w"
	ErrDeviceName     = "cannot query name of %s: %w"
	ErrDeviceCaps     = "cannot query capabilities of %s: %w"
)
