package joydev

// Display is implemented by the presentation layer. The registry and the
// poller report through this interface only, they never hold widget types.
// Ordinals refer to positions in the selected descriptor's Buttons, Axes and
// Hats sequences.
type Display interface {
	// DeviceSelected announces the descriptor polling is about to start for.
	// The receiver may retain it; it is a clone with an independent lifetime.
	DeviceSelected(dev *DeviceInfo)

	// ButtonChanged reports a press or release of button ordinal.
	ButtonChanged(ordinal int, pressed bool)

	// AxisChanged reports a new value for axis ordinal.
	AxisChanged(ordinal int, value int32)

	// HatChanged reports a new value for hat axis ordinal. Ordinals pair up,
	// 2i and 2i+1 being the X and Y axis of hat i.
	HatChanged(ordinal int, value int32)

	// Status carries free-form progress text, e.g. why polling stopped.
	Status(text string)

	// ScanCompleted reports the number of devices a scan discovered.
	ScanCompleted(count int)
}
