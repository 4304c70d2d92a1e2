package joydev

// Event is one raw input event tuple as read from a device node.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

type readStatus uint8

const (
	readOK    readStatus = iota
	readAgain            // no event pending this tick
	readSync             // part of a dropped-event resync burst, discard
)

// eventSource is the event-stream side of a device node: non-blocking reads
// of classified raw events. next reports readSync for every event between a
// buffer overflow (SYN_DROPPED) and the terminating SYN_REPORT; the device
// state is indeterminate for that whole stretch.
type eventSource interface {
	next() (Event, readStatus, error)
	close()
}
