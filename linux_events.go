package joydev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// inputEvent mirrors struct input_event on 64-bit kernels.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

const eventSize = int(unsafe.Sizeof(inputEvent{}))

// deviceSource reads raw events from an open device node. The node is open
// non-blocking, so reads either deliver a whole event or report that nothing
// is pending.
type deviceSource struct {
	fd     int
	resync bool
	buf    [eventSize]byte
}

func openEventSource(path string) (eventSource, error) {
	fd, err := openDeviceNode(path)
	if err != nil {
		return nil, fmt.Errorf(ErrDeviceOpen, path, err)
	}
	return &deviceSource{fd: fd}, nil
}

func (s *deviceSource) next() (Event, readStatus, error) {
	n, err := unix.Read(s.fd, s.buf[:])
	if err == unix.EAGAIN {
		return Event{}, readAgain, nil
	}
	if err != nil {
		return Event{}, readOK, err
	}
	if n < eventSize {
		return Event{}, readOK, fmt.Errorf("short event read: %d bytes", n)
	}

	raw := *(*inputEvent)(unsafe.Pointer(&s.buf[0]))
	ev := Event{Type: raw.Type, Code: raw.Code, Value: raw.Value}

	// SYN_DROPPED means the kernel's event buffer overflowed. Everything up
	// to and including the next SYN_REPORT describes an indeterminate device
	// state and must not be turned into updates.
	if ev.Type == EV_SYN && ev.Code == SYN_DROPPED {
		s.resync = true
		return ev, readSync, nil
	}
	if s.resync {
		if ev.Type == EV_SYN && ev.Code == SYN_REPORT {
			s.resync = false
		}
		return ev, readSync, nil
	}
	return ev, readOK, nil
}

func (s *deviceSource) close() {
	_ = unix.Close(s.fd)
}
