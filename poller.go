package joydev

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type pollState uint8

const (
	stateIdle pollState = iota
	stateStart
	statePoll
	stateStop
	stateTeardown
)

// Poller owns the lifecycle of the currently open device and turns its raw
// event stream into Display updates. It is driven by one Tick per scheduler
// period and never blocks: each Tick performs one state's work and returns.
//
// Request, Halt and Teardown may be called from outside the tick context
// (e.g. a UI selection handler); the hand-off slots are atomic and
// device-switch requests coalesce, only the most recent one survives.
type Poller struct {
	display Display
	open    func(path string) (eventSource, error)

	state   pollState
	current *DeviceInfo
	pending *DeviceInfo
	source  eventSource

	request  atomic.Pointer[DeviceInfo]
	halt     atomic.Bool
	teardown atomic.Bool

	// last seen raw event triple, diagnostics only
	prevType  int32
	prevCode  int32
	prevValue int32
}

// NewPoller creates an idle poller reporting through display.
func NewPoller(display Display) (*Poller, error) {
	switch runtime.GOOS {
	case "linux":
		return &Poller{
			display:   display,
			open:      openEventSource,
			prevType:  -1,
			prevCode:  -1,
			prevValue: -1,
		}, nil
	default:
		return nil, errors.New(ErrOsNotSupported)
	}
}

// Request asks the poller to switch to dev on an upcoming tick. The poller
// keeps its own clone, so a later rescan discarding dev does not affect it.
// Requests overwrite each other; intermediate ones are never acted on.
func (p *Poller) Request(dev *DeviceInfo) {
	if dev == nil {
		return
	}
	p.request.Store(dev.Clone())
}

// Halt asks the poller to stop polling the current device on the next tick.
func (p *Poller) Halt() {
	p.halt.Store(true)
}

// Teardown asks the poller to release everything and go terminal; after the
// next tick, Tick returns false and the scheduler should stop invoking it.
func (p *Poller) Teardown() {
	p.teardown.Store(true)
}

// LastEvent returns the raw (type, code, value) of the most recent event
// seen, or -1 triple when none was. Diagnostics only.
func (p *Poller) LastEvent() (int32, int32, int32) {
	return p.prevType, p.prevCode, p.prevValue
}

// Tick runs the poller state machine for one scheduler period. It reports
// whether the scheduler should keep invoking it.
func (p *Poller) Tick() bool {
	if p.state == stateTeardown {
		return false
	}
	if p.teardown.Load() {
		p.closeSource()
		p.current = nil
		p.pending = nil
		p.state = stateTeardown
		return false
	}

	if req := p.request.Swap(nil); req != nil {
		p.pending = req
		if p.state != stateIdle {
			p.state = stateStop
		}
	}
	if p.halt.Swap(false) && p.state != stateIdle {
		p.pending = nil
		p.state = stateStop
	}

	switch p.state {
	case stateIdle:
		if p.pending != nil {
			p.current = p.pending
			p.pending = nil
			p.state = stateStart
		}
	case stateStart:
		p.start()
	case statePoll:
		p.drain()
	case stateStop:
		p.stop()
	}
	return true
}

func (p *Poller) start() {
	src, err := p.open(p.current.Path)
	if err != nil {
		log.WithError(err).Errorf("cannot start polling %s", p.current.Path)
		p.display.Status(fmt.Sprintf("cannot open %s", p.current.Path))
		p.current = nil
		p.state = stateIdle
		return
	}
	p.source = src
	p.display.DeviceSelected(p.current.Clone())
	p.display.Status("polling device " + p.current.Name)
	p.state = statePoll
}

func (p *Poller) stop() {
	p.closeSource()
	p.current = nil
	p.display.Status("stopped polling")
	p.state = stateIdle
}

func (p *Poller) closeSource() {
	if p.source != nil {
		p.source.close()
		p.source = nil
	}
}

// drain reads every event pending this tick. Events flagged as part of a
// resync burst are traced and remembered but produce no updates; a read
// error other than "nothing pending" abandons the device.
func (p *Poller) drain() {
	for {
		ev, status, err := p.source.next()
		if err != nil {
			log.WithError(err).Errorf("read error on %s, stopping", p.current.Path)
			p.state = stateStop
			return
		}
		switch status {
		case readAgain:
			return
		case readSync:
			log.Debugf("resync: discarding type %d, code %d, value %d",
				ev.Type, ev.Code, ev.Value)
		default:
			p.trace(ev)
			p.handle(ev)
		}
		p.prevType = int32(ev.Type)
		p.prevCode = int32(ev.Code)
		p.prevValue = ev.Value
	}
}

func (p *Poller) handle(ev Event) {
	switch ev.Type {
	case EV_KEY:
		if i := p.current.buttonOrdinal(ev.Code); i >= 0 {
			p.display.ButtonChanged(i, ev.Value != 0)
		} else {
			// the classification pass never saw this code
			log.Warnf("no button with code 0x%03x on %s", ev.Code, p.current.Name)
		}
	case EV_ABS:
		if i := axisOrdinal(p.current.Axes, ev.Code); i >= 0 {
			p.display.AxisChanged(i, ev.Value)
		} else if i := axisOrdinal(p.current.Hats, ev.Code); i >= 0 {
			p.display.HatChanged(i, ev.Value)
		} else {
			log.Warnf("no axis with code 0x%03x on %s", ev.Code, p.current.Name)
		}
	default:
		// sync markers and the like only update the diagnostic triple
	}
}

func (p *Poller) trace(ev Event) {
	switch ev.Type {
	case EV_KEY:
		log.Debugf("event: key %s (0x%03x), value %d", ButtonName(ev.Code), ev.Code, ev.Value)
	case EV_ABS:
		log.Debugf("event: abs %s (0x%02x), value %d", AxisName(ev.Code), ev.Code, ev.Value)
	case EV_SYN:
		log.Debugf("event: +++ sync %d +++", ev.Code)
	default:
		log.Debugf("event: type %d, code %d, value %d", ev.Type, ev.Code, ev.Value)
	}
}
