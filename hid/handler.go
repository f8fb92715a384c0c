package hid

import (
	"sync"

	"github.com/endolith/lib-xua/pkg"
	"github.com/endolith/lib-xua/timer"
	"github.com/endolith/lib-xua/usb"
)

// Handler processes the HID idle class requests for one interface.
//
// The surrounding control-transfer layer delivers parsed SETUP packets;
// a returned error means the control transfer should stall. A rejected
// request leaves the engine untouched. Requests other than Set-Idle and
// Get-Idle pass through unhandled.
type Handler struct {
	engine       *IdleEngine
	src          timer.Source
	interfaceNum uint8

	// State
	idleRate  uint8 // last accepted wire duration, in 4 ms units
	onSetIdle func(duration, reportID uint8)
	mutex     sync.RWMutex
}

// NewHandler creates a handler for the configured HID interface number,
// mutating engine and sampling time from src.
func NewHandler(engine *IdleEngine, src timer.Source, interfaceNum uint8) *Handler {
	return &Handler{
		engine:       engine,
		src:          src,
		interfaceNum: interfaceNum,
	}
}

// SetOnSetIdle sets the callback invoked after an accepted Set-Idle.
func (h *Handler) SetOnSetIdle(cb func(duration, reportID uint8)) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.onSetIdle = cb
}

// IdleRate returns the last accepted idle duration in 4 ms wire units
// (0 = indefinite). This is the value reported to a Get-Idle request.
func (h *Handler) IdleRate() uint8 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.idleRate
}

// HandleSetup processes class-specific SETUP requests.
// Returns true if the request was handled, false otherwise.
func (h *Handler) HandleSetup(setup *usb.SetupPacket) (bool, error) {
	if !setup.IsClass() || !setup.IsInterfaceRecipient() {
		return false, nil
	}

	switch setup.Request {
	case usb.RequestSetIdle:
		return h.handleSetIdle(setup)

	case usb.RequestGetIdle:
		return h.handleGetIdle(setup)

	default:
		return false, nil
	}
}

// handleSetIdle handles SET_IDLE. Validation failures reject the request
// with no state mutation.
func (h *Handler) handleSetIdle(setup *usb.SetupPacket) (bool, error) {
	duration := setup.IdleDuration()
	reportID := setup.ReportID()

	if reportID != 0 {
		// The report descriptor defines no report IDs.
		return true, pkg.ErrInvalidReportID
	}
	if setup.InterfaceNumber() != h.interfaceNum {
		return true, pkg.ErrWrongInterface
	}

	// Sample the counter immediately: the activation decision compares
	// this request's arrival time against the last report time.
	now := h.src.Now()
	h.engine.ApplySetIdle(h.engine.DurationFromWire(duration), now)

	h.mutex.Lock()
	h.idleRate = duration
	cb := h.onSetIdle
	h.mutex.Unlock()

	pkg.LogDebug(pkg.ComponentEndpoint0, "SET_IDLE",
		"duration", duration,
		"reportID", reportID)

	if cb != nil {
		cb(duration, reportID)
	}

	return true, nil
}

// handleGetIdle handles GET_IDLE, returning the last accepted duration
// byte for the same report ID and interface checks as SET_IDLE.
func (h *Handler) handleGetIdle(setup *usb.SetupPacket) (bool, error) {
	if setup.ReportID() != 0 {
		return true, pkg.ErrInvalidReportID
	}
	if setup.InterfaceNumber() != h.interfaceNum {
		return true, pkg.ErrWrongInterface
	}

	pkg.LogDebug(pkg.ComponentEndpoint0, "GET_IDLE",
		"duration", h.IdleRate())

	// The caller sends IdleRate() in the data stage.
	return true, nil
}
