package hid

import (
	"sync"

	"github.com/endolith/lib-xua/timer"
)

// IdleEngine holds the idle timing state and implements the HID 1.11
// §7.2.4 rules for applying a new idle duration and for deciding whether
// a scheduled report is currently suppressed.
//
// All state is updated and read as a group under one lock: the
// control-transfer path and the report-scheduling path must never observe
// a partial update.
type IdleEngine struct {
	mutex sync.Mutex

	// Fixed at construction
	ticksPerMs    timer.Interval
	defaultPeriod timer.Interval // default reporting period, in ticks
	window        timer.Interval // §7.2.4 activation window, in ticks

	// Idle state
	period     timer.Interval // active reporting period, in ticks (> 0)
	lastReport timer.Tick     // counter sample at the most recent report send
	nextReport timer.Tick     // counter value at or after which to send next
	idleActive bool           // whether reports are subject to suppression
	indefinite bool           // duration 0: suppress until a new Set-Idle
}

// NewIdleEngine creates an engine for a counter running at ticksPerMs
// ticks per millisecond with the given default reporting period.
// Both arguments must be nonzero; zero values are treated as 1.
func NewIdleEngine(ticksPerMs timer.Interval, defaultPeriodMs uint32) *IdleEngine {
	if ticksPerMs == 0 {
		ticksPerMs = 1
	}
	if defaultPeriodMs == 0 {
		defaultPeriodMs = 1
	}
	e := &IdleEngine{
		ticksPerMs:    ticksPerMs,
		defaultPeriod: timer.TicksFromMs(defaultPeriodMs, ticksPerMs),
		window:        timer.TicksFromMs(ActivationWindowMs, ticksPerMs),
	}
	e.period = e.defaultPeriod
	return e
}

// Reset restores the initialization state: default period, zeroed
// timestamps, suppression off. Called on device reset.
func (e *IdleEngine) Reset() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.period = e.defaultPeriod
	e.lastReport = 0
	e.nextReport = 0
	e.idleActive = false
	e.indefinite = false
}

// DurationFromWire converts a wire-format idle duration (4 ms units)
// to ticks.
func (e *IdleEngine) DurationFromWire(units uint8) timer.Interval {
	return timer.TicksFromMs(uint32(units)*IdleDurationUnitMs, e.ticksPerMs)
}

// CaptureReportTime records the counter sample taken immediately after a
// report was transmitted.
func (e *IdleEngine) CaptureReportTime(t timer.Tick) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.lastReport = t
}

// ScheduleNextDefault arms the next report check at one reporting period
// after the last transmitted report. Called after CaptureReportTime,
// regardless of idle state.
func (e *IdleEngine) ScheduleNextDefault() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.nextReport = e.lastReport + timer.Tick(e.period)
}

// ApplySetIdle applies a new idle duration, expressed in ticks, received
// at counter sample now. The sample must be taken at request-handling
// time without delay; the activation decision compares it against the
// last report time.
//
// Duration 0 requests indefinite suppression. A duration at or beyond
// the default period also activates suppression and reverts the
// reporting period to the default. A shorter nonzero duration becomes
// the new reporting period; per HID 1.11 §7.2.4 it takes effect
// immediately after the previous report, unless the request arrived
// within 4 ms of the end of the current period, in which case it takes
// effect only after the next report.
func (e *IdleEngine) ApplySetIdle(duration timer.Interval, now timer.Tick) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	switch {
	case duration == 0:
		e.idleActive = true
		e.indefinite = true
		e.period = e.defaultPeriod

	case duration >= e.defaultPeriod:
		e.idleActive = true
		e.indefinite = false
		e.period = e.defaultPeriod

	default:
		e.idleActive = false
		e.indefinite = false

		elapsed := timer.Elapsed(e.lastReport, now)
		if elapsed >= e.period || e.period-elapsed < e.window {
			// Too close to the period boundary: the old period runs out
			// once more before the new duration applies.
			e.nextReport = e.lastReport + timer.Tick(e.period)
		} else {
			e.nextReport = e.lastReport + timer.Tick(duration)
		}
		e.period = duration
	}
}

// Suppressed reports whether the report scheduled at counter sample now
// should be withheld. Always false while suppression is inactive.
func (e *IdleEngine) Suppressed(now timer.Tick) bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.idleActive {
		return false
	}
	if e.indefinite {
		return true
	}
	return !timer.Reached(e.lastReport, now, e.nextReport)
}

// Period returns the active reporting period in ticks.
func (e *IdleEngine) Period() timer.Interval {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.period
}

// LastReportTime returns the counter sample of the most recent report.
func (e *IdleEngine) LastReportTime() timer.Tick {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.lastReport
}

// NextReportTime returns the counter value at or after which the next
// report should be sent.
func (e *IdleEngine) NextReportTime() timer.Tick {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.nextReport
}

// IdleActive returns whether reports are currently subject to
// suppression.
func (e *IdleEngine) IdleActive() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.idleActive
}
