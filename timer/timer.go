package timer

import "time"

// Tick is a sample of the free-running hardware counter.
// Ticks wrap modulo 2^32.
type Tick uint32

// Interval is a duration expressed in the same tick units as Tick.
type Interval uint32

// Source reads the free-running counter on demand.
type Source interface {
	// Now returns the current counter value. Non-blocking, no side
	// effects, no failure mode.
	Now() Tick
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() Tick

// Now returns f().
func (f SourceFunc) Now() Tick { return f() }

// Elapsed returns the number of ticks between two counter samples.
// The result is exact when at most one counter wrap occurred between
// earlier and later. Callers must not compare samples separated by more
// than one wrap; the result is then bounded but wrong.
func Elapsed(earlier, later Tick) Interval {
	return Interval(later - earlier)
}

// Reached reports whether now has reached deadline, where both samples
// were taken at or after anchor and at most one wrap separates anchor
// from either sample.
func Reached(anchor, now, deadline Tick) bool {
	return Elapsed(anchor, now) >= Elapsed(anchor, deadline)
}

// TicksFromMs converts a duration in milliseconds to ticks.
func TicksFromMs(ms uint32, ticksPerMs Interval) Interval {
	return Interval(ms) * ticksPerMs
}

// MsFromTicks converts a duration in ticks to whole milliseconds.
func MsFromTicks(ticks, ticksPerMs Interval) uint32 {
	return uint32(ticks / ticksPerMs)
}

// SystemSource derives ticks from the host monotonic clock at a fixed
// tick rate. It stands in for the hardware counter in simulations and
// host-side tests; the returned value wraps exactly like the hardware
// counter would.
type SystemSource struct {
	start       time.Time
	ticksPerSec uint64
}

// NewSystemSource creates a SystemSource running at the given tick rate.
func NewSystemSource(ticksPerSec uint64) *SystemSource {
	return &SystemSource{
		start:       time.Now(),
		ticksPerSec: ticksPerSec,
	}
}

// Now returns the elapsed host time since creation, converted to ticks.
func (s *SystemSource) Now() Tick {
	ns := uint64(time.Since(s.start).Nanoseconds())
	return Tick(ns / 1e9 * s.ticksPerSec) + Tick(ns%1e9*s.ticksPerSec/1e9)
}

// Compile-time interface checks
var (
	_ Source = SourceFunc(nil)
	_ Source = (*SystemSource)(nil)
)
