// Package timer provides tick types and wraparound-safe arithmetic for a
// free-running hardware counter.
//
// Firmware timing in this module is expressed in ticks of a single
// free-running 32-bit counter. The counter wraps modulo 2^32; all
// arithmetic on two samples assumes at most one wrap occurred between
// them. This is a documented precision limitation, not a detected error:
// samples spanning more than one wrap silently produce a bounded but
// incorrect interval.
//
// The [Source] interface abstracts the counter read so that deterministic
// tests can supply synthetic tick sequences, including sequences that
// cross the wrap boundary:
//
//	var ticks timer.Tick
//	src := timer.SourceFunc(func() timer.Tick { return ticks })
//
// [SystemSource] derives ticks from the host monotonic clock for
// simulations and examples where no hardware counter exists.
package timer
