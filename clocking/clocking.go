// Package clocking declares the interfaces of the audio clock-generation
// subsystem that surrounds the HID function.
//
// Only the capability surface is declared here. Clock recovery, PLL
// programming, and digital audio I/O are implemented by the surrounding
// firmware; this package exists so that components which need a handle
// on the clocking subsystem can accept an interface instead of a
// concrete implementation.
package clocking

import "context"

// PllRef controls the reference pin that drives an external frequency
// synthesizer.
type PllRef interface {
	// Init prepares the reference pin output.
	Init()

	// Toggle inverts the reference pin immediately.
	Toggle()

	// ToggleTimed inverts the reference pin at the given offset, in
	// ticks, relative to the previous toggle.
	ToggleTimed(relative int)
}

// PllSettings holds the software PLL parameters for one master clock
// frequency.
type PllSettings struct {
	// Adder is the expected counter advance at each PLL check point.
	// The counter wraps, so this acts as a modulus.
	Adder uint32

	// FracIdx selects the fractional divider setting.
	FracIdx uint32

	// FirstUpdate marks that no update has been applied yet.
	FirstUpdate bool
}

// ClockGen runs clock generation and digital audio I/O handling until the
// context is cancelled.
type ClockGen interface {
	Run(ctx context.Context) error
}
