package hid

// IdleDurationUnitMs is the wire unit of the Set-Idle duration field:
// the wValue high byte counts idle duration in 4 ms steps (HID 1.11
// §7.2.4), giving a range of 4 ms to 1020 ms plus 0 for indefinite.
const IdleDurationUnitMs = 4

// ActivationWindowMs is the boundary window of HID 1.11 §7.2.4: a new
// idle duration arriving within this many milliseconds of the end of the
// current period takes effect only after the next report.
const ActivationWindowMs = 4

// DefaultTicksPerMs is the tick rate of a 100 MHz reference counter.
const DefaultTicksPerMs = 100_000

// DefaultReportPeriodMs is the default reporting period, matching the
// HID interrupt endpoint polling interval.
const DefaultReportPeriodMs = 8
