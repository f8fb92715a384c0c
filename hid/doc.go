// Package hid implements the HID Set-Idle control request and the
// periodic-report suppression logic it governs.
//
// The package has three parts:
//
//   - [IdleEngine] holds the idle timing state (reporting period, last
//     and next report times, idle flag) and implements the
//     wraparound-safe arithmetic and the HID 1.11 §7.2.4 activation rule
//     for newly requested idle durations.
//   - [Handler] is the endpoint-0 side: it validates a Set-Idle or
//     Get-Idle SETUP packet and mutates or reads the engine.
//   - [Scheduler] is the polling-loop side: before each candidate report
//     instant it asks the engine whether to suppress, and after each
//     transmitted report it captures the send time and re-arms the
//     schedule.
//
// Two independent triggers touch the engine: the control-transfer path
// (Set-Idle) and the periodic report path. The engine serializes access
// internally so neither trigger can observe a torn update, for example a
// new period paired with a stale next-report time.
//
// # Usage
//
//	src := timer.NewSystemSource(100_000_000)
//	engine := hid.NewIdleEngine(hid.DefaultTicksPerMs, hid.DefaultReportPeriodMs)
//	handler := hid.NewHandler(engine, src, 3)
//	sched := hid.NewScheduler(engine, src, sendReport)
//
//	// Control path: deliver validated SETUP packets.
//	handled, err := handler.HandleSetup(&setup)
//
//	// Report path: poll before each candidate report instant.
//	sent, err := sched.Poll(ctx)
package hid
