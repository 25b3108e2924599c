// Package toggle models the GPIO toggle activity of parallel LCD interfaces
// for reliability, power, and EMI estimation.
//
// Overview
//
//   - HAvg(regions, busWidth) reduces up to a handful of content regions —
//     (alpha, c, h) triples partitioning the screen area — to H_avg, the
//     weighted average number of bit flips per pixel per frame.
//
//   - Compute(display, hAvg) turns display timing plus H_avg into Metrics:
//
//     rho = FPixel / (H * V * FRefresh)   blanking factor (or RhoOverride)
//     AF  = (H_avg / W) * rho             activity factor
//     bus = FPixel * W * AF               toggles/s across the data bus
//
//     plus the active-only rate (H * V * FRefresh * H_avg), per-pin and
//     whole-interface rates, and the years to accumulate 1e15 toggles.
//
// Both operations are pure functions over value inputs: no state, no I/O,
// bit-identical results for identical inputs, safe to call from any number
// of goroutines.
//
// Errors (errs.go) are *ValidationError values tagged with a kind
// (AreaSumMismatch, HammingExceedsWidth, InvalidActivity,
// InvalidDisplayParameter); every constraint is checked before any metric is
// derived, so a failed call never returns partial numbers. A derived rho < 1
// is not an error: some custom scan-outs legitimately produce it, so it is
// reported as a Warning on the Metrics instead.
//
// Example
//
//	/*
//	regions := []toggle.Region{
//	    {Alpha: 0.95, C: 0, H: 0},      // static dashboard background
//	    {Alpha: 0.05, C: 1.0, H: 4},    // small live readout
//	}
//	hAvg, err := toggle.HAvg(regions, 24)
//	if err != nil { log.Fatal(err) }
//
//	m, err := toggle.Compute(toggle.Display{
//	    H: 800, V: 480, FPixel: 33.3e6, FRefresh: 60, W: 24, Pins: 24,
//	}, hAvg)
//	if err != nil { log.Fatal(err) }
//	fmt.Printf("rho=%.4f AF=%.6f bus=%.0f toggles/s, 1Q in %.2f years\n",
//	    m.Rho, m.AF, m.BusTogglesPerSec, m.YearsToQuadrillion)
//	*/
//
// See also pkg/preset for named display/content bundles and types.Toggles
// for human-friendly rate formatting in UIs.
package toggle
