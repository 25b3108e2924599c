package toggle

// Region describes one class of screen content occupying a fraction of the
// frame. Up to the caller, regions form a partition of the screen area.
// Units:
//   - Alpha: fraction of frame area [0..1]; the sum over all regions must be 1
//   - C: fraction of pixels in the region that change per frame [0..1]
//   - H: average Hamming distance (bit flips) per changed pixel [0..W]
//
// A region with Alpha == 0 is inert: it contributes nothing and its H is
// ignored, including by the H <= W check.
type Region struct {
	Alpha float64
	C     float64
	H     float64
}

// Display holds the timing and bus geometry of one parallel LCD interface.
// Units:
//   - H/V: active resolution in pixels
//   - FPixel: pixel clock in Hz
//   - FRefresh: refresh rate in Hz
//   - W: data-bus width in bits
//   - Pins: total GPIO count driven by the interface (>= W)
//   - RhoOverride: measured/datasheet blanking factor; nil derives it from
//     the timing as FPixel / (H * V * FRefresh)
type Display struct {
	H           uint
	V           uint
	FPixel      float64
	FRefresh    float64
	W           uint
	Pins        uint
	RhoOverride *float64
}

// validate rejects non-positive geometry/timing and inconsistent bus sizing
// before any metric is derived.
func (d Display) validate() error {
	if d.H == 0 || d.V == 0 {
		return errf(InvalidDisplayParameter, "resolution %dx%d must be positive", d.H, d.V)
	}
	if d.FPixel <= 0 {
		return errf(InvalidDisplayParameter, "pixel clock %g Hz must be positive", d.FPixel)
	}
	if d.FRefresh <= 0 {
		return errf(InvalidDisplayParameter, "refresh rate %g Hz must be positive", d.FRefresh)
	}
	if d.W == 0 {
		return errf(InvalidDisplayParameter, "bus width must be positive")
	}
	if d.Pins == 0 {
		return errf(InvalidDisplayParameter, "pin count must be positive")
	}
	if d.Pins < d.W {
		return errf(InvalidDisplayParameter, "pin count %d cannot be below bus width %d", d.Pins, d.W)
	}
	if d.RhoOverride != nil && *d.RhoOverride <= 0 {
		return errf(InvalidDisplayParameter, "rho override %g must be positive", *d.RhoOverride)
	}
	return nil
}

// Metrics is the derived toggle activity for one Display + H_avg pair.
// All rates are in toggles per second, years are Julian years.
type Metrics struct {
	Rho float64 // blanking factor: total pixel clocks per active pixel
	AF  float64 // activity factor: realized fraction of the max toggle rate

	BusTogglesPerSec       float64 // across all W data pins, blanking included
	ActiveTogglesPerSec    float64 // during active pixels only
	PerPinTogglesPerSec    float64
	TotalPinsTogglesPerSec float64 // per-pin rate times Pins

	// YearsToQuadrillion is the time to accumulate 1e15 toggles across all
	// pins; +Inf when the interface never toggles.
	YearsToQuadrillion float64

	// Warnings carries non-fatal anomalies detected during computation.
	Warnings []Warning
}
