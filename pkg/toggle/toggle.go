package toggle

import "math"

// SecondsPerYear is one Julian year, used for all lifetime projections.
const SecondsPerYear = 365.25 * 86400

// alphaTol is the tolerance on the region area-fraction sum.
const alphaTol = 1e-6

// DefaultHorizons are the projection horizons (in years) used by
// LifetimeQuadrillions when the caller does not pick its own.
var DefaultHorizons = []int{1, 5, 10, 25, 50, 75, 100}

// HAvg reduces content regions to the weighted average number of bit flips
// per pixel per frame:
//
//	H_avg = sum_i alpha_i * c_i * h_i
//
// busWidth bounds each active region's Hamming distance. Inputs are validated
// first; the function is pure and returns no partial result on error.
func HAvg(regions []Region, busWidth uint) (float64, error) {
	if busWidth == 0 {
		return 0, errf(InvalidDisplayParameter, "bus width must be positive")
	}
	if len(regions) == 0 {
		return 0, errf(AreaSumMismatch, "at least one region required")
	}

	var alphaSum, hAvg float64
	for i, r := range regions {
		if r.Alpha < 0 || r.Alpha > 1 {
			return 0, errf(InvalidActivity, "region %d: alpha=%g must be in [0, 1]", i+1, r.Alpha)
		}
		if r.C < 0 || r.C > 1 {
			return 0, errf(InvalidActivity, "region %d: c=%g must be in [0, 1]", i+1, r.C)
		}
		if r.H < 0 {
			return 0, errf(InvalidActivity, "region %d: h=%g cannot be negative", i+1, r.H)
		}
		// Inert regions keep whatever h they carry; it never contributes.
		if r.Alpha > 0 && r.H > float64(busWidth) {
			return 0, errf(HammingExceedsWidth, "region %d: h=%g exceeds bus width %d", i+1, r.H, busWidth)
		}
		alphaSum += r.Alpha
		hAvg += r.Alpha * r.C * r.H
	}

	// Summing a handful of alphas can push a sum sitting exactly on the
	// tolerance a few ulps past it; the comparison gets a hair of slack.
	if math.Abs(alphaSum-1.0) > alphaTol+1e-12 {
		return 0, errf(AreaSumMismatch, "region areas sum to %g, want 1.0", alphaSum)
	}
	return hAvg, nil
}

// Compute derives the full set of toggle metrics for one display and the
// H_avg produced by HAvg. The bus rate FPixel * W * AF is the single source
// of truth; the active-only rate H * V * FRefresh * H_avg is reported
// separately (the two coincide only when rho == 1, blanking-free timing).
//
// A derived blanking factor below 1 is surfaced as a Warning on the result,
// never as an error.
func Compute(d Display, hAvg float64) (Metrics, error) {
	if err := d.validate(); err != nil {
		return Metrics{}, err
	}
	w := float64(d.W)
	if hAvg < 0 || hAvg > w {
		return Metrics{}, errf(InvalidActivity, "h_avg=%g must be in [0, %g]", hAvg, w)
	}

	activeRate := float64(d.H) * float64(d.V) * d.FRefresh

	var m Metrics
	if d.RhoOverride != nil {
		m.Rho = *d.RhoOverride
	} else {
		m.Rho = d.FPixel / activeRate
		if m.Rho < 1 {
			m.Warnings = append(m.Warnings, Warning{
				Kind:   BlankingFactorBelowOne,
				Detail: "derived blanking factor < 1: pixel clock below the active scan rate",
			})
		}
	}

	m.AF = (hAvg / w) * m.Rho
	m.BusTogglesPerSec = d.FPixel * w * m.AF
	m.ActiveTogglesPerSec = activeRate * hAvg
	m.PerPinTogglesPerSec = m.BusTogglesPerSec / w
	m.TotalPinsTogglesPerSec = m.PerPinTogglesPerSec * float64(d.Pins)
	m.YearsToQuadrillion = YearsToOneQuadrillion(m.TotalPinsTogglesPerSec)
	return m, nil
}

// TogglesOverHorizon projects the toggle total accumulated over a horizon.
func TogglesOverHorizon(togglesPerSec, years float64) float64 {
	return togglesPerSec * years * SecondsPerYear
}

// YearsToOneQuadrillion returns the time to reach 1e15 toggles, or +Inf when
// the rate is zero (static content never gets there).
func YearsToOneQuadrillion(togglesPerSec float64) float64 {
	if togglesPerSec <= 0 {
		return math.Inf(1)
	}
	return 1e15 / (togglesPerSec * SecondsPerYear)
}

// LifetimeQuadrillions projects total toggles (in quadrillions, 1e15) for
// each horizon in years; DefaultHorizons when none are given.
func LifetimeQuadrillions(togglesPerSec float64, years ...int) map[int]float64 {
	if len(years) == 0 {
		years = DefaultHorizons
	}
	out := make(map[int]float64, len(years))
	for _, y := range years {
		out[y] = TogglesOverHorizon(togglesPerSec, float64(y)) / 1e15
	}
	return out
}
