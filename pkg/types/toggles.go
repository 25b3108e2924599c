package types

import "fmt"

// Toggles is a float64 wrapper representing a toggle count or rate in base
// units (toggles, or toggles per second).
type Toggles float64

// prefixes maps engineering thresholds to SI prefixes, largest first.
var prefixes = []struct {
	threshold float64
	prefix    string
}{
	{1e15, "P"}, {1e12, "T"}, {1e9, "G"}, {1e6, "M"},
	{1e3, "k"}, {1, ""}, {1e-3, "m"}, {1e-6, "µ"},
}

// Humanized returns the value in engineering notation with an SI prefix and
// the given unit, e.g. Toggles(9.626e6).Humanized("toggles/s") == "9.626 Mtoggles/s".
// Values below 1µ fall back to scientific notation.
func (t Toggles) Humanized(unit string) string {
	v := float64(t)
	if v == 0 {
		if unit == "" {
			return "0"
		}
		return "0 " + unit
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	for _, p := range prefixes {
		if abs >= p.threshold {
			return trimmed(fmt.Sprintf("%.3f %s%s", v/p.threshold, p.prefix, unit))
		}
	}
	return trimmed(fmt.Sprintf("%.3e %s", v, unit))
}

// K returns the value in thousands (SI, decimal).
func (t Toggles) K() float64 { return float64(t) / 1e3 }

// M returns the value in millions.
func (t Toggles) M() float64 { return float64(t) / 1e6 }

// G returns the value in billions.
func (t Toggles) G() float64 { return float64(t) / 1e9 }

func trimmed(s string) string {
	// drop the trailing space left by an empty prefix+unit
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
