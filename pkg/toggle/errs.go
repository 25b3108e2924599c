package toggle

import "fmt"

// ValidationKind identifies which input constraint a ValidationError reports.
type ValidationKind int

const (
	// AreaSumMismatch indicates that region area fractions do not sum to 1.0
	// within tolerance, or that no region was supplied.
	AreaSumMismatch ValidationKind = iota + 1

	// HammingExceedsWidth indicates that an active region's Hamming distance
	// exceeds the data-bus width.
	HammingExceedsWidth

	// InvalidActivity indicates a content-activity value outside its physical
	// range (alpha or c outside [0,1], h < 0, or H_avg outside [0,W]).
	InvalidActivity

	// InvalidDisplayParameter indicates non-positive timing/geometry, a pin
	// count below the bus width, or a non-positive rho override.
	InvalidDisplayParameter
)

func (k ValidationKind) String() string {
	switch k {
	case AreaSumMismatch:
		return "area sum mismatch"
	case HammingExceedsWidth:
		return "hamming exceeds width"
	case InvalidActivity:
		return "invalid activity"
	case InvalidDisplayParameter:
		return "invalid display parameter"
	default:
		return "unknown"
	}
}

// ValidationError reports an input that fails one of the model's constraints.
// No metrics are produced when one is returned.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("toggle: %s: %s", e.Kind, e.Detail)
}

func errf(kind ValidationKind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WarningKind identifies a non-fatal anomaly surfaced alongside a valid result.
type WarningKind int

// BlankingFactorBelowOne flags a derived rho < 1: the pixel clock is below the
// rate needed to scan the active area at the stated refresh. Physically odd
// for rectangular timing but possible with custom scan-outs, so not an error.
const BlankingFactorBelowOne WarningKind = iota + 1

// Warning is a non-fatal anomaly; the accompanying Metrics remain valid.
type Warning struct {
	Kind   WarningKind
	Detail string
}

func (w Warning) String() string { return w.Detail }
