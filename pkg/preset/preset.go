// Package preset carries the named display timing and content activity
// bundles the CLI offers. Both tables are returned as fresh values on every
// call so callers can tweak them without leaking state into later lookups;
// the toggle package re-validates whatever it receives regardless of origin.
package preset

import (
	"maps"
	"slices"

	"github.com/kylew/lcdtoggle/pkg/toggle"
)

// DefaultBusWidth is the bus width the content presets are written against
// (24-bit RGB). The "worst" preset's Hamming distance must be rewritten to
// the actual bus width by the caller when it differs.
const DefaultBusWidth = 24

// Displays returns the named display timing presets. Bus width and pin count
// are not part of a timing preset; the caller supplies them.
func Displays() map[string]toggle.Display {
	return map[string]toggle.Display{
		"720p60":  {H: 1280, V: 720, FPixel: 74.25e6, FRefresh: 60},
		"1080p60": {H: 1920, V: 1080, FPixel: 148.5e6, FRefresh: 60},
		"1080p30": {H: 1920, V: 1080, FPixel: 74.25e6, FRefresh: 30},
		"4k30":    {H: 3840, V: 2160, FPixel: 297e6, FRefresh: 30},
		"4k60":    {H: 3840, V: 2160, FPixel: 594e6, FRefresh: 60},
		"wvga":    {H: 800, V: 480, FPixel: 33.3e6, FRefresh: 60},
		"xga":     {H: 1024, V: 768, FPixel: 65e6, FRefresh: 60},
		"wxga":    {H: 1280, V: 800, FPixel: 71e6, FRefresh: 60},
	}
}

// Contents returns the named content activity presets.
func Contents() map[string][]toggle.Region {
	return map[string][]toggle.Region{
		// Static display (dashboard, HMI idle)
		"static": {
			{Alpha: 0.95, C: 0, H: 0},
			{Alpha: 0.05, C: 0.10, H: 4},
			{Alpha: 0, C: 0, H: 0},
		},
		// Typical desktop use (mixed static/dynamic)
		"desktop": {
			{Alpha: 0.30, C: 0, H: 0},
			{Alpha: 0.50, C: 0.10, H: 8},
			{Alpha: 0.20, C: 1.0, H: 12},
		},
		// Full-screen video playback
		"video": {
			{Alpha: 0, C: 0, H: 0},
			{Alpha: 0.10, C: 0.5, H: 6},
			{Alpha: 0.90, C: 1.0, H: 12},
		},
		// Every pixel changes maximally; h tracks the bus width
		"worst": {
			{Alpha: 0, C: 0, H: 0},
			{Alpha: 0, C: 0, H: 0},
			{Alpha: 1.0, C: 1.0, H: DefaultBusWidth},
		},
	}
}

// DisplayNames returns the display preset names in sorted order.
func DisplayNames() []string {
	return slices.Sorted(maps.Keys(Displays()))
}

// ContentNames returns the content preset names in sorted order.
func ContentNames() []string {
	return slices.Sorted(maps.Keys(Contents()))
}
