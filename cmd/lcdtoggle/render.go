package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/kylew/lcdtoggle/pkg/toggle"
	"github.com/kylew/lcdtoggle/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func render(out io.Writer, d toggle.Display, regions []toggle.Region, hAvg float64, m toggle.Metrics, verbose bool) {
	fmt.Fprintln(out, titleStyle.Render("LCD/GPIO Toggle Activity Analysis"))
	fmt.Fprintln(out)

	if verbose {
		fmt.Fprintln(out, sectionStyle.Render("Configuration"))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Bus width:\t%d bits\n", d.W)
		fmt.Fprintf(tw, "Pins:\t%d\n", d.Pins)
		fmt.Fprintf(tw, "Resolution:\t%d x %d\n", d.H, d.V)
		fmt.Fprintf(tw, "Pixel clock:\t%g MHz\n", d.FPixel/1e6)
		fmt.Fprintf(tw, "Refresh rate:\t%g Hz\n", d.FRefresh)
		if d.RhoOverride != nil {
			fmt.Fprintf(tw, "Blanking factor:\t%g (override)\n", *d.RhoOverride)
		}
		tw.Flush()

		fmt.Fprintln(out)
		fmt.Fprintln(out, sectionStyle.Render("Content regions"))
		for i, r := range regions {
			if r.Alpha <= 0 {
				continue
			}
			fmt.Fprintf(out, "  Region %d: %.0f%% area, %.0f%% pixels change, %g bits/change\n",
				i+1, r.Alpha*100, r.C*100, r.H)
		}
		fmt.Fprintln(out)
	}

	for _, w := range m.Warnings {
		fmt.Fprintln(out, warnStyle.Render("warning: ")+w.String())
	}

	fmt.Fprintln(out, sectionStyle.Render("Activity metrics"))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "H_avg (bit flips/pixel/frame):\t%.4f\n", hAvg)
	fmt.Fprintf(tw, "Blanking factor (rho):\t%.4f\n", m.Rho)
	fmt.Fprintf(tw, "Activity factor (AF):\t%.6f\n", m.AF)
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionStyle.Render("Toggle rates"))
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bus toggles/sec:\t%s\n", types.Toggles(m.BusTogglesPerSec).Humanized("toggles/s"))
	fmt.Fprintf(tw, "Active-only/sec:\t%s\n", types.Toggles(m.ActiveTogglesPerSec).Humanized("toggles/s"))
	fmt.Fprintf(tw, "Per-pin toggles/sec:\t%s\n", types.Toggles(m.PerPinTogglesPerSec).Humanized("toggles/s"))
	fmt.Fprintf(tw, "All %d pins:\t%s\n", d.Pins, types.Toggles(m.TotalPinsTogglesPerSec).Humanized("toggles/s"))
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionStyle.Render("Lifetime projections (quadrillions of toggles)"))
	life := toggle.LifetimeQuadrillions(m.TotalPinsTogglesPerSec)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, y := range sortedYears(life) {
		fmt.Fprintf(tw, "  %d years:\t%12.2f Q\n", y, life[y])
	}
	tw.Flush()

	fmt.Fprintln(out)
	if math.IsInf(m.YearsToQuadrillion, 1) {
		fmt.Fprintln(out, "Time to 1 quadrillion: never (no toggle activity)")
	} else {
		fmt.Fprintf(out, "Time to 1 quadrillion: %.4f years\n", m.YearsToQuadrillion)
	}

	if verbose {
		fmt.Fprintln(out)
		fmt.Fprintln(out, mutedStyle.Render("Typical CMOS GPIO toggle endurance: 1e12 - 1e15+ cycles."))
		fmt.Fprintln(out, mutedStyle.Render("Consult your silicon vendor's reliability data."))
	}
}
