package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kylew/lcdtoggle/pkg/preset"
	"github.com/kylew/lcdtoggle/pkg/toggle"
)

// alphas within this of 1.0 are taken as-is; anything further off (but still
// positive) is normalized with a note, matching the historical behavior.
const normalizeTol = 0.001

type opts struct {
	// display
	preset string
	width  uint
	pins   uint
	fpMHz  float64
	hres   uint
	vres   uint
	fr     float64
	rho    float64

	// content
	content string
	regions [3]toggle.Region

	verbose bool
}

func main() {
	// Optional .env next to the binary supplies LCDTOGGLE_* defaults.
	_ = godotenv.Load()

	var o opts

	root := &cobra.Command{
		Use:   "lcdtoggle",
		Short: "GPIO toggle activity estimation for parallel LCD interfaces",
		Long: `lcdtoggle models the toggle rate of parallel LCD controller pins for a
display timing and a content activity assumption, then projects lifetime
toggle totals.

Use cases:
- Estimating GPIO wear/lifetime for reliability analysis
- Power consumption estimation (dynamic power scales with toggle rate)
- EMI analysis (higher toggle rates, more emissions)

Environment variables (also read from a .env file):
  LCDTOGGLE_WIDTH  Default bus width in bits
  LCDTOGGLE_PINS   Default total GPIO count

Examples:
  lcdtoggle --preset 1080p60 --content desktop
  lcdtoggle --hres 800 --vres 480 --fp 33.3 --fr 60
  lcdtoggle --preset 4k60 --content video -v
  lcdtoggle presets`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := root.Flags()
	f.StringVar(&o.preset, "preset", "", "display timing preset (see 'lcdtoggle presets')")
	f.UintVar(&o.width, "width", envUint("LCDTOGGLE_WIDTH", 24), "bus width in bits")
	f.UintVar(&o.pins, "pins", envUint("LCDTOGGLE_PINS", 0), "total GPIO count (0 = same as bus width)")
	f.Float64Var(&o.fpMHz, "fp", 148.5, "pixel clock in MHz")
	f.UintVar(&o.hres, "hres", 1920, "horizontal active resolution")
	f.UintVar(&o.vres, "vres", 1080, "vertical active resolution")
	f.Float64Var(&o.fr, "fr", 60.0, "refresh rate in Hz")
	f.Float64Var(&o.rho, "rho", 0, "measured blanking factor override (0 = derive from timing)")

	f.StringVar(&o.content, "content", "", "content activity preset (see 'lcdtoggle presets')")
	f.Float64Var(&o.regions[0].Alpha, "a1", 0.30, "region 1 area fraction")
	f.Float64Var(&o.regions[0].C, "c1", 0.0, "region 1 change rate")
	f.Float64Var(&o.regions[0].H, "h1", 0, "region 1 bit flips per change")
	f.Float64Var(&o.regions[1].Alpha, "a2", 0.50, "region 2 area fraction")
	f.Float64Var(&o.regions[1].C, "c2", 0.10, "region 2 change rate")
	f.Float64Var(&o.regions[1].H, "h2", 8, "region 2 bit flips per change")
	f.Float64Var(&o.regions[2].Alpha, "a3", 0.20, "region 3 area fraction")
	f.Float64Var(&o.regions[2].C, "c3", 1.0, "region 3 change rate")
	f.Float64Var(&o.regions[2].H, "h3", 12, "region 3 bit flips per change")

	f.BoolVarP(&o.verbose, "verbose", "v", false, "show configuration and context alongside results")

	root.AddCommand(presetsCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, out, errOut io.Writer) error {
	d, err := buildDisplay(o)
	if err != nil {
		return err
	}

	regions, err := buildRegions(o, d.W, errOut)
	if err != nil {
		return err
	}

	hAvg, err := toggle.HAvg(regions, d.W)
	if err != nil {
		return err
	}
	m, err := toggle.Compute(d, hAvg)
	if err != nil {
		return err
	}

	render(out, d, regions, hAvg, m, o.verbose)
	return nil
}

func buildDisplay(o opts) (toggle.Display, error) {
	d := toggle.Display{
		H:        o.hres,
		V:        o.vres,
		FPixel:   o.fpMHz * 1e6,
		FRefresh: o.fr,
	}
	if o.preset != "" {
		p, ok := preset.Displays()[o.preset]
		if !ok {
			return toggle.Display{}, fmt.Errorf("unknown display preset %q (have: %v)", o.preset, preset.DisplayNames())
		}
		d = p
	}
	d.W = o.width
	d.Pins = o.pins
	if d.Pins == 0 {
		d.Pins = d.W
	}
	if o.rho > 0 {
		d.RhoOverride = &o.rho
	} else if o.rho < 0 {
		return toggle.Display{}, fmt.Errorf("rho override %g cannot be negative", o.rho)
	}
	return d, nil
}

func buildRegions(o opts, busWidth uint, errOut io.Writer) ([]toggle.Region, error) {
	var regions []toggle.Region
	if o.content != "" {
		p, ok := preset.Contents()[o.content]
		if !ok {
			return nil, fmt.Errorf("unknown content preset %q (have: %v)", o.content, preset.ContentNames())
		}
		regions = p
		// The worst-case preset toggles every bit of whatever bus it runs on.
		if o.content == "worst" {
			regions[len(regions)-1].H = float64(busWidth)
		}
	} else {
		regions = o.regions[:]
	}

	var sum float64
	for _, r := range regions {
		sum += r.Alpha
	}
	if sum <= 0 {
		return nil, fmt.Errorf("region area fractions must sum to > 0")
	}
	if diff := sum - 1.0; diff > normalizeTol || diff < -normalizeTol {
		fmt.Fprintf(errOut, "note: normalizing region area fractions (sum was %.3f)\n", sum)
		for i := range regions {
			regions[i].Alpha /= sum
		}
	}
	return regions, nil
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List display and content presets",
		Run: func(cmd *cobra.Command, args []string) {
			listPresets(cmd.OutOrStdout())
		},
	}
}

func listPresets(out io.Writer) {
	fmt.Fprintln(out, titleStyle.Render("Display presets"))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	displays := preset.Displays()
	for _, name := range preset.DisplayNames() {
		d := displays[name]
		fmt.Fprintf(tw, "%s\t%dx%d @ %g Hz\t%g MHz pixel clock\n", name, d.H, d.V, d.FRefresh, d.FPixel/1e6)
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Content presets"))
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	contents := preset.Contents()
	for _, name := range preset.ContentNames() {
		fmt.Fprintf(tw, "%s\t%s\n", name, describeRegions(contents[name]))
	}
	tw.Flush()
}

func describeRegions(regions []toggle.Region) string {
	var s string
	for _, r := range regions {
		if r.Alpha <= 0 {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%.0f%% area @ c=%.1f h=%g", r.Alpha*100, r.C, r.H)
	}
	if s == "" {
		return "(inert)"
	}
	return s
}

func envUint(key string, def uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return def
}

func sortedYears(life map[int]float64) []int {
	years := make([]int, 0, len(life))
	for y := range life {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
