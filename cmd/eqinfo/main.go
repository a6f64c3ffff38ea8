// Command eqinfo renders the magnitude response of an equalizer setup.
//
// Usage:
//
//	eqinfo [flags]
//
// Examples:
//
//	eqinfo -list
//	eqinfo -gains 0,6,0,-6,0
//	eqinfo -rate 44100 -hp 80 -lp 12000 -points 25
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/measure/response"
)

const irLength = 16384

func main() {
	var (
		rate   = flag.Float64("rate", 48000, "sample rate in Hz")
		bands  = flag.Int("bands", 5, "number of parametric peak bands")
		volume = flag.Float64("volume", 0, "output volume in dB")
		hp     = flag.Float64("hp", 0, "highpass cutoff in Hz (0 disables)")
		lp     = flag.Float64("lp", 0, "lowpass cutoff in Hz (0 disables)")
		gains  = flag.String("gains", "", "comma-separated band gains in dB")
		points = flag.Int("points", 31, "number of log-spaced response points")
		list   = flag.Bool("list", false, "print the parameter schema and exit")
	)
	flag.Parse()

	engine := eq.New(eq.WithSampleRate(*rate), eq.WithBandCount(*bands))

	if *list {
		printSchema(engine)
		return
	}

	if err := applyFlags(engine, *volume, *hp, *lp, *gains); err != nil {
		fmt.Fprintln(os.Stderr, "eqinfo:", err)
		os.Exit(1)
	}

	if err := printResponse(engine, *rate, *points); err != nil {
		fmt.Fprintln(os.Stderr, "eqinfo:", err)
		os.Exit(1)
	}
}

func printSchema(engine *eq.Engine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "index\tsymbol\tgroup\tmin\tmax\tdefault\tunit")

	for i := range engine.ParamCount() {
		s, _ := engine.SchemaFor(i)
		fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%g\t%g\t%s\n", i, s.Symbol, s.Group, s.Min, s.Max, s.Default, s.Unit)
	}

	w.Flush()
}

func applyFlags(engine *eq.Engine, volume, hp, lp float64, gains string) error {
	engine.SetParameterValue(0, volume)

	// Indices follow the fixed layout: 3..5 highpass, 6..8 lowpass,
	// 9+4i band blocks.
	if hp > 0 {
		engine.SetParameterValue(3, 1)
		engine.SetParameterValue(4, hp)
	} else {
		engine.SetParameterValue(3, 0)
	}

	if lp > 0 {
		engine.SetParameterValue(6, 1)
		engine.SetParameterValue(7, lp)
	} else {
		engine.SetParameterValue(6, 0)
	}

	if gains == "" {
		return nil
	}

	parts := strings.Split(gains, ",")
	if len(parts) > engine.NumBands() {
		return fmt.Errorf("%d gains for %d bands", len(parts), engine.NumBands())
	}

	for i, part := range parts {
		gain, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("bad gain %q: %w", part, err)
		}

		engine.SetParameterValue(9+4*i+1, gain)
	}

	return nil
}

func printResponse(engine *eq.Engine, rate float64, points int) error {
	if points < 2 {
		points = 2
	}

	ir := impulseResponse(engine, irLength)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "freq (Hz)\tmagnitude (dB)\t")

	// Log-spaced points from 20 Hz to just below Nyquist.
	low, high := 20.0, 0.45*rate
	for i := range points {
		f := low * math.Pow(high/low, float64(i)/float64(points-1))

		mag, err := response.MagnitudeAt(ir, f, rate)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%.1f\t%+.2f\t\n", f, 20*math.Log10(mag))
	}

	return w.Flush()
}

// impulseResponse runs a unit impulse through the settled engine. With
// the default volume and bypass this is the filter bank's response.
func impulseResponse(engine *eq.Engine, n int) []float64 {
	engine.Activate()

	in := make([]float64, n)
	in[0] = 1
	out := make([]float64, n)

	engine.Process([][]float64{in}, [][]float64{out}, n)

	return out
}
