package analysis_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigview/analysis"
	"github.com/cwbudde/algo-sigview/dsp/filter/design"
)

func ExampleFilterAndAnalyze() {
	const n = 200

	x := make([]float64, n)
	y := make([]float64, n)

	for i := range x {
		x[i] = float64(i) * 0.01
		y[i] = math.Sin(2*math.Pi*2*x[i]) + math.Sin(2*math.Pi*20*x[i])
	}

	rec, err := analysis.LoadAndAnalyze(x, y, "Time", "Signal")
	if err != nil {
		fmt.Println(err)
		return
	}

	filtered, err := analysis.FilterAndAnalyze(rec, design.Spec{Type: design.HighPass, CutoffLow: 10, Order: 6})
	if err != nil {
		fmt.Println(err)
		return
	}

	res := filtered.Spectrum()
	fmt.Printf("%s: peak %.0f Hz\n", filtered.Spec(), res.Frequencies[res.Peak(true)])

	_, err = analysis.FilterAndAnalyze(rec, design.Spec{Type: design.LowPass, CutoffLow: 80, Order: 2})
	fmt.Println(analysis.KindOf(err))

	// Output:
	// High pass 10 Hz, order 6: peak 20 Hz
	// invalid cutoff
}
