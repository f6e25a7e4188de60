//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-sigview/analysis"
	"github.com/cwbudde/algo-sigview/dsp/filter/design"
	"github.com/cwbudde/algo-sigview/plot"
)

var (
	current *analysis.Record
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	// loadAndAnalyze(x, y, xLabel, yLabel) -> {figure} | {error, kind}
	api.Set("loadAndAnalyze", export(func(args []js.Value) any {
		if len(args) < 2 {
			return failure("loadAndAnalyze expects x and y arrays", "")
		}

		xLabel, yLabel := "x", "y"
		if len(args) > 3 {
			xLabel, yLabel = args[2].String(), args[3].String()
		}

		rec, err := analysis.LoadAndAnalyze(floats(args[0]), floats(args[1]), xLabel, yLabel)
		if err != nil {
			return failure(err.Error(), analysis.KindOf(err).String())
		}

		current = rec

		return figure(plot.ForRecord(rec))
	}))

	// filterAndAnalyze({type, cutoff, cutoffHigh, order}) -> {figure, stats} | {error, kind}
	api.Set("filterAndAnalyze", export(func(args []js.Value) any {
		if current == nil {
			return failure("no signal loaded", "")
		}

		if len(args) < 1 {
			return failure("filterAndAnalyze expects a filter object", "")
		}

		p := args[0]

		typ, err := design.ParseType(p.Get("type").String())
		if err != nil {
			return failure(err.Error(), analysis.InvalidInput.String())
		}

		spec := design.Spec{
			Type:      typ,
			CutoffLow: p.Get("cutoff").Float(),
			Order:     p.Get("order").Int(),
		}

		if hi := p.Get("cutoffHigh"); hi.Type() == js.TypeNumber {
			spec.CutoffHigh = hi.Float()
		}

		filtered, err := analysis.FilterAndAnalyze(current, spec)
		if err != nil {
			return failure(err.Error(), analysis.KindOf(err).String())
		}

		out := figure(plot.ForComparison(current, filtered))
		out["stats"] = stats(filtered.Record)

		return out
	}))

	// computeStats() -> [{name, value}] for the loaded signal
	api.Set("computeStats", export(func(_ []js.Value) any {
		if current == nil {
			return js.Null()
		}

		return stats(current)
	}))

	js.Global().Set("SigView", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)

	return f
}

func floats(v js.Value) []float64 {
	out := make([]float64, v.Length())
	for i := range out {
		out[i] = v.Index(i).Float()
	}

	return out
}

func failure(msg, kind string) map[string]any {
	return map[string]any{"error": msg, "kind": kind}
}

func figure(fig plot.Figure) map[string]any {
	data, err := fig.JSON()
	if err != nil {
		return failure(err.Error(), "")
	}

	return map[string]any{"figure": string(data)}
}

func stats(r *analysis.Record) any {
	entries, err := analysis.ComputeStats(r)
	if err != nil {
		return failure(err.Error(), analysis.KindOf(err).String())
	}

	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = map[string]any{"name": e.Name, "value": e.Value, "text": e.String()}
	}

	return out
}
