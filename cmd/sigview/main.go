// Command sigview analyzes a two-column signal and optionally filters it.
//
// Usage:
//
//	sigview [flags] [file.csv]
//
// The CSV's first column is the x axis (usually time in seconds), the second
// the signal. Without a file, -example selects a generated signal.
//
// Examples:
//
//	sigview recording.csv
//	sigview -example two-tone -filter lowpass -cutoff 5 -order 4
//	sigview -example noisy-sine -filter bandpass -cutoff 3 -cutoff-high 8 -plot fig.json
//	sigview -config sigview.yaml data.csv
//	sigview -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-sigview/analysis"
	"github.com/cwbudde/algo-sigview/dsp/signal"
	"github.com/cwbudde/algo-sigview/internal/config"
	"github.com/cwbudde/algo-sigview/internal/logging"
	"github.com/cwbudde/algo-sigview/internal/table"
	"github.com/cwbudde/algo-sigview/plot"
	frequencystats "github.com/cwbudde/algo-sigview/stats/frequency"
	timestats "github.com/cwbudde/algo-sigview/stats/time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	example    string
	list       bool
	filter     string
	cutoff     float64
	cutoffHigh float64
	order      int
	fft        string
	window     string
	plotPath   string
	decibels   bool
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, map[string]bool, error) {
	var f flags

	fs := flag.NewFlagSet("sigview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.example, "example", "", "generated example signal instead of a CSV file (see -list)")
	fs.BoolVar(&f.list, "list", false, "list example signal names")
	fs.StringVar(&f.filter, "filter", "", "filter type: lowpass, highpass, bandpass, bandstop")
	fs.Float64Var(&f.cutoff, "cutoff", 0, "cutoff frequency in Hz (lower edge for band filters)")
	fs.Float64Var(&f.cutoffHigh, "cutoff-high", 0, "upper cutoff frequency in Hz for band filters")
	fs.IntVar(&f.order, "order", 0, "Butterworth filter order")
	fs.StringVar(&f.fft, "fft", "", "FFT backend: gonum, plan, godsp")
	fs.StringVar(&f.window, "window", "", "spectral window: rectangular, hann, hamming, blackman, flattop")
	fs.StringVar(&f.plotPath, "plot", "", "write the plot figure as JSON to this file")
	fs.BoolVar(&f.decibels, "db", false, "plot spectra in dB")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sigview [flags] [file.csv]\n\n")
		fmt.Fprintf(stderr, "Prints time and frequency statistics of a signal, optionally filtered.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return &f, fs.Args(), set, nil
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(f *flags, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if set["filter"] {
		cfg.Filter.Type = f.filter
	}

	if set["cutoff"] {
		cfg.Filter.Cutoff = f.cutoff
	}

	if set["cutoff-high"] {
		cfg.Filter.CutoffHigh = f.cutoffHigh
	}

	if set["order"] {
		cfg.Filter.Order = f.order
	}

	if set["fft"] {
		cfg.FFT.Backend = f.fft
	}

	if set["window"] {
		cfg.FFT.Window = f.window
	}

	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}

	if set["log-format"] {
		cfg.Log.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, rest, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if f.list {
		for _, name := range signal.Examples() {
			fmt.Fprintln(stdout, name)
		}

		return 0
	}

	cfg, err := resolveConfig(f, set)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	if err := analyze(cfg, f, rest, stdout, log); err != nil {
		log.Error("analysis failed", zap.Error(err), zap.Stringer("kind", analysis.KindOf(err)))
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	return 0
}

func loadInput(f *flags, rest []string) (table.Table, string, error) {
	switch {
	case f.example != "" && len(rest) > 0:
		return table.Table{}, "", errors.New("give either -example or a CSV file, not both")
	case f.example != "":
		x, y, err := signal.NewGenerator().Example(f.example)
		if err != nil {
			return table.Table{}, "", err
		}

		return table.Table{
			XLabel:  "Time (s)",
			YLabel:  "Amplitude",
			X:       x,
			Y:       y,
			Columns: []string{"Time (s)", "Amplitude"},
		}, f.example, nil
	case len(rest) == 1:
		t, err := table.ReadFile(rest[0])

		return t, rest[0], err
	default:
		return table.Table{}, "", errors.New("expected exactly one CSV file or -example (see -h)")
	}
}

func analyze(cfg *config.Config, f *flags, rest []string, stdout io.Writer, log *zap.Logger) error {
	input, source, err := loadInput(f, rest)
	if err != nil {
		return err
	}

	log.Info("signal loaded",
		zap.String("source", source),
		zap.Int("rows", input.Rows()),
		zap.Strings("columns", input.Columns))

	backend, err := cfg.Backend()
	if err != nil {
		return err
	}

	win, err := cfg.Window()
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithBackend(backend), analysis.WithWindow(win)}

	rec, err := analysis.LoadAndAnalyze(input.X, input.Y, input.XLabel, input.YLabel,
		append(opts, analysis.WithSource(source, input.Rows(), input.Columns))...)
	if err != nil {
		return err
	}

	log.Debug("spectrum computed",
		zap.Stringer("backend", backend),
		zap.Stringer("window", win),
		zap.Float64("sample_interval", rec.SampleInterval()),
		zap.Int("bins", len(rec.Spectrum().Frequencies)))

	records := []*analysis.Record{rec}
	headers := []string{"Original"}

	var filtered *analysis.FilteredRecord

	spec, ok, err := cfg.FilterSpec()
	if err != nil {
		return err
	}

	if ok {
		filtered, err = analysis.FilterAndAnalyze(rec, spec, opts...)
		if err != nil {
			return err
		}

		log.Info("filter applied",
			zap.Stringer("type", spec.Type),
			zap.Float64("cutoff_low", spec.CutoffLow),
			zap.Float64("cutoff_high", spec.CutoffHigh),
			zap.Int("order", spec.Order),
			zap.Int("sections", len(filtered.Sections())))

		records = append(records, filtered.Record)
		headers = append(headers, "Filtered")
	}

	if err := printStats(stdout, records, headers); err != nil {
		return err
	}

	if f.plotPath != "" {
		if err := writePlot(f, rec, filtered); err != nil {
			return err
		}

		log.Info("plot written", zap.String("path", f.plotPath))
	}

	return nil
}

func printStats(w io.Writer, records []*analysis.Record, headers []string) error {
	cols := make([][]timestats.Entry, len(records))
	spectral := make([]frequencystats.Stats, len(records))

	for i, r := range records {
		entries, err := analysis.ComputeStats(r)
		if err != nil {
			return err
		}

		cols[i] = entries

		res := r.Spectrum()

		spectral[i], err = frequencystats.Calculate(res.Frequencies, res.Magnitude)
		if err != nil {
			return err
		}
	}

	src := records[0].Source()
	rows, ncols := src.Shape()
	fmt.Fprintf(w, "Signal: %s (%d rows x %d columns, dt=%g)\n\n", src.Name, rows, ncols, records[0].SampleInterval())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "Statistic")
	for _, h := range headers {
		fmt.Fprintf(tw, "\t%s", h)
	}
	fmt.Fprintln(tw)

	for row := range cols[0] {
		fmt.Fprint(tw, cols[0][row].Name)
		for _, c := range cols {
			fmt.Fprintf(tw, "\t%s", timestats.FormatValue(c[row].Value))
		}
		fmt.Fprintln(tw)
	}

	spectralRows := []struct {
		name string
		get  func(frequencystats.Stats) float64
	}{
		{"Dominant Frequency (Hz)", func(s frequencystats.Stats) float64 { return s.PeakFrequency }},
		{"Spectral Centroid (Hz)", func(s frequencystats.Stats) float64 { return s.Centroid }},
		{"3 dB Bandwidth (Hz)", func(s frequencystats.Stats) float64 { return s.Bandwidth }},
	}

	for _, sr := range spectralRows {
		fmt.Fprint(tw, sr.name)
		for _, s := range spectral {
			fmt.Fprintf(tw, "\t%s", timestats.FormatValue(sr.get(s)))
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func writePlot(f *flags, rec *analysis.Record, filtered *analysis.FilteredRecord) error {
	var opts []plot.Option
	if f.decibels {
		opts = append(opts, plot.WithDecibels(-120))
	}

	fig := plot.ForRecord(rec, opts...)
	if filtered != nil {
		fig = plot.ForComparison(rec, filtered, opts...)
	}

	data, err := fig.JSON()
	if err != nil {
		return fmt.Errorf("encode plot: %w", err)
	}

	if err := os.WriteFile(f.plotPath, data, 0o644); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}

	return nil
}
