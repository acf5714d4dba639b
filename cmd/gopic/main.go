// gopic reads a particle dump, renders its phase space, reduces the number
// of macroparticles and exports the result as unit-annotated text.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	pic "github.com/opmdtools/gopic"
	"github.com/opmdtools/gopic/picplot"
	"github.com/opmdtools/gopic/resample"
	"github.com/opmdtools/gopic/txt"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Error("bad configuration", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("bad configuration", "err", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// parseArgs builds the run configuration from the command line. The YAML
// file named by -config, if any, is read first; every flag actually given
// overrides what the file says.
func parseArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("gopic", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML run configuration (flags override it)")
		input      = fs.String("in", "", "particle dump to read (.csv, .csv.gz or .csv.zst)")
		output     = fs.String("out", "", "output file (default: input with .txt suffix)")
		plotDir    = fs.String("plots", "", "directory for the phase-space figures")
		mode       = fs.String("mode", "", "resampling mode: level or thin")
		k          = fs.Float64("k", 0, "leveling factor for mode level")
		target     = fs.Int("target", 0, "remaining macroparticles for mode thin")
		seed       = fs.Uint64("seed", 0, "random seed (0 keeps the default)")
		bins       = fs.Int("bins", 0, "histogram bins per axis (0 keeps the default)")
		swapYZ     = fs.Bool("swap-yz", false, "swap the y and z axes on read")
		kinetic    = fs.Bool("kinetic", false, "derive kinetic instead of total energies")
		noPlot     = fs.Bool("no-plot", false, "skip the phase-space figures")
		noSave     = fs.Bool("no-save", false, "skip writing the output file")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return Config{}, err
		}
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *plotDir != "" {
		cfg.PlotDir = *plotDir
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *k != 0 {
		cfg.K = *k
	}
	if *target != 0 {
		cfg.Target = *target
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *bins != 0 {
		cfg.Bins = *bins
	}
	if *swapYZ {
		cfg.SwapYZ = true
	}
	if *kinetic {
		cfg.Kinetic = true
	}
	if *noPlot {
		cfg.NoPlot = true
	}
	if *noSave {
		cfg.NoSave = true
	}
	return cfg, nil
}

func run(cfg Config, logger *slog.Logger) error {
	set, err := pic.ReadDump(cfg.Input, &pic.DumpOptions{
		SwapYZ:  cfg.SwapYZ,
		Kinetic: cfg.Kinetic,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, set.Describe())

	if !cfg.NoPlot {
		ps := picplot.NewPhaseSpace(set, "Raw data").Bins(cfg.Bins)
		if err := ps.SaveAll(cfg.PlotDir, "raw"); err != nil {
			return err
		}
	}

	r := resample.New(set).Seed(cfg.Seed)
	switch cfg.Mode {
	case "level":
		logger.Info("reducing macroparticle count", "mode", cfg.Mode, "k", cfg.K)
		r = r.GlobalLevelingThinning(cfg.K).SetWeightsTo(1)
	case "thin":
		logger.Info("reducing macroparticle count", "mode", cfg.Mode, "target", cfg.Target)
		r = r.SimpleThinning(cfg.Target)
	}
	thinned, err := r.Finalize()
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, thinned.Describe())

	if !cfg.NoPlot {
		ps := picplot.NewPhaseSpace(thinned, "Resampled data").Bins(cfg.Bins)
		if err := ps.SaveAll(cfg.PlotDir, "resampled"); err != nil {
			return err
		}
		//set is still the raw data, as the resampler worked on its own copy
		raw := picplot.NewPhaseSpace(set, "Raw data").Bins(cfg.Bins)
		if err := raw.SaveComparative(ps, cfg.PlotDir, "comparison"); err != nil {
			return err
		}
	}

	if cfg.NoSave {
		return nil
	}
	out := cfg.Output
	if out == "" {
		out = outputName(cfg.Input)
	}
	_, err = txt.NewWriter(thinned).
		ExcludeWeights().
		ExcludeEnergy().
		Logger(logger).
		WriteFile(out)
	return err
}

// outputName derives the output file from the input: compression suffixes
// stripped, the remaining extension replaced with .txt.
func outputName(in string) string {
	for _, suffix := range []string{".zst", ".gz"} {
		in = strings.TrimSuffix(in, suffix)
	}
	if i := strings.LastIndex(in, "."); i > 0 {
		in = in[:i]
	}
	return in + ".txt"
}
