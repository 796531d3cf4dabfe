package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ja7ad/fpgabuild/internal/config"
	"github.com/ja7ad/fpgabuild/internal/logger"
	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/report"
	"github.com/ja7ad/fpgabuild/pkg/system/host"
	"github.com/ja7ad/fpgabuild/pkg/system/util"
	"github.com/ja7ad/fpgabuild/pkg/types"
)

const cpuAuto = "auto"

type opts struct {
	// global
	configPath string
	logLevel   string
	logFormat  string

	// design
	toolchain string
	cpu       string
	opt       string
	luts      string
	ffs       string
	dsps      string

	// outputs
	pretty   bool
	csvPath  string
	jsonPath string
	htmlPath string
	xlsxPath string
}

// app is the state shared by all commands once configuration is loaded.
type app struct {
	o   *opts
	cfg *config.Config
	est *estimate.Estimator
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &opts{}
	a := &app{o: o}

	root := &cobra.Command{
		Use:   "fpgabuild",
		Short: "FPGA build time estimator",
		Long: `fpgabuild estimates how long an FPGA build flow takes (synthesis,
implementation and bitstream generation) from the size of the design
(LUTs, flip-flops, DSP blocks), the toolchain, the CPU running it and the
optimization level.

The model is a closed-form rule of thumb, not a simulation of any vendor tool.

Examples:
  fpgabuild --luts 52000 --ffs 61000 --dsps 240 -t Quartus -c auto -O 3
  fpgabuild sweep --luts 120000 --ffs 150000 --dsps 800 --sort
  fpgabuild batch designs.yaml --csv out/estimates.csv --xlsx out/estimates.xlsx
  fpgabuild serve --config fpgabuild.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEstimate(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "path to a YAML configuration file")
	pf.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVar(&o.logFormat, "log-format", "", "log format (text, json); overrides config")

	addDesignFlags(root.Flags(), o)

	pf.BoolVar(&o.pretty, "pretty", term.IsTerminal(int(os.Stdout.Fd())), "format output as a table instead of CSV-like lines")
	pf.StringVar(&o.csvPath, "csv", "", "write estimates to CSV file")
	pf.StringVar(&o.jsonPath, "json", "", "write estimates to JSON file")
	pf.StringVar(&o.htmlPath, "html", "", "write estimates to HTML file")
	pf.StringVar(&o.xlsxPath, "xlsx", "", "write estimates to XLSX workbook")

	root.AddCommand(
		newBatchCmd(a),
		newSweepCmd(a),
		newPresetsCmd(a),
		newServeCmd(a),
	)
	return root
}

// addDesignFlags registers the flags describing one design. Only commands
// that estimate a single flag-described design take them.
func addDesignFlags(fs *pflag.FlagSet, o *opts) {
	fs.StringVarP(&o.toolchain, "toolchain", "t", "", "toolchain: Vivado, Quartus or Diamond (default from config: Vivado)")
	fs.StringVarP(&o.cpu, "cpu", "c", "", `CPU running the build, a preset label or "auto" to probe this host (default from config: i7-12700K)`)
	fs.StringVarP(&o.opt, "opt", "O", "", "optimization level O0..O3 (default from config: O2)")
	fs.StringVar(&o.luts, "luts", "", "number of LUTs (default from config: 10000)")
	fs.StringVar(&o.ffs, "ffs", "", "number of flip-flops (default from config: 10000)")
	fs.StringVar(&o.dsps, "dsps", "", "number of DSP blocks (default from config: 100)")
}

// setup loads configuration and logging before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.o.configPath)
	if err != nil {
		return err
	}
	if a.o.logLevel != "" {
		cfg.Log.Level = a.o.logLevel
	}
	if a.o.logFormat != "" {
		cfg.Log.Format = a.o.logFormat
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	a.cfg = cfg
	a.est = estimate.New(&cfg.Coefficients)
	logrus.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.o.configPath,
	}).Debug("configuration loaded")
	return nil
}

// input starts from the configured defaults and applies the design flags
// that were set on the command line.
func (a *app) input(cmd *cobra.Command) (estimate.Input, error) {
	in := a.cfg.Defaults
	flags := cmd.Flags()

	if flags.Changed("toolchain") {
		v, err := estimate.ParseToolchain(a.o.toolchain)
		if err != nil {
			return in, err
		}
		in.Toolchain = v
	}
	if flags.Changed("cpu") {
		v, err := resolveCPU(a.o.cpu, host.CPUModel)
		if err != nil {
			return in, err
		}
		in.CPU = v
	}
	if flags.Changed("opt") {
		v, err := estimate.ParseOptLevel(a.o.opt)
		if err != nil {
			return in, err
		}
		in.Opt = v
	}
	if flags.Changed("luts") {
		in.LUTs = coerceFlag("luts", a.o.luts)
	}
	if flags.Changed("ffs") {
		in.FFs = coerceFlag("ffs", a.o.ffs)
	}
	if flags.Changed("dsps") {
		in.DSPs = coerceFlag("dsps", a.o.dsps)
	}
	return in, nil
}

// resolveCPU accepts a preset label or "auto". A host that cannot be
// probed falls back to the baseline desktop class with a warning.
func resolveCPU(label string, probe func() (string, error)) (estimate.CPU, error) {
	if !strings.EqualFold(strings.TrimSpace(label), cpuAuto) {
		return estimate.ParseCPU(label)
	}
	model, err := probe()
	if err != nil {
		logrus.WithError(err).Warn("cpu auto-detection failed, assuming i7-12700K")
		return estimate.I7_12700K, nil
	}
	c := estimate.CPUFromLabel(model)
	logrus.WithFields(logrus.Fields{"model": model, "class": c.String()}).Info("detected host cpu")
	return c, nil
}

// coerceFlag turns a count flag into a Count. A value that had to be
// changed to fit, such as "-5" or "12.5", is reported.
func coerceFlag(name, raw string) types.Count {
	v, exact := parseCount(raw)
	if !exact {
		logrus.WithFields(logrus.Fields{"flag": name, "value": raw, "used": v}).Warn("count is not a non-negative integer, coerced")
	}
	return v
}

// parseCount coerces raw and reports whether the result is the integer
// that was entered, thousands separators allowed.
func parseCount(raw string) (types.Count, bool) {
	v := util.CoerceCount(raw)
	n, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 10, 64)
	return types.Count(v), err == nil && n == v
}

func (a *app) runEstimate(cmd *cobra.Command) error {
	in, err := a.input(cmd)
	if err != nil {
		return err
	}
	rows := []report.Row{report.NewRow(a.est, "design", in)}
	out := cmd.OutOrStdout()

	if a.o.pretty {
		printHostHeader(out)
		res := rows[0].Result
		fmt.Fprintf(out, "%s | %s | %s | LUTs %s | FFs %s | DSPs %s\n\n",
			in.Toolchain, in.CPU, in.Opt, in.LUTs.Humanized(), in.FFs.Humanized(), in.DSPs.Humanized())
		for _, s := range res.Stages() {
			fmt.Fprintf(out, "%-22s %s\n", s.Name+":", s.Minutes)
		}
		fmt.Fprintf(out, "%-22s %s\n", "Total:", res.Total())
	} else if err := report.Lines(out, rows); err != nil {
		return err
	}

	return a.writeFiles(rows)
}

// emit prints rows to stdout and writes the requested files.
func (a *app) emit(out io.Writer, rows []report.Row) error {
	if a.o.pretty {
		printHostHeader(out)
		if err := report.Table(out, rows); err != nil {
			return err
		}
	} else if err := report.Lines(out, rows); err != nil {
		return err
	}
	return a.writeFiles(rows)
}

func (a *app) writeFiles(rows []report.Row) error {
	targets := []struct {
		path string
		f    report.Format
	}{
		{a.o.csvPath, report.FormatCSV},
		{a.o.jsonPath, report.FormatJSON},
		{a.o.htmlPath, report.FormatHTML},
		{a.o.xlsxPath, report.FormatXLSX},
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		if err := report.WriteFile(t.path, t.f, rows); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"path": t.path, "format": string(t.f), "rows": len(rows)}).Info("report written")
	}
	return nil
}

func printHostHeader(w io.Writer) {
	hostname, kernel, cpus, mem := host.Summary()
	fmt.Fprintf(w, _console, hostname, kernel, cpus, mem, time.Now().Format("2006-01-02 15:04:05"))
}

const _console = `fpgabuild - FPGA Build Time Estimator

       Host: %s
       Kernel: %s
       CPUs: %s
       Mem: %s

Estimated build times as of %s:

`
