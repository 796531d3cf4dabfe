package estimate

import (
	"github.com/ja7ad/fpgabuild/pkg/system/util"
	"github.com/ja7ad/fpgabuild/pkg/types"
)

// Estimator turns an Input into stage durations using fixed coefficients.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	cfg Coefficients
}

var std = New(nil)

// New creates an estimator with the given coefficients.
// Fields > 0 in cfg override defaults; zero or negative values are treated
// as "unset".
func New(cfg *Coefficients) *Estimator {
	base := DefaultCoefficients()

	if cfg == nil {
		return &Estimator{cfg: *base}
	}

	merged := *base

	if cfg.CellsPerUnit > 0 {
		merged.CellsPerUnit = cfg.CellsPerUnit
	}
	if cfg.DSPsPerUnit > 0 {
		merged.DSPsPerUnit = cfg.DSPsPerUnit
	}
	if cfg.Synthesis > 0 {
		merged.Synthesis = cfg.Synthesis
	}
	if cfg.Implementation > 0 {
		merged.Implementation = cfg.Implementation
	}
	if cfg.Bitstream > 0 {
		merged.Bitstream = cfg.Bitstream
	}
	if cfg.OptStep > 0 {
		merged.OptStep = cfg.OptStep
	}

	return &Estimator{cfg: merged}
}

// Coefficients returns a copy of the effective coefficients.
func (e *Estimator) Coefficients() Coefficients { return e.cfg }

// Factors computes the intermediate terms of the model for in.
//
//	base = (LUTs + FFs) / CellsPerUnit + DSPs / DSPsPerUnit
//	opt  = index(Opt) * OptStep + 1
func (e *Estimator) Factors(in Input) Breakdown {
	cells := float64(in.LUTs) + float64(in.FFs)
	base := cells/e.cfg.CellsPerUnit + float64(in.DSPs)/e.cfg.DSPsPerUnit

	idx := in.Opt.Index()
	if idx < 0 {
		idx = 0
	} else if idx > O3.Index() {
		idx = O3.Index()
	}

	return Breakdown{
		Base:      base,
		CPU:       in.CPU.Factor(),
		Opt:       float64(idx)*e.cfg.OptStep + 1,
		Toolchain: in.Toolchain.Factor(),
	}
}

// Estimate returns the duration of each build stage. It never fails.
func (e *Estimator) Estimate(in Input) Result {
	b := e.Factors(in)
	unit := b.Base * b.Scale()

	return Result{
		Synthesis:      minutes(unit * e.cfg.Synthesis),
		Implementation: minutes(unit * e.cfg.Implementation),
		Bitstream:      minutes(unit * e.cfg.Bitstream),
	}
}

// Estimate runs the default model.
func Estimate(in Input) Result { return std.Estimate(in) }

// Factors runs Factors on the default model.
func Factors(in Input) Breakdown { return std.Factors(in) }

func minutes(v float64) types.Minutes {
	return types.Minutes(util.NonNegative(v))
}
