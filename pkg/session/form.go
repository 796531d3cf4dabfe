// Package session keeps the raw input state of one estimator view.
//
// A Form stores exactly what the user entered and derives the estimate on
// every read; nothing computed is cached. Each view owns its own Form.
package session

import (
	"fmt"
	"net/url"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/system/util"
	"github.com/ja7ad/fpgabuild/pkg/types"
)

// Field names, shared by the HTML form and the query string.
const (
	FieldToolchain = "toolchain"
	FieldCPU       = "cpu"
	FieldOpt       = "opt"
	FieldLUTs      = "luts"
	FieldFFs       = "ffs"
	FieldDSPs      = "dsps"
)

// Fields lists the form fields in display order.
func Fields() []string {
	return []string{FieldToolchain, FieldCPU, FieldOpt, FieldLUTs, FieldFFs, FieldDSPs}
}

// Form is the raw field state of one view session.
type Form struct {
	est       *estimate.Estimator
	toolchain estimate.Toolchain
	cpu       estimate.CPU
	opt       estimate.OptLevel
	luts      string
	ffs       string
	dsps      string
}

// New returns a form seeded with seed. A nil estimator uses the default model.
func New(est *estimate.Estimator, seed estimate.Input) *Form {
	if est == nil {
		est = estimate.New(nil)
	}
	return &Form{
		est:       est,
		toolchain: seed.Toolchain,
		cpu:       seed.CPU,
		opt:       seed.Opt,
		luts:      seed.LUTs.String(),
		ffs:       seed.FFs.String(),
		dsps:      seed.DSPs.String(),
	}
}

// Set records one field change. Dropdown fields must name a known option;
// numeric fields are kept verbatim and coerced when read.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldToolchain:
		v, err := estimate.ParseToolchain(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidChoice, err)
		}
		f.toolchain = v
	case FieldCPU:
		v, err := estimate.ParseCPU(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidChoice, err)
		}
		f.cpu = v
	case FieldOpt:
		v, err := estimate.ParseOptLevel(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidChoice, err)
		}
		f.opt = v
	case FieldLUTs:
		f.luts = value
	case FieldFFs:
		f.ffs = value
	case FieldDSPs:
		f.dsps = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Apply sets every known field present in values. It stops at the first
// invalid choice; unknown keys are ignored.
func (f *Form) Apply(values url.Values) error {
	for _, field := range Fields() {
		if !values.Has(field) {
			continue
		}
		if err := f.Set(field, values.Get(field)); err != nil {
			return err
		}
	}
	return nil
}

// Raw returns the value of field exactly as it was entered.
func (f *Form) Raw(field string) string {
	switch field {
	case FieldToolchain:
		return f.toolchain.String()
	case FieldCPU:
		return f.cpu.String()
	case FieldOpt:
		return f.opt.String()
	case FieldLUTs:
		return f.luts
	case FieldFFs:
		return f.ffs
	case FieldDSPs:
		return f.dsps
	}
	return ""
}

// Values encodes the raw state, suitable for a shareable query string.
func (f *Form) Values() url.Values {
	v := url.Values{}
	for _, field := range Fields() {
		v.Set(field, f.Raw(field))
	}
	return v
}

// Input snapshots the current state as an estimator input.
func (f *Form) Input() estimate.Input {
	return estimate.Input{
		LUTs:      types.Count(util.CoerceCount(f.luts)),
		FFs:       types.Count(util.CoerceCount(f.ffs)),
		DSPs:      types.Count(util.CoerceCount(f.dsps)),
		Toolchain: f.toolchain,
		CPU:       f.cpu,
		Opt:       f.opt,
	}
}

// Result derives the estimate from the current state.
func (f *Form) Result() estimate.Result {
	return f.est.Estimate(f.Input())
}

// Factors derives the model breakdown from the current state.
func (f *Form) Factors() estimate.Breakdown {
	return f.est.Factors(f.Input())
}
