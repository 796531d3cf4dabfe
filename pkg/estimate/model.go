package estimate

import "github.com/ja7ad/fpgabuild/pkg/types"

// Coefficients holds the constants of the build-time model.
// Units:
//   - CellsPerUnit: LUTs+FFs that make one base unit
//   - DSPsPerUnit: DSP blocks that make one base unit
//   - Synthesis/Implementation/Bitstream: minutes per base unit
//   - OptStep: factor added per optimization level above O0
type Coefficients struct {
	CellsPerUnit   float64 `yaml:"cells_per_unit" json:"cells_per_unit"`
	DSPsPerUnit    float64 `yaml:"dsps_per_unit" json:"dsps_per_unit"`
	Synthesis      float64 `yaml:"synthesis" json:"synthesis"`
	Implementation float64 `yaml:"implementation" json:"implementation"`
	Bitstream      float64 `yaml:"bitstream" json:"bitstream"`
	OptStep        float64 `yaml:"opt_step" json:"opt_step"`
}

// DefaultCoefficients returns the stock model constants.
func DefaultCoefficients() *Coefficients {
	return &Coefficients{
		CellsPerUnit:   1000, // LUT+FF per unit
		DSPsPerUnit:    10,   // DSP per unit
		Synthesis:      2,    // min/unit
		Implementation: 3,    // min/unit
		Bitstream:      1.5,  // min/unit
		OptStep:        0.3,  // per level
	}
}

// Input is one estimation request. It is a plain value; callers build a
// fresh one from their current state for every call.
type Input struct {
	LUTs      types.Count `json:"luts" yaml:"luts"`
	FFs       types.Count `json:"ffs" yaml:"ffs"`
	DSPs      types.Count `json:"dsps" yaml:"dsps"`
	Toolchain Toolchain   `json:"toolchain" yaml:"toolchain"`
	CPU       CPU         `json:"cpu" yaml:"cpu"`
	Opt       OptLevel    `json:"opt" yaml:"opt"`
}

// DefaultInput returns the starting point of an interactive session.
func DefaultInput() Input {
	return Input{
		LUTs:      10000,
		FFs:       10000,
		DSPs:      100,
		Toolchain: Vivado,
		CPU:       I7_12700K,
		Opt:       O2,
	}
}

// Result is the estimated duration of each build stage.
type Result struct {
	Synthesis      types.Minutes `json:"synthesis_min"`
	Implementation types.Minutes `json:"implementation_min"`
	Bitstream      types.Minutes `json:"bitstream_min"`
}

// Total is the whole flow, stages run back to back.
func (r Result) Total() types.Minutes {
	return r.Synthesis + r.Implementation + r.Bitstream
}

// Stage is a named build stage duration.
type Stage struct {
	Name    string
	Minutes types.Minutes
}

// Stages returns the stage durations in flow order.
func (r Result) Stages() []Stage {
	return []Stage{
		{Name: "Synthesis", Minutes: r.Synthesis},
		{Name: "Implementation", Minutes: r.Implementation},
		{Name: "Bitstream Generation", Minutes: r.Bitstream},
	}
}

// Breakdown exposes the intermediate factors of one estimate.
type Breakdown struct {
	Base      float64 `json:"base"`
	CPU       float64 `json:"cpu"`
	Opt       float64 `json:"opt"`
	Toolchain float64 `json:"toolchain"`
}

// Scale is the product of all multiplicative factors.
func (b Breakdown) Scale() float64 {
	return b.CPU * b.Opt * b.Toolchain
}
