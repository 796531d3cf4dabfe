package estimate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ja7ad/fpgabuild/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expect(c *Coefficients, in Input) (synth, impl, bit float64) {
	base := (float64(in.LUTs)+float64(in.FFs))/c.CellsPerUnit + float64(in.DSPs)/c.DSPsPerUnit

	cpu := 1.0
	switch in.CPU {
	case Threadripper3970X:
		cpu = 0.5
	case Ryzen7_5800X:
		cpu = 0.7
	}

	opt := float64(in.Opt)*c.OptStep + 1

	tool := 0.8
	switch in.Toolchain {
	case Vivado:
		tool = 1.2
	case Quartus:
		tool = 1.0
	}

	synth = base * c.Synthesis * cpu * opt * tool
	impl = base * c.Implementation * cpu * opt * tool
	bit = base * c.Bitstream * cpu * opt * tool
	return
}

func TestEstimate_DefaultScenario_WithLogs(t *testing.T) {
	in := Input{LUTs: 10000, FFs: 10000, DSPs: 100, Toolchain: Vivado, CPU: I7_12700K, Opt: O2}
	res := Estimate(in)

	b := Factors(in)
	assert.InDelta(t, 30.0, b.Base, 1e-12)
	assert.InDelta(t, 1.0, b.CPU, 1e-12)
	assert.InDelta(t, 1.6, b.Opt, 1e-12)
	assert.InDelta(t, 1.2, b.Toolchain, 1e-12)

	require.InDelta(t, 115.2, float64(res.Synthesis), 1e-9)
	require.InDelta(t, 172.8, float64(res.Implementation), 1e-9)
	require.InDelta(t, 86.4, float64(res.Bitstream), 1e-9)
	assert.InDelta(t, 374.4, float64(res.Total()), 1e-9)

	assert.Equal(t, "115.2 min (1.92 hrs)", res.Synthesis.String())
	assert.Equal(t, "172.8 min (2.88 hrs)", res.Implementation.String())
	assert.Equal(t, "86.4 min (1.44 hrs)", res.Bitstream.String())

	for _, s := range res.Stages() {
		t.Logf("%-22s %s", s.Name+":", s.Minutes)
	}
}

func TestEstimate_ThreadripperDiamondO0(t *testing.T) {
	in := Input{LUTs: 10000, FFs: 10000, DSPs: 100, Toolchain: Diamond, CPU: Threadripper3970X, Opt: O0}
	res := Estimate(in)

	require.InDelta(t, 24.0, float64(res.Synthesis), 1e-9)
	require.InDelta(t, 36.0, float64(res.Implementation), 1e-9)
	require.InDelta(t, 18.0, float64(res.Bitstream), 1e-9)
}

func TestEstimate_DefaultInputMatchesScenario(t *testing.T) {
	in := DefaultInput()
	assert.Equal(t, Vivado, in.Toolchain)
	assert.Equal(t, I7_12700K, in.CPU)
	assert.Equal(t, O2, in.Opt)
	assert.Equal(t, types.Count(10000), in.LUTs)
	assert.Equal(t, types.Count(10000), in.FFs)
	assert.Equal(t, types.Count(100), in.DSPs)
	assert.InDelta(t, 115.2, float64(Estimate(in).Synthesis), 1e-9)
}

func TestEstimate_AllCombinations(t *testing.T) {
	c := DefaultCoefficients()
	in := Input{LUTs: 52_000, FFs: 31_500, DSPs: 240}

	for _, tc := range AllToolchains() {
		for _, cpu := range AllCPUs() {
			for _, opt := range AllOptLevels() {
				in.Toolchain, in.CPU, in.Opt = tc, cpu, opt
				res := Estimate(in)
				es, ei, eb := expect(c, in)
				name := fmt.Sprintf("%s/%s/%s", tc, cpu, opt)
				require.InDelta(t, es, float64(res.Synthesis), 1e-9, name)
				require.InDelta(t, ei, float64(res.Implementation), 1e-9, name)
				require.InDelta(t, eb, float64(res.Bitstream), 1e-9, name)
			}
		}
	}
}

func TestEstimate_ZeroInput(t *testing.T) {
	res := Estimate(Input{Toolchain: Vivado, CPU: I5_9600K, Opt: O3})
	assert.Equal(t, types.Minutes(0), res.Synthesis)
	assert.Equal(t, types.Minutes(0), res.Implementation)
	assert.Equal(t, types.Minutes(0), res.Bitstream)
	assert.Equal(t, "0.0 min (0.00 hrs)", res.Total().String())
}

func TestEstimate_OutOfRangeEnums(t *testing.T) {
	in := Input{LUTs: 1000, Toolchain: Toolchain(9), CPU: CPU(-1), Opt: OptLevel(7)}
	b := Factors(in)

	// unknown toolchain takes the fallback branch, unknown CPU is baseline,
	// opt clamps to the highest level
	assert.InDelta(t, 0.8, b.Toolchain, 1e-12)
	assert.InDelta(t, 1.0, b.CPU, 1e-12)
	assert.InDelta(t, 1.9, b.Opt, 1e-12)

	b = Factors(Input{Opt: OptLevel(-2)})
	assert.InDelta(t, 1.0, b.Opt, 1e-12)
}

func TestNew_MergesCoefficients(t *testing.T) {
	e := New(&Coefficients{Synthesis: 4, OptStep: -1, CellsPerUnit: 0})
	got := e.Coefficients()
	def := DefaultCoefficients()

	assert.Equal(t, 4.0, got.Synthesis)
	assert.Equal(t, def.OptStep, got.OptStep)
	assert.Equal(t, def.CellsPerUnit, got.CellsPerUnit)
	assert.Equal(t, def.Implementation, got.Implementation)

	res := e.Estimate(DefaultInput())
	assert.InDelta(t, 230.4, float64(res.Synthesis), 1e-9)
	assert.InDelta(t, 172.8, float64(res.Implementation), 1e-9)

	assert.Equal(t, *def, New(nil).Coefficients())
}

func TestResult_Stages(t *testing.T) {
	r := Result{Synthesis: 1, Implementation: 2, Bitstream: 3}
	st := r.Stages()
	require.Len(t, st, 3)
	assert.Equal(t, "Synthesis", st[0].Name)
	assert.Equal(t, "Implementation", st[1].Name)
	assert.Equal(t, "Bitstream Generation", st[2].Name)
	assert.Equal(t, types.Minutes(6), r.Total())
}

func TestParse(t *testing.T) {
	tc, err := ParseToolchain(" quartus ")
	require.NoError(t, err)
	assert.Equal(t, Quartus, tc)

	_, err = ParseToolchain("ise")
	assert.True(t, errors.Is(err, ErrUnknownToolchain))

	cpu, err := ParseCPU("ryzen 7 5800x")
	require.NoError(t, err)
	assert.Equal(t, Ryzen7_5800X, cpu)

	_, err = ParseCPU("Ryzen")
	assert.ErrorIs(t, err, ErrUnknownCPU)

	for s, want := range map[string]OptLevel{"O0": O0, "o1": O1, "-O2": O2, "3": O3} {
		got, err := ParseOptLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "O4", "Os", "O12", "x", "Oo2", "OO2", "oo2", "--O2"} {
		_, err := ParseOptLevel(s)
		assert.ErrorIs(t, err, ErrUnknownOpt, s)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"Vivado", "Quartus", "Diamond"}, labels(AllToolchains()))
	assert.Equal(t, []string{"i5-9600K", "i7-12700K", "Ryzen 7 5800X", "Threadripper 3970X"}, labels(AllCPUs()))
	assert.Equal(t, []string{"O0", "O1", "O2", "O3"}, labels(AllOptLevels()))

	assert.Equal(t, "Toolchain(5)", Toolchain(5).String())
	assert.Equal(t, "CPU(9)", CPU(9).String())
	assert.Equal(t, "OptLevel(4)", OptLevel(4).String())
}

func labels[T fmt.Stringer](vs []T) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}
	return out
}

func TestCPUFromLabel(t *testing.T) {
	cases := []struct {
		label  string
		want   CPU
		factor float64
	}{
		{"Threadripper 3970X", Threadripper3970X, 0.5},
		{"AMD Ryzen Threadripper PRO 5995WX 64-Cores", Threadripper3970X, 0.5},
		{"AMD Ryzen 9 7950X 16-Core Processor", Ryzen7_5800X, 0.7},
		{"12th Gen Intel(R) Core(TM) i7-12700K", I7_12700K, 1.0},
		{"i5-9600K", I5_9600K, 1.0},
		{"", I7_12700K, 1.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CPUFromLabel(tc.label), tc.label)
		assert.InDelta(t, tc.factor, CPUFactorForLabel(tc.label), 1e-12, tc.label)
	}
}

func TestEnumText(t *testing.T) {
	b, err := Ryzen7_5800X.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Ryzen 7 5800X", string(b))

	var c CPU
	require.NoError(t, c.UnmarshalText([]byte("threadripper 3970x")))
	assert.Equal(t, Threadripper3970X, c)
	assert.Error(t, c.UnmarshalText([]byte("pentium")))

	var tc Toolchain
	require.NoError(t, tc.UnmarshalText([]byte("Diamond")))
	assert.Equal(t, Diamond, tc)

	var o OptLevel
	require.NoError(t, o.UnmarshalText([]byte("O1")))
	assert.Equal(t, O1, o)
}

func ExampleEstimate() {
	r := Estimate(Input{LUTs: 10000, FFs: 10000, DSPs: 100, Toolchain: Vivado, CPU: I7_12700K, Opt: O2})
	fmt.Println("Synthesis:", r.Synthesis)
	fmt.Println("Implementation:", r.Implementation)
	fmt.Println("Bitstream Generation:", r.Bitstream)
	// Output:
	// Synthesis: 115.2 min (1.92 hrs)
	// Implementation: 172.8 min (2.88 hrs)
	// Bitstream Generation: 86.4 min (1.44 hrs)
}
