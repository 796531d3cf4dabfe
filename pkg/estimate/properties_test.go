package estimate

import (
	"math"
	"testing"

	"github.com/ja7ad/fpgabuild/pkg/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInput produces inputs over the whole enum space with counts up to a
// few million cells, the size range of real devices.
func genInput() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt32Range(0, 5_000_000),
		gen.UInt32Range(0, 5_000_000),
		gen.UInt32Range(0, 20_000),
		gen.IntRange(0, len(AllToolchains())-1),
		gen.IntRange(0, len(AllCPUs())-1),
		gen.IntRange(0, len(AllOptLevels())-1),
	).Map(func(v []interface{}) Input {
		return Input{
			LUTs:      types.Count(v[0].(uint32)),
			FFs:       types.Count(v[1].(uint32)),
			DSPs:      types.Count(v[2].(uint32)),
			Toolchain: Toolchain(v[3].(int)),
			CPU:       CPU(v[4].(int)),
			Opt:       OptLevel(v[5].(int)),
		}
	})
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func finiteNonNegative(m types.Minutes) bool {
	v := float64(m)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestEstimateProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("outputs are finite and non-negative", prop.ForAll(
		func(in Input) bool {
			r := Estimate(in)
			return finiteNonNegative(r.Synthesis) &&
				finiteNonNegative(r.Implementation) &&
				finiteNonNegative(r.Bitstream)
		},
		genInput(),
	))

	properties.Property("growing any resource never shrinks a stage", prop.ForAll(
		func(in Input, delta uint32, which int) bool {
			bigger := in
			switch which {
			case 0:
				bigger.LUTs += types.Count(delta)
			case 1:
				bigger.FFs += types.Count(delta)
			default:
				bigger.DSPs += types.Count(delta)
			}
			a, b := Estimate(in), Estimate(bigger)
			return b.Synthesis >= a.Synthesis &&
				b.Implementation >= a.Implementation &&
				b.Bitstream >= a.Bitstream
		},
		genInput(),
		gen.UInt32Range(0, 1_000_000),
		gen.IntRange(0, 2),
	))

	properties.Property("implementation > synthesis > bitstream for a non-empty design", prop.ForAll(
		func(in Input) bool {
			r := Estimate(in)
			if in.LUTs+in.FFs+in.DSPs == 0 {
				return r.Implementation == 0 && r.Synthesis == 0 && r.Bitstream == 0
			}
			return r.Implementation > r.Synthesis && r.Synthesis > r.Bitstream &&
				near(float64(r.Implementation)/float64(r.Synthesis), 1.5) &&
				near(float64(r.Synthesis)/float64(r.Bitstream), 2.0/1.5)
		},
		genInput(),
	))

	properties.Property("Vivado is 1.5x Diamond and 1.2x Quartus", prop.ForAll(
		func(in Input) bool {
			in.Toolchain = Vivado
			v := Estimate(in)
			in.Toolchain = Quartus
			q := Estimate(in)
			in.Toolchain = Diamond
			d := Estimate(in)
			return near(float64(v.Synthesis), 1.5*float64(d.Synthesis)) &&
				near(float64(v.Implementation), 1.5*float64(d.Implementation)) &&
				near(float64(v.Bitstream), 1.5*float64(d.Bitstream)) &&
				near(float64(v.Synthesis), 1.2*float64(q.Synthesis)) &&
				near(float64(v.Implementation), 1.2*float64(q.Implementation)) &&
				near(float64(v.Bitstream), 1.2*float64(q.Bitstream))
		},
		genInput(),
	))

	properties.Property("O3 is 1.9x O0", prop.ForAll(
		func(in Input) bool {
			in.Opt = O0
			lo := Estimate(in)
			in.Opt = O3
			hi := Estimate(in)
			return near(float64(hi.Synthesis), 1.9*float64(lo.Synthesis)) &&
				near(float64(hi.Implementation), 1.9*float64(lo.Implementation)) &&
				near(float64(hi.Bitstream), 1.9*float64(lo.Bitstream))
		},
		genInput(),
	))

	properties.Property("estimate is deterministic", prop.ForAll(
		func(in Input) bool {
			return Estimate(in) == Estimate(in)
		},
		genInput(),
	))

	properties.TestingRun(t)
}
