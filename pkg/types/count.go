package types

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/fpgabuild/pkg/system/util"
)

// Count is a uint64 wrapper representing a number of FPGA resources
// (LUTs, flip-flops or DSP blocks).
type Count uint64

// Humanized returns the count with thousands separators (e.g. "10,000").
func (c Count) Humanized() string {
	return humanize.BigComma(new(big.Int).SetUint64(uint64(c)))
}

// Kilo returns the count in thousands.
func (c Count) Kilo() float64 { return float64(c) / 1000 }

// String returns the plain decimal value.
func (c Count) String() string { return strconv.FormatUint(uint64(c), 10) }

// UnmarshalYAML accepts any scalar and coerces it like typed input:
// negative or non-numeric values become 0 and fractions are truncated.
func (c *Count) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: count must be a scalar", node.Line)
	}
	*c = Count(util.CoerceCount(node.Value))
	return nil
}

// ToCount converts a uint64 to Count.
func ToCount(v uint64) Count { return Count(v) }
