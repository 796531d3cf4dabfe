package estimate

import (
	"fmt"
	"strings"
)

// Toolchain is the vendor flow running the build.
type Toolchain int

const (
	Vivado Toolchain = iota
	Quartus
	Diamond
)

var toolchainLabels = [...]string{
	Vivado:  "Vivado",
	Quartus: "Quartus",
	Diamond: "Diamond",
}

// toolchainFactors is keyed by enum value. Anything outside the table
// falls back to the Diamond factor.
var toolchainFactors = map[Toolchain]float64{
	Vivado:  1.2,
	Quartus: 1.0,
	Diamond: 0.8,
}

func (t Toolchain) String() string {
	if t < 0 || int(t) >= len(toolchainLabels) {
		return fmt.Sprintf("Toolchain(%d)", int(t))
	}
	return toolchainLabels[t]
}

// Factor returns the multiplicative cost of the toolchain.
func (t Toolchain) Factor() float64 {
	if f, ok := toolchainFactors[t]; ok {
		return f
	}
	return toolchainFactors[Diamond]
}

func (t Toolchain) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Toolchain) UnmarshalText(b []byte) error {
	v, err := ParseToolchain(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseToolchain matches a toolchain label, ignoring case.
func ParseToolchain(s string) (Toolchain, error) {
	s = strings.TrimSpace(s)
	for i, l := range toolchainLabels {
		if strings.EqualFold(l, s) {
			return Toolchain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToolchain, s)
}

// AllToolchains lists toolchains in display order.
func AllToolchains() []Toolchain { return []Toolchain{Vivado, Quartus, Diamond} }

// CPU is the host processor running the build.
type CPU int

const (
	I5_9600K CPU = iota
	I7_12700K
	Ryzen7_5800X
	Threadripper3970X
)

var cpuLabels = [...]string{
	I5_9600K:          "i5-9600K",
	I7_12700K:         "i7-12700K",
	Ryzen7_5800X:      "Ryzen 7 5800X",
	Threadripper3970X: "Threadripper 3970X",
}

var cpuFactors = map[CPU]float64{
	I5_9600K:          1.0,
	I7_12700K:         1.0,
	Ryzen7_5800X:      0.7,
	Threadripper3970X: 0.5,
}

func (c CPU) String() string {
	if c < 0 || int(c) >= len(cpuLabels) {
		return fmt.Sprintf("CPU(%d)", int(c))
	}
	return cpuLabels[c]
}

// Factor returns the speed factor of the CPU. Unknown values count as a
// baseline desktop part.
func (c CPU) Factor() float64 {
	if f, ok := cpuFactors[c]; ok {
		return f
	}
	return 1.0
}

func (c CPU) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CPU) UnmarshalText(b []byte) error {
	v, err := ParseCPU(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCPU matches a CPU label exactly, ignoring case. Use CPUFromLabel
// for free-form model names.
func ParseCPU(s string) (CPU, error) {
	s = strings.TrimSpace(s)
	for i, l := range cpuLabels {
		if strings.EqualFold(l, s) {
			return CPU(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCPU, s)
}

// AllCPUs lists CPUs in display order.
func AllCPUs() []CPU { return []CPU{I5_9600K, I7_12700K, Ryzen7_5800X, Threadripper3970X} }

// CPUFactorForLabel classifies a free-form CPU model name. Threadripper is
// checked before Ryzen so a label naming both counts as Threadripper.
func CPUFactorForLabel(label string) float64 {
	return CPUFromLabel(label).Factor()
}

// CPUFromLabel maps a free-form model name, such as the one reported by
// the host, to the closest known CPU class.
func CPUFromLabel(label string) CPU {
	if c, err := ParseCPU(label); err == nil {
		return c
	}
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "threadripper"):
		return Threadripper3970X
	case strings.Contains(l, "ryzen"):
		return Ryzen7_5800X
	default:
		return I7_12700K
	}
}

// OptLevel is the ordered optimization effort.
type OptLevel int

const (
	O0 OptLevel = iota
	O1
	O2
	O3
)

func (o OptLevel) String() string {
	if o < O0 || o > O3 {
		return fmt.Sprintf("OptLevel(%d)", int(o))
	}
	return fmt.Sprintf("O%d", int(o))
}

// Index is the position of the level in the ordered list O0..O3.
func (o OptLevel) Index() int { return int(o) }

func (o OptLevel) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *OptLevel) UnmarshalText(b []byte) error {
	v, err := ParseOptLevel(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOptLevel accepts "O2", "o2", "-O2" or a bare "2".
func ParseOptLevel(s string) (OptLevel, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "-")
	t = strings.TrimPrefix(strings.ToUpper(t), "O")
	if len(t) == 1 && t[0] >= '0' && t[0] <= '3' {
		return OptLevel(t[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOpt, s)
}

// AllOptLevels lists optimization levels in order.
func AllOptLevels() []OptLevel { return []OptLevel{O0, O1, O2, O3} }
