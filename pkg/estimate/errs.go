package estimate

import "errors"

var (
	// ErrUnknownToolchain indicates a label that names no supported toolchain.
	ErrUnknownToolchain = errors.New("estimate: unknown toolchain")

	// ErrUnknownCPU indicates a label that names no CPU in the preset list.
	ErrUnknownCPU = errors.New("estimate: unknown cpu")

	// ErrUnknownOpt indicates an optimization level outside O0..O3.
	ErrUnknownOpt = errors.New("estimate: unknown optimization level")
)
