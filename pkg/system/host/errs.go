package host

import "errors"

var (
	// ErrUnsupported indicates the platform has no /proc to read from.
	ErrUnsupported = errors.New("host: unsupported platform")

	// ErrNoModel indicates that /proc/cpuinfo named no processor model.
	ErrNoModel = errors.New("host: no cpu model")

	// ErrNoMemTotal indicates that /proc/meminfo had no MemTotal line.
	ErrNoMemTotal = errors.New("host: no MemTotal")
)
