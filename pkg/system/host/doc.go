// Package host probes the machine running the estimator.
//
// The CLI uses it for two things: resolving "--cpu auto" to the host's
// processor model, and printing a short host header before a report.
//
// Sources (Linux only; other platforms return ErrUnsupported):
//
//	/proc/cpuinfo             first "model name" (or "Hardware"/"cpu model") line
//	/proc/meminfo             MemTotal, humanized (IEC units)
//	/proc/sys/kernel/osrelease kernel release
//	/proc/self/mountinfo      cgroup filesystems, to report v1/v2/hybrid
//
// Parsing is split from file access so the parsers can be tested with
// canned inputs on any platform.
package host
