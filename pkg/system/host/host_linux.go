//go:build linux

package host

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CPUModel returns the processor model name of this machine.
func CPUModel() (string, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", fmt.Errorf("open cpuinfo: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return parseCPUModel(f)
}

// MemTotal returns installed memory in bytes.
func MemTotal() (uint64, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, fmt.Errorf("open meminfo: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return parseMemTotal(f)
}

// Cgroup reports the cgroup layout mounted for this process.
func Cgroup() (CgroupMode, error) {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return Unsupported, fmt.Errorf("open mountinfo: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return parseMountinfo(f)
}

// Summary returns host name, kernel release, CPU description and memory
// for display. Fields that cannot be read are reported as "unknown".
func Summary() (hostname, kernel, cpus, mem string) {
	hostname, kernel, cpus, mem = "unknown", "unknown", "unknown", "unknown"

	if h, err := os.Hostname(); err == nil && h != "" {
		hostname = h
	}
	if b, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		kernel = strings.TrimSpace(string(b))
	}

	n := strconv.Itoa(runtime.NumCPU())
	if model, err := CPUModel(); err == nil {
		cpus = n + " x " + model
	} else {
		cpus = n
	}
	if m, err := Cgroup(); err == nil && m != Unsupported {
		cpus += " (" + m.String() + ")"
	}

	if total, err := MemTotal(); err == nil {
		mem = humanize.IBytes(total)
	}
	return hostname, kernel, cpus, mem
}
