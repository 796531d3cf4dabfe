//go:build !linux

package host

// CPUModel is only implemented on Linux.
func CPUModel() (string, error) { return "", ErrUnsupported }

// MemTotal is only implemented on Linux.
func MemTotal() (uint64, error) { return 0, ErrUnsupported }

// Cgroup is only implemented on Linux.
func Cgroup() (CgroupMode, error) { return Unsupported, ErrUnsupported }

// Summary reports every field as "unknown" outside Linux.
func Summary() (hostname, kernel, cpus, mem string) {
	return "unknown", "unknown", "unknown", "unknown"
}
