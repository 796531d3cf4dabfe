package host

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CgroupMode is the cgroup hierarchy layout mounted on the host.
type CgroupMode int

const (
	Unsupported CgroupMode = iota // no cgroup mounts
	V1                            // legacy multi-hierarchy cgroup v1
	V2                            // unified cgroup v2
	Hybrid                        // both v1 and v2 present
)

func (m CgroupMode) String() string {
	switch m {
	case V1:
		return "cgroup v1"
	case V2:
		return "cgroup v2"
	case Hybrid:
		return "cgroup hybrid"
	default:
		return "unsupported"
	}
}

var modelKeys = []string{"model name", "cpu model", "hardware"}

// parseCPUModel returns the first processor model named in cpuinfo.
func parseCPUModel(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		for _, k := range modelKeys {
			if key == k {
				return val, nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("scan cpuinfo: %w", err)
	}
	return "", ErrNoModel
}

// parseMemTotal returns MemTotal from meminfo in bytes.
func parseMemTotal(r io.Reader) (uint64, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) < 2 || f[0] != "MemTotal:" {
			continue
		}
		kb, err := strconv.ParseUint(f[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse MemTotal: %w", err)
		}
		return kb * 1024, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("scan meminfo: %w", err)
	}
	return 0, ErrNoMemTotal
}

// parseMountinfo classifies the cgroup mounts in a mountinfo listing.
// The line format has a " - fstype " separator; only fstype matters.
func parseMountinfo(r io.Reader) (CgroupMode, error) {
	var hasV1, hasV2 bool
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		i := strings.LastIndex(line, " - ")
		if i < 0 {
			continue
		}
		fields := strings.Fields(line[i+3:])
		if len(fields) < 1 {
			continue
		}
		switch fields[0] {
		case "cgroup2":
			hasV2 = true
		case "cgroup":
			hasV1 = true
		}
	}
	if err := sc.Err(); err != nil {
		return Unsupported, fmt.Errorf("scan mountinfo: %w", err)
	}

	switch {
	case hasV1 && hasV2:
		return Hybrid, nil
	case hasV2:
		return V2, nil
	case hasV1:
		return V1, nil
	default:
		return Unsupported, nil
	}
}
