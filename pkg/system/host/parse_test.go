package host

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cpuinfoX86 = `processor	: 0
vendor_id	: AuthenticAMD
cpu family	: 23
model		: 49
model name	: AMD Ryzen Threadripper 3970X 32-Core Processor
stepping	: 0

processor	: 1
vendor_id	: AuthenticAMD
model name	: AMD Ryzen Threadripper 3970X 32-Core Processor
`

const cpuinfoARM = `processor	: 0
BogoMIPS	: 108.00
Features	: fp asimd evtstrm crc32 cpuid
CPU implementer	: 0x41

Hardware	: BCM2835
Revision	: c03111
`

func TestParseCPUModel(t *testing.T) {
	m, err := parseCPUModel(strings.NewReader(cpuinfoX86))
	require.NoError(t, err)
	assert.Equal(t, "AMD Ryzen Threadripper 3970X 32-Core Processor", m)

	m, err = parseCPUModel(strings.NewReader(cpuinfoARM))
	require.NoError(t, err)
	assert.Equal(t, "BCM2835", m)

	_, err = parseCPUModel(strings.NewReader("processor : 0\nmodel name :\n"))
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestParseMemTotal(t *testing.T) {
	in := "MemTotal:       32768000 kB\nMemFree:         1024 kB\n"
	v, err := parseMemTotal(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, uint64(32768000*1024), v)

	_, err = parseMemTotal(strings.NewReader("MemFree: 1 kB\n"))
	assert.ErrorIs(t, err, ErrNoMemTotal)

	_, err = parseMemTotal(strings.NewReader("MemTotal: lots kB\n"))
	assert.Error(t, err)
}

func TestParseMountinfo(t *testing.T) {
	v2 := "35 24 0:30 / /sys/fs/cgroup rw,nosuid shared:9 - cgroup2 cgroup2 rw,nsdelegate\n"
	v1 := "36 24 0:31 / /sys/fs/cgroup/cpu rw shared:10 - cgroup cgroup rw,cpu,cpuacct\n"
	other := "22 1 8:1 / / rw,relatime shared:1 - ext4 /dev/sda1 rw\n"

	cases := []struct {
		in   string
		want CgroupMode
	}{
		{other + v2, V2},
		{other + v1, V1},
		{v1 + v2, Hybrid},
		{other, Unsupported},
		{"garbage line\n", Unsupported},
	}
	for _, tc := range cases {
		got, err := parseMountinfo(strings.NewReader(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestCgroupMode_String(t *testing.T) {
	assert.Equal(t, "cgroup v1", V1.String())
	assert.Equal(t, "cgroup v2", V2.String())
	assert.Equal(t, "cgroup hybrid", Hybrid.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}
