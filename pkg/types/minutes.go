package types

import (
	"fmt"
	"math"
	"time"
)

// Minutes is a duration measured in (fractional) minutes.
type Minutes float64

// String formats as "<minutes> min (<hours> hrs)" with one and two
// decimals respectively.
func (m Minutes) String() string {
	return fmt.Sprintf("%.1f min (%.2f hrs)", float64(m), m.Hours())
}

// Hours returns the number of hours.
func (m Minutes) Hours() float64 { return float64(m) / 60 }

// Duration converts to time.Duration, rounded to the nearest second.
// Values that do not fit saturate at the maximum duration.
func (m Minutes) Duration() time.Duration {
	sec := float64(m) * 60
	if math.IsNaN(sec) || sec <= 0 {
		return 0
	}
	if sec >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(math.Round(sec)) * time.Second
}
